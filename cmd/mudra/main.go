// Command mudra recognizes American Sign Language alphabet and number
// signs from a webcam.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/calibration"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/store"
)

var rootFlags struct {
	device      int
	width       int
	height      int
	minConf     float64
	confidence  float64
	smoothing   int
	holdFrames  int
	spell       bool
	focus       bool
	record      string
	noVideo     bool
	recalibrate bool
	watermark   bool
}

var rootCmd = &cobra.Command{
	Use:   "mudra",
	Short: "ASL alphabet and number recognition from your webcam",
	Long: `mudra recognizes American Sign Language alphabet and number signs
from a webcam using hand landmark detection and geometric rules.

In spell mode, hold a letter steady to make it pending, then press SPACE
to add it to the word. BACKSPACE deletes the last letter, ENTER clears
the word, and 's' saves it as a transcript.`,
	RunE: runRecognize,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&rootFlags.device, "device", 0, "camera device index")
	f.IntVar(&rootFlags.width, "width", capture.DefaultWidth, "capture width")
	f.IntVar(&rootFlags.height, "height", capture.DefaultHeight, "capture height")
	f.Float64Var(&rootFlags.minConf, "min-conf", 0.7, "minimum hand detection confidence")
	f.Float64Var(&rootFlags.confidence, "confidence", 0.75, "minimum sign confidence to report")
	f.IntVar(&rootFlags.smoothing, "smoothing", 7, "temporal smoothing window in frames")
	f.IntVar(&rootFlags.holdFrames, "hold-frames", 15, "frames a letter must hold before it is pending")
	f.BoolVar(&rootFlags.spell, "spell", false, "enable spelling mode")
	f.BoolVar(&rootFlags.focus, "focus", false, "minimal high-contrast display")
	f.StringVar(&rootFlags.record, "record", "", "record the annotated video to this path")
	f.BoolVar(&rootFlags.noVideo, "no-video", false, "run without a preview window")
	f.BoolVar(&rootFlags.recalibrate, "recalibrate", false, "re-run the calibration wizard")
	f.BoolVar(&rootFlags.watermark, "watermark", true, "show the watermark")

	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore opens the database at ~/.mudra/mudra.db, creating the
// directory on first use.
func openStore() (*store.Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return store.New(filepath.Join(dbDir, "mudra.db"))
}

func runRecognize(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := ensureCalibrated(st, rootFlags.recalibrate); err != nil {
		return err
	}

	detectorConfig := detector.DefaultConfig()
	detectorConfig.MinConfidence = rootFlags.minConf

	a := app.New(app.Config{
		Store:         st,
		Device:        rootFlags.device,
		Width:         rootFlags.width,
		Height:        rootFlags.height,
		Detector:      detectorConfig,
		Confidence:    rootFlags.confidence,
		Smoothing:     rootFlags.smoothing,
		HoldFrames:    rootFlags.holdFrames,
		SpellMode:     rootFlags.spell,
		FocusMode:     rootFlags.focus,
		ShowWatermark: rootFlags.watermark,
		NoVideo:       rootFlags.noVideo,
		RecordPath:    rootFlags.record,
	})

	return a.RunInteractive()
}

// ensureCalibrated runs the first-run wizard when calibration has never
// completed, or when a re-run is forced.
func ensureCalibrated(st *store.Store, force bool) error {
	if !force {
		done, err := st.Settings().Get(store.SettingFirstRunComplete)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if done == "true" {
			return nil
		}
	}

	camera := capture.NewCamera(rootFlags.device, rootFlags.width, rootFlags.height)
	if err := camera.Open(); err != nil {
		log.Printf("Camera unavailable for calibration: %v", err)
		camera = nil
	} else {
		defer camera.Close()
	}

	wizard := &calibration.Wizard{
		In:     os.Stdin,
		Out:    os.Stderr,
		Camera: camera,
		Store:  st,
	}

	_, err := wizard.Run()
	return err
}
