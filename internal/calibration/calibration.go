// Package calibration implements the first-run setup wizard. It records the
// user's dominant hand and a lighting assessment into the settings store so
// later sessions can skip the wizard.
package calibration

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/store"
)

// Lighting assessment thresholds on mean gray-level brightness.
const (
	dimBrightness    = 80
	brightBrightness = 170
)

// Lighting assessment values.
const (
	LightingDim     = "dim"
	LightingNormal  = "normal"
	LightingBright  = "bright"
	LightingUnknown = "unknown"
)

// Version is persisted with calibration results so future releases can
// detect stale settings.
const Version = "0.1.0"

// ClassifyBrightness maps a mean brightness value to a lighting assessment.
func ClassifyBrightness(mean float64) string {
	switch {
	case mean < dimBrightness:
		return LightingDim
	case mean > brightBrightness:
		return LightingBright
	default:
		return LightingNormal
	}
}

// Wizard runs the interactive first-run setup, reading answers from In and
// writing prompts to Out.
type Wizard struct {
	In     io.Reader
	Out    io.Writer
	Camera capture.Camera
	Store  *store.Store
}

// Result holds the answers collected by a wizard run.
type Result struct {
	DominantHand     string
	Lighting         string
	LightingBaseline float64
}

// Run executes the wizard and persists the results to the settings store.
func (w *Wizard) Run() (*Result, error) {
	fmt.Fprintln(w.Out)
	fmt.Fprintln(w.Out, strings.Repeat("=", 60))
	fmt.Fprintln(w.Out, "Welcome to mudra calibration!")
	fmt.Fprintln(w.Out, strings.Repeat("=", 60))
	fmt.Fprintln(w.Out)

	reader := bufio.NewReader(w.In)

	res := &Result{
		DominantHand: w.askDominantHand(reader),
	}
	w.assessLighting(res)

	settings := w.Store.Settings()
	if err := settings.Set(store.SettingDominantHand, res.DominantHand); err != nil {
		return nil, fmt.Errorf("failed to save dominant hand: %w", err)
	}
	if err := settings.Set(store.SettingLightingBaseline, res.Lighting); err != nil {
		return nil, fmt.Errorf("failed to save lighting baseline: %w", err)
	}
	if err := settings.Set(store.SettingVersion, Version); err != nil {
		return nil, fmt.Errorf("failed to save version: %w", err)
	}
	if err := settings.Set(store.SettingFirstRunComplete, "true"); err != nil {
		return nil, fmt.Errorf("failed to mark first run complete: %w", err)
	}

	fmt.Fprintln(w.Out)
	fmt.Fprintln(w.Out, "Calibration complete! Settings saved.")
	fmt.Fprintln(w.Out)

	return res, nil
}

func (w *Wizard) askDominantHand(reader *bufio.Reader) string {
	fmt.Fprintln(w.Out, "Step 1: Which is your dominant hand?")
	fmt.Fprint(w.Out, "  Enter 'left' or 'right' [right]: ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(w.Out, "  Dominant hand: right")
		return "right"
	}

	hand := "right"
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "left", "l":
		hand = "left"
	}

	fmt.Fprintf(w.Out, "  Dominant hand: %s\n\n", hand)
	return hand
}

func (w *Wizard) assessLighting(res *Result) {
	fmt.Fprintln(w.Out, "Step 2: Assessing lighting conditions...")
	fmt.Fprintln(w.Out, "  (Show your hand to the camera)")
	fmt.Fprintln(w.Out)

	if w.Camera == nil {
		fmt.Fprintln(w.Out, "  Could not capture frame. Skipping lighting check.")
		res.Lighting = LightingUnknown
		return
	}

	frame, err := w.Camera.ReadFrame()
	if err != nil {
		fmt.Fprintln(w.Out, "  Could not capture frame. Skipping lighting check.")
		res.Lighting = LightingUnknown
		return
	}
	defer frame.Close()

	res.LightingBaseline = capture.MeanBrightness(frame)
	res.Lighting = ClassifyBrightness(res.LightingBaseline)

	fmt.Fprintf(w.Out, "  Lighting: %s (brightness: %.1f)\n\n", res.Lighting, res.LightingBaseline)
}
