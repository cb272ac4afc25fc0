package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/sign"
)

// Key codes returned by gocv.Window.WaitKey.
const (
	keyEsc       = 27
	keyBackspace = 8
	keyEnter     = 13
)

// RunInteractive opens the camera and a preview window and runs the
// recognition loop until ESC or 'q' is pressed, an interrupt arrives, or
// Quit is called. Without a window (--no-video) the signal and Quit paths
// are the only way out, so they are checked between frames. In spell mode
// SPACE commits the pending letter, BACKSPACE deletes the last one, ENTER
// clears the word, and 's' saves the word as a transcript.
func (a *App) RunInteractive() error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("failed to open camera: %w", err)
	}
	defer a.camera.Close()
	defer a.detector.Close()

	var window *gocv.Window
	if !a.config.NoVideo {
		window = gocv.NewWindow("mudra")
		defer window.Close()
	}

	var writer *gocv.VideoWriter
	if a.config.RecordPath != "" && !a.config.NoVideo {
		w, err := gocv.VideoWriterFile(a.config.RecordPath, "mp4v", 30,
			a.config.Width, a.config.Height, true)
		if err != nil {
			return fmt.Errorf("failed to open recording %s: %w", a.config.RecordPath, err)
		}
		writer = w
		defer writer.Close()
		log.Printf("Recording to %s", a.config.RecordPath)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-sigCh:
			log.Println("Interrupted, shutting down")
			return nil
		case <-a.quitCh:
			return nil
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			log.Printf("Error reading frame: %v", err)
			continue
		}

		res, hands, err := a.processFrame(frame, nowMillis())
		if err != nil {
			log.Printf("Error detecting hands: %v", err)
		}

		a.hud.ApplyFocusDim(frame)
		a.hud.DrawLandmarks(frame, hands, !a.config.FocusMode)
		if res.Sign != sign.Unknown && res.Confidence >= a.config.Confidence {
			a.hud.DrawSign(frame, &res)
		}
		if a.config.SpellMode {
			pending, hasPending := a.speller.Pending()
			a.hud.DrawWord(frame, a.speller.Word(), pending, hasPending)
		}
		a.hud.DrawWatermark(frame)

		if writer != nil {
			writer.Write(*frame)
		}

		if a.config.NoVideo {
			frame.Close()
			continue
		}

		window.IMShow(*frame)
		frame.Close()

		key := window.WaitKey(1)
		if key == keyEsc || key == 'q' {
			break
		}
		if !a.config.SpellMode {
			continue
		}

		switch key {
		case ' ':
			a.speller.Commit()
		case keyBackspace:
			a.speller.DeleteLast()
		case keyEnter:
			a.speller.Clear()
		case 's':
			a.saveTranscript()
		}
	}

	return nil
}

// saveTranscript persists the current word to the store and clears it.
func (a *App) saveTranscript() {
	word := a.speller.WordString()
	if word == "" || a.config.Store == nil {
		return
	}

	t, err := a.config.Store.Transcripts().Create(word)
	if err != nil {
		log.Printf("Failed to save transcript: %v", err)
		return
	}

	log.Printf("Saved transcript %s: %s", t.ID, t.Word)
	a.speller.Clear()
}
