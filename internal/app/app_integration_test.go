package app

import (
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/sign"
)

func newTestApp(t *testing.T, config Config, hands []detector.HandLandmarks) *App {
	t.Helper()

	a := New(config)

	mock := detector.NewMockDetector()
	mock.SetHands(hands)
	a.SetDetector(mock)

	return a
}

func TestApp_ProcessFrame_RecognizesOpenHand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := newTestApp(t, Config{}, []detector.HandLandmarks{detector.OpenHandLandmarks()})

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	// Fill the smoothing window with the same pose
	var res sign.Result
	for i := 0; i < sign.DefaultSmoothingWindow; i++ {
		var err error
		res, _, err = a.processFrame(&frame, int64(i*33))
		if err != nil {
			t.Fatalf("processFrame error: %v", err)
		}
	}

	if res.Sign != sign.Five {
		t.Errorf("expected open hand to recognize as %s, got %s", sign.Five, res.Sign)
	}
	if res.Confidence < 0.9 {
		t.Errorf("expected high confidence for open hand, got %.2f", res.Confidence)
	}
}

func TestApp_ProcessFrame_HandsLostResetsHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := newTestApp(t, Config{}, []detector.HandLandmarks{detector.OpenHandLandmarks()})

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	for i := 0; i < sign.DefaultSmoothingWindow; i++ {
		a.processFrame(&frame, int64(i*33))
	}

	// Drop the hand for long enough to reset
	mock := detector.NewMockDetector()
	mock.SetHands(nil)
	a.SetDetector(mock)

	var res sign.Result
	for i := 0; i < HandsLostResetFrames; i++ {
		res, _, _ = a.processFrame(&frame, 0)
	}

	if res.Sign != sign.Unknown {
		t.Errorf("expected %s after hands lost, got %s", sign.Unknown, res.Sign)
	}
}

func TestApp_ProcessFrame_SpellModeHoldsAndCommits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := newTestApp(t, Config{SpellMode: true},
		[]detector.HandLandmarks{detector.FistLandmarks()})

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	// Hold the fist past the hold requirement
	for i := 0; i < sign.DefaultHoldFrames+sign.DefaultSmoothingWindow+2; i++ {
		a.processFrame(&frame, int64(i*33))
	}

	pending, ok := a.speller.Pending()
	if !ok {
		t.Fatal("expected a pending letter after holding the pose")
	}
	if pending != sign.A {
		t.Errorf("expected pending letter %s, got %s", sign.A, pending)
	}

	if !a.speller.Commit() {
		t.Fatal("commit should succeed with a pending letter")
	}
	if got := a.speller.WordString(); got != "A" {
		t.Errorf("expected word %q, got %q", "A", got)
	}
}

func TestApp_RecognitionStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := newTestApp(t, Config{SpellMode: true},
		[]detector.HandLandmarks{detector.OpenHandLandmarks()})

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	for i := 0; i < sign.DefaultSmoothingWindow; i++ {
		a.processFrame(&frame, int64(i*33))
	}

	status := a.RecognitionStatus()
	if status.Sign != sign.Five.String() {
		t.Errorf("expected status sign %s, got %s", sign.Five, status.Sign)
	}
	if !status.Enabled {
		t.Error("expected recognition to be enabled by default")
	}
}

func TestApp_OnSignChange_NotifiesOnChangeOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := newTestApp(t, Config{}, []detector.HandLandmarks{detector.OpenHandLandmarks()})

	var seen []sign.Result
	a.OnSignChange(func(res sign.Result) {
		seen = append(seen, res)
	})

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	for i := 0; i < sign.DefaultSmoothingWindow; i++ {
		a.processFrame(&frame, int64(i*33))
	}

	if len(seen) != 1 {
		t.Fatalf("expected exactly 1 notification for a steady pose, got %d", len(seen))
	}
	if seen[0].Sign != sign.Five {
		t.Errorf("notified sign = %s, want %s", seen[0].Sign, sign.Five)
	}
}

func TestApp_RunInteractive_QuitStopsHeadlessLoop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := newTestApp(t, Config{NoVideo: true},
		[]detector.HandLandmarks{detector.OpenHandLandmarks()})

	img := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer img.Close()
	camera := capture.NewMockCamera([]*gocv.Mat{&img}, true)
	a.SetCamera(camera)

	done := make(chan error, 1)
	go func() {
		done <- a.RunInteractive()
	}()

	a.Quit()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunInteractive returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunInteractive did not exit after Quit in headless mode")
	}

	if camera.IsOpen() {
		t.Error("expected the camera to be closed on exit")
	}
}

func TestApp_SetEnabled(t *testing.T) {
	a := New(Config{})

	if !a.IsEnabled() {
		t.Error("expected recognition enabled by default")
	}

	a.SetEnabled(false)
	if a.IsEnabled() {
		t.Error("expected recognition disabled after SetEnabled(false)")
	}
}
