// Package app provides the main application logic for the Mudra sign recognition system.
package app

import (
	"log"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/overlay"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/sign"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
	// HandsLostResetFrames is how many consecutive frames without a hand
	// pass before the smoothing history is dropped (~1s at 30fps).
	HandsLostResetFrames = 30
)

// Config holds configuration options for the application.
type Config struct {
	Store         *store.Store
	Device        int
	Width         int
	Height        int
	Detector      detector.Config
	Confidence    float64
	Smoothing     int
	HoldFrames    int
	SpellMode     bool
	FocusMode     bool
	ShowWatermark bool
	NoVideo       bool
	RecordPath    string
	MotionThresh  float64
}

// App orchestrates the capture, detection, and recognition pipeline.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	recognizer *sign.Recognizer
	speller    *sign.Speller
	tracer     *sign.TraceMatcher
	hud        *overlay.Overlay

	enabled   bool
	mu        sync.RWMutex
	stopCh    chan struct{}
	last      sign.Result
	handsLost int

	onSign       func(sign.Result)
	lastNotified sign.Sign

	quitCh   chan struct{}
	quitOnce sync.Once
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.Confidence <= 0 {
		config.Confidence = sign.DefaultConfidenceThreshold
	}
	if config.Smoothing <= 0 {
		config.Smoothing = sign.DefaultSmoothingWindow
	}
	if config.HoldFrames <= 0 {
		config.HoldFrames = sign.DefaultHoldFrames
	}
	if config.MotionThresh <= 0 {
		config.MotionThresh = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:       config,
		camera:       capture.NewCamera(config.Device, config.Width, config.Height),
		motion:       capture.NewMotionDetector(config.MotionThresh),
		recognizer:   sign.NewRecognizer(config.Smoothing, config.Confidence),
		speller:      sign.NewSpeller(config.Confidence, config.HoldFrames),
		tracer:       sign.NewTraceMatcher(),
		hud:          overlay.New(config.FocusMode, config.ShowWatermark),
		enabled:      true,
		last:         sign.Result{Sign: sign.Unknown, Confidence: 0},
		lastNotified: sign.Unknown,
		quitCh:       make(chan struct{}),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables sign recognition.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether sign recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// OnSignChange registers a callback invoked whenever the stabilized sign
// changes. It runs on the recognition loop's goroutine, so keep it cheap.
func (a *App) OnSignChange(fn func(sign.Result)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onSign = fn
}

// Quit asks a running interactive loop to exit after the current frame.
// Safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quitCh) })
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Speller returns the spelling state machine.
func (a *App) Speller() *sign.Speller {
	return a.speller
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// processFrame runs one frame through detection, recognition, and the
// spelling state machine, and returns the smoothed result plus the hands
// found. A frame with no hands decays toward Unknown: after
// HandsLostResetFrames consecutive empty frames the smoothing history and
// any in-flight motion trace are dropped.
func (a *App) processFrame(frame *gocv.Mat, nowMs int64) (sign.Result, []detector.HandLandmarks, error) {
	hands, err := a.Detector().Detect(frame)
	if err != nil {
		return a.lastResult(), nil, err
	}

	if len(hands) == 0 {
		a.mu.Lock()
		a.handsLost++
		if a.handsLost >= HandsLostResetFrames {
			a.recognizer.Reset()
			a.tracer.Reset()
			a.last = sign.Result{Sign: sign.Unknown, Confidence: 0}
		}
		res := a.last
		a.mu.Unlock()
		return res, nil, nil
	}

	// First hand only; a second hand in frame is ignored.
	hand := &hands[0]

	a.mu.Lock()
	a.handsLost = 0
	res := a.recognizer.Observe(hand, hand.IsRight())
	a.last = res

	if a.config.SpellMode {
		a.speller.Update(res)
		if traced, ok := a.tracer.Observe(hand, res.Sign, nowMs); ok {
			a.speller.Append(traced)
		}
	}

	var notify func(sign.Result)
	if res.Sign != a.lastNotified {
		a.lastNotified = res.Sign
		notify = a.onSign
	}
	a.mu.Unlock()

	// Outside the lock so a slow callback cannot stall recognition state
	if notify != nil {
		notify(res)
	}

	return res, hands, nil
}

func (a *App) lastResult() sign.Result {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.last
}

// RecognitionStatus returns a snapshot of the live recognition state for
// the server's WebSocket feed.
func (a *App) RecognitionStatus() server.RecognitionStatus {
	a.mu.RLock()
	last := a.last
	enabled := a.enabled
	letters := a.speller.Word()
	a.mu.RUnlock()

	var word []string
	for _, s := range letters {
		word = append(word, s.String())
	}

	return server.RecognitionStatus{
		Sign:       last.Sign.String(),
		Confidence: last.Confidence,
		Word:       word,
		Enabled:    enabled,
	}
}

// Start opens the camera and begins the headless recognition pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	// Start in idle mode
	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Recognition pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Recognition pipeline stopped")
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
