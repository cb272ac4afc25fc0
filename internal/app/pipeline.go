package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/sign"
)

// runPipeline is the headless recognition loop used in serve mode. It
// manages the transitions between idle and active frame rates based on
// motion detection:
//
// 1. Start in idle mode (IdleFPS)
// 2. On motion detected, switch to active mode (ActiveFPS)
// 3. Run hand detection and sign recognition on active frames
// 4. After 2s without motion, switch back to idle mode
func (a *App) runPipeline() {
	activeMode := false
	lastMotionTime := time.Now()
	lastLogged := sign.Unknown

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			// Skip processing if recognition is disabled
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					a.mu.Lock()
					a.recognizer.Reset()
					a.tracer.Reset()
					a.mu.Unlock()
					log.Println("Switched to idle mode")
				}
			}

			// Skip recognition while idle
			if !activeMode {
				frame.Close()
				continue
			}

			res, hands, err := a.processFrame(frame, nowMillis())
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			if len(hands) > 0 && res.Sign != lastLogged {
				lastLogged = res.Sign
				log.Printf("Recognized %s (confidence: %.2f)", res.Sign, res.Confidence)
			}
		}
	}
}
