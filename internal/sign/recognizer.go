package sign

import "github.com/ayusman/mudra/internal/detector"

// Defaults for recognizer construction.
const (
	DefaultSmoothingWindow     = 7
	DefaultConfidenceThreshold = 0.75
)

// minHistoryForVote is the history length below which Observe passes raw
// results through instead of voting.
const minHistoryForVote = 3

// Result is one frame's classification.
type Result struct {
	Sign       Sign    `json:"sign"`
	Confidence float64 `json:"confidence"`
}

// Recognizer classifies hand landmarks into ASL signs with temporal
// smoothing. It is not safe for concurrent use; each recognition loop owns
// its own instance.
type Recognizer struct {
	window    int
	threshold float64
	history   []Result
}

// NewRecognizer creates a Recognizer with the given smoothing window and
// confidence threshold. Windows below 1 are raised to 1.
func NewRecognizer(window int, threshold float64) *Recognizer {
	if window < 1 {
		window = 1
	}
	return &Recognizer{
		window:    window,
		threshold: threshold,
		history:   make([]Result, 0, window),
	}
}

// Recognize classifies a single frame's landmarks with no smoothing.
func (r *Recognizer) Recognize(h *detector.HandLandmarks, rightHand bool) Result {
	state := DetectFingers(h, rightHand)
	features := ExtractFeatures(h)

	s, conf := classify(state, features)
	return Result{Sign: s, Confidence: conf}
}

// Observe classifies a frame and applies temporal smoothing over the recent
// history: with at least three observations, the sign with the highest tally
// among confident entries wins (ties go to the earliest observed), paired
// with the current frame's raw confidence. The label is stabilized, the
// score is not.
func (r *Recognizer) Observe(h *detector.HandLandmarks, rightHand bool) Result {
	current := r.Recognize(h, rightHand)

	if len(r.history) >= r.window {
		r.history = append(r.history[:0], r.history[1:]...)
		r.history = r.history[:r.window-1]
	}
	r.history = append(r.history, current)

	if len(r.history) < minHistoryForVote {
		return current
	}

	counts := make(map[Sign]int)
	for _, entry := range r.history {
		if entry.Confidence >= r.threshold {
			counts[entry.Sign]++
		}
	}

	if len(counts) == 0 {
		return current
	}

	var best Sign
	bestCount := 0
	for _, entry := range r.history {
		if entry.Confidence < r.threshold {
			continue
		}
		if counts[entry.Sign] > bestCount {
			best = entry.Sign
			bestCount = counts[entry.Sign]
		}
	}

	return Result{Sign: best, Confidence: current.Confidence}
}

// Reset clears the smoothing history. Call it when the tracked hand or
// session changes so stale observations cannot leak across.
func (r *Recognizer) Reset() {
	r.history = r.history[:0]
}

// Window returns the configured smoothing window.
func (r *Recognizer) Window() int {
	return r.window
}

// Threshold returns the configured confidence threshold.
func (r *Recognizer) Threshold() float64 {
	return r.threshold
}
