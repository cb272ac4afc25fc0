package sign

// unknownConfidence is reported when no rule matches.
const unknownConfidence = 0.5

// rule is one guard in the classification table. A rule fires when the
// finger pattern matches (an empty pattern matches any) and the optional
// feature guard holds. Confidence is a fixed per-rule score, not a
// calibrated probability.
type rule struct {
	pattern    string
	when       func(s FingerState, f Features) bool
	sign       Sign
	confidence float64
}

// rules is evaluated front to back and the first match wins, so order is
// load-bearing: specific guards must stay ahead of broader ones that share
// a pattern. Do not reorder.
var rules = []rule{
	// Numbers
	{"11111", func(s FingerState, f Features) bool { return f.PalmFacingCamera > 0.6 }, Five, 0.95},
	{"01111", func(s FingerState, f Features) bool { return f.ThumbAcrossPalm < 0.3 }, Four, 0.93},
	{"01110", nil, Three, 0.92},
	{"01100", func(s FingerState, f Features) bool { return f.IndexMiddleSep > 0.5 }, Two, 0.94},
	{"01000", nil, One, 0.95},
	{"00000", func(s FingerState, f Features) bool { return f.ThumbAcrossPalm < 0.4 }, Zero, 0.90},

	// Letters
	// A - closed fist with thumb alongside
	{"00000", func(s FingerState, f Features) bool { return f.ThumbAcrossPalm < 0.5 && f.ThumbOut < 0.4 }, A, 0.92},
	// B - flat hand, thumb across palm
	{"01111", func(s FingerState, f Features) bool { return f.ThumbAcrossPalm > 0.7 }, B, 0.93},
	// C - curved hand
	{"", func(s FingerState, f Features) bool {
		return s.Count() == 0 && f.IndexCurl < 0.6 && f.PalmFacingCamera > 0.5
	}, C, 0.88},
	// D - index up, others curled forming O with thumb
	{"01000", func(s FingerState, f Features) bool { return f.ThumbOut < 0.5 }, D, 0.90},
	// E - all fingers curled, thumb across
	{"00000", func(s FingerState, f Features) bool { return f.ThumbAcrossPalm > 0.6 }, E, 0.89},
	// F - index+middle making circle with thumb, others up
	{"00111", nil, F, 0.87},
	// L - index+thumb extended forming L
	{"11000", func(s FingerState, f Features) bool { return f.IndexMiddleSep < 0.3 }, L, 0.93},
	// O - fingers forming circle
	{"", func(s FingerState, f Features) bool { return s.Count() == 0 && f.IndexCurl > 0.6 }, O, 0.88},
	// R - index+middle crossed
	{"01100", func(s FingerState, f Features) bool { return f.IndexMiddleSep < 0.2 }, R, 0.90},
	// S - closed fist, thumb over fingers
	{"00000", func(s FingerState, f Features) bool { return f.ThumbAcrossPalm > 0.8 }, S, 0.91},
	// T - thumb between index+middle
	{"00000", func(s FingerState, f Features) bool { return f.ThumbAcrossPalm > 0.5 && f.ThumbOut < 0.3 }, T, 0.89},
	// U - index+middle together, up
	{"01100", func(s FingerState, f Features) bool { return f.IndexMiddleSep < 0.3 }, U, 0.91},
	// V - index+middle separated
	{"01100", func(s FingerState, f Features) bool { return f.IndexMiddleSep > 0.4 }, V, 0.94},
	// W - index+middle+ring up
	{"01110", nil, W, 0.92},
	// Y - thumb+pinky extended (hang loose)
	{"10001", nil, Y, 0.95},
	// I - pinky extended
	{"00001", nil, I, 0.93},
}

// classify maps a finger state and feature set to a sign. Exhausting the
// table is not an error; it yields (Unknown, 0.5).
func classify(state FingerState, f Features) (Sign, float64) {
	pattern := state.Pattern()

	for _, r := range rules {
		if r.pattern != "" && r.pattern != pattern {
			continue
		}
		if r.when != nil && !r.when(state, f) {
			continue
		}
		return r.sign, r.confidence
	}

	return Unknown, unknownConfidence
}
