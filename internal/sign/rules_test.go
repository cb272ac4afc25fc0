package sign

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func recognizeRaw(t *testing.T, hand detector.HandLandmarks) Result {
	t.Helper()
	r := NewRecognizer(DefaultSmoothingWindow, DefaultConfidenceThreshold)
	return r.Recognize(&hand, hand.IsRight())
}

func TestClassify_OpenHandIsFive(t *testing.T) {
	res := recognizeRaw(t, detector.OpenHandLandmarks())

	if res.Sign != Five {
		t.Errorf("open hand = %v, want %v", res.Sign, Five)
	}
	if res.Confidence != 0.95 {
		t.Errorf("confidence = %f, want the rule's literal 0.95", res.Confidence)
	}
}

func TestClassify_FistIsA(t *testing.T) {
	res := recognizeRaw(t, detector.FistLandmarks())

	if res.Sign != A {
		t.Errorf("fist with thumb alongside = %v, want %v", res.Sign, A)
	}
	if res.Confidence != 0.92 {
		t.Errorf("confidence = %f, want 0.92", res.Confidence)
	}
}

func TestClassify_PointingIsOne(t *testing.T) {
	res := recognizeRaw(t, detector.PointingLandmarks())

	if res.Sign != One {
		t.Errorf("index-only hand = %v, want %v", res.Sign, One)
	}
	if res.Confidence != 0.95 {
		t.Errorf("confidence = %f, want 0.95", res.Confidence)
	}
}

// The "01100" pattern is shared by TWO/V, R, and U; the table must resolve
// it by separation thresholds in fixed priority order.
func TestClassify_IndexMiddlePriority(t *testing.T) {
	t.Run("wide separation fires TWO before V", func(t *testing.T) {
		// Victory fixture separation is ~0.89, above both the TWO (>0.5)
		// and V (>0.4) guards. TWO sits earlier in the table and must win.
		res := recognizeRaw(t, detector.VictoryLandmarks())
		if res.Sign != Two {
			t.Errorf("wide V-shape = %v, want %v (TWO rule fires first)", res.Sign, Two)
		}
		if res.Confidence != 0.94 {
			t.Errorf("confidence = %f, want 0.94", res.Confidence)
		}
	})

	t.Run("moderate separation falls through to V", func(t *testing.T) {
		// Separation ~0.41: too narrow for TWO, too wide for R and U.
		hand := detector.VictoryLandmarks()
		hand.Points[detector.MiddlePIP] = detector.Point3D{X: 0.50, Y: 0.42}
		hand.Points[detector.MiddleTip] = detector.Point3D{X: 0.52, Y: 0.24}

		res := recognizeRaw(t, hand)
		if res.Sign != V {
			t.Errorf("moderate separation = %v, want %v", res.Sign, V)
		}
	})

	t.Run("tight separation fires R before U", func(t *testing.T) {
		// Separation ~0.15, under the R guard (<0.2) which precedes U (<0.3).
		hand := detector.VictoryLandmarks()
		hand.Points[detector.MiddlePIP] = detector.Point3D{X: 0.54, Y: 0.42}
		hand.Points[detector.MiddleTip] = detector.Point3D{X: 0.56, Y: 0.24}

		res := recognizeRaw(t, hand)
		if res.Sign != R {
			t.Errorf("crossed fingers = %v, want %v (R rule precedes U)", res.Sign, R)
		}
	})

	t.Run("together separation fires U", func(t *testing.T) {
		// Separation ~0.24: past the R guard, inside the U guard.
		hand := detector.VictoryLandmarks()
		hand.Points[detector.MiddlePIP] = detector.Point3D{X: 0.52, Y: 0.42}
		hand.Points[detector.MiddleTip] = detector.Point3D{X: 0.545, Y: 0.24}

		res := recognizeRaw(t, hand)
		if res.Sign != U {
			t.Errorf("fingers together = %v, want %v", res.Sign, U)
		}
	})
}

func TestClassify_HangLooseIsY(t *testing.T) {
	hand := detector.FistLandmarks()
	// Extend thumb and pinky, keep the rest curled.
	hand.Points[detector.ThumbIP] = detector.Point3D{X: 0.62, Y: 0.74}
	hand.Points[detector.ThumbTip] = detector.Point3D{X: 0.70, Y: 0.70}
	hand.Points[detector.PinkyPIP] = detector.Point3D{X: 0.38, Y: 0.55}
	hand.Points[detector.PinkyTip] = detector.Point3D{X: 0.35, Y: 0.40}

	res := recognizeRaw(t, hand)
	if res.Sign != Y {
		t.Errorf("thumb+pinky hand = %v, want %v", res.Sign, Y)
	}
	if res.Confidence != 0.95 {
		t.Errorf("confidence = %f, want 0.95", res.Confidence)
	}
}

func TestClassify_NoMatchIsUnknown(t *testing.T) {
	// Ring finger alone matches no rule; that is a valid outcome, not an
	// error.
	hand := detector.FistLandmarks()
	hand.Points[detector.RingPIP] = detector.Point3D{X: 0.45, Y: 0.55}
	hand.Points[detector.RingTip] = detector.Point3D{X: 0.44, Y: 0.40}

	res := recognizeRaw(t, hand)
	if res.Sign != Unknown {
		t.Errorf("ring-only hand = %v, want %v", res.Sign, Unknown)
	}
	if res.Confidence != 0.5 {
		t.Errorf("unknown confidence = %f, want 0.5", res.Confidence)
	}
}

func TestClassify_FiveRequiresPalmFacing(t *testing.T) {
	// An open hand seen side-on (spread fingertip depths) fails the FIVE
	// guard and nothing else accepts "11111".
	hand := detector.OpenHandLandmarks()
	hand.Points[detector.IndexTip].Z = 0.0
	hand.Points[detector.MiddleTip].Z = 0.1
	hand.Points[detector.RingTip].Z = 0.2
	hand.Points[detector.PinkyTip].Z = 0.3

	res := recognizeRaw(t, hand)
	if res.Sign != Unknown {
		t.Errorf("side-on open hand = %v, want %v", res.Sign, Unknown)
	}
}
