package sign

import "github.com/ayusman/mudra/internal/detector"

// Extension margins in normalized image units. A fingertip must clear its
// reference joint by at least this much before the finger counts as
// extended, which keeps half-curled fingers from flickering between states.
const (
	fingerExtendMargin = 0.03
	thumbExtendMargin  = 0.04
)

// FingerState records which of the five fingers are extended.
type FingerState struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool
}

// Count returns the number of extended fingers (0-5).
func (f FingerState) Count() int {
	n := 0
	for _, up := range [5]bool{f.Thumb, f.Index, f.Middle, f.Ring, f.Pinky} {
		if up {
			n++
		}
	}
	return n
}

// Pattern returns the state as a fixed-order bit string, thumb first:
// "10001" means thumb and pinky extended. Used as the rule-table key.
func (f FingerState) Pattern() string {
	bits := make([]byte, 0, 5)
	for _, up := range [5]bool{f.Thumb, f.Index, f.Middle, f.Ring, f.Pinky} {
		if up {
			bits = append(bits, '1')
		} else {
			bits = append(bits, '0')
		}
	}
	return string(bits)
}

// DetectFingers determines which fingers are extended.
//
// The four non-thumb fingers are extended when the tip sits above the PIP
// joint (smaller y is higher in image space). The thumb abducts sideways,
// so it is judged by the horizontal offset between tip and IP joint, with
// the comparison direction flipped for a left hand.
//
// Pure function of its inputs; any well-formed landmark set yields a valid
// state.
func DetectFingers(h *detector.HandLandmarks, rightHand bool) FingerState {
	p := &h.Points

	indexUp := p[detector.IndexTip].Y < p[detector.IndexPIP].Y-fingerExtendMargin
	middleUp := p[detector.MiddleTip].Y < p[detector.MiddlePIP].Y-fingerExtendMargin
	ringUp := p[detector.RingTip].Y < p[detector.RingPIP].Y-fingerExtendMargin
	pinkyUp := p[detector.PinkyTip].Y < p[detector.PinkyPIP].Y-fingerExtendMargin

	thumbTipX := p[detector.ThumbTip].X
	thumbIPX := p[detector.ThumbIP].X

	var thumbUp bool
	if rightHand {
		thumbUp = thumbTipX > thumbIPX+thumbExtendMargin
	} else {
		thumbUp = thumbTipX < thumbIPX-thumbExtendMargin
	}

	return FingerState{
		Thumb:  thumbUp,
		Index:  indexUp,
		Middle: middleUp,
		Ring:   ringUp,
		Pinky:  pinkyUp,
	}
}
