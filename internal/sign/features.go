package sign

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Normalization constants for feature computation, tuned against the
// normalized [0, 1] landmark coordinate space.
const (
	// separationScale maps fingertip distances into [0, 1].
	separationScale = 0.15
	// degenerateEps floors ratio features whose denominator collapses.
	degenerateEps = 0.01
	// depthVarianceScale maps fingertip z-variance into [0, 1].
	depthVarianceScale = 0.01
)

// Features holds the continuous geometric scores used by the rule table.
// Every field is clamped to [0, 1].
type Features struct {
	IndexCurl  float64
	MiddleCurl float64
	RingCurl   float64
	PinkyCurl  float64

	ThumbAcrossPalm float64
	ThumbOut        float64

	IndexMiddleSep float64
	MiddleRingSep  float64
	RingPinkySep   float64

	PalmFacingCamera float64
}

// ExtractFeatures computes all geometric features for one hand.
func ExtractFeatures(h *detector.HandLandmarks) Features {
	return Features{
		IndexCurl:  fingerCurl(h, detector.IndexTip, detector.IndexPIP, detector.IndexMCP),
		MiddleCurl: fingerCurl(h, detector.MiddleTip, detector.MiddlePIP, detector.MiddleMCP),
		RingCurl:   fingerCurl(h, detector.RingTip, detector.RingPIP, detector.RingMCP),
		PinkyCurl:  fingerCurl(h, detector.PinkyTip, detector.PinkyPIP, detector.PinkyMCP),

		ThumbAcrossPalm: thumbAcrossPalm(h),
		ThumbOut:        thumbOut(h),

		IndexMiddleSep: separation(h, detector.IndexTip, detector.MiddleTip),
		MiddleRingSep:  separation(h, detector.MiddleTip, detector.RingTip),
		RingPinkySep:   separation(h, detector.RingTip, detector.PinkyTip),

		PalmFacingCamera: palmOrientation(h),
	}
}

// fingerCurl measures how folded a finger is, independent of hand size:
// 0 is straight, 1 is fully curled. A collapsed PIP-MCP segment yields 0.
func fingerCurl(h *detector.HandLandmarks, tip, pip, mcp int) float64 {
	tipToMCP := planarDistance(h.Points[tip], h.Points[mcp])
	pipToMCP := planarDistance(h.Points[pip], h.Points[mcp])

	if pipToMCP < degenerateEps {
		return 0.0
	}

	return clamp01(1.0 - tipToMCP/(pipToMCP*2.0))
}

// thumbAcrossPalm is high when the thumb tip sits near the palm's
// horizontal midline (A, S, T and similar closed-hand letters).
func thumbAcrossPalm(h *detector.HandLandmarks) float64 {
	palmMidX := (h.Points[detector.IndexMCP].X + h.Points[detector.PinkyMCP].X) / 2
	distance := math.Abs(h.Points[detector.ThumbTip].X - palmMidX)

	return 1.0 - clamp01(distance/separationScale)
}

// thumbOut measures how far the thumb reaches relative to the palm width.
// A collapsed baseline yields 0.
func thumbOut(h *detector.HandLandmarks) float64 {
	thumbExt := planarDistance(h.Points[detector.ThumbTip], h.Points[detector.ThumbMCP])
	baseline := planarDistance(h.Points[detector.IndexMCP], h.Points[detector.ThumbMCP])

	if baseline < degenerateEps {
		return 0.0
	}

	return clamp01(thumbExt / baseline)
}

// separation measures the distance between two fingertips.
func separation(h *detector.HandLandmarks, tipA, tipB int) float64 {
	return clamp01(planarDistance(h.Points[tipA], h.Points[tipB]) / separationScale)
}

// palmOrientation estimates whether the palm faces the camera: 0 is
// side-on, 1 is front-on. Low depth variance across the four non-thumb
// fingertips means they lie in a plane roughly parallel to the sensor.
func palmOrientation(h *detector.HandLandmarks) float64 {
	tips := [4]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}

	var mean float64
	for _, i := range tips {
		mean += h.Points[i].Z
	}
	mean /= 4

	var variance float64
	for _, i := range tips {
		d := h.Points[i].Z - mean
		variance += d * d
	}
	variance /= 4

	return 1.0 - clamp01(variance/depthVarianceScale)
}

// planarDistance is the Euclidean distance in the image plane, ignoring
// depth.
func planarDistance(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
