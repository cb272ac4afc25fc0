// Package detector provides hand detection interfaces and the 21-point
// landmark model used for sign recognition.
package detector

import "fmt"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point with normalized image coordinates.
// X and Y are in [0, 1] relative to the frame; Z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks of one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// IsRight reports whether the hand was labelled as a right hand.
func (h *HandLandmarks) IsRight() bool {
	return h.Handedness == "Right"
}

// LandmarksFromSlice builds HandLandmarks from a raw point slice.
// It returns an error unless exactly NumLandmarks points are given, so a
// malformed detection fails here rather than producing bogus geometry
// downstream.
func LandmarksFromSlice(points []Point3D, handedness string, score float64) (*HandLandmarks, error) {
	if len(points) != NumLandmarks {
		return nil, fmt.Errorf("expected %d landmarks, got %d", NumLandmarks, len(points))
	}

	h := &HandLandmarks{
		Handedness: handedness,
		Score:      score,
	}
	copy(h.Points[:], points)
	return h, nil
}
