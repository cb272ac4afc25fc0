package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// OpenHandLandmarks returns a preset right hand with all five fingers
// extended and every fingertip at the same depth (palm facing the camera).
func OpenHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.90, Z: 0.0}

	// Thumb abducted well past its IP joint
	landmarks.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.85, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.80, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.66, Y: 0.72, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.72, Y: 0.65, Z: 0.0}

	// Index finger extended upward
	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.60, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.35, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.57, Y: 0.25, Z: 0.0}

	// Middle finger extended upward
	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.58, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.42, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.30, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.20, Z: 0.0}

	// Ring finger extended upward
	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.60, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.44, Y: 0.45, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.43, Y: 0.34, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.43, Y: 0.25, Z: 0.0}

	// Pinky finger extended upward
	landmarks.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.62, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.50, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.42, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.36, Y: 0.35, Z: 0.0}

	return landmarks
}

// FistLandmarks returns a preset right hand closed into a fist with the
// thumb resting alongside the fingers, near the edge of the palm.
func FistLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.90, Z: 0.0}

	// Thumb folded toward the palm, tip close to its MCP
	landmarks.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.82, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.75, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.55, Y: 0.71, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.56, Y: 0.73, Z: 0.0}

	// Index finger curled, tip below its PIP
	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.65, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.60, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.55, Y: 0.64, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.55, Y: 0.72, Z: 0.0}

	// Middle finger curled
	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.64, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.59, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.63, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.71, Z: 0.0}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.65, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.45, Y: 0.60, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.45, Y: 0.64, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.45, Y: 0.72, Z: 0.0}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.66, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.62, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.41, Y: 0.65, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.41, Y: 0.72, Z: 0.0}

	return landmarks
}

// PointingLandmarks returns a preset right hand with only the index finger
// extended, the rest curled into the palm.
func PointingLandmarks() HandLandmarks {
	landmarks := FistLandmarks()

	landmarks.Points[IndexMCP] = Point3D{X: 0.54, Y: 0.60, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.56, Y: 0.34, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.56, Y: 0.25, Z: 0.0}

	return landmarks
}

// VictoryLandmarks returns a preset right hand with index and middle fingers
// extended and spread wide apart.
func VictoryLandmarks() HandLandmarks {
	landmarks := FistLandmarks()

	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.60, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.34, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.58, Y: 0.25, Z: 0.0}

	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.58, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.48, Y: 0.42, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.46, Y: 0.30, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.45, Y: 0.22, Z: 0.0}

	return landmarks
}
