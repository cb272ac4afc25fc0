package sign

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestDTWDistance_EmptyPath(t *testing.T) {
	path := []PathPoint{{X: 0, Y: 0}, {X: 1, Y: 1}}

	if d := DTWDistance(nil, path); !math.IsInf(d, 1) {
		t.Errorf("distance with empty first path = %f, want +Inf", d)
	}
	if d := DTWDistance(path, nil); !math.IsInf(d, 1) {
		t.Errorf("distance with empty second path = %f, want +Inf", d)
	}
}

func TestDTWDistance_IdenticalPaths(t *testing.T) {
	path := interpolateStroke([][2]float64{{0, 0}, {1, 0}, {1, 1}}, 6)

	if d := DTWDistance(path, path); d != 0 {
		t.Errorf("distance between identical paths = %f, want 0", d)
	}
}

func TestDTWDistance_DifferentSpeeds(t *testing.T) {
	// The same stroke sampled at different densities should stay close.
	slow := interpolateStroke([][2]float64{{0, 0}, {1, 0}, {1, 1}}, 12)
	fast := interpolateStroke([][2]float64{{0, 0}, {1, 0}, {1, 1}}, 4)

	if d := DTWDistance(slow, fast); d > 0.1 {
		t.Errorf("distance between resampled strokes = %f, want < 0.1", d)
	}
}

func TestNormalizePath_ScalesToUnit(t *testing.T) {
	path := []PathPoint{
		{X: 0.2, Y: 0.4, Timestamp: 1},
		{X: 0.3, Y: 0.5, Timestamp: 2},
		{X: 0.4, Y: 0.6, Timestamp: 3},
	}

	norm := normalizePath(path)
	if len(norm) != 3 {
		t.Fatalf("normalized length = %d, want 3", len(norm))
	}
	if norm[0].X != 0 || norm[0].Y != 0 {
		t.Errorf("first point = (%f, %f), want origin", norm[0].X, norm[0].Y)
	}
	if norm[2].X != 1 || norm[2].Y != 1 {
		t.Errorf("last point = (%f, %f), want (1, 1)", norm[2].X, norm[2].Y)
	}
	if norm[1].Timestamp != 2 {
		t.Error("timestamps must be preserved")
	}
}

func TestNormalizePath_DegenerateAxis(t *testing.T) {
	// A horizontal line has zero y-range; normalization must not divide by
	// zero.
	path := []PathPoint{{X: 0.1, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.9, Y: 0.5}}

	norm := normalizePath(path)
	for i, p := range norm {
		if p.Y != 0 {
			t.Errorf("point %d: y = %f, want 0 for a flat path", i, p.Y)
		}
	}
}

// traceStroke feeds the matcher a fingertip stroke drawn in image
// coordinates while the anchor sign is held, returning the first motion
// letter produced.
func traceStroke(m *TraceMatcher, anchor Sign, tip int, stroke []PathPoint) (Sign, bool) {
	hand := detector.FistLandmarks()
	for i, p := range stroke {
		hand.Points[tip] = detector.Point3D{X: p.X, Y: p.Y}
		if letter, ok := m.Observe(&hand, anchor, int64(i)*33); ok {
			return letter, true
		}
	}
	return Unknown, false
}

// scaleStroke maps a unit-space template into a region of the frame with a
// little sampling jitter, as live fingertip tracking would produce.
func scaleStroke(template []PathPoint, offsetX, offsetY, w, h float64) []PathPoint {
	out := make([]PathPoint, len(template))
	for i, p := range template {
		jitter := 0.004 * float64(i%3-1)
		out[i] = PathPoint{
			X: offsetX + p.X*w + jitter,
			Y: offsetY + p.Y*h - jitter,
		}
	}
	return out
}

func TestTraceMatcher_RecognizesZ(t *testing.T) {
	m := NewTraceMatcher()
	stroke := scaleStroke(zTemplate, 0.3, 0.25, 0.25, 0.3)

	letter, ok := traceStroke(m, One, detector.IndexTip, stroke)
	if !ok {
		t.Fatal("Z stroke with a held 1 handshape was not recognized")
	}
	if letter != Z {
		t.Errorf("letter = %v, want %v", letter, Z)
	}
}

func TestTraceMatcher_RecognizesJ(t *testing.T) {
	m := NewTraceMatcher()
	stroke := scaleStroke(jTemplate, 0.35, 0.3, 0.2, 0.3)

	letter, ok := traceStroke(m, I, detector.PinkyTip, stroke)
	if !ok {
		t.Fatal("J stroke with a held I handshape was not recognized")
	}
	if letter != J {
		t.Errorf("letter = %v, want %v", letter, J)
	}
}

func TestTraceMatcher_RejectsStraightLine(t *testing.T) {
	m := NewTraceMatcher()

	line := make([]PathPoint, 30)
	for i := range line {
		line[i] = PathPoint{X: 0.2 + float64(i)*0.015, Y: 0.5}
	}

	if letter, ok := traceStroke(m, One, detector.IndexTip, line); ok {
		t.Errorf("straight sweep matched %v; only the Z stroke should", letter)
	}
}

func TestTraceMatcher_RejectsHoldJitter(t *testing.T) {
	// A hand held still produces only tracking noise; the extent gate must
	// keep jitter from ever reaching the matcher.
	m := NewTraceMatcher()

	jitter := make([]PathPoint, 40)
	for i := range jitter {
		jitter[i] = PathPoint{
			X: 0.5 + 0.005*float64(i%3-1),
			Y: 0.5 + 0.005*float64(i%2),
		}
	}

	if letter, ok := traceStroke(m, I, detector.PinkyTip, jitter); ok {
		t.Errorf("hold jitter matched %v", letter)
	}
}

func TestTraceMatcher_NonAnchorSignResets(t *testing.T) {
	m := NewTraceMatcher()
	hand := detector.FistLandmarks()

	// Accumulate part of a Z stroke, then break the handshape.
	stroke := scaleStroke(zTemplate, 0.3, 0.25, 0.25, 0.3)
	for i := 0; i < 8; i++ {
		hand.Points[detector.IndexTip] = detector.Point3D{X: stroke[i].X, Y: stroke[i].Y}
		m.Observe(&hand, One, int64(i)*33)
	}

	m.Observe(&hand, Five, 300)

	if len(m.buf) != 0 {
		t.Errorf("path buffer holds %d points after a non-anchor sign, want 0", len(m.buf))
	}
}
