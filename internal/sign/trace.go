package sign

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// J and Z are the two alphabet letters drawn with motion rather than a held
// pose, so the static rule table can never produce them. The TraceMatcher
// watches the relevant fingertip while its anchor handshape is held steady
// (I for J, 1/D for Z) and upgrades the letter once the traced path matches
// the stroke template.

const (
	// traceBufferSize bounds the fingertip path history.
	traceBufferSize = 60
	// minTracePoints is the minimum path length before matching is attempted.
	minTracePoints = 10
	// minTraceExtent is the raw travel (normalized image units) a path needs
	// before it counts as a stroke rather than hold jitter.
	minTraceExtent = 0.15
	// traceTolerance is the maximum normalized DTW distance for a match.
	traceTolerance = 0.25
)

// PathPoint is one sampled fingertip position.
type PathPoint struct {
	X         float64
	Y         float64
	Timestamp int64 // milliseconds
}

// TraceMatcher accumulates a fingertip path and matches it against the
// built-in J and Z stroke templates. Not safe for concurrent use.
type TraceMatcher struct {
	buf    []PathPoint
	anchor Sign
}

// NewTraceMatcher creates an empty TraceMatcher.
func NewTraceMatcher() *TraceMatcher {
	return &TraceMatcher{
		buf: make([]PathPoint, 0, traceBufferSize),
	}
}

// Observe feeds one frame's landmarks together with the current stabilized
// sign. While an anchor handshape is held it tracks the stroke fingertip;
// when the accumulated path matches the anchor's stroke template it returns
// the motion letter and true, clearing the path. Any other sign resets the
// matcher, so recognition output away from the anchors is untouched.
func (m *TraceMatcher) Observe(h *detector.HandLandmarks, stable Sign, nowMs int64) (Sign, bool) {
	var tip int
	var letter Sign
	var template []PathPoint

	switch stable {
	case I:
		tip = detector.PinkyTip
		letter = J
		template = jTemplate
	case One, D:
		tip = detector.IndexTip
		letter = Z
		template = zTemplate
	default:
		m.Reset()
		return Unknown, false
	}

	if m.anchor != letter {
		m.buf = m.buf[:0]
		m.anchor = letter
	}

	if len(m.buf) >= traceBufferSize {
		copy(m.buf, m.buf[1:])
		m.buf = m.buf[:traceBufferSize-1]
	}
	m.buf = append(m.buf, PathPoint{
		X:         h.Points[tip].X,
		Y:         h.Points[tip].Y,
		Timestamp: nowMs,
	})

	if len(m.buf) < minTracePoints {
		return Unknown, false
	}

	if pathExtent(m.buf) < minTraceExtent {
		return Unknown, false
	}

	distance := DTWDistance(normalizePath(m.buf), normalizePath(template))
	if distance <= traceTolerance {
		m.buf = m.buf[:0]
		return letter, true
	}

	return Unknown, false
}

// Reset discards the accumulated path.
func (m *TraceMatcher) Reset() {
	m.buf = m.buf[:0]
	m.anchor = ""
}

// pathExtent returns the larger of the path's x and y travel.
func pathExtent(path []PathPoint) float64 {
	minX, maxX := path[0].X, path[0].X
	minY, maxY := path[0].Y, path[0].Y
	for _, p := range path {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return max(maxX-minX, maxY-minY)
}

// DTWDistance calculates the Dynamic Time Warping distance between two
// paths, normalized by the longer path's length. Returns infinity if either
// path is empty.
func DTWDistance(path1, path2 []PathPoint) float64 {
	n := len(path1)
	m := len(path2)

	if n == 0 || m == 0 {
		return math.Inf(1)
	}

	dtw := make([][]float64, n+1)
	for i := range dtw {
		dtw[i] = make([]float64, m+1)
		for j := range dtw[i] {
			dtw[i][j] = math.Inf(1)
		}
	}
	dtw[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := pointDistance(path1[i-1], path2[j-1])
			dtw[i][j] = cost + min(dtw[i-1][j], dtw[i][j-1], dtw[i-1][j-1])
		}
	}

	return dtw[n][m] / float64(max(n, m))
}

func pointDistance(a, b PathPoint) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// normalizePath scales path coordinates into the 0-1 range so strokes
// compare independent of where in the frame they were drawn. Timestamps are
// preserved.
func normalizePath(path []PathPoint) []PathPoint {
	n := len(path)
	if n == 0 {
		return []PathPoint{}
	}
	if n == 1 {
		return []PathPoint{{X: 0, Y: 0, Timestamp: path[0].Timestamp}}
	}

	minX, maxX := path[0].X, path[0].X
	minY, maxY := path[0].Y, path[0].Y
	for _, p := range path {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY

	normalized := make([]PathPoint, n)
	for i, p := range path {
		var normX, normY float64
		if rangeX > 0 {
			normX = (p.X - minX) / rangeX
		}
		if rangeY > 0 {
			normY = (p.Y - minY) / rangeY
		}
		normalized[i] = PathPoint{X: normX, Y: normY, Timestamp: p.Timestamp}
	}

	return normalized
}

// interpolateStroke samples each segment of a polyline into steps points,
// producing a smooth template path.
func interpolateStroke(vertices [][2]float64, steps int) []PathPoint {
	var path []PathPoint
	for i := 0; i < len(vertices)-1; i++ {
		a, b := vertices[i], vertices[i+1]
		for s := 0; s < steps; s++ {
			t := float64(s) / float64(steps)
			path = append(path, PathPoint{
				X: a[0] + (b[0]-a[0])*t,
				Y: a[1] + (b[1]-a[1])*t,
			})
		}
	}
	last := vertices[len(vertices)-1]
	return append(path, PathPoint{X: last[0], Y: last[1]})
}

// zTemplate: top bar, diagonal down-left, bottom bar.
var zTemplate = interpolateStroke([][2]float64{
	{0, 0}, {1, 0}, {0, 1}, {1, 1},
}, 8)

// jTemplate: downstroke from the top, hooking left at the bottom.
var jTemplate = interpolateStroke([][2]float64{
	{0.8, 0}, {0.8, 0.55}, {0.65, 0.85}, {0.35, 1.0}, {0.1, 0.9},
}, 8)
