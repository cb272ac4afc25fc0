// Package overlay renders the recognition HUD onto video frames: landmark
// skeletons, the current sign with its confidence, and the spelled word.
// It only consumes recognition output; nothing here feeds back into the
// classifier.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/sign"
)

// Color palette.
var (
	colorPrimary = color.RGBA{R: 50, G: 130, B: 255, A: 0}
	colorAccent  = color.RGBA{R: 255, G: 200, B: 80, A: 0}
	colorText    = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	colorDim     = color.RGBA{R: 120, G: 120, B: 120, A: 0}
	colorGood    = color.RGBA{R: 80, G: 255, B: 80, A: 0}
	colorWarn    = color.RGBA{R: 255, G: 200, B: 80, A: 0}
	colorBad     = color.RGBA{R: 255, G: 100, B: 100, A: 0}
	colorBlack   = color.RGBA{A: 0}
)

// handConnections is the MediaPipe hand skeleton: finger chains from the
// wrist plus the palm arch.
var handConnections = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, // thumb
	{0, 5}, {5, 6}, {6, 7}, {7, 8}, // index
	{0, 9}, {9, 10}, {10, 11}, {11, 12}, // middle
	{0, 13}, {13, 14}, {14, 15}, {15, 16}, // ring
	{0, 17}, {17, 18}, {18, 19}, {19, 20}, // pinky
	{5, 9}, {9, 13}, {13, 17}, // palm
}

// Overlay draws the HUD. It never fails on missing data; absent hands or
// signs simply draw nothing.
type Overlay struct {
	FocusMode     bool
	ShowWatermark bool
}

// New creates an Overlay.
func New(focusMode, showWatermark bool) *Overlay {
	return &Overlay{
		FocusMode:     focusMode,
		ShowWatermark: showWatermark,
	}
}

// DrawLandmarks draws each hand's landmark points, and the skeleton
// connections when requested, onto the frame in place.
func (o *Overlay) DrawLandmarks(frame *gocv.Mat, hands []detector.HandLandmarks, showConnections bool) {
	if frame == nil || frame.Empty() || len(hands) == 0 {
		return
	}

	w := frame.Cols()
	h := frame.Rows()

	for i := range hands {
		hand := &hands[i]

		if showConnections {
			for _, conn := range handConnections {
				start := landmarkPoint(hand, conn[0], w, h)
				end := landmarkPoint(hand, conn[1], w, h)
				gocv.Line(frame, start, end, colorAccent, 2)
			}
		}

		for j := 0; j < detector.NumLandmarks; j++ {
			pt := landmarkPoint(hand, j, w, h)
			gocv.Circle(frame, pt, 5, colorPrimary, -1)
			gocv.Circle(frame, pt, 7, colorAccent, 2)
		}
	}
}

// DrawSign draws the recognized sign. In focus mode it renders one large
// centered glyph colored by confidence; otherwise a top-center banner with
// a confidence bar.
func (o *Overlay) DrawSign(frame *gocv.Mat, res *sign.Result) {
	if frame == nil || frame.Empty() || res == nil {
		return
	}

	w := frame.Cols()
	h := frame.Rows()
	text := res.Sign.String()

	if o.FocusMode {
		fontScale := 8.0
		thickness := 15
		size := gocv.GetTextSize(text, gocv.FontHersheySimplex, fontScale, thickness)
		org := image.Pt((w-size.X)/2, (h+size.Y)/2)

		c := colorBad
		if res.Confidence > 0.85 {
			c = colorGood
		} else if res.Confidence > 0.70 {
			c = colorWarn
		}

		gocv.PutText(frame, text, org, gocv.FontHersheySimplex, fontScale, c, thickness)
		return
	}

	fontScale := 3.0
	thickness := 6
	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, fontScale, thickness)
	x := (w - size.X) / 2
	y := 100

	const padding = 20
	gocv.Rectangle(frame,
		image.Rect(x-padding, y-size.Y-padding, x+size.X+padding, y+padding),
		colorBlack, -1)

	c := colorPrimary
	if res.Confidence > 0.8 {
		c = colorGood
	}
	gocv.PutText(frame, text, image.Pt(x, y), gocv.FontHersheySimplex, fontScale, c, thickness)

	o.drawConfidenceBar(frame, res.Confidence, w, y+padding+10)
}

func (o *Overlay) drawConfidenceBar(frame *gocv.Mat, confidence float64, frameW, barY int) {
	const (
		barWidth  = 200
		barHeight = 15
	)
	barX := (frameW - barWidth) / 2

	gocv.Rectangle(frame,
		image.Rect(barX, barY, barX+barWidth, barY+barHeight),
		color.RGBA{R: 50, G: 50, B: 50, A: 0}, -1)

	fill := int(float64(barWidth) * confidence)
	gocv.Rectangle(frame,
		image.Rect(barX, barY, barX+fill, barY+barHeight),
		colorPrimary, -1)

	label := fmt.Sprintf("%d%%", int(confidence*100))
	gocv.PutText(frame, label, image.Pt(barX+barWidth+10, barY+barHeight),
		gocv.FontHersheySimplex, 0.5, colorText, 1)
}

// DrawWord draws the spelled word near the bottom of the frame, with the
// pending (held but uncommitted) letter shown dimmed in brackets.
func (o *Overlay) DrawWord(frame *gocv.Mat, word []sign.Sign, pending sign.Sign, hasPending bool) {
	if frame == nil || frame.Empty() {
		return
	}
	if len(word) == 0 && !hasPending {
		return
	}

	text := ""
	for _, s := range word {
		text += s.String()
	}
	if hasPending {
		text += "[" + pending.String() + "]"
	}

	w := frame.Cols()
	h := frame.Rows()
	fontScale := 1.5
	thickness := 3

	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, fontScale, thickness)
	x := (w - size.X) / 2
	y := h - 80

	const padding = 15
	gocv.Rectangle(frame,
		image.Rect(x-padding, y-size.Y-padding, x+size.X+padding, y+padding),
		colorBlack, -1)

	gocv.PutText(frame, text, image.Pt(x, y), gocv.FontHersheySimplex, fontScale, colorAccent, thickness)
}

// DrawWatermark draws the project watermark in the bottom-right corner.
func (o *Overlay) DrawWatermark(frame *gocv.Mat) {
	if !o.ShowWatermark || frame == nil || frame.Empty() {
		return
	}

	w := frame.Cols()
	h := frame.Rows()

	gocv.PutText(frame, "mudra", image.Pt(w-110, h-10),
		gocv.FontHersheySimplex, 0.5, colorDim, 1)
}

// ApplyFocusDim darkens the frame in place for focus mode.
func (o *Overlay) ApplyFocusDim(frame *gocv.Mat) {
	if !o.FocusMode || frame == nil || frame.Empty() {
		return
	}
	frame.MultiplyFloat(0.4)
}

func landmarkPoint(hand *detector.HandLandmarks, idx, w, h int) image.Point {
	return image.Pt(
		int(hand.Points[idx].X*float64(w)),
		int(hand.Points[idx].Y*float64(h)),
	)
}
