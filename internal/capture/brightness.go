package capture

import "gocv.io/x/gocv"

// MeanBrightness returns the mean grayscale intensity of a frame in the
// 0-255 range. The calibration wizard uses it to classify ambient lighting.
func MeanBrightness(frame *gocv.Mat) float64 {
	if frame == nil || frame.Empty() {
		return 0
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	return gray.Mean().Val1
}
