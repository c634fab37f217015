package conversion

import (
	"fmt"

	"cube-netter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// BGRToHSV converts a 3-channel BGR image into the HSV working space used
// for thresholding.
func BGRToHSV(src *safe.Mat) (*safe.Mat, error) {
	if err := validateThreeChannel(src, "BGRToHSV"); err != nil {
		return nil, err
	}

	dst, err := safe.NewMat(src.Rows(), src.Cols(), gocv.MatTypeCV8UC3)
	if err != nil {
		return nil, err
	}

	srcMat := src.GetMat()
	dstMat := dst.GetMat()
	gocv.CvtColor(srcMat, &dstMat, gocv.ColorBGRToHSV)

	return dst, nil
}

// HSVToBGR converts the working representation back to the display space.
func HSVToBGR(src *safe.Mat) (*safe.Mat, error) {
	if err := validateThreeChannel(src, "HSVToBGR"); err != nil {
		return nil, err
	}

	dst, err := safe.NewMat(src.Rows(), src.Cols(), gocv.MatTypeCV8UC3)
	if err != nil {
		return nil, err
	}

	srcMat := src.GetMat()
	dstMat := dst.GetMat()
	gocv.CvtColor(srcMat, &dstMat, gocv.ColorHSVToBGR)

	return dst, nil
}

func validateThreeChannel(src *safe.Mat, operation string) error {
	if err := safe.ValidateMatForOperation(src, operation); err != nil {
		return err
	}

	if src.Channels() != 3 {
		return fmt.Errorf("%s requires 3 channels, got %d", operation, src.Channels())
	}

	return nil
}
