package vision

import (
	"cube-netter/internal/logger"
	"cube-netter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Cropper isolates the cube region of a photograph by zeroing every pixel
// outside the background-color mask.
type Cropper struct {
	log logger.Logger
}

func NewCropper(log logger.Logger) *Cropper {
	return &Cropper{log: log}
}

// Crop returns a copy of src with all pixels outside mask set to zero. The
// caller owns the returned Mat.
func (c *Cropper) Crop(src, mask *safe.Mat) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "background crop"); err != nil {
		return nil, err
	}
	if err := safe.ValidateMatForOperation(mask, "background crop mask"); err != nil {
		return nil, err
	}

	dst, err := safe.NewMat(src.Rows(), src.Cols(), src.Type())
	if err != nil {
		return nil, err
	}

	srcMat := src.GetMat()
	dstMat := dst.GetMat()
	maskMat := mask.GetMat()
	gocv.BitwiseAndWithMask(srcMat, srcMat, &dstMat, maskMat)

	return dst, nil
}
