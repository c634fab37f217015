package vision

import (
	"fmt"

	"cube-netter/internal/config"
	"cube-netter/internal/logger"
	"cube-netter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Segmenter produces binary presence masks by thresholding HSV photographs
// against configured color profiles.
type Segmenter struct {
	log logger.Logger
}

func NewSegmenter(log logger.Logger) *Segmenter {
	return &Segmenter{log: log}
}

// Mask returns a binary mask the size of src, set where the pixel falls
// inside the profile's inclusive per-channel bounds. Pure function of
// (src, profile); the caller owns the returned Mat.
func (s *Segmenter) Mask(src *safe.Mat, profile config.ColorProfile) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "color mask"); err != nil {
		return nil, err
	}

	if src.Channels() != 3 {
		return nil, fmt.Errorf("color mask requires a 3-channel HSV image, got %d channels", src.Channels())
	}

	dst, err := safe.NewMat(src.Rows(), src.Cols(), gocv.MatTypeCV8UC1)
	if err != nil {
		return nil, err
	}

	lower := gocv.NewScalar(profile.Lower[0], profile.Lower[1], profile.Lower[2], 0)
	upper := gocv.NewScalar(profile.Upper[0], profile.Upper[1], profile.Upper[2], 0)

	srcMat := src.GetMat()
	dstMat := dst.GetMat()
	gocv.InRangeWithScalar(srcMat, lower, upper, &dstMat)

	return dst, nil
}

// MaskAll applies the same profile across a batch of photographs, preserving
// input order. On failure every mask produced so far is released.
func (s *Segmenter) MaskAll(srcs []*safe.Mat, profile config.ColorProfile) ([]*safe.Mat, error) {
	masks := make([]*safe.Mat, 0, len(srcs))
	for i, src := range srcs {
		mask, err := s.Mask(src, profile)
		if err != nil {
			for _, m := range masks {
				m.Close()
			}
			return nil, fmt.Errorf("failed to mask photograph %d: %w", i+1, err)
		}
		masks = append(masks, mask)
	}
	return masks, nil
}
