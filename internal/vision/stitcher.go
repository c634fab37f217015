package vision

import (
	"fmt"
	"image"

	"cube-netter/internal/logger"
	"cube-netter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Stitcher composes the resolved faces into the unfolded net image: the four
// side faces concatenated into a strip, the top face composited onto a blank
// canvas above it.
type Stitcher struct {
	faceHeight int
	log        logger.Logger
}

func NewStitcher(faceHeight int, log logger.Logger) *Stitcher {
	return &Stitcher{
		faceHeight: faceHeight,
		log:        log,
	}
}

// ResizeAll scales every face to the common height, preserving aspect
// ratio. The returned slice is index-aligned with the input; the caller
// owns the new Mats.
func (s *Stitcher) ResizeAll(faces []*safe.Mat) ([]*safe.Mat, error) {
	resized := make([]*safe.Mat, 0, len(faces))
	for i, face := range faces {
		if err := safe.ValidateMatForOperation(face, "face resize"); err != nil {
			closeAll(resized)
			return nil, err
		}

		width := face.Cols() * s.faceHeight / face.Rows()
		if width <= 0 {
			closeAll(resized)
			return nil, fmt.Errorf("face %d resizes to zero width", i+1)
		}

		dst, err := safe.NewMat(s.faceHeight, width, face.Type())
		if err != nil {
			closeAll(resized)
			return nil, err
		}

		srcMat := face.GetMat()
		dstMat := dst.GetMat()
		gocv.Resize(srcMat, &dstMat, image.Pt(width, s.faceHeight), 0, 0, gocv.InterpolationLinear)

		resized = append(resized, dst)
	}
	return resized, nil
}

// Compose builds the net image from the resized faces and the resolved
// layout. The result stays in the working color space; the caller owns it.
func (s *Stitcher) Compose(resized []*safe.Mat, layout *Layout) (*safe.Mat, error) {
	strip, err := s.concatSides(resized, layout.SideOrder)
	if err != nil {
		return nil, err
	}
	defer strip.Close()

	top := resized[layout.TopIndex].GetMat()
	if layout.TopOffset < 0 || layout.TopOffset+top.Cols() > strip.Cols() {
		return nil, &PlacementError{
			Reason: fmt.Sprintf("top face at offset %d exceeds strip width %d", layout.TopOffset, strip.Cols()),
			Offset: layout.TopOffset,
		}
	}

	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), s.faceHeight, strip.Cols(), strip.Type())
	defer canvas.Close()

	region := canvas.Region(image.Rect(layout.TopOffset, 0, layout.TopOffset+top.Cols(), s.faceHeight))
	top.CopyTo(&region)
	region.Close()

	combined := gocv.NewMat()
	defer combined.Close()
	gocv.Vconcat(canvas, strip, &combined)

	net, err := safe.NewMatFromMat(combined)
	if err != nil {
		return nil, err
	}

	s.log.Info("ImageStitcher", "net composed", map[string]interface{}{
		"width":  net.Cols(),
		"height": net.Rows(),
	})

	return net, nil
}

func (s *Stitcher) concatSides(resized []*safe.Mat, order []int) (gocv.Mat, error) {
	seed := resized[order[0]].GetMat()
	strip := seed.Clone()
	for _, idx := range order[1:] {
		next := resized[idx].GetMat()
		combined := gocv.NewMat()
		gocv.Hconcat(strip, next, &combined)
		strip.Close()
		strip = combined
	}

	if strip.Empty() {
		strip.Close()
		return gocv.Mat{}, fmt.Errorf("side strip concatenation produced an empty image")
	}
	return strip, nil
}

func closeAll(mats []*safe.Mat) {
	for _, m := range mats {
		m.Close()
	}
}
