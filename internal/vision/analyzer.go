package vision

import (
	"sort"

	"cube-netter/internal/config"
	"cube-netter/internal/logger"
	"cube-netter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Analyzer detects sticker blobs on a cropped face image and classifies each
// blob's centroid into a border position, producing the face's ColorMap.
type Analyzer struct {
	cfg       *config.Config
	segmenter *Segmenter
	log       logger.Logger
}

func NewAnalyzer(cfg *config.Config, segmenter *Segmenter, log logger.Logger) *Analyzer {
	return &Analyzer{
		cfg:       cfg,
		segmenter: segmenter,
		log:       log,
	}
}

// Analyze builds the ColorMap for one cropped face image. Blobs below the
// configured minimum area are noise; blobs whose centroid falls outside
// every border zone are reported and dropped without failing the face. The
// background color only serves cropping and is never classified.
func (a *Analyzer) Analyze(face *safe.Mat, faceIndex int) (ColorMap, error) {
	if err := safe.ValidateMatForOperation(face, "face analysis"); err != nil {
		return nil, err
	}

	colors := make([]string, 0, len(a.cfg.ColorProfiles))
	for name := range a.cfg.ColorProfiles {
		if name == a.cfg.BackgroundColor {
			continue
		}
		colors = append(colors, name)
	}
	sort.Strings(colors)

	result := make(ColorMap)
	for _, color := range colors {
		mask, err := a.segmenter.Mask(face, a.cfg.ColorProfiles[color])
		if err != nil {
			return nil, err
		}

		a.classifyBlobs(mask, color, faceIndex, result)
		mask.Close()
	}

	a.log.Debug("FaceAnalyzer", "face analyzed", map[string]interface{}{
		"face":   faceIndex + 1,
		"colors": len(result),
	})

	return result, nil
}

func (a *Analyzer) classifyBlobs(mask *safe.Mat, color string, faceIndex int, result ColorMap) {
	width := float64(mask.Cols())
	height := float64(mask.Rows())
	maskMat := mask.GetMat()

	contours := gocv.FindContours(maskMat, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)

		area := gocv.ContourArea(contour)
		if area <= a.cfg.MinBlobArea {
			continue
		}

		cx, cy, ok := blobCentroid(maskMat, contour)
		if !ok {
			continue
		}

		pos, ok := classifyBorder(cx/width, cy/height, a.cfg.BorderZones)
		if !ok {
			a.log.Warning("FaceAnalyzer", "blob centroid outside border zones", map[string]interface{}{
				"face":       faceIndex + 1,
				"color":      color,
				"area":       area,
				"horizontal": cx / width,
				"vertical":   cy / height,
			})
			continue
		}

		if prev, exists := result[color]; exists {
			a.log.Debug("FaceAnalyzer", "duplicate color on face, keeping first", map[string]interface{}{
				"face":    faceIndex + 1,
				"color":   color,
				"kept":    prev.String(),
				"dropped": pos.String(),
			})
			continue
		}

		result[color] = pos
	}
}

// blobCentroid computes a contour's centroid from the image moments of the
// mask restricted to the contour's bounding box.
func blobCentroid(mask gocv.Mat, contour gocv.PointVector) (float64, float64, bool) {
	rect := gocv.BoundingRect(contour)

	region := mask.Region(rect)
	moments := gocv.Moments(region, true)
	region.Close()

	m00 := moments["m00"]
	if m00 == 0 {
		return 0, 0, false
	}

	cx := float64(rect.Min.X) + moments["m10"]/m00
	cy := float64(rect.Min.Y) + moments["m01"]/m00
	return cx, cy, true
}

// classifyBorder maps a normalized centroid to a border zone. All
// comparisons are strict: a centroid exactly on a cutoff matches nothing.
func classifyBorder(h, v float64, zones config.BorderZones) (BorderPosition, bool) {
	switch {
	case v < zones.EdgeNear && h > zones.SpanLow && h < zones.SpanHigh:
		return BorderTop, true
	case v > zones.EdgeFar && h > zones.SpanLow && h < zones.SpanHigh:
		return BorderBottom, true
	case h > zones.EdgeFar && v > zones.SpanLow && v < zones.SpanHigh:
		return BorderRight, true
	case h < zones.EdgeNear && v > zones.SpanLow && v < zones.SpanHigh:
		return BorderLeft, true
	default:
		return 0, false
	}
}
