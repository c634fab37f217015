package pipeline

import (
	"fmt"

	"cube-netter/internal/logger"
	"cube-netter/internal/opencv/conversion"
	"cube-netter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// PhotoCount is the fixed number of photographs per run: five of the cube's
// six faces.
const PhotoCount = 5

// Loader reads the photograph set <prefix>1.<ext> .. <prefix>5.<ext> and
// converts each image into the HSV working space.
type Loader struct {
	log logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{log: log}
}

// LoadSet returns the five photographs in index order. Any missing or
// undecodable file fails the whole set with a LoadError.
func (l *Loader) LoadSet(prefix, ext string) ([]*safe.Mat, error) {
	photos := make([]*safe.Mat, 0, PhotoCount)

	for i := 1; i <= PhotoCount; i++ {
		path := fmt.Sprintf("%s%d.%s", prefix, i, ext)

		photo, err := l.loadOne(path)
		if err != nil {
			closeAll(photos)
			return nil, err
		}
		photos = append(photos, photo)
	}

	l.log.Info("PhotoLoader", "photograph set loaded", map[string]interface{}{
		"prefix": prefix,
		"count":  PhotoCount,
	})

	return photos, nil
}

func (l *Loader) loadOne(path string) (*safe.Mat, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return nil, &LoadError{Path: path}
	}

	bgr, err := safe.NewMatFromMat(mat)
	mat.Close()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer bgr.Close()

	hsv, err := conversion.BGRToHSV(bgr)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	l.log.Debug("PhotoLoader", "photograph loaded", map[string]interface{}{
		"path":   path,
		"width":  hsv.Cols(),
		"height": hsv.Rows(),
	})

	return hsv, nil
}

func closeAll(mats []*safe.Mat) {
	for _, m := range mats {
		if m != nil {
			m.Close()
		}
	}
}
