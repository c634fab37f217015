package pipeline

import (
	"fmt"

	"cube-netter/internal/logger"
	"cube-netter/internal/opencv/conversion"
	"cube-netter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Saver converts the composed net back to the display color space and
// writes it to disk.
type Saver struct {
	log logger.Logger
}

func NewSaver(log logger.Logger) *Saver {
	return &Saver{log: log}
}

func (s *Saver) Save(path string, net *safe.Mat) error {
	bgr, err := conversion.HSVToBGR(net)
	if err != nil {
		return fmt.Errorf("failed to convert net for display: %w", err)
	}
	defer bgr.Close()

	if ok := gocv.IMWrite(path, bgr.GetMat()); !ok {
		return fmt.Errorf("failed to write net image to %s", path)
	}

	s.log.Info("NetSaver", "net image written", map[string]interface{}{
		"path":   path,
		"width":  net.Cols(),
		"height": net.Rows(),
	})

	return nil
}
