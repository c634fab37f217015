package vision

import (
	"testing"

	"cube-netter/internal/config"
	"cube-netter/internal/logger"
	"cube-netter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

func hsvMat(t *testing.T, rows, cols int) *safe.Mat {
	t.Helper()

	raw := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC3)
	defer raw.Close()

	mat, err := safe.NewMatFromMat(raw)
	if err != nil {
		t.Fatalf("failed to create Mat: %v", err)
	}
	return mat
}

func setHSVPixel(mat *safe.Mat, row, col int, h, s, v uint8) {
	raw := mat.GetMat()
	raw.SetUCharAt3(row, col, 0, h)
	raw.SetUCharAt3(row, col, 1, s)
	raw.SetUCharAt3(row, col, 2, v)
}

func TestMaskMatchesPixelsInsideBounds(t *testing.T) {
	src := hsvMat(t, 10, 10)
	defer src.Close()

	setHSVPixel(src, 2, 3, 65, 100, 100) // inside green bounds
	setHSVPixel(src, 7, 7, 110, 100, 100)

	green := config.ColorProfile{Lower: []float64{60, 0, 0}, Upper: []float64{75, 255, 255}}

	mask, err := NewSegmenter(logger.Nop{}).Mask(src, green)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	defer mask.Close()

	raw := mask.GetMat()
	if got := raw.GetUCharAt(2, 3); got != 255 {
		t.Errorf("pixel inside bounds = %d, want 255", got)
	}
	if got := raw.GetUCharAt(7, 7); got != 0 {
		t.Errorf("pixel outside bounds = %d, want 0", got)
	}
	if got := raw.GetUCharAt(0, 0); got != 0 {
		t.Errorf("zero pixel = %d, want 0", got)
	}
}

func TestMaskBoundsAreInclusive(t *testing.T) {
	src := hsvMat(t, 4, 4)
	defer src.Close()

	setHSVPixel(src, 0, 0, 60, 0, 0)     // exactly the lower bound
	setHSVPixel(src, 1, 1, 75, 255, 255) // exactly the upper bound

	green := config.ColorProfile{Lower: []float64{60, 0, 0}, Upper: []float64{75, 255, 255}}

	mask, err := NewSegmenter(logger.Nop{}).Mask(src, green)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	defer mask.Close()

	raw := mask.GetMat()
	if raw.GetUCharAt(0, 0) != 255 {
		t.Error("pixel on lower bound must match")
	}
	if raw.GetUCharAt(1, 1) != 255 {
		t.Error("pixel on upper bound must match")
	}
}

// Hue wrap-around is not handled: inverted bounds match nothing.
func TestMaskInvertedHueBoundsMatchNothing(t *testing.T) {
	src := hsvMat(t, 4, 4)
	defer src.Close()

	setHSVPixel(src, 1, 2, 10, 100, 100)

	inverted := config.ColorProfile{Lower: []float64{170, 0, 0}, Upper: []float64{20, 255, 255}}

	mask, err := NewSegmenter(logger.Nop{}).Mask(src, inverted)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	defer mask.Close()

	raw := mask.GetMat()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if raw.GetUCharAt(row, col) != 0 {
				t.Fatalf("pixel (%d,%d) matched an inverted profile", row, col)
			}
		}
	}
}

func TestMaskAllPreservesOrder(t *testing.T) {
	first := hsvMat(t, 8, 8)
	defer first.Close()
	second := hsvMat(t, 8, 8)
	defer second.Close()

	setHSVPixel(second, 4, 4, 65, 100, 100)

	green := config.ColorProfile{Lower: []float64{60, 0, 0}, Upper: []float64{75, 255, 255}}

	masks, err := NewSegmenter(logger.Nop{}).MaskAll([]*safe.Mat{first, second}, green)
	if err != nil {
		t.Fatalf("MaskAll failed: %v", err)
	}
	defer func() {
		for _, m := range masks {
			m.Close()
		}
	}()

	if len(masks) != 2 {
		t.Fatalf("mask count = %d, want 2", len(masks))
	}

	firstRaw := masks[0].GetMat()
	secondRaw := masks[1].GetMat()
	if firstRaw.GetUCharAt(4, 4) != 0 {
		t.Error("first mask should be empty")
	}
	if secondRaw.GetUCharAt(4, 4) != 255 {
		t.Error("second mask should carry the green pixel")
	}
}

func TestCropZeroesPixelsOutsideMask(t *testing.T) {
	src := hsvMat(t, 6, 6)
	defer src.Close()

	setHSVPixel(src, 1, 1, 65, 100, 100)
	setHSVPixel(src, 4, 4, 110, 100, 100)

	maskRaw := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 6, 6, gocv.MatTypeCV8UC1)
	maskRaw.SetUCharAt(1, 1, 255)
	mask, err := safe.NewMatFromMat(maskRaw)
	maskRaw.Close()
	if err != nil {
		t.Fatalf("failed to create mask: %v", err)
	}
	defer mask.Close()

	cropped, err := NewCropper(logger.Nop{}).Crop(src, mask)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	defer cropped.Close()

	raw := cropped.GetMat()
	if raw.GetUCharAt3(1, 1, 0) != 65 {
		t.Error("pixel under mask was not preserved")
	}
	if raw.GetUCharAt3(4, 4, 0) != 0 {
		t.Error("pixel outside mask was not zeroed")
	}
}
