package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorProfile is an inclusive per-channel threshold pair in the HSV working
// space, using OpenCV channel ranges (H 0..179, S and V 0..255).
type ColorProfile struct {
	Lower []float64 `mapstructure:"lower"`
	Upper []float64 `mapstructure:"upper"`
}

// Sticker colors of the reference cube. Red, pink and orange are
// hue-adjacent on purpose; masks are computed per color, not exclusively.
var defaultProfiles = map[string]ColorProfile{
	"white":      {Lower: []float64{0, 0, 50}, Upper: []float64{255, 255, 255}},
	"yellow":     {Lower: []float64{15, 0, 0}, Upper: []float64{30, 255, 255}},
	"green":      {Lower: []float64{60, 0, 0}, Upper: []float64{75, 255, 255}},
	"blue":       {Lower: []float64{105, 0, 0}, Upper: []float64{120, 255, 255}},
	"purple":     {Lower: []float64{145, 0, 0}, Upper: []float64{160, 255, 255}},
	"orange":     {Lower: []float64{5, 0, 0}, Upper: []float64{15, 255, 255}},
	"red":        {Lower: []float64{175, 0, 0}, Upper: []float64{190, 255, 255}},
	"pink":       {Lower: []float64{160, 0, 0}, Upper: []float64{175, 255, 255}},
	"light_blue": {Lower: []float64{90, 0, 0}, Upper: []float64{105, 255, 255}},
}

func (p ColorProfile) validate() error {
	if len(p.Lower) != 3 || len(p.Upper) != 3 {
		return fmt.Errorf("bounds must have 3 channels, got %d/%d", len(p.Lower), len(p.Upper))
	}
	return nil
}

// Swatch renders the profile's HSV midpoint as an sRGB hex string, for
// configuration inspection. OpenCV hue units are half-degrees.
func (p ColorProfile) Swatch() string {
	h := (p.Lower[0] + p.Upper[0]) / 2 * 2
	s := (p.Lower[1] + p.Upper[1]) / 2 / 255
	v := (p.Lower[2] + p.Upper[2]) / 2 / 255

	if h >= 360 {
		h = 359
	}
	if s > 1 {
		s = 1
	}
	if v > 1 {
		v = 1
	}

	return colorful.Hsv(h, s, v).Hex()
}
