package seamcarve

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Default heat map colors, from the least to the most important pixels.
const (
	HeatmapLow  = "#000004"
	HeatmapHigh = "#fcffa4"
)

// ParseHeatmapColors parses the two hex colors bounding the heat map gradient.
func ParseHeatmapColors(low, high string) (colorful.Color, colorful.Color, error) {
	lc, err := colorful.Hex(low)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, errors.Wrapf(err, "invalid low heat map color %q", low)
	}
	hc, err := colorful.Hex(high)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, errors.Wrapf(err, "invalid high heat map color %q", high)
	}
	return lc, hc, nil
}

// EnergyImage renders the energy map as an opaque image. Every energy value
// is normalized by the maximum energy of the map and mapped to a color
// blended in CIE-L*a*b* space between low and high.
// A map without any energy is rendered entirely in the low color.
func EnergyImage(e *EnergyMap, low, high colorful.Color) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, e.width, e.height))
	max := e.Max()

	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			var t float64
			if max > 0 {
				t = e.At(x, y) / max
			}
			r, g, b := low.BlendLab(high, t).Clamped().RGB255()

			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = r
			dst.Pix[i+1] = g
			dst.Pix[i+2] = b
			dst.Pix[i+3] = 0xff
		}
	}
	return dst
}
