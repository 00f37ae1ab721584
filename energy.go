package seamcarve

import (
	"image"
	"math"

	"github.com/pkg/errors"
)

// EnergyMap holds one non-negative importance score per pixel,
// stored row-major in a flat slice.
type EnergyMap struct {
	width  int
	height int
	data   []float64
}

// Width returns the number of columns of the energy map.
func (e *EnergyMap) Width() int { return e.width }

// Height returns the number of rows of the energy map.
func (e *EnergyMap) Height() int { return e.height }

// At returns the energy of the pixel found at column x, row y.
func (e *EnergyMap) At(x, y int) float64 {
	return e.data[x+y*e.width]
}

// Max returns the highest energy value of the map.
func (e *EnergyMap) Max() float64 {
	var max float64
	for _, v := range e.data {
		if v > max {
			max = v
		}
	}
	return max
}

// wrap maps an index which may fall one step outside of [0, extent)
// back into range, treating the axis as circular.
func wrap(index, extent int) int {
	return ((index % extent) + extent) % extent
}

// ComputeEnergy builds the dual-gradient energy map of the image.
//
// For every pixel the squared RGB differences between the left and right
// neighbours (dx) and between the upper and lower neighbours (dy) are summed,
// and the energy is sqrt(dx+dy). Pixels on the border take their missing
// neighbours from the opposite side of the image.
func ComputeEnergy(img *image.NRGBA) (*EnergyMap, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil, errors.Wrapf(ErrDegenerateImage, "cannot compute energy of a %dx%d image", width, height)
	}
	size, err := tableSize(width, height)
	if err != nil {
		return nil, err
	}

	e := &EnergyMap{
		width:  width,
		height: height,
		data:   make([]float64, size),
	}

	// pix returns the offset of the R channel of the pixel at (x, y).
	pix := func(x, y int) int {
		return img.PixOffset(b.Min.X+x, b.Min.Y+y)
	}

	for y := 0; y < height; y++ {
		up, down := wrap(y-1, height), wrap(y+1, height)
		for x := 0; x < width; x++ {
			left, right := wrap(x-1, width), wrap(x+1, width)

			l, r := pix(left, y), pix(right, y)
			u, d := pix(x, up), pix(x, down)

			var dx, dy int
			for ch := 0; ch < 3; ch++ {
				gx := int(img.Pix[r+ch]) - int(img.Pix[l+ch])
				gy := int(img.Pix[d+ch]) - int(img.Pix[u+ch])
				dx += gx * gx
				dy += gy * gy
			}
			e.data[x+y*width] = math.Sqrt(float64(dx + dy))
		}
	}
	return e, nil
}
