package seamcarve

import (
	"image"

	"github.com/pkg/errors"
)

// RemoveSeam returns a new image one column narrower than img, built by
// dropping the pixel of every row at the column given by the seam and
// shifting the pixels on its right one position to the left.
// The source image is left untouched.
func RemoveSeam(img *image.NRGBA, seam Seam) (*image.NRGBA, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	if width < 2 || height == 0 {
		return nil, errors.Wrapf(ErrDegenerateImage, "cannot remove a seam from a %dx%d image", width, height)
	}
	if len(seam) != height {
		return nil, errors.Wrapf(ErrInvalidSeam, "seam length %d, image height %d", len(seam), height)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width-1, height))
	for y, x := range seam {
		if x < 0 || x >= width {
			return nil, errors.Wrapf(ErrInvalidSeam, "column %d on row %d is outside of [0, %d)", x, y, width)
		}
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		row := dst.Pix[dst.PixOffset(0, y):]

		copy(row[:x*4], src[:x*4])
		copy(row[x*4:(width-1)*4], src[(x+1)*4:width*4])
	}
	return dst, nil
}
