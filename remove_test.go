package seamcarve

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveSeam_ShiftsPixels(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	img := randomImage(rnd, 6, 4)
	orig := append([]uint8(nil), img.Pix...)
	seam := Seam{0, 1, 2, 5}

	res, err := RemoveSeam(img, seam)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Bounds().Dx())
	assert.Equal(t, 4, res.Bounds().Dy())
	assert.Equal(t, orig, img.Pix, "the source image should not be modified")

	for y, removed := range seam {
		for x := 0; x < 5; x++ {
			srcX := x
			if x >= removed {
				srcX = x + 1
			}
			assert.Equal(t, img.NRGBAAt(srcX, y), res.NRGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRemoveSeam_SubImage(t *testing.T) {
	img := newImage(5, 3, func(x, y int) color.NRGBA {
		return color.NRGBA{R: uint8(x), G: uint8(y), A: 0xff}
	})
	sub := img.SubImage(image.Rect(1, 1, 4, 3)).(*image.NRGBA)

	res, err := RemoveSeam(sub, Seam{1, 0})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 2), res.Bounds())
	assert.Equal(t, color.NRGBA{R: 1, G: 1, A: 0xff}, res.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 3, G: 1, A: 0xff}, res.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 2, G: 2, A: 0xff}, res.NRGBAAt(0, 1))
	assert.Equal(t, color.NRGBA{R: 3, G: 2, A: 0xff}, res.NRGBAAt(1, 1))
}

func TestRemoveSeam_Errors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))

	_, err := RemoveSeam(img, Seam{0})
	assert.ErrorIs(t, err, ErrInvalidSeam)

	_, err = RemoveSeam(img, Seam{0, 3})
	assert.ErrorIs(t, err, ErrInvalidSeam)

	_, err = RemoveSeam(img, Seam{-1, 0})
	assert.ErrorIs(t, err, ErrInvalidSeam)

	_, err = RemoveSeam(image.NewNRGBA(image.Rect(0, 0, 1, 2)), Seam{0, 0})
	assert.ErrorIs(t, err, ErrDegenerateImage)
}
