package seamcarve

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// decodeImg decodes an image stream into an *image.NRGBA with its
// min-point at (0, 0). JPEG orientation tags are applied while decoding.
func decodeImg(r io.Reader) (*image.NRGBA, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode the source image")
	}
	return imaging.Clone(src), nil
}

// encodeImg encodes the image in the format given by the file extension.
// An empty extension, used when writing to a pipe, produces a JPEG.
func encodeImg(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case "", ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".gif":
		return gif.Encode(w, img, nil)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
}
