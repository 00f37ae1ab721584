package seamcarve

import (
	"math"

	"github.com/pkg/errors"
)

// maxTableCells caps the number of cells of a single scratch buffer
// (energy map, DP or parent table).
const maxTableCells = 1 << 28

var (
	// ErrInvalidTarget is returned when a target width or height is not
	// positive or exceeds the corresponding source dimension.
	ErrInvalidTarget = errors.New("invalid target dimension")

	// ErrDegenerateImage is returned for images without rows or columns,
	// or when an axis would be carved below a single pixel.
	ErrDegenerateImage = errors.New("degenerate image")

	// ErrAllocation is returned when a scratch buffer cannot be sized.
	ErrAllocation = errors.New("scratch buffer allocation failed")

	// ErrInvalidSeam is returned when a seam does not fit the image it is removed from.
	ErrInvalidSeam = errors.New("invalid seam")

	// ErrUnsupportedFormat is returned by the encoder for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// tableSize returns width*height, or ErrAllocation if the product
// overflows or does not fit under maxTableCells.
func tableSize(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.Wrapf(ErrDegenerateImage, "table of %dx%d cells", width, height)
	}
	if width > math.MaxInt/height || width*height > maxTableCells {
		return 0, errors.Wrapf(ErrAllocation, "table of %dx%d cells exceeds %d", width, height, maxTableCells)
	}
	return width * height, nil
}
