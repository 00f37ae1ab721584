package seamcarve

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ProgressFunc is notified after every removed seam with the number of
// seams removed so far and the total number of seams to remove.
type ProgressFunc func(completed, total int)

// Carver reduces images by removing one seam at a time.
// A Carver is not safe for concurrent use; it owns a scratch DP table
// which is reused between iterations.
type Carver struct {
	// Progress, when set, is called after each seam removal.
	Progress ProgressFunc

	dpt *DPTable
}

// NewCarver returns a Carver whose scratch table is sized for a
// width x height image. Smaller images reuse the same buffers.
func NewCarver(width, height int) (*Carver, error) {
	dpt, err := NewDPTable(width, height)
	if err != nil {
		return nil, err
	}
	return &Carver{dpt: dpt}, nil
}

// Transpose swaps the rows and columns of the image.
func Transpose(img *image.NRGBA) *image.NRGBA {
	return imaging.Transpose(img)
}

// CarveVertical removes vertical seams until the image is targetWidth wide.
func (c *Carver) CarveVertical(img *image.NRGBA, targetWidth int) (*image.NRGBA, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if err := checkTarget(w, h, targetWidth, "width"); err != nil {
		return nil, err
	}
	total := w - targetWidth
	return c.carve(imaging.Clone(img), total, 0, total)
}

// CarveHorizontal removes horizontal seams until the image is targetHeight
// tall. The image is transposed, carved vertically, then transposed back.
func (c *Carver) CarveHorizontal(img *image.NRGBA, targetHeight int) (*image.NRGBA, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if err := checkTarget(h, w, targetHeight, "height"); err != nil {
		return nil, err
	}
	total := h - targetHeight
	return c.carveTransposed(img, total, 0, total)
}

// Resize carves the image down to targetWidth x targetHeight.
// All the vertical seams are removed first, then the horizontal ones.
// Both targets are validated before anything is carved.
func (c *Carver) Resize(img *image.NRGBA, targetWidth, targetHeight int) (*image.NRGBA, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if err := checkTarget(w, h, targetWidth, "width"); err != nil {
		return nil, err
	}
	if err := checkTarget(h, w, targetHeight, "height"); err != nil {
		return nil, err
	}

	vertical, horizontal := w-targetWidth, h-targetHeight
	total := vertical + horizontal

	res, err := c.carve(imaging.Clone(img), vertical, 0, total)
	if err != nil {
		return nil, err
	}
	return c.carveTransposed(res, horizontal, vertical, total)
}

// carveTransposed runs the vertical carving loop on the transposed image.
func (c *Carver) carveTransposed(img *image.NRGBA, seams, done, total int) (*image.NRGBA, error) {
	res, err := c.carve(Transpose(img), seams, done, total)
	if err != nil {
		return nil, err
	}
	return Transpose(res), nil
}

// carve removes exactly n vertical seams. done and total are only used for
// progress reporting, so that a two-axis resize reports a single sequence.
func (c *Carver) carve(img *image.NRGBA, n, done, total int) (*image.NRGBA, error) {
	if c.dpt == nil {
		dpt, err := NewDPTable(img.Bounds().Dx(), img.Bounds().Dy())
		if err != nil {
			return nil, err
		}
		c.dpt = dpt
	}

	for i := 0; i < n; i++ {
		energy, err := ComputeEnergy(img)
		if err != nil {
			return nil, err
		}
		seam, err := c.dpt.FindSeam(energy)
		if err != nil {
			return nil, err
		}
		img, err = RemoveSeam(img, seam)
		if err != nil {
			return nil, err
		}
		if c.Progress != nil {
			c.Progress(done+i+1, total)
		}
	}
	return img, nil
}

// checkTarget validates a target extent against the current extent of the
// carved axis. other is the extent of the remaining axis, which must not be
// empty either.
func checkTarget(extent, other, target int, axis string) error {
	if extent <= 0 || other <= 0 {
		return errors.Wrapf(ErrDegenerateImage, "source %s is %d, other axis is %d", axis, extent, other)
	}
	if target < 1 {
		return errors.Wrapf(ErrInvalidTarget, "%s must be at least 1, got %d", axis, target)
	}
	if target > extent {
		return errors.Wrapf(ErrInvalidTarget, "%s %d exceeds the source %s %d", axis, target, axis, extent)
	}
	return nil
}
