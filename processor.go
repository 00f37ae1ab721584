package seamcarve

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/seamcarve/seamcarve/utils"
)

// SeamCarver is the interface implemented by types able to resize an image
// by seam carving.
type SeamCarver interface {
	Resize(*image.NRGBA) (image.Image, error)
}

var _ SeamCarver = (*Processor)(nil)

// Resize resizes the image with the provided SeamCarver.
func Resize(s SeamCarver, img *image.NRGBA) (image.Image, error) {
	return s.Resize(img)
}

// Processor options
type Processor struct {
	// NewWidth and NewHeight are the requested dimensions. A zero value
	// keeps the source dimension. With Percentage they are interpreted as
	// a percentage (1-100) of the source dimension.
	NewWidth   int
	NewHeight  int
	Percentage bool

	// EnergyPath, when set, receives a heat map of the source energy.
	EnergyPath  string
	HeatmapLow  string
	HeatmapHigh string

	// Progress is forwarded to the Carver.
	Progress ProgressFunc
}

// Targets converts the processor options into absolute target dimensions
// for a width x height source image. The returned values are not
// validated; the Carver rejects the ones out of range.
func (p *Processor) Targets(width, height int) (int, int) {
	tw, th := p.NewWidth, p.NewHeight

	if p.Percentage {
		tw = percentOf(width, tw)
		th = percentOf(height, th)
	}
	if p.NewWidth == 0 {
		tw = width
	}
	if p.NewHeight == 0 {
		th = height
	}
	return tw, th
}

// percentOf returns perc percent of extent, rounded down. A positive
// percentage never yields less than a single pixel.
func percentOf(extent, perc int) int {
	if perc <= 0 {
		return perc
	}
	return utils.Max(1, extent*perc/100)
}

// Resize is the main entry point of the resize operation. It computes the
// target dimensions and carves the vertical seams first, then the
// horizontal ones.
func (p *Processor) Resize(img *image.NRGBA) (image.Image, error) {
	b := img.Bounds()
	tw, th := p.Targets(b.Dx(), b.Dy())

	c, err := NewCarver(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	c.Progress = p.Progress

	return c.Resize(img, tw, th)
}

// Process decodes the source image, resizes it and encodes the result into w.
// When w is an *os.File its extension selects the output format, otherwise
// the image is encoded as JPEG.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, err := decodeImg(r)
	if err != nil {
		return err
	}

	if p.EnergyPath != "" {
		if err := p.writeEnergy(img); err != nil {
			return err
		}
	}

	res, err := Resize(p, img)
	if err != nil {
		return err
	}

	var ext string
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		ext = filepath.Ext(f.Name())
	}
	return encodeImg(w, res, ext)
}

// writeEnergy saves the heat map of the image energy into p.EnergyPath.
func (p *Processor) writeEnergy(img *image.NRGBA) error {
	low, high := p.HeatmapLow, p.HeatmapHigh
	if low == "" {
		low = HeatmapLow
	}
	if high == "" {
		high = HeatmapHigh
	}
	lc, hc, err := ParseHeatmapColors(low, high)
	if err != nil {
		return err
	}

	energy, err := ComputeEnergy(img)
	if err != nil {
		return err
	}

	f, err := os.Create(p.EnergyPath)
	if err != nil {
		return errors.Wrap(err, "unable to create the energy map file")
	}
	defer f.Close()

	if err := encodeImg(f, EnergyImage(energy, lc, hc), filepath.Ext(p.EnergyPath)); err != nil {
		os.Remove(p.EnergyPath)
		return errors.Wrap(err, "unable to encode the energy map")
	}
	return nil
}
