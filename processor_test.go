package seamcarve

import (
	"bytes"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Targets(t *testing.T) {
	testCases := []struct {
		name         string
		p            Processor
		wantW, wantH int
	}{
		{"absolute", Processor{NewWidth: 40, NewHeight: 30}, 40, 30},
		{"zero keeps the source", Processor{NewWidth: 40}, 40, 50},
		{"percentage", Processor{NewWidth: 50, NewHeight: 10, Percentage: true}, 50, 5},
		{"percentage keeps the source on zero", Processor{NewHeight: 20, Percentage: true}, 100, 10},
		{"percentage never rounds to zero", Processor{NewWidth: 1, NewHeight: 1, Percentage: true}, 1, 1},
		{"negative values are left to the carver", Processor{NewWidth: -5}, -5, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := tc.p.Targets(100, 50)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

func TestProcessor_Resize(t *testing.T) {
	rnd := rand.New(rand.NewSource(20))
	img := randomImage(rnd, 20, 16)

	var completed int
	p := &Processor{
		NewWidth:  15,
		NewHeight: 12,
		Progress:  func(c, total int) { completed = c },
	}

	res, err := Resize(p, img)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 15, 12), res.Bounds())
	assert.Equal(t, 9, completed)

	p = &Processor{NewWidth: 21}
	_, err = p.Resize(img)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestProcessor_Process(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	var in bytes.Buffer
	require.NoError(t, png.Encode(&in, randomImage(rnd, 12, 8)))

	dir := t.TempDir()
	out, err := os.Create(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	defer out.Close()

	p := &Processor{
		NewWidth:   8,
		NewHeight:  6,
		EnergyPath: filepath.Join(dir, "energy.png"),
	}
	require.NoError(t, p.Process(&in, out))
	require.NoError(t, out.Close())

	res := decodeFile(t, out.Name())
	assert.Equal(t, image.Rect(0, 0, 8, 6), res.Bounds())

	energy := decodeFile(t, p.EnergyPath)
	assert.Equal(t, image.Rect(0, 0, 12, 8), energy.Bounds())
}

func TestProcessor_ProcessInvalidInput(t *testing.T) {
	p := &Processor{NewWidth: 2}
	err := p.Process(bytes.NewBufferString("not an image"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestProcessor_ProcessToWriter(t *testing.T) {
	rnd := rand.New(rand.NewSource(22))
	var in bytes.Buffer
	require.NoError(t, png.Encode(&in, randomImage(rnd, 10, 10)))

	var out bytes.Buffer
	p := &Processor{NewWidth: 6}
	require.NoError(t, p.Process(&in, &out))

	// Writers without a file name receive a JPEG.
	img, format, err := image.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, image.Rect(0, 0, 6, 10), img.Bounds())
}

func TestImage_EncodeDecode(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))
	src := randomImage(rnd, 7, 5)

	for _, ext := range []string{".png", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encodeImg(&buf, src, ext))

			dst, err := decodeImg(&buf)
			require.NoError(t, err)
			// Lossless formats keep every pixel.
			assert.Equal(t, src.Pix, dst.Pix)
		})
	}

	for _, ext := range []string{".jpg", ".gif", ".JPEG"} {
		t.Run(ext, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encodeImg(&buf, src, ext))

			dst, err := decodeImg(&buf)
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), dst.Bounds())
		})
	}

	err := encodeImg(&bytes.Buffer{}, src, ".webp")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// decodeFile decodes the image stored at path.
func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img
}
