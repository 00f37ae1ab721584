package seamcarve

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatmap_ParseColors(t *testing.T) {
	low, high, err := ParseHeatmapColors("#000000", "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "#000000", low.Hex())
	assert.Equal(t, "#ffffff", high.Hex())

	_, _, err = ParseHeatmapColors("black", "#ffffff")
	assert.Error(t, err)
	_, _, err = ParseHeatmapColors("#000000", "#zzzzzz")
	assert.Error(t, err)
}

func TestHeatmap_EnergyImage(t *testing.T) {
	low, high, err := ParseHeatmapColors("#000000", "#ffffff")
	require.NoError(t, err)

	e := energyMap([][]float64{
		{0, 2},
		{4, 1},
	})
	img := EnergyImage(e, low, high)

	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.NRGBA{A: 0xff}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.NRGBAAt(0, 1))

	// Brightness grows with the energy.
	assert.Less(t, img.NRGBAAt(1, 1).R, img.NRGBAAt(1, 0).R)
	assert.Less(t, img.NRGBAAt(1, 0).R, img.NRGBAAt(0, 1).R)
}

func TestHeatmap_NoEnergy(t *testing.T) {
	low, high, err := ParseHeatmapColors(HeatmapLow, HeatmapHigh)
	require.NoError(t, err)

	img := EnergyImage(energyMap([][]float64{{0, 0, 0}}), low, high)
	r, g, b := low.RGB255()
	for x := 0; x < 3; x++ {
		assert.Equal(t, color.NRGBA{R: r, G: g, B: b, A: 0xff}, img.NRGBAAt(x, 0))
	}
}
