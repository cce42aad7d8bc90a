package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solidSquareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">` +
	`<path d="M0 0H10V10H0Z" fill="#000000"/></svg>`

const leftHalfSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10">` +
	`<path d="M0 0H10V10H0Z" fill="#000000"/></svg>`

func TestRasterizeSVG(t *testing.T) {
	img, err := RasterizeSVG([]byte(solidSquareSVG), 8, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	bitmap := Rasterize(img)
	assert.True(t, bitmap.Bit(4, 4))
	set := 0
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			if bitmap.Bit(x, y) {
				set++
			}
		}
	}
	assert.Greater(t, set, 50, "solid square should rasterize almost entirely as ink")
}

func TestRasterizeSVGDerivesSizeFromViewBox(t *testing.T) {
	img, err := RasterizeSVG([]byte(leftHalfSVG), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())

	img, err = RasterizeSVG([]byte(solidSquareSVG), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
}

func TestRasterizeSVGTransparentBackgroundStaysWhite(t *testing.T) {
	img, err := RasterizeSVG([]byte(leftHalfSVG), 20, 10)
	require.NoError(t, err)

	bitmap := Rasterize(img)
	assert.True(t, bitmap.Bit(2, 5), "filled half is ink")
	assert.False(t, bitmap.Bit(17, 5), "uncovered half stays paper")
}

func TestRasterizeSVGRejectsMalformedInput(t *testing.T) {
	_, err := RasterizeSVG([]byte("<svg"), 8, 8)
	assert.Error(t, err)
}
