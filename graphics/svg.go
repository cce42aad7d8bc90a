package graphics

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterizeSVG renders SVG markup to an RGBA image of the given pixel size.
// A non-positive width or height is derived from the document's view box so
// the aspect ratio is preserved; if both are non-positive the view box size
// is used as-is. The canvas is filled white first, otherwise transparent
// regions would rasterize as printed dots.
func RasterizeSVG(svg []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	viewBox := icon.ViewBox
	if viewBox.W <= 0 || viewBox.H <= 0 {
		return nil, fmt.Errorf("SVG has no usable view box")
	}
	switch {
	case width <= 0 && height <= 0:
		width = int(math.Round(viewBox.W))
		height = int(math.Round(viewBox.H))
	case width <= 0:
		width = int(math.Round(float64(height) * viewBox.W / viewBox.H))
	case height <= 0:
		height = int(math.Round(float64(width) * viewBox.H / viewBox.W))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("SVG target size %dx%d is not printable", width, height)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}
