// Package graphics converts images into the monochrome bitmap payloads
// carried by graphic field commands: 1-bit row-major rasters, their ASCII
// hexadecimal form, and the printer's run-length compressed form.
package graphics

import (
	"encoding/hex"
	"fmt"
	"image"
	"strings"
	"unicode"
)

// Luma weights per ITU-R BT.601. A pixel darker than the threshold becomes a
// printed dot.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114

	inkThreshold = 128
)

// Bitmap is a 1-bit image in the printer's native layout: rows of
// BytesPerRow bytes, most significant bit leftmost, rows padded with unset
// bits to a whole byte.
type Bitmap struct {
	Width       int
	Height      int
	BytesPerRow int
	Data        []byte
}

// Rasterize converts an image to a monochrome bitmap. Each pixel is reduced
// to luminance and becomes a printed dot when darker than the ink threshold.
func Rasterize(img image.Image) Bitmap {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	bytesPerRow := (width + 7) / 8

	bitmap := Bitmap{
		Width:       width,
		Height:      height,
		BytesPerRow: bytesPerRow,
		Data:        make([]byte, bytesPerRow*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luminance := lumaRed*float64(r>>8) + lumaGreen*float64(g>>8) + lumaBlue*float64(b>>8)
			if luminance < inkThreshold {
				bitmap.Data[y*bytesPerRow+x/8] |= 1 << uint(7-x%8)
			}
		}
	}
	return bitmap
}

// Bit reports whether the dot at (x, y) is printed.
func (b Bitmap) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Data[y*b.BytesPerRow+x/8]&(1<<uint(7-x%8)) != 0
}

// TotalBytes is the size of the raster data in bytes.
func (b Bitmap) TotalBytes() int {
	return b.BytesPerRow * b.Height
}

// Hex encodes the raster data as uppercase ASCII hexadecimal, row-major with
// no separators, two characters per byte.
func (b Bitmap) Hex() string {
	return strings.ToUpper(hex.EncodeToString(b.Data))
}

// DecodeHex decodes an ASCII hexadecimal graphic payload back to raw bytes.
// Whitespace and commas are ignored, any other non-hexadecimal character is
// an error.
func DecodeHex(payload string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, payload)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("graphic data is not valid hexadecimal: %w", err)
	}
	return data, nil
}

// FromHex rebuilds a bitmap from an ASCII hexadecimal payload and its row
// stride. The width is the full stride in dots, as the payload does not
// record how many trailing bits of the last byte are padding.
func FromHex(payload string, bytesPerRow int) (Bitmap, error) {
	if bytesPerRow <= 0 {
		return Bitmap{}, fmt.Errorf("bytes per row must be greater than 0, was %d", bytesPerRow)
	}
	data, err := DecodeHex(payload)
	if err != nil {
		return Bitmap{}, err
	}
	if len(data) == 0 {
		return Bitmap{}, fmt.Errorf("graphic data is empty")
	}
	if len(data)%bytesPerRow != 0 {
		return Bitmap{}, fmt.Errorf("graphic data size %d bytes is not a multiple of the %d byte row stride",
			len(data), bytesPerRow)
	}
	return Bitmap{
		Width:       bytesPerRow * 8,
		Height:      len(data) / bytesPerRow,
		BytesPerRow: bytesPerRow,
		Data:        data,
	}, nil
}
