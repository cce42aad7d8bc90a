package elements

import (
	"fmt"
	"image"
	"strconv"

	"github.com/mortonl/zebra-label-generator-sub001/api"
	"github.com/mortonl/zebra-label-generator-sub001/graphics"
)

// CompressionType tags how a graphic field's payload is encoded.
type CompressionType string

const (
	CompressionHex              CompressionType = "A"
	CompressionBinary           CompressionType = "B"
	CompressionCompressedBinary CompressionType = "C"
)

// Range of the graphic field count parameters.
const (
	minGraphicCount = 1
	maxGraphicCount = 99999
)

// GraphicField embeds a bitmap in the label. The payload is either plain
// ASCII hexadecimal or the run length compressed form of it; the declared
// byte counts tell the printer the decoded size before it reads the data.
type GraphicField struct {
	Position        `yaml:",inline"`
	Compression     CompressionType `yaml:"compression,omitempty" json:"compression,omitempty"`
	BinaryByteCount int             `yaml:"binary_byte_count" json:"binary_byte_count"`
	GraphicCount    int             `yaml:"graphic_field_count" json:"graphic_field_count"`
	BytesPerRow     int             `yaml:"bytes_per_row" json:"bytes_per_row"`
	Data            string          `yaml:"data" json:"data"`

	// rle marks payloads rewritten by the run length compressor, which are
	// no longer plain hexadecimal and skip the hex payload checks.
	rle bool
}

// NewGraphicField embeds a bitmap as plain ASCII hexadecimal.
func NewGraphicField(position Position, bitmap graphics.Bitmap) *GraphicField {
	total := bitmap.TotalBytes()
	return &GraphicField{
		Position:        position,
		Compression:     CompressionHex,
		BinaryByteCount: total,
		GraphicCount:    total,
		BytesPerRow:     bitmap.BytesPerRow,
		Data:            bitmap.Hex(),
	}
}

// NewCompressedGraphicField embeds a bitmap with its payload run length
// compressed. The declared counts still describe the decoded size.
func NewCompressedGraphicField(position Position, bitmap graphics.Bitmap) *GraphicField {
	field := NewGraphicField(position, bitmap)
	field.Data = graphics.Compress(field.Data, bitmap.BytesPerRow)
	field.rle = true
	return field
}

// NewGraphicFieldFromImage rasterizes an image to monochrome and embeds it.
func NewGraphicFieldFromImage(position Position, img image.Image, compress bool) *GraphicField {
	bitmap := graphics.Rasterize(img)
	if compress {
		return NewCompressedGraphicField(position, bitmap)
	}
	return NewGraphicField(position, bitmap)
}

func (g *GraphicField) ZPL(density api.PrintDensity) string {
	compression := g.Compression
	if compression == "" {
		compression = CompressionHex
	}
	return g.Position.zpl(density) + api.CmdGraphicField + api.JoinParameters(
		string(compression),
		strconv.Itoa(g.BinaryByteCount),
		strconv.Itoa(g.GraphicCount),
		strconv.Itoa(g.BytesPerRow),
		g.Data,
	) + api.CmdFieldSeparator
}

func (g *GraphicField) Validate(ctx *ValidationContext) error {
	failures := g.Position.validate(ctx)
	switch g.Compression {
	case "", CompressionHex, CompressionBinary, CompressionCompressedBinary:
	default:
		failures = append(failures, fmt.Sprintf("compression type must be A, B or C, was %q", string(g.Compression)))
	}
	failures = append(failures, validateCount("binary byte count", g.BinaryByteCount)...)
	failures = append(failures, validateCount("graphic field count", g.GraphicCount)...)
	failures = append(failures, validateCount("bytes per row", g.BytesPerRow)...)
	if g.Data == "" {
		failures = append(failures, "graphic data is required")
	} else if g.hexPayload() {
		if data, err := graphics.DecodeHex(g.Data); err != nil {
			failures = append(failures, err.Error())
		} else if len(data) != g.BinaryByteCount {
			failures = append(failures, fmt.Sprintf("declared binary byte count %d does not match the actual data size %d bytes",
				g.BinaryByteCount, len(data)))
		}
	}
	return api.NewValidationError(failures)
}

func (g *GraphicField) hexPayload() bool {
	return !g.rle && (g.Compression == "" || g.Compression == CompressionHex)
}

func validateCount(name string, value int) []string {
	if value < minGraphicCount || value > maxGraphicCount {
		return []string{fmt.Sprintf("%s must be between %d and %d, was %d",
			name, minGraphicCount, maxGraphicCount, value)}
	}
	return nil
}
