package elements

import (
	"fmt"
	"strconv"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

// Drawable bounds of graphic boxes, density independent: the thinnest line
// the densest head can draw and the largest dimension that stays under
// 32000 dots on it.
const (
	minBoxThickness = 0.04
	maxBoxDimension = 32000.0 / api.MaxDotsPerMillimetre

	maxRoundness = 8
)

// GraphicBox draws a rectangle of a given line thickness, optionally with
// rounded corners. A box whose thickness equals its width and height prints
// as a solid block.
type GraphicBox struct {
	Position   `yaml:",inline"`
	Dimensions `yaml:",inline"`
	Thickness  float64        `yaml:"thickness" json:"thickness"`
	Color      *api.LineColor `yaml:"color,omitempty" json:"color,omitempty"`
	Roundness  *int           `yaml:"roundness,omitempty" json:"roundness,omitempty"`
}

// NewGraphicBox builds a box outline. Color and roundness stay unset, so the
// printer applies its defaults.
func NewGraphicBox(position Position, width, height, thickness float64) *GraphicBox {
	return &GraphicBox{
		Position:   position,
		Dimensions: Dimensions{Width: width, Height: height},
		Thickness:  thickness,
	}
}

// WithColor sets the line color.
func (b *GraphicBox) WithColor(color api.LineColor) *GraphicBox {
	b.Color = &color
	return b
}

// WithRoundness sets the corner rounding degree, 0 (square) to 8 (fully
// rounded).
func (b *GraphicBox) WithRoundness(roundness int) *GraphicBox {
	b.Roundness = &roundness
	return b
}

func (b *GraphicBox) ZPL(density api.PrintDensity) string {
	parameters := []string{
		strconv.Itoa(density.ToDots(b.Width)),
		strconv.Itoa(density.ToDots(b.Height)),
		strconv.Itoa(density.ToDots(b.Thickness)),
		"",
		"",
	}
	if b.Color != nil {
		parameters[3] = string(*b.Color)
	}
	if b.Roundness != nil {
		parameters[4] = strconv.Itoa(*b.Roundness)
	}
	return b.Position.zpl(density) + api.CmdGraphicBox + api.JoinParameters(parameters...) + api.CmdFieldSeparator
}

func (b *GraphicBox) Validate(ctx *ValidationContext) error {
	failures := b.Position.validate(ctx)
	failures = append(failures, b.Dimensions.validate(ctx)...)
	if b.Thickness < minBoxThickness || b.Thickness > maxBoxDimension {
		failures = append(failures, fmt.Sprintf("thickness must be between %vmm and %.2fmm, was %vmm",
			minBoxThickness, maxBoxDimension, b.Thickness))
	}
	if b.Width < b.Thickness {
		failures = append(failures, fmt.Sprintf("width %vmm is thinner than the %vmm line thickness", b.Width, b.Thickness))
	}
	if b.Height < b.Thickness {
		failures = append(failures, fmt.Sprintf("height %vmm is thinner than the %vmm line thickness", b.Height, b.Thickness))
	}
	if b.Width > maxBoxDimension {
		failures = append(failures, fmt.Sprintf("width %vmm exceeds the largest drawable dimension %.2fmm", b.Width, maxBoxDimension))
	}
	if b.Height > maxBoxDimension {
		failures = append(failures, fmt.Sprintf("height %vmm exceeds the largest drawable dimension %.2fmm", b.Height, maxBoxDimension))
	}
	if b.Color != nil && !b.Color.IsValid() {
		failures = append(failures, fmt.Sprintf("line color must be B (black) or W (white), was %q", string(*b.Color)))
	}
	if b.Roundness != nil && (*b.Roundness < 0 || *b.Roundness > maxRoundness) {
		failures = append(failures, fmt.Sprintf("roundness must be between 0 and %d, was %d", maxRoundness, *b.Roundness))
	}
	return api.NewValidationError(failures)
}
