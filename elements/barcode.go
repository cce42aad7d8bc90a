package elements

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

// Code 128 limits. The height bounds are density independent: at least one
// dot on the densest head, at most 32000 dots on the coarsest.
const (
	minBarcodeHeight = 1.0 / api.MaxDotsPerMillimetre
	maxBarcodeHeight = 32000.0 / api.MinDotsPerMillimetre

	minModuleWidth = 1
	maxModuleWidth = 10
)

// Code128Barcode prints a Code 128 symbol using the printer's own barcode
// engine. The interpretation line is the human readable copy of the content
// printed alongside the bars.
type Code128Barcode struct {
	Position    `yaml:",inline"`
	Orientation api.Orientation `yaml:"orientation,omitempty" json:"orientation,omitempty"`
	Height      float64         `yaml:"height" json:"height"`
	Content     string          `yaml:"content" json:"content"`

	// ModuleWidth is the narrowest bar in dots. Unset leaves the printer's
	// sticky barcode default untouched.
	ModuleWidth             *int `yaml:"module_width,omitempty" json:"module_width,omitempty"`
	InterpretationLine      bool `yaml:"interpretation_line" json:"interpretation_line"`
	InterpretationLineAbove bool `yaml:"interpretation_line_above" json:"interpretation_line_above"`
}

// NewCode128Barcode builds a barcode with the interpretation line below the
// bars.
func NewCode128Barcode(position Position, content string, height float64) *Code128Barcode {
	return &Code128Barcode{
		Position:           position,
		Content:            content,
		Height:             height,
		InterpretationLine: true,
	}
}

// WithModuleWidth sets the narrowest bar width in dots.
func (b *Code128Barcode) WithModuleWidth(dots int) *Code128Barcode {
	b.ModuleWidth = &dots
	return b
}

func (b *Code128Barcode) ZPL(density api.PrintDensity) string {
	var out strings.Builder
	if b.ModuleWidth != nil {
		out.WriteString(api.CmdBarcodeDefaults + strconv.Itoa(*b.ModuleWidth))
	}
	out.WriteString(b.Position.zpl(density))

	orientation := b.Orientation
	if orientation == "" {
		orientation = api.OrientationNormal
	}
	out.WriteString(api.CmdBarcodeCode128 + api.JoinParameters(
		string(orientation),
		strconv.Itoa(density.ToDots(b.Height)),
		yesNo(b.InterpretationLine),
		yesNo(b.InterpretationLineAbove),
	))
	out.WriteString(api.CmdFieldData + b.Content + api.CmdFieldSeparator)
	return out.String()
}

func (b *Code128Barcode) Validate(ctx *ValidationContext) error {
	failures := b.Position.validate(ctx)
	if b.Content == "" {
		failures = append(failures, "barcode content is required")
	}
	if !b.Orientation.IsValid() {
		failures = append(failures, fmt.Sprintf("barcode orientation must be N, R, I or B, was %q", string(b.Orientation)))
	}
	if b.Height < minBarcodeHeight || b.Height > maxBarcodeHeight {
		failures = append(failures, fmt.Sprintf("barcode height must be between %.4fmm and %.2fmm, was %vmm",
			minBarcodeHeight, maxBarcodeHeight, b.Height))
	}
	if b.ModuleWidth != nil && (*b.ModuleWidth < minModuleWidth || *b.ModuleWidth > maxModuleWidth) {
		failures = append(failures, fmt.Sprintf("module width must be between %d and %d dots, was %d",
			minModuleWidth, maxModuleWidth, *b.ModuleWidth))
	}
	return api.NewValidationError(failures)
}
