package elements

import (
	"fmt"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

// Glyph cell size accepted by the printer, in dots.
const (
	minFontDots = 10
	maxFontDots = 32000
)

// Font is a device font selection: a designation character naming one of the
// printer's built-in fonts, a rotation, and the glyph cell size in
// millimetres.
type Font struct {
	Designation rune            `yaml:"designation" json:"designation"`
	Orientation api.Orientation `yaml:"orientation,omitempty" json:"orientation,omitempty"`
	Height      float64         `yaml:"height" json:"height"`
	Width       float64         `yaml:"width" json:"width"`
}

// zpl renders the font selection, e.g. "^A0N,45,45". The designation is part
// of the command name itself, not a parameter.
func (f Font) zpl(density api.PrintDensity) string {
	orientation := f.Orientation
	if orientation == "" {
		orientation = api.OrientationNormal
	}
	return fmt.Sprintf("%s%c%s,%d,%d", api.CmdFont, f.Designation, orientation,
		density.ToDots(f.Height), density.ToDots(f.Width))
}

func (f Font) validate(ctx *ValidationContext) []string {
	var failures []string
	if !isFontDesignation(f.Designation) {
		failures = append(failures, fmt.Sprintf("font designation must be A-Z or 0-9, was %q", f.Designation))
	}
	if !f.Orientation.IsValid() {
		failures = append(failures, fmt.Sprintf("font orientation must be N, R, I or B, was %q", string(f.Orientation)))
	}
	failures = append(failures, validateFontDimension("height", f.Height, ctx.Density)...)
	failures = append(failures, validateFontDimension("width", f.Width, ctx.Density)...)
	return failures
}

func validateFontDimension(name string, millimetres float64, density api.PrintDensity) []string {
	if dots := density.ToDots(millimetres); dots < minFontDots || dots > maxFontDots {
		return []string{fmt.Sprintf("font %s %vmm converts to %d dots, outside the range %d to %d dots",
			name, millimetres, dots, minFontDots, maxFontDots)}
	}
	return nil
}

func isFontDesignation(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// DefaultFont sets the font used by every following text field that does not
// choose its own. Admitting one updates the label's font context; admitting
// an identical font twice in a row is rejected as a no-op.
type DefaultFont struct {
	Font `yaml:",inline"`
}

// NewDefaultFont builds a default font in the normal orientation.
func NewDefaultFont(designation rune, height, width float64) *DefaultFont {
	return &DefaultFont{Font: Font{Designation: designation, Height: height, Width: width}}
}

func (f *DefaultFont) ZPL(density api.PrintDensity) string {
	return fmt.Sprintf("%s%c,%d,%d", api.CmdDefaultFont, f.Designation,
		density.ToDots(f.Height), density.ToDots(f.Width))
}

func (f *DefaultFont) Validate(ctx *ValidationContext) error {
	failures := f.Font.validate(ctx)
	if ctx.DefaultFont != nil && *ctx.DefaultFont == f.Font {
		failures = append(failures, fmt.Sprintf("default font %c at %vx%vmm is already active",
			f.Designation, f.Width, f.Height))
	}
	return api.NewValidationError(failures)
}
