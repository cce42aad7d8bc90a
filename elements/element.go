// Package elements contains the typed pieces a label is composed from: text
// fields, fonts, barcodes, graphic boxes and embedded bitmaps. Every element
// serializes itself to command text at a given print density and validates
// itself against the label admitting it.
package elements

import (
	"fmt"
	"strconv"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

// Largest field coordinate the printer addresses, in dots.
const maxPositionDots = 32000

// ValidationContext is the label-side state an element is checked against:
// the label's physical size, the density millimetre values convert at, and
// the default font accumulated from previously admitted elements.
type ValidationContext struct {
	Size        api.LabelSize
	Density     api.PrintDensity
	DefaultFont *Font
}

// Element is a single item on a label.
//
// Elements are built unchecked: constructors and struct literals never fail
// on values that need context to judge. Whether an element is legal depends
// on the label it joins, so checking happens in Validate when the label
// admits it. ZPL renders the element's command text, converting millimetre
// values to dots at the given density.
type Element interface {
	ZPL(density api.PrintDensity) string
	Validate(ctx *ValidationContext) error
}

// Position is where a field starts, in millimetres from the label's top left
// corner, with an optional origin justification.
type Position struct {
	X             float64            `yaml:"x" json:"x"`
	Y             float64            `yaml:"y" json:"y"`
	Justification *api.Justification `yaml:"justification,omitempty" json:"justification,omitempty"`
}

// At builds a position.
func At(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Justified returns a copy of the position with an origin justification.
func (p Position) Justified(justification api.Justification) Position {
	p.Justification = &justification
	return p
}

func (p Position) zpl(density api.PrintDensity) string {
	parameters := []string{
		strconv.Itoa(density.ToDots(p.X)),
		strconv.Itoa(density.ToDots(p.Y)),
	}
	if p.Justification != nil {
		parameters = append(parameters, strconv.Itoa(int(*p.Justification)))
	}
	return api.CmdFieldOrigin + api.JoinParameters(parameters...)
}

func (p Position) validate(ctx *ValidationContext) []string {
	failures := validateAxis("x", p.X, ctx.Size.Width, "width", ctx.Density)
	failures = append(failures, validateAxis("y", p.Y, ctx.Size.Height, "height", ctx.Density)...)
	if p.Justification != nil && !p.Justification.IsValid() {
		failures = append(failures, fmt.Sprintf("justification must be 0 (left), 1 (right) or 2 (auto), was %d",
			int(*p.Justification)))
	}
	return failures
}

func validateAxis(axis string, millimetres, bound float64, boundName string, density api.PrintDensity) []string {
	var failures []string
	if dots := density.ToDots(millimetres); dots < 0 || dots > maxPositionDots {
		failures = append(failures, fmt.Sprintf("%s position %vmm converts to %d dots, outside the range 0 to %d dots",
			axis, millimetres, dots, maxPositionDots))
	}
	if millimetres > bound {
		failures = append(failures, fmt.Sprintf("%s position %vmm exceeds the label %s %vmm",
			axis, millimetres, boundName, bound))
	}
	return failures
}

// Dimensions is a field's width and height in millimetres.
type Dimensions struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

func (d Dimensions) validate(ctx *ValidationContext) []string {
	var failures []string
	if d.Width > ctx.Size.Width {
		failures = append(failures, fmt.Sprintf("width %vmm exceeds the label width %vmm", d.Width, ctx.Size.Width))
	}
	if d.Height > ctx.Size.Height {
		failures = append(failures, fmt.Sprintf("height %vmm exceeds the label height %vmm", d.Height, ctx.Size.Height))
	}
	return failures
}

func yesNo(value bool) string {
	if value {
		return "Y"
	}
	return "N"
}
