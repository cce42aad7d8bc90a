package zebra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mortonl/zebra-label-generator-sub001/api"
	"github.com/mortonl/zebra-label-generator-sub001/elements"
)

// Label is an ordered sequence of admitted elements bound to a physical
// label size and a destination printer. Elements are validated at the moment
// they are added and never afterwards; rendering is a pure read and can be
// repeated at any density.
type Label struct {
	size    api.LabelSize
	printer api.PrinterConfiguration
	charset *api.CharacterSet

	admitted []elements.Element
	ctx      elements.ValidationContext
}

// LabelOption configures a label at construction.
type LabelOption func(*Label)

// WithCharacterSet makes the label select a character encoding ahead of its
// first element.
func WithCharacterSet(charset api.CharacterSet) LabelOption {
	return func(l *Label) {
		l.charset = &charset
	}
}

// NewLabel starts a label of the given size destined for the given printer.
// Construction fails when either is missing or when the printer's loaded
// media cannot hold a label of that size.
func NewLabel(size api.LabelSize, printer api.PrinterConfiguration, opts ...LabelOption) (*Label, error) {
	if size.IsZero() {
		return nil, fmt.Errorf("label size is required")
	}
	if printer.Density == 0 {
		return nil, fmt.Errorf("printer configuration is required")
	}
	if _, err := api.FromDotsPerInch(printer.Density.DotsPerInch()); err != nil {
		return nil, err
	}
	if !printer.CanPrint(size) {
		return nil, fmt.Errorf("printer with %s media cannot print a %s label", printer.Media, size)
	}

	label := &Label{
		size:    size,
		printer: printer,
		ctx: elements.ValidationContext{
			Size:    size,
			Density: printer.Density,
		},
	}
	for _, opt := range opts {
		opt(label)
	}
	if label.charset != nil && !label.charset.IsValid() {
		return nil, fmt.Errorf("character set code %d is not supported", int(*label.charset))
	}
	return label, nil
}

// Add validates the element against the label and appends it. A rejected
// element leaves the label unchanged. Admitting a default font updates the
// font context that text fields added later are validated against.
func (l *Label) Add(element elements.Element) error {
	if element == nil {
		return fmt.Errorf("element is required")
	}
	if err := element.Validate(&l.ctx); err != nil {
		return err
	}
	l.admitted = append(l.admitted, element)
	if font, ok := element.(*elements.DefaultFont); ok {
		active := font.Font
		l.ctx.DefaultFont = &active
	}
	return nil
}

// Size returns the label's physical size.
func (l *Label) Size() api.LabelSize {
	return l.size
}

// Printer returns the destination printer configuration.
func (l *Label) Printer() api.PrinterConfiguration {
	return l.printer
}

// Elements returns the admitted elements in print order.
func (l *Label) Elements() []elements.Element {
	return append([]elements.Element(nil), l.admitted...)
}

// Render serializes the label at its printer's density.
func (l *Label) Render() string {
	return l.RenderAt(l.printer.Density)
}

// RenderAt serializes the label at an explicit density, e.g. to proof a
// 203dpi production label on a 300dpi office printer. Every millimetre value
// is converted at the requested density, so elements keep their physical
// size and position.
func (l *Label) RenderAt(density api.PrintDensity) string {
	lines := []string{
		api.CmdFormatStart,
		api.CmdPrintWidth + strconv.Itoa(density.ToDots(l.size.Width)),
		api.CmdLabelLength + strconv.Itoa(density.ToDots(l.size.Height)),
	}
	if l.charset != nil {
		lines = append(lines, api.CmdCharacterSet+strconv.Itoa(int(*l.charset)))
	}
	for _, element := range l.admitted {
		lines = append(lines, element.ZPL(density))
	}
	lines = append(lines, api.CmdFormatEnd)
	return strings.Join(lines, "\n")
}
