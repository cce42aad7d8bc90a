package elements

import (
	"strings"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

// Text prints a string at a position, in either its own font or the label's
// current default font.
type Text struct {
	Position `yaml:",inline"`
	Font     *Font  `yaml:"font,omitempty" json:"font,omitempty"`
	Content  string `yaml:"content" json:"content"`

	// HexEscapes marks the content as containing hexadecimal escapes
	// (an underscore followed by two hex digits), for characters outside
	// the active character set's printable range.
	HexEscapes bool `yaml:"hex_escapes,omitempty" json:"hex_escapes,omitempty"`
}

// NewText builds a text field rendered in the label's default font.
func NewText(position Position, content string) *Text {
	return &Text{Position: position, Content: content}
}

// WithFont gives the field its own font instead of the label default.
func (t *Text) WithFont(font Font) *Text {
	t.Font = &font
	return t
}

func (t *Text) ZPL(density api.PrintDensity) string {
	var out strings.Builder
	out.WriteString(t.Position.zpl(density))
	if t.Font != nil {
		out.WriteString(t.Font.zpl(density))
	}
	if t.HexEscapes {
		out.WriteString(api.CmdFieldHex)
	}
	out.WriteString(api.CmdFieldData)
	out.WriteString(t.Content)
	out.WriteString(api.CmdFieldSeparator)
	return out.String()
}

func (t *Text) Validate(ctx *ValidationContext) error {
	failures := t.Position.validate(ctx)
	if t.Content == "" {
		failures = append(failures, "text content is required")
	}
	if t.Font != nil {
		failures = append(failures, t.Font.validate(ctx)...)
	} else if ctx.DefaultFont == nil {
		failures = append(failures, "text has no font and no default font is active on the label")
	}
	return api.NewValidationError(failures)
}
