// Package preview draws label bitmaps as terminal half-block art, so a
// graphic payload can be proofed without sending it to a printer.
package preview

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/mortonl/zebra-label-generator-sub001/elements"
	"github.com/mortonl/zebra-label-generator-sub001/graphics"
)

// Options control how a bitmap is drawn in the terminal.
type Options struct {
	// MaxWidth clamps the preview to a number of terminal cells. Zero uses
	// the terminal's own width, falling back to 80 when there is none.
	MaxWidth int
	// NoColor skips the border and colors and emits plain block characters.
	NoColor bool
}

// Render draws a bitmap as half-block art, two raster rows per terminal
// line. Bitmaps wider than the available cells are downsampled; a cell with
// any printed dot in it stays inked, so thin lines survive.
func Render(bitmap graphics.Bitmap, opts Options) string {
	cells := opts.MaxWidth
	if cells <= 0 {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width == 0 {
			width = 80
		}
		cells = width
	}
	if !opts.NoColor {
		// Border and padding take two cells on each side.
		cells -= 4
	}
	if cells < 1 {
		cells = 1
	}

	step := 1
	if bitmap.Width > cells {
		step = (bitmap.Width + cells - 1) / cells
	}

	var lines []string
	for y := 0; y < bitmap.Height; y += 2 * step {
		var line strings.Builder
		for x := 0; x < bitmap.Width; x += step {
			line.WriteRune(block(sample(bitmap, x, y, step), sample(bitmap, x, y+step, step)))
		}
		lines = append(lines, line.String())
	}
	art := strings.Join(lines, "\n")

	if opts.NoColor {
		return art
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if termenv.HasDarkBackground() {
		// On a dark terminal the default colors would show the label
		// inverted, force ink on paper.
		style = style.
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF"))
	}
	return style.Render(art)
}

// Field decodes a graphic field's hexadecimal payload and draws it. Fields
// holding compressed or binary payloads cannot be previewed.
func Field(field *elements.GraphicField, opts Options) (string, error) {
	bitmap, err := graphics.FromHex(field.Data, field.BytesPerRow)
	if err != nil {
		return "", err
	}
	return Render(bitmap, opts), nil
}

func block(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

func sample(bitmap graphics.Bitmap, x, y, step int) bool {
	for dy := 0; dy < step; dy++ {
		for dx := 0; dx < step; dx++ {
			if bitmap.Bit(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}
