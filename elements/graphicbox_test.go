package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

func TestGraphicBoxZPL(t *testing.T) {
	box := NewGraphicBox(At(37.5, 0), 27.5, 10, 10).WithRoundness(0)
	// Color stays unset: its comma is kept because roundness follows it.
	assert.Equal(t, "^FO300,0^GB220,80,80,,0^FS", box.ZPL(api.DPI203))
	assert.Equal(t, "^FO450,0^GB330,120,120,,0^FS", box.ZPL(api.DPI300))

	solid := NewGraphicBox(At(0, 0), 10, 10, 10).WithColor(api.ColorBlack).WithRoundness(8)
	assert.Equal(t, "^FO0,0^GB80,80,80,B,8^FS", solid.ZPL(api.DPI203))

	bare := NewGraphicBox(At(0, 0), 10, 10, 1)
	assert.Equal(t, "^FO0,0^GB80,80,8^FS", bare.ZPL(api.DPI203))
}

func TestGraphicBoxValidation(t *testing.T) {
	assert.NoError(t, NewGraphicBox(At(10, 10), 27.5, 10, 10).Validate(testContext()))

	tests := []struct {
		name    string
		box     *GraphicBox
		failure string
	}{
		{
			"thickness too small",
			NewGraphicBox(At(0, 0), 10, 10, 0.01),
			"thickness must be between 0.04mm and 1333.33mm, was 0.01mm",
		},
		{
			"thickness too large",
			NewGraphicBox(At(0, 0), 10, 10, 1500),
			"thickness must be between",
		},
		{
			"width thinner than line",
			NewGraphicBox(At(0, 0), 5, 20, 10),
			"width 5mm is thinner than the 10mm line thickness",
		},
		{
			"height thinner than line",
			NewGraphicBox(At(0, 0), 20, 5, 10),
			"height 5mm is thinner than the 10mm line thickness",
		},
		{
			"width exceeds label",
			NewGraphicBox(At(0, 0), 120, 10, 1),
			"width 120mm exceeds the label width 100mm",
		},
		{
			"height exceeds label",
			NewGraphicBox(At(0, 0), 10, 160, 1),
			"height 160mm exceeds the label height 150mm",
		},
		{
			"roundness out of range",
			NewGraphicBox(At(0, 0), 10, 10, 1).WithRoundness(9),
			"roundness must be between 0 and 8, was 9",
		},
		{
			"bad color",
			NewGraphicBox(At(0, 0), 10, 10, 1).WithColor("G"),
			`line color must be B (black) or W (white), was "G"`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.box.Validate(testContext())
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.failure)
		})
	}
}
