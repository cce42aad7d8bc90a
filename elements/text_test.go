package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

func TestTextZPL(t *testing.T) {
	plain := NewText(At(10, 20), "Hello Label")
	assert.Equal(t, "^FO80,160^FDHello Label^FS", plain.ZPL(api.DPI203))

	withFont := NewText(At(10, 20), "Hello Label").
		WithFont(Font{Designation: '0', Height: 5, Width: 5})
	assert.Equal(t, "^FO80,160^A0N,40,40^FDHello Label^FS", withFont.ZPL(api.DPI203))

	rotated := NewText(At(10, 20), "Hello Label").
		WithFont(Font{Designation: 'B', Orientation: api.OrientationRotated, Height: 5, Width: 5})
	assert.Equal(t, "^FO80,160^ABR,40,40^FDHello Label^FS", rotated.ZPL(api.DPI203))
}

func TestTextHexEscapes(t *testing.T) {
	text := NewText(At(0, 0), "caf_C3_A9")
	text.HexEscapes = true
	assert.Equal(t, "^FO0,0^FH^FDcaf_C3_A9^FS", text.ZPL(api.DPI203))
}

func TestTextValidation(t *testing.T) {
	ctx := testContext()

	err := NewText(At(10, 10), "no font anywhere").Validate(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no default font is active")

	withOwnFont := NewText(At(10, 10), "own font").WithFont(Font{Designation: '0', Height: 5, Width: 5})
	assert.NoError(t, withOwnFont.Validate(ctx))

	ctx.DefaultFont = &Font{Designation: '0', Height: 5, Width: 5}
	assert.NoError(t, NewText(At(10, 10), "default font").Validate(ctx))

	err = NewText(At(10, 10), "").Validate(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text content is required")

	badFont := NewText(At(10, 10), "tiny").WithFont(Font{Designation: '0', Height: 0.5, Width: 5})
	err = badFont.Validate(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font height")
}
