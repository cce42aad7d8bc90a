package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortonl/zebra-label-generator-sub001/elements"
	"github.com/mortonl/zebra-label-generator-sub001/graphics"
)

func TestRenderHalfBlocks(t *testing.T) {
	// Top row prints the left half, bottom row the right half.
	bitmap := graphics.Bitmap{Width: 8, Height: 2, BytesPerRow: 1, Data: []byte{0xF0, 0x0F}}
	art := Render(bitmap, Options{MaxWidth: 80, NoColor: true})
	assert.Equal(t, "▀▀▀▀▄▄▄▄", art)
}

func TestRenderSingleRow(t *testing.T) {
	bitmap := graphics.Bitmap{Width: 8, Height: 1, BytesPerRow: 1, Data: []byte{0xFF}}
	art := Render(bitmap, Options{MaxWidth: 80, NoColor: true})
	assert.Equal(t, "▀▀▀▀▀▀▀▀", art)
}

func TestRenderDownsamples(t *testing.T) {
	bitmap := graphics.Bitmap{Width: 16, Height: 2, BytesPerRow: 2,
		Data: []byte{0xFF, 0xFF, 0xFF, 0xFF}}
	art := Render(bitmap, Options{MaxWidth: 8, NoColor: true})
	assert.Equal(t, "▀▀▀▀▀▀▀▀", art)
}

func TestRenderKeepsThinLines(t *testing.T) {
	// A single printed dot must survive 4:1 downsampling.
	bitmap := graphics.Bitmap{Width: 32, Height: 4, BytesPerRow: 4,
		Data: make([]byte, 16)}
	bitmap.Data[0] = 0x80
	art := Render(bitmap, Options{MaxWidth: 8, NoColor: true})
	assert.Equal(t, "▀       ", art)
}

func TestRenderBordered(t *testing.T) {
	bitmap := graphics.Bitmap{Width: 8, Height: 2, BytesPerRow: 1, Data: []byte{0xFF, 0xFF}}
	art := Render(bitmap, Options{MaxWidth: 80})
	assert.Contains(t, art, "╭")
	assert.Contains(t, art, "████████")
}

func TestField(t *testing.T) {
	field := &elements.GraphicField{BytesPerRow: 1, Data: "F0"}
	art, err := Field(field, Options{MaxWidth: 80, NoColor: true})
	require.NoError(t, err)
	assert.Equal(t, "▀▀▀▀"+strings.Repeat(" ", 4), art)
}

func TestFieldRejectsBadPayload(t *testing.T) {
	field := &elements.GraphicField{BytesPerRow: 1, Data: "GG"}
	_, err := Field(field, Options{MaxWidth: 80, NoColor: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid hexadecimal")
}
