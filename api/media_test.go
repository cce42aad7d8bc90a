package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContinuousMedia(t *testing.T) {
	media, err := NewContinuousMedia(110)
	require.NoError(t, err)
	assert.True(t, media.IsContinuous())
	assert.Equal(t, 110.0, media.Width)

	_, err = NewContinuousMedia(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than 0mm")

	_, err = NewContinuousMedia(-5)
	require.Error(t, err)
}

func TestNewMediaWithFixedLength(t *testing.T) {
	media, err := NewMediaWithFixedLength(101.6, 152.4)
	require.NoError(t, err)
	assert.False(t, media.IsContinuous())
	require.NotNil(t, media.Length)
	assert.Equal(t, 152.4, *media.Length)

	tests := []struct {
		name   string
		width  float64
		length float64
	}{
		{"zero width", 0, 152.4},
		{"length below minimum", 101.6, 6.0},
		{"length above maximum", 101.6, 1000},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewMediaWithFixedLength(test.width, test.length)
			assert.Error(t, err)
		})
	}
}

func TestCanPrint(t *testing.T) {
	continuous, err := NewContinuousMedia(110)
	require.NoError(t, err)
	fixed, err := NewMediaWithFixedLength(110, 152.4)
	require.NoError(t, err)

	tests := []struct {
		name     string
		media    LoadedMedia
		size     LabelSize
		canPrint bool
	}{
		{"fits continuous", continuous, Size4x6Inch, true},
		{"too wide for continuous", continuous, LabelSize{Width: 120, Height: 100}, false},
		{"too short for continuous", continuous, LabelSize{Width: 100, Height: 5}, false},
		{"too tall for continuous", continuous, LabelSize{Width: 100, Height: 992}, false},
		{"exact width", continuous, LabelSize{Width: 110, Height: 100}, true},
		{"fits fixed length", fixed, Size4x6Inch, true},
		{"exceeds fixed length", fixed, LabelSize{Width: 100, Height: 153}, false},
		{"shorter than fixed length", fixed, LabelSize{Width: 100, Height: 100}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			printer := PrinterConfiguration{Density: DPI203, Media: test.media}
			assert.Equal(t, test.canPrint, printer.CanPrint(test.size))
		})
	}
}
