package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

func TestCode128BarcodeZPL(t *testing.T) {
	plain := NewCode128Barcode(At(10, 10), "ABC123", 20)
	assert.Equal(t, "^FO80,80^BCN,160,Y,N^FDABC123^FS", plain.ZPL(api.DPI203))

	sized := NewCode128Barcode(At(10, 10), "ABC123", 20).WithModuleWidth(2)
	assert.Equal(t, "^BY2^FO80,80^BCN,160,Y,N^FDABC123^FS", sized.ZPL(api.DPI203))

	rotated := NewCode128Barcode(At(10, 10), "ABC123", 20)
	rotated.Orientation = api.OrientationRotated
	rotated.InterpretationLine = false
	assert.Equal(t, "^FO80,80^BCR,160,N,N^FDABC123^FS", rotated.ZPL(api.DPI203))
}

func TestCode128BarcodeValidation(t *testing.T) {
	assert.NoError(t, NewCode128Barcode(At(10, 10), "ABC123", 20).Validate(testContext()))

	err := NewCode128Barcode(At(10, 10), "", 20).Validate(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "barcode content is required")

	err = NewCode128Barcode(At(10, 10), "ABC123", 0).Validate(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "barcode height must be between")

	err = NewCode128Barcode(At(10, 10), "ABC123", 6000).Validate(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "barcode height must be between")

	err = NewCode128Barcode(At(10, 10), "ABC123", 20).WithModuleWidth(11).Validate(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module width must be between 1 and 10 dots, was 11")

	bad := NewCode128Barcode(At(10, 10), "ABC123", 20)
	bad.Orientation = "Q"
	err = bad.Validate(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "barcode orientation")
}
