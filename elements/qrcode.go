package elements

import (
	"fmt"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/mortonl/zebra-label-generator-sub001/graphics"
)

// NewQRCodeGraphic encodes content as a QR symbol with medium error
// correction and embeds it as a compressed graphic field. sizeDots is the
// printed square's edge length; zero keeps the symbol's natural module size
// of one dot per module.
func NewQRCodeGraphic(position Position, content string, sizeDots int) (*GraphicField, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR content: %w", err)
	}
	if sizeDots > 0 {
		code, err = barcode.Scale(code, sizeDots, sizeDots)
		if err != nil {
			return nil, fmt.Errorf("failed to scale QR code to %d dots: %w", sizeDots, err)
		}
	}
	return NewCompressedGraphicField(position, graphics.Rasterize(code)), nil
}
