package zebra

import (
	"github.com/mortonl/zebra-label-generator-sub001/api"
	"github.com/mortonl/zebra-label-generator-sub001/elements"
)

// Type aliases so callers can work from the root package alone
type (
	PrintDensity         = api.PrintDensity
	LabelSize            = api.LabelSize
	LoadedMedia          = api.LoadedMedia
	PrinterConfiguration = api.PrinterConfiguration
	Orientation          = api.Orientation
	Justification        = api.Justification
	LineColor            = api.LineColor
	CharacterSet         = api.CharacterSet
	ValidationError      = api.ValidationError

	Element        = elements.Element
	Position       = elements.Position
	Font           = elements.Font
	DefaultFont    = elements.DefaultFont
	Text           = elements.Text
	GraphicBox     = elements.GraphicBox
	GraphicField   = elements.GraphicField
	Comment        = elements.Comment
	Code128Barcode = elements.Code128Barcode
)

// Density presets
const (
	DPI152 = api.DPI152
	DPI203 = api.DPI203
	DPI300 = api.DPI300
	DPI600 = api.DPI600
)

// Field rotations
const (
	OrientationNormal   = api.OrientationNormal
	OrientationRotated  = api.OrientationRotated
	OrientationInverted = api.OrientationInverted
	OrientationBottomUp = api.OrientationBottomUp
)

// Origin justifications
const (
	JustifyLeft  = api.JustifyLeft
	JustifyRight = api.JustifyRight
	JustifyAuto  = api.JustifyAuto
)

// Line colors
const (
	ColorBlack = api.ColorBlack
	ColorWhite = api.ColorWhite
)

// CharsetUTF8 is the character set most labels want; the full code page list
// lives in the api package.
const CharsetUTF8 = api.CharsetUTF8

// Common label stocks
var (
	Size2x1Inch = api.Size2x1Inch
	Size2x2Inch = api.Size2x2Inch
	Size4x2Inch = api.Size4x2Inch
	Size4x4Inch = api.Size4x4Inch
	Size4x6Inch = api.Size4x6Inch
	Size6x4Inch = api.Size6x4Inch
)

// Function aliases
var (
	FromDotsPerInch       = api.FromDotsPerInch
	FromDotsPerMillimetre = api.FromDotsPerMillimetre
	FindLabelSize         = api.FindLabelSize
	LabelSizeNames        = api.LabelSizeNames

	NewContinuousMedia      = api.NewContinuousMedia
	NewMediaWithFixedLength = api.NewMediaWithFixedLength

	At                        = elements.At
	NewDefaultFont            = elements.NewDefaultFont
	NewText                   = elements.NewText
	NewComment                = elements.NewComment
	NewGraphicBox             = elements.NewGraphicBox
	NewGraphicField           = elements.NewGraphicField
	NewCompressedGraphicField = elements.NewCompressedGraphicField
	NewGraphicFieldFromImage  = elements.NewGraphicFieldFromImage
	NewCode128Barcode         = elements.NewCode128Barcode
	NewQRCodeGraphic          = elements.NewQRCodeGraphic
)
