package zebra

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/flanksource/commons/logger"
	"gopkg.in/yaml.v3"

	"github.com/mortonl/zebra-label-generator-sub001/api"
	"github.com/mortonl/zebra-label-generator-sub001/elements"
	"github.com/mortonl/zebra-label-generator-sub001/graphics"
)

// LabelDocument is the YAML description of a complete label: the label
// itself, the printer it is destined for, and its elements in print order.
type LabelDocument struct {
	Label    LabelSpec     `yaml:"label" json:"label"`
	Printer  PrinterSpec   `yaml:"printer" json:"printer"`
	Elements []ElementSpec `yaml:"elements" json:"elements"`
}

// LabelSpec names a label stock by its supplier name, or gives the size
// explicitly in millimetres.
type LabelSpec struct {
	Size         string  `yaml:"size,omitempty" json:"size,omitempty"`
	Width        float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height       float64 `yaml:"height,omitempty" json:"height,omitempty"`
	CharacterSet *int    `yaml:"character_set,omitempty" json:"character_set,omitempty"`
}

// PrinterSpec describes the destination printer. A missing media length
// means continuous media.
type PrinterSpec struct {
	DPI         int      `yaml:"dpi" json:"dpi"`
	MediaWidth  float64  `yaml:"media_width" json:"media_width"`
	MediaLength *float64 `yaml:"media_length,omitempty" json:"media_length,omitempty"`
}

// FontSpec is a font selection in a document.
type FontSpec struct {
	Designation string  `yaml:"designation" json:"designation"`
	Orientation string  `yaml:"orientation,omitempty" json:"orientation,omitempty"`
	Height      float64 `yaml:"height" json:"height"`
	Width       float64 `yaml:"width" json:"width"`
}

func (s FontSpec) build() elements.Font {
	font := elements.Font{
		Orientation: api.Orientation(s.Orientation),
		Height:      s.Height,
		Width:       s.Width,
	}
	for _, r := range s.Designation {
		font.Designation = r
		break
	}
	return font
}

// ElementSpec is one element in a document, discriminated by Type. Only the
// fields that apply to the type need to be set.
type ElementSpec struct {
	Type string `yaml:"type" json:"type"`

	X             float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y             float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Justification *int    `yaml:"justification,omitempty" json:"justification,omitempty"`

	Content    string    `yaml:"content,omitempty" json:"content,omitempty"`
	Font       *FontSpec `yaml:"font,omitempty" json:"font,omitempty"`
	HexEscapes bool      `yaml:"hex_escapes,omitempty" json:"hex_escapes,omitempty"`

	Width     float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height    float64 `yaml:"height,omitempty" json:"height,omitempty"`
	Thickness float64 `yaml:"thickness,omitempty" json:"thickness,omitempty"`
	Color     string  `yaml:"color,omitempty" json:"color,omitempty"`
	Roundness *int    `yaml:"roundness,omitempty" json:"roundness,omitempty"`

	Compression     string `yaml:"compression,omitempty" json:"compression,omitempty"`
	BinaryByteCount int    `yaml:"binary_byte_count,omitempty" json:"binary_byte_count,omitempty"`
	GraphicCount    int    `yaml:"graphic_field_count,omitempty" json:"graphic_field_count,omitempty"`
	BytesPerRow     int    `yaml:"bytes_per_row,omitempty" json:"bytes_per_row,omitempty"`
	Data            string `yaml:"data,omitempty" json:"data,omitempty"`

	// Source is a path to an image or SVG file, relative to the document.
	Source     string `yaml:"source,omitempty" json:"source,omitempty"`
	WidthDots  int    `yaml:"width_dots,omitempty" json:"width_dots,omitempty"`
	HeightDots int    `yaml:"height_dots,omitempty" json:"height_dots,omitempty"`
	SizeDots   int    `yaml:"size_dots,omitempty" json:"size_dots,omitempty"`
	Compressed bool   `yaml:"compressed,omitempty" json:"compressed,omitempty"`

	ModuleWidth        *int  `yaml:"module_width,omitempty" json:"module_width,omitempty"`
	InterpretationLine *bool `yaml:"interpretation_line,omitempty" json:"interpretation_line,omitempty"`
}

// LoadLabel reads a YAML label document from a file and builds the label it
// describes. Image and SVG sources are resolved relative to the document.
func LoadLabel(path string) (*Label, error) {
	document, err := LoadLabelDocument(path)
	if err != nil {
		return nil, err
	}
	return document.Build(filepath.Dir(path))
}

// LoadLabelDocument reads a YAML label document without building it, so a
// caller can override parts (typically the printer) before Build.
func LoadLabelDocument(path string) (LabelDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LabelDocument{}, fmt.Errorf("failed to read label document: %w", err)
	}
	var document LabelDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return LabelDocument{}, fmt.Errorf("failed to parse label document: %w", err)
	}
	return document, nil
}

// ParseLabel builds a label from YAML label document bytes. Image and SVG
// sources are resolved relative to the working directory.
func ParseLabel(data []byte) (*Label, error) {
	var document LabelDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse label document: %w", err)
	}
	return document.Build(".")
}

// Build assembles the label the document describes, validating every element
// on the way. baseDir anchors relative image and SVG source paths.
func (d LabelDocument) Build(baseDir string) (*Label, error) {
	size, err := d.Label.build()
	if err != nil {
		return nil, err
	}
	printer, err := d.Printer.build()
	if err != nil {
		return nil, err
	}

	var opts []LabelOption
	if d.Label.CharacterSet != nil {
		opts = append(opts, WithCharacterSet(api.CharacterSet(*d.Label.CharacterSet)))
	}
	label, err := NewLabel(size, printer, opts...)
	if err != nil {
		return nil, err
	}

	for i, spec := range d.Elements {
		element, err := spec.build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i+1, spec.Type, err)
		}
		if err := label.Add(element); err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i+1, spec.Type, err)
		}
	}
	return label, nil
}

func (s LabelSpec) build() (api.LabelSize, error) {
	if s.Size != "" {
		return api.FindLabelSize(s.Size)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return api.LabelSize{}, fmt.Errorf("label needs a stock size name or an explicit width and height")
	}
	return api.LabelSize{Width: s.Width, Height: s.Height}, nil
}

func (s PrinterSpec) build() (api.PrinterConfiguration, error) {
	density, err := api.FromDotsPerInch(s.DPI)
	if err != nil {
		return api.PrinterConfiguration{}, err
	}
	var media api.LoadedMedia
	if s.MediaLength != nil {
		media, err = api.NewMediaWithFixedLength(s.MediaWidth, *s.MediaLength)
	} else {
		media, err = api.NewContinuousMedia(s.MediaWidth)
	}
	if err != nil {
		return api.PrinterConfiguration{}, err
	}
	return api.PrinterConfiguration{Density: density, Media: media}, nil
}

func (s ElementSpec) build(baseDir string) (elements.Element, error) {
	position := elements.At(s.X, s.Y)
	if s.Justification != nil {
		position = position.Justified(api.Justification(*s.Justification))
	}

	switch s.Type {
	case "text":
		text := elements.NewText(position, s.Content)
		text.HexEscapes = s.HexEscapes
		if s.Font != nil {
			text.WithFont(s.Font.build())
		}
		return text, nil

	case "default-font":
		if s.Font == nil {
			return nil, fmt.Errorf("a default-font element needs a font")
		}
		return &elements.DefaultFont{Font: s.Font.build()}, nil

	case "comment":
		return elements.NewComment(s.Content), nil

	case "graphic-box":
		box := elements.NewGraphicBox(position, s.Width, s.Height, s.Thickness)
		if s.Color != "" {
			box.WithColor(api.LineColor(s.Color))
		}
		if s.Roundness != nil {
			box.WithRoundness(*s.Roundness)
		}
		return box, nil

	case "graphic-field":
		return &elements.GraphicField{
			Position:        position,
			Compression:     elements.CompressionType(s.Compression),
			BinaryByteCount: s.BinaryByteCount,
			GraphicCount:    s.GraphicCount,
			BytesPerRow:     s.BytesPerRow,
			Data:            s.Data,
		}, nil

	case "image":
		img, err := loadImage(filepath.Join(baseDir, s.Source))
		if err != nil {
			return nil, err
		}
		return elements.NewGraphicFieldFromImage(position, img, s.Compressed), nil

	case "svg":
		markup, err := os.ReadFile(filepath.Join(baseDir, s.Source))
		if err != nil {
			return nil, fmt.Errorf("failed to read SVG source: %w", err)
		}
		img, err := graphics.RasterizeSVG(markup, s.WidthDots, s.HeightDots)
		if err != nil {
			return nil, err
		}
		return elements.NewGraphicFieldFromImage(position, img, s.Compressed), nil

	case "qrcode":
		return elements.NewQRCodeGraphic(position, s.Content, s.SizeDots)

	case "code128":
		barcode := elements.NewCode128Barcode(position, s.Content, s.Height)
		if s.ModuleWidth != nil {
			barcode.WithModuleWidth(*s.ModuleWidth)
		}
		if s.InterpretationLine != nil {
			barcode.InterpretationLine = *s.InterpretationLine
		}
		return barcode, nil

	default:
		return nil, fmt.Errorf("unknown element type %q", s.Type)
	}
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image source: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	logger.Debugf("decoded %s image %s (%dx%d)", format, path,
		img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}
