package api

import (
	"fmt"
)

// Physical limits of label media a Zebra printer can feed, in millimetres.
// Continuous media has no fixed length, so any label height within these
// bounds can be printed on it.
const (
	MinMediaLength = 6.35
	MaxMediaLength = 991.0
)

// LoadedMedia describes the label stock currently loaded in a printer.
// Length is nil for continuous media, where the printer cuts or tears at a
// length chosen per label.
type LoadedMedia struct {
	Width  float64  `yaml:"width" json:"width"`
	Length *float64 `yaml:"length,omitempty" json:"length,omitempty"`
}

// NewContinuousMedia describes a roll of continuous media of the given width.
func NewContinuousMedia(width float64) (LoadedMedia, error) {
	if width <= 0 {
		return LoadedMedia{}, fmt.Errorf("media width must be greater than 0mm, was %vmm", width)
	}
	return LoadedMedia{Width: width}, nil
}

// NewMediaWithFixedLength describes die-cut media of a fixed width and length.
func NewMediaWithFixedLength(width, length float64) (LoadedMedia, error) {
	if width <= 0 {
		return LoadedMedia{}, fmt.Errorf("media width must be greater than 0mm, was %vmm", width)
	}
	if length < MinMediaLength || length > MaxMediaLength {
		return LoadedMedia{}, fmt.Errorf("media length must be between %vmm and %vmm, was %vmm",
			MinMediaLength, MaxMediaLength, length)
	}
	return LoadedMedia{Width: width, Length: &length}, nil
}

// IsContinuous reports whether the media has no fixed label length.
func (m LoadedMedia) IsContinuous() bool {
	return m.Length == nil
}

func (m LoadedMedia) String() string {
	if m.Length == nil {
		return fmt.Sprintf("continuous %vmm", m.Width)
	}
	return fmt.Sprintf("%vx%vmm", m.Width, *m.Length)
}

// PrinterConfiguration is the printer a label is destined for: its head
// density and the media loaded in it.
type PrinterConfiguration struct {
	Density PrintDensity `yaml:"density" json:"density"`
	Media   LoadedMedia  `yaml:"media" json:"media"`
}

// CanPrint reports whether a label of the given size fits the loaded media.
// The label must not be wider than the media, and its height must either fit
// the fixed media length or, on continuous media, lie within the printable
// length range.
func (p PrinterConfiguration) CanPrint(size LabelSize) bool {
	if size.Width > p.Media.Width {
		return false
	}
	if p.Media.Length != nil {
		return size.Height <= *p.Media.Length
	}
	return size.Height >= MinMediaLength && size.Height <= MaxMediaLength
}
