package api

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// LabelSize is the printable area of a single label in millimetres.
type LabelSize struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Common thermal label stocks. Sizes are quoted in inches by suppliers, the
// values here are their metric equivalents.
var (
	Size2x1Inch = LabelSize{Width: 50.8, Height: 25.4}
	Size2x2Inch = LabelSize{Width: 50.8, Height: 50.8}
	Size4x2Inch = LabelSize{Width: 101.6, Height: 50.8}
	Size4x4Inch = LabelSize{Width: 101.6, Height: 101.6}
	Size4x6Inch = LabelSize{Width: 101.6, Height: 152.4}
	Size6x4Inch = LabelSize{Width: 152.4, Height: 101.6}
)

var labelSizes = map[string]LabelSize{
	"2x1 inch": Size2x1Inch,
	"2x2 inch": Size2x2Inch,
	"4x2 inch": Size4x2Inch,
	"4x4 inch": Size4x4Inch,
	"4x6 inch": Size4x6Inch,
	"6x4 inch": Size6x4Inch,
}

// FindLabelSize looks up a label stock by its supplier name, e.g. "4x6 inch".
func FindLabelSize(name string) (LabelSize, error) {
	size, ok := labelSizes[name]
	if !ok {
		return LabelSize{}, fmt.Errorf("unknown label size %q, known sizes: %v", name, LabelSizeNames())
	}
	return size, nil
}

// LabelSizeNames returns the known stock names in a stable order.
func LabelSizeNames() []string {
	names := lo.Keys(labelSizes)
	sort.Strings(names)
	return names
}

// IsZero reports whether the size has not been set.
func (s LabelSize) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s LabelSize) String() string {
	return fmt.Sprintf("%vx%vmm", s.Width, s.Height)
}
