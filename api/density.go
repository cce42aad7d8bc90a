package api

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// PrintDensity is the resolution of a printer's head, expressed in dots per
// inch. Zebra printers ship in four fixed resolutions, so the type is a closed
// set of presets rather than an open integer.
type PrintDensity int

const (
	DPI152 PrintDensity = 152
	DPI203 PrintDensity = 203
	DPI300 PrintDensity = 300
	DPI600 PrintDensity = 600
)

// Densities lists every supported preset in ascending order.
var Densities = []PrintDensity{DPI152, DPI203, DPI300, DPI600}

// Bounds of the dots-per-millimetre scale across all presets. Density
// independent size limits are derived from these, e.g. a dimension that must
// stay below 32000 dots on every printer may be at most
// 32000/MaxDotsPerMillimetre millimetres.
const (
	MinDotsPerMillimetre = 6
	MaxDotsPerMillimetre = 24
)

const millimetresPerInch = 25.4

var half = decimal.New(5, -1)

// DotsPerInch returns the density as plain dots per inch.
func (d PrintDensity) DotsPerInch() int {
	return int(d)
}

// DotsPerMillimetre returns the metric form of the density, rounded to the
// nearest whole dot (152dpi prints at 6 dots/mm, 203 at 8, 300 at 12,
// 600 at 24).
func (d PrintDensity) DotsPerMillimetre() int {
	return int(math.Round(float64(d) / millimetresPerInch))
}

// ToDots converts a length in millimetres to whole dots at this density.
// The conversion is done in decimal arithmetic and rounded half-up, so
// 0.5mm at 203dpi is exactly 4 dots rather than 3.9999... truncated to 3.
func (d PrintDensity) ToDots(millimetres float64) int {
	dots := decimal.NewFromFloat(millimetres).Mul(decimal.NewFromInt(int64(d.DotsPerMillimetre())))
	return int(dots.Add(half).Floor().IntPart())
}

// ToMillimetres converts a count of dots at this density back to
// millimetres. Converting the result back with ToDots yields the original
// count.
func (d PrintDensity) ToMillimetres(dots int) float64 {
	return float64(dots) / float64(d.DotsPerMillimetre())
}

func (d PrintDensity) String() string {
	return fmt.Sprintf("%ddpi", int(d))
}

// FromDotsPerInch finds the preset matching a dots-per-inch value.
func FromDotsPerInch(dotsPerInch int) (PrintDensity, error) {
	for _, d := range Densities {
		if d.DotsPerInch() == dotsPerInch {
			return d, nil
		}
	}
	return 0, fmt.Errorf("no print density preset for %d dots per inch", dotsPerInch)
}

// FromDotsPerMillimetre finds the preset matching a dots-per-millimetre value.
func FromDotsPerMillimetre(dotsPerMillimetre int) (PrintDensity, error) {
	for _, d := range Densities {
		if d.DotsPerMillimetre() == dotsPerMillimetre {
			return d, nil
		}
	}
	return 0, fmt.Errorf("no print density preset for %d dots per millimetre", dotsPerMillimetre)
}
