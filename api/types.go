package api

// Orientation rotates a field relative to the label.
type Orientation string

const (
	OrientationNormal   Orientation = "N"
	OrientationRotated  Orientation = "R" // 90 degrees clockwise
	OrientationInverted Orientation = "I" // 180 degrees
	OrientationBottomUp Orientation = "B" // 270 degrees, read from bottom up
)

// IsValid reports whether the orientation is one of the four field rotations.
// The empty string is valid and means "use the printer default".
func (o Orientation) IsValid() bool {
	switch o {
	case "", OrientationNormal, OrientationRotated, OrientationInverted, OrientationBottomUp:
		return true
	}
	return false
}

// Justification pins a field origin to the left or right edge of the field.
type Justification int

const (
	JustifyLeft  Justification = 0
	JustifyRight Justification = 1
	JustifyAuto  Justification = 2
)

// IsValid reports whether the justification is one of the three origin modes.
func (j Justification) IsValid() bool {
	return j >= JustifyLeft && j <= JustifyAuto
}

// LineColor is the ink of a drawn graphic, black or white. White is used to
// knock shapes out of an already-black area.
type LineColor string

const (
	ColorBlack LineColor = "B"
	ColorWhite LineColor = "W"
)

// IsValid reports whether the color is black or white.
func (c LineColor) IsValid() bool {
	return c == ColorBlack || c == ColorWhite
}
