package api

// CharacterSet selects the encoding the printer uses to interpret field data.
// The values are the printer's own code numbers: 0-14 select single and
// double byte code pages, 28-30 select Unicode transformation formats.
type CharacterSet int

const (
	CharsetUSA1              CharacterSet = 0
	CharsetUSA2              CharacterSet = 1
	CharsetUK                CharacterSet = 2
	CharsetHolland           CharacterSet = 3
	CharsetDenmarkNorway     CharacterSet = 4
	CharsetSwedenFinland     CharacterSet = 5
	CharsetGermany           CharacterSet = 6
	CharsetFrance1           CharacterSet = 7
	CharsetFrance2           CharacterSet = 8
	CharsetItaly             CharacterSet = 9
	CharsetSpain             CharacterSet = 10
	CharsetMiscellaneous     CharacterSet = 11
	CharsetJapan             CharacterSet = 12
	CharsetIBMCodePage850    CharacterSet = 13
	CharsetDoubleByteAsia    CharacterSet = 14
	CharsetUTF8              CharacterSet = 28
	CharsetUTF16BigEndian    CharacterSet = 29
	CharsetUTF16LittleEndian CharacterSet = 30
)

// IsValid reports whether the value is a code number the printer accepts.
func (c CharacterSet) IsValid() bool {
	return (c >= CharsetUSA1 && c <= CharsetDoubleByteAsia) ||
		(c >= CharsetUTF8 && c <= CharsetUTF16LittleEndian)
}
