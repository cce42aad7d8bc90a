package api

import (
	"strings"

	"github.com/samber/lo"
)

// Command mnemonics of the printer language. Every command is the caret
// prefix followed by a two character name and a comma separated parameter
// list.
const (
	CmdFormatStart     = "^XA"
	CmdFormatEnd       = "^XZ"
	CmdPrintWidth      = "^PW"
	CmdLabelLength     = "^LL"
	CmdCharacterSet    = "^CI"
	CmdFieldOrigin     = "^FO"
	CmdFont            = "^A"
	CmdDefaultFont     = "^CF"
	CmdGraphicBox      = "^GB"
	CmdGraphicField    = "^GF"
	CmdFieldData       = "^FD"
	CmdFieldHex        = "^FH"
	CmdFieldSeparator  = "^FS"
	CmdComment         = "^FX"
	CmdBarcodeCode128  = "^BC"
	CmdBarcodeDefaults = "^BY"
)

// JoinParameters builds a command parameter list. Parameters the caller left
// unset are passed as empty strings: trailing unset parameters are dropped
// entirely, while unset parameters followed by a set one keep their comma so
// later parameters stay in position. JoinParameters("220", "80", "", "0")
// yields "220,80,,0" and JoinParameters("220", "80", "", "") yields "220,80".
func JoinParameters(parameters ...string) string {
	trimmed := lo.DropRightWhile(parameters, func(parameter string) bool {
		return parameter == ""
	})
	return strings.Join(trimmed, ",")
}
