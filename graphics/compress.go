package graphics

import "strings"

// Run length code points of the compressed graphic format. An uppercase
// letter G-Y counts 1-19 repeats, a lowercase letter g-z counts multiples of
// 20 up to 400. Larger runs chain letters, highest first.
const (
	repeatBase    = 'G'
	multipleBase  = 'g'
	multipleUnit  = 20
	multipleLimit = 400

	lineRepeat = ':'
	fillZero   = ','
	fillOne    = '!'
)

// Compress rewrites an ASCII hexadecimal graphic payload in the printer's
// run length compressed form. The payload is processed one raster line at a
// time, bytesPerRow bytes (twice that in characters) per line:
//
//   - a line identical to the previous one collapses to ":"
//   - a full line of "0" characters collapses to ","
//   - a full line of "1" characters collapses to "!"
//   - anything else is run length encoded, with a trailing run of "0" or "1"
//     on a full line replaced by the matching fill character
//
// An empty payload or a non-positive stride is returned unchanged.
func Compress(payload string, bytesPerRow int) string {
	if payload == "" || bytesPerRow <= 0 {
		return payload
	}
	lineLength := bytesPerRow * 2

	var out strings.Builder
	previous := ""
	for start := 0; start < len(payload); start += lineLength {
		end := start + lineLength
		if end > len(payload) {
			end = len(payload)
		}
		line := payload[start:end]
		full := len(line) == lineLength

		switch {
		case line == previous:
			out.WriteByte(lineRepeat)
		case full && uniform(line, '0'):
			out.WriteByte(fillZero)
		case full && uniform(line, '1'):
			out.WriteByte(fillOne)
		default:
			encodeLine(&out, line, full)
		}
		previous = line
	}
	return out.String()
}

func uniform(line string, c byte) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}
	return true
}

func encodeLine(out *strings.Builder, line string, full bool) {
	for start := 0; start < len(line); {
		c := line[start]
		end := start
		for end < len(line) && line[end] == c {
			end++
		}

		// A trailing run of "0" or "1" on a full line means "fill the rest
		// of the line", which has a one character form.
		if full && end == len(line) && c == '0' {
			out.WriteByte(fillZero)
			return
		}
		if full && end == len(line) && c == '1' {
			out.WriteByte(fillOne)
			return
		}

		encodeRun(out, c, end-start)
		start = end
	}
}

func encodeRun(out *strings.Builder, c byte, count int) {
	if count <= 2 {
		for i := 0; i < count; i++ {
			out.WriteByte(c)
		}
		return
	}
	for count >= multipleUnit {
		multiple := count / multipleUnit * multipleUnit
		if multiple > multipleLimit {
			multiple = multipleLimit
		}
		out.WriteByte(byte(multipleBase + multiple/multipleUnit - 1))
		count -= multiple
	}
	if count > 0 {
		out.WriteByte(byte(repeatBase + count - 1))
	}
	out.WriteByte(c)
}
