package document

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/ChicagoSwoles/PDF-Intelligence/model"
)

// stringLitRe matches PDF literal strings, honouring escaped parentheses.
var stringLitRe = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// hexLitRe matches PDF hexadecimal strings: <FEFF0041...>
var hexLitRe = regexp.MustCompile(`<([0-9A-Fa-f \t\r\n]+)>`)

// textFromContent walks a page content stream line by line and collects the
// text carried by the showing operators (Tj, TJ, ', ") while turning the
// positioning operators (Td, TD, T*) into line breaks. Preserving line
// structure matters: the structure analyzer works on lines.
func textFromContent(data []byte) string {
	var sb strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			writeLiterals(&sb, line)
		case bytes.HasSuffix(line, []byte("'")), bytes.HasSuffix(line, []byte(`"`)):
			if bytes.ContainsAny(line, "(<") {
				sb.WriteByte('\n')
				writeLiterals(&sb, line)
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")),
			bytes.Equal(line, []byte("T*")):
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
		}
	}
	return tidyText(sb.String())
}

func writeLiterals(sb *strings.Builder, line []byte) {
	for _, m := range stringLitRe.FindAllSubmatch(line, -1) {
		sb.WriteString(decodeString(m[1]))
	}
	for _, m := range hexLitRe.FindAllSubmatch(line, -1) {
		sb.WriteString(decodeHexString(m[1]))
	}
}

// decodeString resolves the escape sequences of a PDF literal string. A
// decoded string starting with a UTF-16BE byte order mark is transcoded.
func decodeString(raw []byte) string {
	var out []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out = append(out, raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case '\\', '(', ')':
			out = append(out, raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				out = append(out, byte(val))
			} else {
				out = append(out, raw[i])
			}
		}
	}
	return decodeUTF16IfTagged(out)
}

func decodeHexString(raw []byte) string {
	var hex []byte
	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
			hex = append(hex, c)
		}
	}
	if len(hex)%2 == 1 {
		hex = append(hex, '0') // PDF pads a trailing zero nibble
	}
	out := make([]byte, 0, len(hex)/2)
	for i := 0; i+1 < len(hex); i += 2 {
		hi, _ := strconv.ParseUint(string(hex[i:i+2]), 16, 8)
		out = append(out, byte(hi))
	}
	return decodeUTF16IfTagged(out)
}

func decodeUTF16IfTagged(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		if s, err := dec.Bytes(b); err == nil {
			return string(s)
		}
	}
	return string(b)
}

// tidyText trims each line and drops runs of blank lines while keeping the
// line structure intact.
func tidyText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// placementsFromContent scans the content stream tokens for transformation
// matrices (cm) followed by XObject invocations (Do) and derives each
// image's bounding box from the current transform. The unit image square
// maps to a box at the matrix translation with the matrix scale as extent.
func placementsFromContent(data []byte) map[string]model.BBox {
	tokens := strings.Fields(string(data))
	type matrix [6]float64
	identity := matrix{1, 0, 0, 1, 0, 0}

	ctm := identity
	var stack []matrix
	var boxes map[string]model.BBox

	for i, tok := range tokens {
		switch tok {
		case "q":
			stack = append(stack, ctm)
		case "Q":
			if n := len(stack); n > 0 {
				ctm = stack[n-1]
				stack = stack[:n-1]
			}
		case "cm":
			if i < 6 {
				continue
			}
			var m matrix
			ok := true
			for j := 0; j < 6; j++ {
				v, err := strconv.ParseFloat(tokens[i-6+j], 64)
				if err != nil {
					ok = false
					break
				}
				m[j] = v
			}
			if !ok {
				continue
			}
			// CTM' = m × CTM
			ctm = matrix{
				m[0]*ctm[0] + m[1]*ctm[2],
				m[0]*ctm[1] + m[1]*ctm[3],
				m[2]*ctm[0] + m[3]*ctm[2],
				m[2]*ctm[1] + m[3]*ctm[3],
				m[4]*ctm[0] + m[5]*ctm[2] + ctm[4],
				m[4]*ctm[1] + m[5]*ctm[3] + ctm[5],
			}
		case "Do":
			if i == 0 || !strings.HasPrefix(tokens[i-1], "/") {
				continue
			}
			name := strings.TrimPrefix(tokens[i-1], "/")
			if boxes == nil {
				boxes = make(map[string]model.BBox)
			}
			if _, seen := boxes[name]; !seen {
				w := ctm[0]
				if w < 0 {
					w = -w
				}
				h := ctm[3]
				if h < 0 {
					h = -h
				}
				boxes[name] = model.NewBBox(ctm[4], ctm[5], w, h)
			}
		}
	}
	return boxes
}
