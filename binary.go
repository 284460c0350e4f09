package hkdebug

import (
	"errors"
	"strings"
)

// ErrBadEscape is returned by ParseBinaryString for a truncated or unknown
// escape sequence.
var ErrBadEscape = errors.New("hkdebug: malformed escape in binary string")

const hexDigits = "0123456789ABCDEF"

// BinaryToString renders data for a log line. Printable ASCII is kept as is,
// a backslash becomes `\\` and every other byte becomes `\xHH`:
//
//	BinaryToString([]byte{0x00, 0xFF, 'A'}) == `\x00\xFFA`
//
// The result is a new string owned by the caller. ParseBinaryString reverses
// it.
func BinaryToString(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(renderedLen(data))
	for _, c := range data {
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c >= 0x20 && c < 0x7F:
			b.WriteByte(c)
		default:
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0F])
		}
	}
	return b.String()
}

func renderedLen(data []byte) int {
	n := 0
	for _, c := range data {
		switch {
		case c == '\\':
			n += 2
		case c >= 0x20 && c < 0x7F:
			n++
		default:
			n += 4
		}
	}
	return n
}

// ParseBinaryString decodes the output of BinaryToString. Hex digits are
// accepted in either case.
func ParseBinaryString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if i+1 >= len(s) {
			return nil, ErrBadEscape
		}
		switch s[i+1] {
		case '\\':
			out = append(out, '\\')
			i++
		case 'x':
			if i+3 >= len(s) {
				return nil, ErrBadEscape
			}
			hi, ok1 := unhex(s[i+2])
			lo, ok2 := unhex(s[i+3])
			if !ok1 || !ok2 {
				return nil, ErrBadEscape
			}
			out = append(out, hi<<4|lo)
			i += 3
		default:
			return nil, ErrBadEscape
		}
	}
	return out, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
