package suite

import (
	"fmt"

	"github.com/dargueta/rlezoo"
)

var ErrEscapeTruncated = rlezoo.ErrInvalidArgument.WithMessage("escape sequence ends early")
var ErrEscapeHex = rlezoo.ErrInvalidArgument.WithMessage("invalid hex escape")
var ErrEscapeDecimal = rlezoo.ErrInvalidArgument.WithMessage("invalid decimal escape")
var ErrEscapeChar = rlezoo.ErrInvalidArgument.WithMessage("unknown escape character")

var simpleEscapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
}

func hexValue(c byte) (byte, bool) {
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

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ExpandEscapes converts a string containing C-style escape sequences to the
// bytes it represents. Supported sequences are `\xHH` with exactly two hex
// digits, `\N` to `\NNN` giving a decimal value up to 255, and the single
// character escapes `\a \b \f \n \r \t \v \" \' \\`.
func ExpandEscapes(text string) ([]byte, error) {
	output := make([]byte, 0, len(text))

	for i := 0; i < len(text); i++ {
		if text[i] != '\\' {
			output = append(output, text[i])
			continue
		}

		start := i
		i++
		if i >= len(text) {
			return nil, ErrEscapeTruncated.WithMessage(fmt.Sprintf("at position %d", start))
		}

		c := text[i]
		switch {
		case c == 'x':
			if i+2 >= len(text) {
				return nil, ErrEscapeHex.WithMessage(fmt.Sprintf("at position %d", start))
			}
			high, okHigh := hexValue(text[i+1])
			low, okLow := hexValue(text[i+2])
			if !okHigh || !okLow {
				return nil, ErrEscapeHex.WithMessage(fmt.Sprintf("at position %d", start))
			}
			output = append(output, high<<4|low)
			i += 2

		case isDigit(c):
			value := 0
			digits := 0
			for digits < 3 && i < len(text) && isDigit(text[i]) {
				value = value*10 + int(text[i]-'0')
				digits++
				i++
			}
			// Back up so the loop increment lands on the next unread byte.
			i--
			if value > 255 {
				return nil, ErrEscapeDecimal.WithMessage(
					fmt.Sprintf("value %d at position %d", value, start))
			}
			output = append(output, byte(value))

		default:
			replacement, ok := simpleEscapes[c]
			if !ok {
				return nil, ErrEscapeChar.WithMessage(
					fmt.Sprintf("%q at position %d", c, start))
			}
			output = append(output, replacement)
		}
	}
	return output, nil
}
