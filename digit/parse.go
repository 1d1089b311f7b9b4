package digit

import (
	"strconv"
	"strings"
)

// Parse reads one rendered digit from the front of s and returns it along
// with the number of bytes consumed.
func Parse(s string, radix int) (d Digit, n int, err error) {
	err = CheckRadix(radix)
	if err != nil {
		return d, 0, err
	}

	if len(s) == 0 {
		return d, 0, SyntaxError.New("empty digit")
	}

	var v int

	c := s[0]
	switch {
	case c >= '0' && c <= '9':
		v, n = int(c-'0'), 1
	case c >= 'A' && c <= 'Z':
		v, n = int(c-'A')+10, 1
	case c >= 'a' && c <= 'z':
		v, n = int(c-'a')+10, 1
	case c == '(':
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return d, 0, SyntaxError.New("unterminated digit literal %q", s)
		}

		v, err = strconv.Atoi(s[1:end])
		if err != nil || s[1] == '+' || s[1] == '-' {
			return d, 0, SyntaxError.New("invalid digit literal %q", s[:end+1])
		}

		n = end + 1
	default:
		return d, 0, SyntaxError.New("invalid digit %q", c)
	}

	d, err = NewRadix(v, radix)
	if err != nil {
		return d, 0, err
	}

	return d, n, nil
}
