package digitint

import (
	"strings"

	"github.com/calebcase/radix/digit"
)

// String renders x most significant digit first with a leading '-' when
// negative. The radix is not included.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}

	sb := &strings.Builder{}
	sb.Grow(len(x.digits) + 1)

	if x.negative {
		sb.WriteByte('-')
	}

	for i := len(x.digits) - 1; i >= 0; i-- {
		sb.WriteString(digit.Format(x.digits[i]))
	}

	return sb.String()
}

// Parse reads a value rendered by String in the given radix. An optional
// leading '+' or '-' is accepted.
func Parse(s string, radix int) (*Int, error) {
	err := digit.CheckRadix(radix)
	if err != nil {
		return nil, err
	}

	negative := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	if len(s) == 0 {
		return nil, FormatError.New("no digits")
	}

	var ds []byte
	for len(s) > 0 {
		d, n, err := digit.Parse(s, radix)
		if err != nil {
			if digit.SyntaxError.Has(err) {
				return nil, FormatError.Wrap(err)
			}

			return nil, err
		}

		ds = append(ds, d.Value())
		s = s[n:]
	}

	return NewRadix(ds, radix, negative)
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is read in
// the radix of x, or radix 10 if x has none.
func (x *Int) UnmarshalText(text []byte) (err error) {
	radix := x.radix
	if radix == 0 {
		radix = digit.DefaultRadix
	}

	z, err := Parse(string(text), radix)
	if err != nil {
		return err
	}

	*x = *z

	return nil
}
