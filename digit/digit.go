package digit

import (
	"strconv"

	"github.com/zeebo/errs"
)

// RangeError is the class of errors for values outside their allowed range:
// digits not below their radix, unsupported radices and out of range
// positions.
var RangeError = errs.Class("range")

// SyntaxError is the class of errors for malformed digit text.
var SyntaxError = errs.Class("syntax")

// Radix bounds.
const (
	MinRadix     = 2
	MaxRadix     = 255
	DefaultRadix = 10
)

// Digit is a single value bounded by its radix.
type Digit struct {
	value uint8
	radix uint8
}

// New returns a radix 10 digit.
func New(value int) (Digit, error) {
	return NewRadix(value, DefaultRadix)
}

// NewRadix returns a digit with the given value and radix.
func NewRadix(value, radix int) (d Digit, err error) {
	err = CheckRadix(radix)
	if err != nil {
		return d, err
	}

	if value < 0 || value >= radix {
		return d, RangeError.New("digit %d not in [0, %d)", value, radix)
	}

	return Digit{
		value: uint8(value),
		radix: uint8(radix),
	}, nil
}

// CheckRadix returns a RangeError if radix is not supported.
func CheckRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return RangeError.New("radix %d not in [%d, %d]", radix, MinRadix, MaxRadix)
	}

	return nil
}

// Value returns the digit value.
func (d Digit) Value() uint8 { return d.value }

// Radix returns the radix bounding the digit.
func (d Digit) Radix() uint8 { return d.radix }

// Uint8 returns the digit value as a uint8.
func (d Digit) Uint8() uint8 { return d.value }

// Uint16 returns the digit value as a uint16.
func (d Digit) Uint16() uint16 { return uint16(d.value) }

// Uint32 returns the digit value as a uint32.
func (d Digit) Uint32() uint32 { return uint32(d.value) }

// Uint64 returns the digit value as a uint64.
func (d Digit) Uint64() uint64 { return uint64(d.value) }

// Int returns the digit value as an int.
func (d Digit) Int() int { return int(d.value) }

// Int64 returns the digit value as an int64.
func (d Digit) Int64() int64 { return int64(d.value) }

// Rune returns the character for the digit, or '?' if the value has no
// single character form.
func (d Digit) Rune() rune {
	return Rune(d.value)
}

// Rune returns the character for a raw digit value, or '?' if the value has
// no single character form.
func Rune(v uint8) rune {
	switch {
	case v < 10:
		return rune('0' + v)
	case v < 36:
		return rune('A' + v - 10)
	}

	return '?'
}

// String renders the digit. Values without a single character form render
// as a parenthesized decimal literal.
func (d Digit) String() string {
	return Format(d.value)
}

// Format renders a raw digit value the same way Digit.String does.
func Format(v uint8) string {
	if v < 36 {
		return string(Rune(v))
	}

	return "(" + strconv.Itoa(int(v)) + ")"
}

// Cmp compares the raw values of d and o. A nil o is always smaller.
func (d Digit) Cmp(o *Digit) int {
	if o == nil {
		return 1
	}

	switch {
	case d.value < o.value:
		return -1
	case d.value > o.value:
		return 1
	}

	return 0
}
