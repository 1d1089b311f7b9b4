package digitint

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/radix/digit"
)

// FormatError is the class of errors for operands that do not share a radix
// and for malformed encodings.
var FormatError = errs.Class("format")

// DivideByZeroError is the class of errors for division by zero.
var DivideByZeroError = errs.Class("divide by zero")

// InvalidOperationError is the class of errors for operations that cannot be
// applied to their arguments.
var InvalidOperationError = errs.Class("invalid operation")

// Int is a signed integer of unbounded magnitude stored as digits in a fixed
// radix.
//
// The zero value is not ready for use; create values with the constructors.
type Int struct {
	digits   nat
	radix    int
	negative bool
}

// canon builds an Int in canonical form: no leading zeros and no negative
// zero.
func canon(digits nat, radix int, negative bool) *Int {
	digits = digits.norm()

	return &Int{
		digits:   digits,
		radix:    radix,
		negative: negative && !digits.isZero(),
	}
}

// New returns a positive radix 10 value from most significant first digits.
func New(digits ...byte) (*Int, error) {
	return NewRadix(digits, digit.DefaultRadix, false)
}

// NewRadix returns a value from most significant first digits.
func NewRadix(digits []byte, radix int, negative bool) (*Int, error) {
	err := digit.CheckRadix(radix)
	if err != nil {
		return nil, err
	}

	z := make(nat, len(digits))
	for i, d := range digits {
		if int(d) >= radix {
			return nil, digit.RangeError.New("digit %d at %d not in [0, %d)", d, i, radix)
		}

		z[len(digits)-1-i] = d
	}

	return canon(z, radix, negative), nil
}

// Zero returns zero in the given radix.
func Zero(radix int) (*Int, error) {
	err := digit.CheckRadix(radix)
	if err != nil {
		return nil, err
	}

	return &Int{digits: nat{0}, radix: radix}, nil
}

// One returns one in the given radix.
func One(radix int) (*Int, error) {
	err := digit.CheckRadix(radix)
	if err != nil {
		return nil, err
	}

	return &Int{digits: nat{1}, radix: radix}, nil
}

// FromInt64 returns v in radix 10.
func FromInt64(v int64) *Int {
	x, _ := FromInt64Radix(v, digit.DefaultRadix)

	return x
}

// FromInt64Radix returns v in the given radix.
func FromInt64Radix(v int64, radix int) (*Int, error) {
	err := digit.CheckRadix(radix)
	if err != nil {
		return nil, err
	}

	negative := v < 0

	m := uint64(v)
	if negative {
		// Two's complement negation also covers math.MinInt64.
		m = -m
	}

	return canon(natFromUint64(m, radix), radix, negative), nil
}

// FromUint64Radix returns v in the given radix.
func FromUint64Radix(v uint64, radix int) (*Int, error) {
	err := digit.CheckRadix(radix)
	if err != nil {
		return nil, err
	}

	return canon(natFromUint64(v, radix), radix, false), nil
}

// FromBigInt returns b in the given radix.
func FromBigInt(b *big.Int, radix int) (*Int, error) {
	err := digit.CheckRadix(radix)
	if err != nil {
		return nil, err
	}

	return canon(natFromBig(b, radix), radix, b.Sign() < 0), nil
}

// Radix returns the radix of x.
func (x *Int) Radix() int { return x.radix }

// Negative reports whether x is less than zero.
func (x *Int) Negative() bool { return x.negative }

// Len returns the number of digits of x.
func (x *Int) Len() int { return len(x.digits) }

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.digits.isZero() }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.negative:
		return -1
	}

	return 1
}

// Digits returns a copy of the digits of x, most significant first.
func (x *Int) Digits() []byte {
	ds := make([]byte, len(x.digits))
	for i, d := range x.digits {
		ds[len(ds)-1-i] = d
	}

	return ds
}

// Copy returns a deep copy of x.
func (x *Int) Copy() *Int {
	return &Int{
		digits:   x.digits.clone(),
		radix:    x.radix,
		negative: x.negative,
	}
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	z := x.Copy()
	z.negative = false

	return z
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	z := x.Copy()
	z.negative = !z.negative && !z.IsZero()

	return z
}

// LSD returns the digit at position i counting from the least significant
// digit.
func (x *Int) LSD(i int) (digit.Digit, error) {
	if i < 0 || i >= len(x.digits) {
		return digit.Digit{}, digit.RangeError.New("index %d not in [0, %d)", i, len(x.digits))
	}

	return digit.NewRadix(int(x.digits[i]), x.radix)
}

// MSD returns the digit at position i counting from the most significant
// digit.
func (x *Int) MSD(i int) (digit.Digit, error) {
	if i < 0 || i >= len(x.digits) {
		return digit.Digit{}, digit.RangeError.New("index %d not in [0, %d)", i, len(x.digits))
	}

	return x.LSD(len(x.digits) - 1 - i)
}

// SetLSD sets the digit at position i counting from the least significant
// digit. Setting the most significant digit to zero shortens x.
func (x *Int) SetLSD(i int, v int) error {
	if i < 0 || i >= len(x.digits) {
		return digit.RangeError.New("index %d not in [0, %d)", i, len(x.digits))
	}

	if v < 0 || v >= x.radix {
		return InvalidOperationError.New("digit %d not representable in radix %d", v, x.radix)
	}

	z := x.digits.clone()
	z[i] = byte(v)

	*x = *canon(z, x.radix, x.negative)

	return nil
}

// SetMSD sets the digit at position i counting from the most significant
// digit.
func (x *Int) SetMSD(i int, v int) error {
	if i < 0 || i >= len(x.digits) {
		return digit.RangeError.New("index %d not in [0, %d)", i, len(x.digits))
	}

	return x.SetLSD(len(x.digits)-1-i, v)
}

// SetRadix converts x in place to a new radix, preserving its value.
func (x *Int) SetRadix(radix int) error {
	err := digit.CheckRadix(radix)
	if err != nil {
		return err
	}

	if radix == x.radix {
		return nil
	}

	*x = *canon(natFromBig(x.digits.big(x.radix), radix), radix, x.negative)

	return nil
}

// ToRadix returns x converted to a new radix.
func (x *Int) ToRadix(radix int) (*Int, error) {
	z := x.Copy()

	err := z.SetRadix(radix)
	if err != nil {
		return nil, err
	}

	return z, nil
}
