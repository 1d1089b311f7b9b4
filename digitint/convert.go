package digitint

import (
	"math/big"

	"fortio.org/safecast"

	"github.com/calebcase/radix/digit"
)

// The narrowing conversions below evaluate the magnitude with Horner's rule
// modulo 2^64 and then apply Go's truncating integer conversion, so values
// that do not fit wrap around. Use the Exact variants to detect overflow.

// Int64 returns x as an int64, wrapping on overflow.
func (x *Int) Int64() int64 {
	m := x.digits.uint64(x.radix)
	if x.negative {
		m = -m
	}

	return int64(m)
}

// Int32 returns x as an int32, wrapping on overflow.
func (x *Int) Int32() int32 { return int32(x.Int64()) }

// Int16 returns x as an int16, wrapping on overflow.
func (x *Int) Int16() int16 { return int16(x.Int64()) }

// Int8 returns x as an int8, wrapping on overflow.
func (x *Int) Int8() int8 { return int8(x.Int64()) }

// Int returns x as an int, wrapping on overflow.
func (x *Int) Int() int { return int(x.Int64()) }

// Uint64 returns x as a uint64, wrapping on overflow.
func (x *Int) Uint64() uint64 { return uint64(x.Int64()) }

// Uint32 returns x as a uint32, wrapping on overflow.
func (x *Int) Uint32() uint32 { return uint32(x.Int64()) }

// Uint16 returns x as a uint16, wrapping on overflow.
func (x *Int) Uint16() uint16 { return uint16(x.Int64()) }

// Uint8 returns x as a uint8, wrapping on overflow.
func (x *Int) Uint8() uint8 { return uint8(x.Int64()) }

// Uint returns x as a uint, wrapping on overflow.
func (x *Int) Uint() uint { return uint(x.Int64()) }

// Bool reports whether x is non-zero.
func (x *Int) Bool() bool { return !x.IsZero() }

// BigInt returns x as a *big.Int.
func (x *Int) BigInt() *big.Int {
	b := x.digits.big(x.radix)
	if x.negative {
		b.Neg(b)
	}

	return b
}

// Float64 returns the float64 nearest to x.
func (x *Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.BigInt()).Float64()

	return f
}

// Float32 returns the float32 nearest to x.
func (x *Int) Float32() float32 {
	f, _ := new(big.Float).SetInt(x.BigInt()).Float32()

	return f
}

// Int64Exact returns x as an int64 or a RangeError if it does not fit.
func (x *Int) Int64Exact() (int64, error) {
	b := x.BigInt()
	if !b.IsInt64() {
		return 0, digit.RangeError.New("%s (radix %d) overflows int64", x, x.radix)
	}

	return b.Int64(), nil
}

// Int32Exact returns x as an int32 or a RangeError if it does not fit.
func (x *Int) Int32Exact() (int32, error) {
	v, err := x.Int64Exact()
	if err != nil {
		return 0, err
	}

	n, err := safecast.Conv[int32](v)
	if err != nil {
		return 0, digit.RangeError.Wrap(err)
	}

	return n, nil
}

// Uint64Exact returns x as a uint64 or a RangeError if it does not fit.
func (x *Int) Uint64Exact() (uint64, error) {
	b := x.BigInt()
	if !b.IsUint64() {
		return 0, digit.RangeError.New("%s (radix %d) overflows uint64", x, x.radix)
	}

	return b.Uint64(), nil
}

// Uint32Exact returns x as a uint32 or a RangeError if it does not fit.
func (x *Int) Uint32Exact() (uint32, error) {
	v, err := x.Uint64Exact()
	if err != nil {
		return 0, err
	}

	n, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, digit.RangeError.Wrap(err)
	}

	return n, nil
}
