package digitint

import (
	"github.com/calebcase/radix/digit"
)

// commonRadix returns the radix shared by all non-nil values, or zero if
// there are none.
func commonRadix(values []*Int) (radix int, err error) {
	for _, v := range values {
		if v == nil {
			continue
		}

		if radix == 0 {
			radix = v.radix

			continue
		}

		if v.radix != radix {
			return 0, FormatError.New("radix mismatch: %d and %d", radix, v.radix)
		}
	}

	return radix, nil
}

func checkNonNil(values []*Int) error {
	for i, v := range values {
		if v == nil {
			return InvalidOperationError.New("nil value at %d", i)
		}
	}

	return nil
}

// Sum returns the sum of values. The sum of no values is zero in radix 10.
func Sum(values ...*Int) (*Int, error) {
	err := checkNonNil(values)
	if err != nil {
		return nil, err
	}

	radix, err := commonRadix(values)
	if err != nil {
		return nil, err
	}

	if radix == 0 {
		radix = digit.DefaultRadix
	}

	sum := &Int{digits: nat{0}, radix: radix}
	for _, v := range values {
		sum = sum.add(v)
	}

	return sum, nil
}

// Product returns the product of values. The product of no values is one in
// radix 10.
func Product(values ...*Int) (*Int, error) {
	err := checkNonNil(values)
	if err != nil {
		return nil, err
	}

	radix, err := commonRadix(values)
	if err != nil {
		return nil, err
	}

	if radix == 0 {
		radix = digit.DefaultRadix
	}

	product := &Int{digits: nat{1}, radix: radix}
	for _, v := range values {
		if v.IsZero() {
			return &Int{digits: nat{0}, radix: radix}, nil
		}

		product = product.mul(v)
	}

	return product, nil
}

// Max returns the largest of values. Nil values are ignored.
func Max(values ...*Int) (*Int, error) {
	return extreme(values, 1)
}

// Min returns the smallest of values. Nil values are ignored.
func Min(values ...*Int) (*Int, error) {
	return extreme(values, -1)
}

func extreme(values []*Int, want int) (*Int, error) {
	_, err := commonRadix(values)
	if err != nil {
		return nil, err
	}

	var best *Int
	for _, v := range values {
		if v == nil {
			continue
		}

		if best == nil || v.Cmp(best) == want {
			best = v
		}
	}

	if best == nil {
		return nil, InvalidOperationError.New("no values")
	}

	return best.Copy(), nil
}

// DigitSum returns the sum of the digits of x in the radix of x.
func (x *Int) DigitSum() *Int {
	sum := x.unit(0)
	for _, d := range x.digits {
		sum = sum.add(x.unit(d))
	}

	return sum
}

// DigitProduct returns the product of the digits of x in the radix of x.
func (x *Int) DigitProduct() *Int {
	product := x.unit(1)
	for _, d := range x.digits {
		if d == 0 {
			return x.unit(0)
		}

		product = product.mul(x.unit(d))
	}

	return product
}

// AdditivePersistence repeatedly replaces x by its digit sum until a single
// digit remains. It returns the number of iterations and the remaining digit
// (the digital root).
func (x *Int) AdditivePersistence() (int, digit.Digit) {
	return x.persistence((*Int).DigitSum)
}

// MultiplicativePersistence repeatedly replaces x by its digit product until
// a single digit remains. It returns the number of iterations and the
// remaining digit.
func (x *Int) MultiplicativePersistence() (int, digit.Digit) {
	return x.persistence((*Int).DigitProduct)
}

func (x *Int) persistence(step func(*Int) *Int) (n int, root digit.Digit) {
	v := x.Abs()
	for ; v.Len() > 1; n++ {
		v = step(v)
	}

	// A single digit is always below the radix.
	root, _ = v.LSD(0)

	return n, root
}
