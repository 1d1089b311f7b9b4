package digitint

import "math"

func (x *Int) sameRadix(y *Int) error {
	if x.radix != y.radix {
		return FormatError.New("radix mismatch: %d and %d", x.radix, y.radix)
	}

	return nil
}

// Add returns x + y.
func (x *Int) Add(y *Int) (*Int, error) {
	err := x.sameRadix(y)
	if err != nil {
		return nil, err
	}

	return x.add(y), nil
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) (*Int, error) {
	err := x.sameRadix(y)
	if err != nil {
		return nil, err
	}

	return x.sub(y), nil
}

// add and sub only handle non-negative operands directly and reduce every
// other sign combination to that case.
func (x *Int) add(y *Int) *Int {
	if y.negative {
		return x.sub(y.Neg())
	}

	if x.negative {
		return y.sub(x.Neg())
	}

	return canon(addNat(x.digits, y.digits, x.radix), x.radix, false)
}

func (x *Int) sub(y *Int) *Int {
	if y.negative {
		return x.add(y.Neg())
	}

	if x.negative {
		return x.Neg().add(y).Neg()
	}

	if cmpNat(y.digits, x.digits) > 0 {
		return y.sub(x).Neg()
	}

	return canon(subNat(x.digits, y.digits, x.radix), x.radix, false)
}

// Inc returns x + 1.
func (x *Int) Inc() *Int {
	return x.add(x.unit(1))
}

// Dec returns x - 1.
func (x *Int) Dec() *Int {
	return x.sub(x.unit(1))
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) (*Int, error) {
	err := x.sameRadix(y)
	if err != nil {
		return nil, err
	}

	return x.mul(y), nil
}

func (x *Int) mul(y *Int) *Int {
	return canon(mulNat(x.digits, y.digits, x.radix), x.radix, x.negative != y.negative)
}

// DivMod returns the quotient and remainder of x / y using truncated
// division: the quotient rounds toward zero and the remainder has the sign
// of x, so that x == q*y + r and |r| < |y|. This matches Go's / and %
// operators.
func (x *Int) DivMod(y *Int) (q, r *Int, err error) {
	err = x.sameRadix(y)
	if err != nil {
		return nil, nil, err
	}

	if y.IsZero() {
		return nil, nil, DivideByZeroError.New("%s / %s", x, y)
	}

	qd, rd := divNat(x.digits, y.digits, x.radix)

	q = canon(qd, x.radix, x.negative != y.negative)
	r = canon(rd, x.radix, x.negative)

	return q, r, nil
}

// Div returns the truncated quotient x / y.
func (x *Int) Div(y *Int) (*Int, error) {
	q, _, err := x.DivMod(y)

	return q, err
}

// Mod returns the truncated remainder x % y. It has the sign of x.
func (x *Int) Mod(y *Int) (*Int, error) {
	_, r, err := x.DivMod(y)

	return r, err
}

// DivModEuclid returns the quotient and remainder of Euclidean division:
// x == q*y + r with 0 <= r < |y|.
func (x *Int) DivModEuclid(y *Int) (q, r *Int, err error) {
	q, r, err = x.DivMod(y)
	if err != nil {
		return nil, nil, err
	}

	if r.negative {
		if y.negative {
			q = q.Inc()
		} else {
			q = q.Dec()
		}

		r = r.add(y.Abs())
	}

	return q, r, nil
}

// Lsh returns x shifted left by n digits, i.e. x * radix^n. A negative n
// shifts right. Lsh panics if the result would have more than math.MaxInt
// digits.
func (x *Int) Lsh(n int) *Int {
	if n == math.MinInt {
		// -n overflows; no magnitude has that many digits.
		return x.unit(0)
	}

	if n < 0 {
		return x.Rsh(-n)
	}

	return canon(lshNat(x.digits, n), x.radix, x.negative)
}

// Rsh returns x shifted right by n digits, dropping the n least significant
// digits of the magnitude. A negative n shifts left, with the same limit as
// Lsh.
func (x *Int) Rsh(n int) *Int {
	if n == math.MinInt {
		// -n overflows; split the left shift.
		return x.Lsh(math.MaxInt).Lsh(1)
	}

	if n < 0 {
		return x.Lsh(-n)
	}

	return canon(rshNat(x.digits, n), x.radix, x.negative)
}

// unit returns the single digit value d in the radix of x.
func (x *Int) unit(d byte) *Int {
	return &Int{digits: nat{d}, radix: x.radix}
}
