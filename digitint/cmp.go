package digitint

// Cmp compares x and y and returns -1, 0 or +1. A nil y is always smaller.
//
// The radix is not part of the ordering: operands of different radices are
// compared by their stored digits.
func (x *Int) Cmp(y *Int) int {
	if y == nil {
		return 1
	}

	switch {
	case x.negative && !y.negative:
		return -1
	case !x.negative && y.negative:
		return 1
	case x.negative && y.negative:
		return cmpNat(y.digits, x.digits)
	}

	return cmpNat(x.digits, y.digits)
}

// Equal reports whether x and y have the same radix, sign and digits. Values
// in different radices are never equal, even when they are numerically the
// same; convert first to compare values across radices.
func (x *Int) Equal(y *Int) bool {
	if x == nil || y == nil {
		return false
	}

	return x.radix == y.radix &&
		x.negative == y.negative &&
		cmpNat(x.digits, y.digits) == 0
}

// Less reports whether x < y in the order of Cmp.
func (x *Int) Less(y *Int) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x <= y in the order of Cmp.
func (x *Int) LessOrEqual(y *Int) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y in the order of Cmp.
func (x *Int) Greater(y *Int) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports whether x >= y in the order of Cmp.
func (x *Int) GreaterOrEqual(y *Int) bool { return x.Cmp(y) >= 0 }
