package digitint

import (
	"math"
	"math/big"
)

// nat is an unsigned magnitude stored least significant digit first. A
// normalized nat has at least one digit and no most significant zeros.
type nat []byte

func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}

	if i == 0 {
		return nat{0}
	}

	return z[:i]
}

func (z nat) isZero() bool {
	return len(z) == 1 && z[0] == 0
}

func (z nat) clone() nat {
	c := make(nat, len(z))
	copy(c, z)

	return c
}

// at returns the digit at position i, or zero past the end.
func (z nat) at(i int) int {
	if i < len(z) {
		return int(z[i])
	}

	return 0
}

func natFromUint64(v uint64, radix int) nat {
	if v == 0 {
		return nat{0}
	}

	r := uint64(radix)
	z := make(nat, 0, 8)
	for ; v > 0; v /= r {
		z = append(z, byte(v%r))
	}

	return z
}

func natFromBig(b *big.Int, radix int) nat {
	if b.Sign() == 0 {
		return nat{0}
	}

	v := new(big.Int).Abs(b)
	r := big.NewInt(int64(radix))
	m := new(big.Int)

	z := make(nat, 0, v.BitLen())
	for v.Sign() > 0 {
		v.QuoRem(v, r, m)
		z = append(z, byte(m.Uint64()))
	}

	return z
}

// big evaluates the magnitude with Horner's rule, most significant digit
// first.
func (z nat) big(radix int) *big.Int {
	acc := new(big.Int)
	r := big.NewInt(int64(radix))
	d := new(big.Int)

	for i := len(z) - 1; i >= 0; i-- {
		acc.Mul(acc, r)
		acc.Add(acc, d.SetUint64(uint64(z[i])))
	}

	return acc
}

// uint64 evaluates the magnitude with Horner's rule modulo 2^64.
func (z nat) uint64(radix int) uint64 {
	var acc uint64

	r := uint64(radix)
	for i := len(z) - 1; i >= 0; i-- {
		acc = acc*r + uint64(z[i])
	}

	return acc
}

func cmpNat(x, y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}

		return 1
	}

	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}

	return 0
}

func addNat(x, y nat, radix int) nat {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}

	z := make(nat, 0, n+1)
	carry := 0
	for i := 0; i < n || carry != 0; i++ {
		sum := x.at(i) + y.at(i) + carry
		z = append(z, byte(sum%radix))
		carry = sum / radix
	}

	return z.norm()
}

// subNat returns x - y. It requires x >= y.
func subNat(x, y nat, radix int) nat {
	z := make(nat, len(x))
	borrow := 0
	for i := range x {
		m := x.at(i)
		s := y.at(i) + borrow

		borrow = 0
		if s > m {
			m += radix
			borrow = 1
		}

		z[i] = byte(m - s)
	}

	// Callers must guarantee x >= y: sub swaps its operands and divNat
	// compares before subtracting.
	if borrow != 0 {
		panic("digitint: subtraction underflow")
	}

	return z.norm()
}

// mulNat is the schoolbook multiply-accumulate.
func mulNat(x, y nat, radix int) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}

	acc := make([]int, len(x)+len(y))
	for i, a := range x {
		if a == 0 {
			continue
		}

		carry := 0
		for j, b := range y {
			t := acc[i+j] + int(a)*int(b) + carry
			acc[i+j] = t % radix
			carry = t / radix
		}

		for k := i + len(y); carry != 0; k++ {
			t := acc[k] + carry
			acc[k] = t % radix
			carry = t / radix
		}
	}

	z := make(nat, len(acc))
	for i, v := range acc {
		z[i] = byte(v)
	}

	return z.norm()
}

// divNat is long division. Each quotient digit is found by repeatedly
// subtracting v from the running remainder, which is always less than
// v*radix, so no digit needs more than radix-1 subtractions. It requires a
// non-zero v.
func divNat(u, v nat, radix int) (q, r nat) {
	if cmpNat(u, v) < 0 {
		return nat{0}, u.clone()
	}

	q = make(nat, len(u))
	r = nat{0}
	for i := len(u) - 1; i >= 0; i-- {
		r = lshNat(r, 1)
		r[0] = u[i]
		r = r.norm()

		var qd byte
		for cmpNat(r, v) >= 0 {
			r = subNat(r, v, radix)
			qd++
		}

		q[i] = qd
	}

	return q.norm(), r
}

// lshNat inserts n zero digits at the least significant end.
func lshNat(x nat, n int) nat {
	if x.isZero() {
		return nat{0}
	}

	if n > math.MaxInt-len(x) {
		panic("digitint: shift overflows digit count")
	}

	z := make(nat, len(x)+n)
	copy(z[n:], x)

	return z
}

// rshNat drops the n least significant digits.
func rshNat(x nat, n int) nat {
	if n >= len(x) {
		return nat{0}
	}

	return x[n:].clone()
}
