package digitint

import (
	"iter"

	"github.com/calebcase/radix/digit"
)

// All returns an iterator over the digits of x from least to most
// significant, keyed by their least significant position.
func (x *Int) All() iter.Seq2[int, digit.Digit] {
	return func(yield func(int, digit.Digit) bool) {
		for i := 0; i < len(x.digits); i++ {
			d, err := x.LSD(i)
			if err != nil {
				return
			}

			if !yield(i, d) {
				return
			}
		}
	}
}

// Backward returns an iterator over the digits of x from most to least
// significant, keyed by their least significant position.
func (x *Int) Backward() iter.Seq2[int, digit.Digit] {
	return func(yield func(int, digit.Digit) bool) {
		for i := len(x.digits) - 1; i >= 0; i-- {
			d, err := x.LSD(i)
			if err != nil {
				return
			}

			if !yield(i, d) {
				return
			}
		}
	}
}
