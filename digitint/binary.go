package digitint

import (
	"math/big"

	"github.com/calebcase/radix/digit"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The first byte is the radix. The remaining bytes are the big-endian
// magnitude shifted left one bit with the sign in the lowest bit (1 is
// negative).
func (x *Int) MarshalBinary() (data []byte, err error) {
	i := x.digits.big(x.radix)

	i.Lsh(i, 1)
	if x.negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return append([]byte{byte(x.radix)}, data...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The value takes the
// radix recorded in data.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	defer FormatError.WrapP(&err)

	if len(data) < 2 {
		return FormatError.New("short data: %d bytes", len(data))
	}

	radix := int(data[0])

	err = digit.CheckRadix(radix)
	if err != nil {
		return err
	}

	i := new(big.Int).SetBytes(data[1:])

	negative := i.Bit(0) == 1
	i.Rsh(i, 1)

	*x = *canon(natFromBig(i, radix), radix, negative)

	return nil
}
