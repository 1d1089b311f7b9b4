package digitint

import (
	"encoding"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/radix/digit"
)

var (
	_ encoding.BinaryMarshaler   = (*Int)(nil)
	_ encoding.BinaryUnmarshaler = (*Int)(nil)
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name  string
		radix int
		v     int64
		data  []byte
	}

	tcs := []TC{
		{
			name:  "+0",
			radix: 10,
			v:     0,
			data:  []byte{10, 0b0000_0000},
		},
		{
			name:  "+1",
			radix: 10,
			v:     1,
			data:  []byte{10, 0b0000_0010},
		},
		{
			name:  "-1",
			radix: 10,
			v:     -1,
			data:  []byte{10, 0b0000_0011},
		},
		{
			name:  "-127",
			radix: 10,
			v:     -127,
			data:  []byte{10, 0b1111_1111},
		},
		{
			name:  "+127",
			radix: 10,
			v:     127,
			data:  []byte{10, 0b1111_1110},
		},
		{
			name:  "+32767",
			radix: 10,
			v:     32767,
			data:  []byte{10, 0b1111_1111, 0b1111_1110},
		},
		{
			name:  "+A3F",
			radix: 16,
			v:     2623,
			data:  []byte{16, 0b0001_0100, 0b0111_1110},
		},
		{
			name:  "-(1)(0)",
			radix: 255,
			v:     -255,
			data:  []byte{255, 0b0000_0001, 0b1111_1111},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := radixInt(t, tc.v, tc.radix)

			t.Run("marshal", func(t *testing.T) {
				data, err := x.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				y := &Int{}
				err := y.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				requireCanonical(t, y)
				require.True(t, x.Equal(y), spew.Sdump(x, y))
			})
		})
	}

	t.Run("negative zero", func(t *testing.T) {
		y := &Int{}
		require.NoError(t, y.UnmarshalBinary([]byte{10, 0b0000_0001}))
		require.True(t, y.IsZero())
		require.False(t, y.Negative())
	})

	t.Run("invalid", func(t *testing.T) {
		y := FromInt64(7)

		err := y.UnmarshalBinary(nil)
		require.True(t, FormatError.Has(err))

		err = y.UnmarshalBinary([]byte{10})
		require.True(t, FormatError.Has(err))

		err = y.UnmarshalBinary([]byte{1, 0})
		require.True(t, FormatError.Has(err))
		require.True(t, digit.RangeError.Has(err))

		require.Equal(t, "7", y.String())
	})
}
