package digitint

import (
	"encoding"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/radix/digit"
)

var (
	_ fmt.Stringer             = (*Int)(nil)
	_ encoding.TextMarshaler   = (*Int)(nil)
	_ encoding.TextUnmarshaler = (*Int)(nil)
)

func TestString(t *testing.T) {
	type TC struct {
		v     int64
		radix int
		s     string
	}

	tcs := []TC{
		{v: 2623, radix: 16, s: "A3F"},
		{v: 8590, radix: 2, s: "10000110001110"},
		{v: -8590, radix: 10, s: "-8590"},
		{v: 0, radix: 2, s: "0"},
		{v: 35, radix: 36, s: "Z"},
		{v: 36*37 + 36, radix: 37, s: "(36)(36)"},
		{v: 254*255 + 7, radix: 255, s: "(254)7"},
		{v: -(200*255*255 + 40), radix: 255, s: "-(200)0(40)"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.s), func(t *testing.T) {
			x := radixInt(t, tc.v, tc.radix)
			require.Equal(t, tc.s, x.String())

			y, err := Parse(tc.s, tc.radix)
			require.NoError(t, err)
			require.True(t, x.Equal(y))
		})
	}

	require.Equal(t, "<nil>", (*Int)(nil).String())
}

func TestParse(t *testing.T) {
	type TC struct {
		s      string
		radix  int
		want   string
		format bool
		rng    bool
	}

	tcs := []TC{
		{s: "+42", radix: 10, want: "42"},
		{s: "-0042", radix: 10, want: "-42"},
		{s: "a3f", radix: 16, want: "A3F"},
		{s: "", radix: 10, format: true},
		{s: "-", radix: 10, format: true},
		{s: "1 2", radix: 10, format: true},
		{s: "12(3", radix: 255, format: true},
		{s: "--1", radix: 10, format: true},
		{s: "19", radix: 8, rng: true},
		{s: "(99)", radix: 50, rng: true},
		{s: "1", radix: 1, rng: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.s), func(t *testing.T) {
			x, err := Parse(tc.s, tc.radix)
			switch {
			case tc.format:
				require.True(t, FormatError.Has(err), "%v", err)
			case tc.rng:
				require.True(t, digit.RangeError.Has(err), "%v", err)
			default:
				require.NoError(t, err)
				requireCanonical(t, x)
				require.Equal(t, tc.want, x.String())
				require.Equal(t, tc.radix, x.Radix())
			}
		})
	}
}

func TestMarshalText(t *testing.T) {
	x := radixInt(t, -2623, 16)

	text, err := x.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-A3F", string(text))

	hex := radixInt(t, 0, 16)
	require.NoError(t, hex.UnmarshalText(text))
	require.True(t, x.Equal(hex))

	dec := &Int{}
	require.NoError(t, dec.UnmarshalText([]byte("-1332")))
	require.True(t, dec.Equal(FromInt64(-1332)))

	err = dec.UnmarshalText([]byte("A3F"))
	require.True(t, digit.RangeError.Has(err))
	require.True(t, dec.Equal(FromInt64(-1332)), "failed decode must not modify")
}
