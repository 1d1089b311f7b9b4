package digitint

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNat(t *testing.T) {
	t.Run("norm", func(t *testing.T) {
		require.Empty(t, cmp.Diff(nat{0}, nat{}.norm()))
		require.Empty(t, cmp.Diff(nat{0}, nat{0, 0, 0}.norm()))
		require.Empty(t, cmp.Diff(nat{1, 2}, nat{1, 2, 0, 0}.norm()))
		require.Empty(t, cmp.Diff(nat{0, 0, 1}, nat{0, 0, 1}.norm()))
	})

	t.Run("carry chain", func(t *testing.T) {
		z := addNat(nat{9, 9, 9}, nat{1}, 10)
		require.Empty(t, cmp.Diff(nat{0, 0, 0, 1}, z))
	})

	t.Run("borrow chain", func(t *testing.T) {
		z := subNat(nat{0, 0, 0, 1}, nat{1}, 10)
		require.Empty(t, cmp.Diff(nat{9, 9, 9}, z))
	})

	t.Run("underflow", func(t *testing.T) {
		require.Panics(t, func() { subNat(nat{1}, nat{2}, 10) })
	})

	t.Run("shift", func(t *testing.T) {
		require.Empty(t, cmp.Diff(nat{0, 0, 3}, lshNat(nat{3}, 2)))
		require.Empty(t, cmp.Diff(nat{0}, lshNat(nat{0}, 2)))
		require.Empty(t, cmp.Diff(nat{6, 2}, rshNat(nat{2, 7, 6, 2}, 2)))
		require.Empty(t, cmp.Diff(nat{0}, rshNat(nat{2, 7}, 2)))
	})
}

// TestMulDivNat cross checks the magnitude algorithms against uint64
// arithmetic in every radix.
func TestMulDivNat(t *testing.T) {
	values := []uint64{0, 1, 2, 9, 10, 254, 255, 256, 1000, 65535, 123456789, 4294967295}

	for radix := 2; radix <= 255; radix += 23 {
		t.Run(fmt.Sprintf("radix=%d", radix), func(t *testing.T) {
			for _, a := range values {
				for _, b := range values {
					x := natFromUint64(a, radix)
					y := natFromUint64(b, radix)

					require.Equal(t, a*b, mulNat(x, y, radix).uint64(radix), "%d * %d", a, b)
					require.Equal(t, a+b, addNat(x, y, radix).uint64(radix), "%d + %d", a, b)

					if b == 0 {
						continue
					}

					q, r := divNat(x, y, radix)
					require.Equal(t, a/b, q.uint64(radix), "%d / %d", a, b)
					require.Equal(t, a%b, r.uint64(radix), "%d %% %d", a, b)
				}
			}
		})
	}
}
