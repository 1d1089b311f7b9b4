// Package digitint provides signed integers of unbounded magnitude stored as
// a sequence of digits in a radix between 2 and 255.
//
// # Representation
//
// An Int holds its digits least significant first together with its radix
// and sign. Values are always canonical:
//
//   - every digit is below the radix,
//   - there is no most significant zero digit unless the value is zero,
//     which is the single digit 0,
//   - zero is never negative.
//
// Constructors take digits most significant first (reading order):
//
//	x, _ := digitint.NewRadix([]byte{10, 3, 15}, 16, false) // A3F
//
// # Arithmetic
//
// Binary operations require both operands to share a radix and return a
// FormatError otherwise. Results are new values; only SetLSD, SetMSD,
// SetRadix and the Unmarshal methods modify their receiver.
//
// Division truncates toward zero and the remainder takes the sign of the
// dividend, the same as Go's / and % operators:
//
//	| x  | y  | q  | r  |
//	|----|----|----|----|
//	|  7 |  3 |  2 |  1 |
//	| -7 |  3 | -2 | -1 |
//	|  7 | -3 | -2 |  1 |
//	| -7 | -3 |  2 | -1 |
//
// DivModEuclid provides Euclidean division instead (0 <= r < |y|).
//
// Shifts move whole digits: x.Lsh(n) is x * radix^n and x.Rsh(n) drops the n
// least significant digits of the magnitude.
//
// # Equality
//
// Equal is representation-exact: 255 in radix 16 and 255 in radix 10 are not
// Equal. Cmp orders by stored digits and ignores the radix. Convert with
// ToRadix to compare values across radices.
//
// # Concurrency
//
// Values may be shared for reading. The methods that modify their receiver
// need exclusive access.
package digitint
