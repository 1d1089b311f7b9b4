// Package digit provides a single positional digit bounded by its radix.
//
// A digit is the unit a digitint.Int is made of. It carries both its value
// and the radix that bounds it:
//
//	0 <= value < radix, 2 <= radix <= 255
//
// # Rendering
//
// Values up to 35 render as a single character:
//
//	| Value   | Character |
//	|---------|-----------|
//	| 0 .. 9  | '0'..'9'  |
//	| 10 ..35 | 'A'..'Z'  |
//	| 36 ..   | "(NN)"    |
//
// Larger values have no single character and render as a parenthesized
// decimal literal, e.g. the value 200 in radix 255 is "(200)". Parse accepts
// the same forms (plus lower case letters) so rendered values can be read
// back.
//
// # Ordering
//
// Cmp compares raw values only. The radix is not part of the ordering, so
// comparing digits of different radices compares their magnitudes without any
// base-relative meaning.
package digit
