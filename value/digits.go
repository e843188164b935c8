// SPDX-License-Identifier: MIT

package value

import "fmt"

// DefaultModulo is the modulo of the classic digital root.
const DefaultModulo = 9

// DigitalRoot returns n mod modulo mapped into [1, modulo]: a remainder of 0
// becomes modulo. Negative n use the non-negative remainder.
//
//	DigitalRoot(9, 9) = 9, DigitalRoot(18, 9) = 9, DigitalRoot(10, 9) = 1
//
// Errors: ErrDomain when modulo < 1.
func DigitalRoot(n, modulo int) (int, error) {
	if modulo < 1 {
		return 0, fmt.Errorf("value: DigitalRoot modulo %d: %w", modulo, ErrDomain)
	}
	r := n % modulo
	if r < 0 {
		r += modulo
	}
	if r == 0 {
		return modulo, nil
	}

	return r, nil
}

// DigitSum returns the sum of the non-zero decimal digits of |n|.
func DigitSum(n int) int {
	sum := 0
	for _, d := range digits(n) {
		sum += d
	}

	return sum
}

// DigitProduct returns the product of the non-zero decimal digits of |n|;
// with no such digit (n == 0) the product is 1.
func DigitProduct(n int) int {
	p := 1
	for _, d := range digits(n) {
		p *= d
	}

	return p
}

// digits lists the non-zero decimal digits of |n|, least significant first.
func digits(n int) []int {
	u := uint64(n)
	if n < 0 {
		u = -u // exact for math.MinInt too
	}
	var out []int
	for ; u > 0; u /= 10 {
		if d := int(u % 10); d != 0 {
			out = append(out, d)
		}
	}

	return out
}
