package domain

import (
	"math/rand/v2"
)

// GenerateRandom returns a Number whose 11 data digits are drawn uniformly from the
// process-wide random source.
func GenerateRandom() Number {
	n := Number{set: true}
	for i := 0; i < BaseLength; i++ {
		n.digits[i] = rand.IntN(10) //nolint:gosec // test data, not a secret
	}
	n.digits[BaseLength] = checkDigit(n.digits[:BaseLength])
	return n
}
