// Package entropy maps the search counter onto fixed-width BIP-39 entropy.
package entropy

import "math/big"

// Size is the entropy width in bytes; 32 bytes is a 24-word mnemonic.
const Size = 32

var maxCounter = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Size*8), big.NewInt(1))

// MaxCounter returns 2^256 - 1, the last counter that fits into Size bytes.
// Every value in [0, MaxCounter] is valid entropy, so the bound is exact.
func MaxCounter() *big.Int {
	return new(big.Int).Set(maxCounter)
}

// Fits reports whether c can be mapped without truncation.
func Fits(c *big.Int) bool {
	return c.Sign() >= 0 && c.Cmp(maxCounter) <= 0
}

// FromCounter returns c as big-endian bytes right-aligned in a zeroed buffer.
// The caller guarantees Fits(c); a negative or wider value panics.
func FromCounter(c *big.Int) [Size]byte {
	var buf [Size]byte
	c.FillBytes(buf[:])
	return buf
}
