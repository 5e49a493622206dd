// Package vigenere defines the Cipher type for the
// github.com/avrorin/modalpha cipher library.
package vigenere

// Cipher performs modular-addition substitution over the fixed 33-letter
// alphabet. It holds the key as a sequence of alphabet positions, derived
// once by New and never mutated afterwards, so a single Cipher is safe for
// concurrent use without synchronization.
type Cipher struct {
	key []int
}

// KeyLen returns the number of letters in the key. The key repeats with
// this period over the text during Encrypt and Decrypt.
// Complexity: O(1).
func (c *Cipher) KeyLen() int {
	return len(c.key)
}
