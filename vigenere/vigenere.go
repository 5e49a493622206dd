package vigenere

import (
	"fmt"
	"strings"

	"github.com/avrorin/modalpha/alphabet"
)

// New builds a Cipher from keyText.
//
// The key is normalized to uppercase and converted letter by letter into
// alphabet positions. An empty key, or a key containing any symbol outside
// the alphabet, fails with ErrInvalidKey; nothing is constructed on failure.
// Complexity: O(len(keyText)).
func New(keyText string) (*Cipher, error) {
	key, err := toIndices(keyText, ErrInvalidKey)
	if err != nil {
		return nil, err
	}

	return &Cipher{key: key}, nil
}

// Encrypt enciphers openText under the Cipher's key:
//
//	c[i] = (p[i] + key[i mod KeyLen]) mod alphabet.Size
//
// Input is case-insensitive; output is uppercase with the same number of
// letters. Empty input or any symbol outside the alphabet (whitespace,
// punctuation, digits, Latin letters) fails with ErrInvalidPlainText before
// any output is produced.
// Complexity: O(n) time and memory, n = number of input letters.
func (c *Cipher) Encrypt(openText string) (string, error) {
	p, err := toIndices(openText, ErrInvalidPlainText)
	if err != nil {
		return "", err
	}
	for i := range p {
		p[i] = (p[i] + c.key[i%len(c.key)]) % alphabet.Size
	}

	return toText(p), nil
}

// Decrypt deciphers cipherText under the Cipher's key, inverting Encrypt:
//
//	p[i] = (c[i] − key[i mod KeyLen] + alphabet.Size) mod alphabet.Size
//
// The modulus is added before reduction so the subtraction can never leave
// a negative position. Same validation rules as Encrypt, failing with
// ErrInvalidCipherText. For every valid x and the same key,
// Decrypt(Encrypt(x)) returns the uppercase normalization of x.
// Complexity: O(n) time and memory.
func (c *Cipher) Decrypt(cipherText string) (string, error) {
	p, err := toIndices(cipherText, ErrInvalidCipherText)
	if err != nil {
		return "", err
	}
	for i := range p {
		p[i] = (p[i] - c.key[i%len(c.key)] + alphabet.Size) % alphabet.Size
	}

	return toText(p), nil
}

// toIndices validates s and converts it to a sequence of alphabet positions.
// Validation is eager and atomic: the first offending symbol aborts the whole
// conversion with the given sentinel wrapped around symbol and position
// context, and empty input is rejected outright.
func toIndices(s string, invalid error) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", invalid)
	}

	out := make([]int, 0, len(s))
	pos := 0
	for _, r := range s {
		idx, ok := alphabet.Index(r)
		if !ok {
			return nil, fmt.Errorf("%w: symbol %q at position %d is not in the alphabet", invalid, r, pos)
		}
		out = append(out, idx)
		pos++
	}

	return out, nil
}

// toText maps a sequence of alphabet positions back to uppercase letters.
// Total over validated input: every value is already in [0, alphabet.Size).
func toText(v []int) string {
	var b strings.Builder
	b.Grow(len(v) * 2) // Cyrillic capitals are two bytes in UTF-8
	for _, i := range v {
		r, _ := alphabet.Letter(i)
		b.WriteRune(r)
	}

	return b.String()
}
