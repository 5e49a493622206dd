package vigenere

import "errors"

// Sentinel errors for cipher construction and transforms. All three are
// caller input errors; branch with errors.Is — call sites attach the
// offending symbol and position via %w wrapping.
var (
	// ErrInvalidKey indicates the key text is empty after normalization or
	// contains a symbol outside the alphabet.
	ErrInvalidKey = errors.New("vigenere: invalid key")

	// ErrInvalidPlainText indicates the text passed to Encrypt is empty or
	// contains a symbol outside the alphabet.
	ErrInvalidPlainText = errors.New("vigenere: invalid plain text")

	// ErrInvalidCipherText indicates the text passed to Decrypt is empty or
	// contains a symbol outside the alphabet.
	ErrInvalidCipherText = errors.New("vigenere: invalid cipher text")
)
