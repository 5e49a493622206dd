// Package vigenere implements a classical polyalphabetic substitution
// cipher (Vigenère family) over the fixed 33-letter Russian alphabet.
//
// 🚀 What is it?
//
//	Each letter of the text is shifted by the matching letter of a
//	repeating key, modulo the alphabet size:
//	  encrypt: c[i] = (p[i] + key[i mod len(key)]) mod 33
//	  decrypt: p[i] = (c[i] − key[i mod len(key)] + 33) mod 33
//	The key cycles over the text, so a short key encrypts text of any
//	length. Decrypt is the exact inverse of Encrypt under the same key.
//
// ✨ Key properties:
//   - Deterministic, length-preserving, character-for-character.
//   - Case-insensitive input, uppercase output.
//   - A Cipher is immutable after New: share it freely across goroutines.
//   - Strict validation up front — no partial output on bad input.
//
// ⚙️ Usage:
//
//	import "github.com/avrorin/modalpha/vigenere"
//
//	c, err := vigenere.New("КЛЮЧ")
//	if err != nil { ... }            // errors.Is(err, vigenere.ErrInvalidKey)
//
//	ct, err := c.Encrypt("привет")   // "ЪЬЖЩПЮ"
//	pt, err := c.Decrypt(ct)         // "ПРИВЕТ"
//
// Errors:
//
//   - ErrInvalidKey        — key is empty or contains non-alphabet symbols.
//   - ErrInvalidPlainText  — Encrypt input is empty or not alphabet-only.
//   - ErrInvalidCipherText — Decrypt input is empty or not alphabet-only.
//
// ⚠️ This is a teaching cipher. It preserves the classical construction and
// makes no claim of cryptographic strength — do not protect real secrets
// with it.
//
// Complexity: Encrypt and Decrypt are O(n) time and memory in the number
// of input letters; New is O(k) in the key length.
package vigenere
