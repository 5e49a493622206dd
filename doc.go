// Package modalpha is a small, pure-Go library implementing a classical
// polyalphabetic substitution cipher (Vigenère family) over the fixed
// 33-letter Russian alphabet.
//
// 🚀 What is modalpha?
//
//	A zero-surprise teaching cipher with strict validation:
//		• Fixed 33-letter alphabet А–Я with Ё, O(1) letter↔position lookup
//		• Key derivation from text, with cyclic repetition over the message
//		• Encrypt/Decrypt as exact modular inverses, length-preserving
//		• Closed sentinel-error set matched with errors.Is
//
// ✨ Why choose modalpha?
//
//   - Minimal API — one constructor, two transforms, nothing to configure
//   - Rock-solid guarantees — eager atomic validation, no partial output
//   - Pure Go — no cgo, immutable Cipher safe for concurrent use
//
// Everything is organized under two subpackages:
//
//	alphabet/ — the fixed alphabet constant and letter↔position bijection
//	vigenere/ — the Cipher: key validation, Encrypt, Decrypt, errors
//
// Quick example:
//
//	c, _ := vigenere.New("КЛЮЧ")
//	ct, _ := c.Encrypt("текст")  // "ЭРИИЭ"
//	pt, _ := c.Decrypt(ct)       // "ТЕКСТ"
//
// ⚠️ modalpha preserves the classical construction for study and exercises;
// it is not secure encryption and must not protect real secrets.
//
//	go get github.com/avrorin/modalpha
package modalpha
