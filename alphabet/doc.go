// Package alphabet defines the fixed 33-letter Russian cipher alphabet
// and the letter↔position bijection every transform in modalpha relies on.
//
// What:
//
//   - Letters: the ordered alphabet "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ".
//   - Size: 33 — the modulus of all cipher arithmetic.
//   - Index: letter → position in [0, Size), case-insensitive.
//   - Letter: position → letter, the exact inverse of Index.
//   - Normalize / Contains: uppercase folding and membership checks.
//
// Why:
//
//   - One authoritative mapping shared by key derivation and both
//     transform directions, so encrypt and decrypt can never disagree
//     on what a letter is worth.
//   - The mapping is immutable process-wide; callers do not configure it.
//
// How:
//
//	The uppercase block А..Я is contiguous in Unicode (U+0410..U+042F);
//	the lone exception is Ё (U+0401), which this alphabet splices in at
//	position 6. Index exploits that layout to compute positions
//	arithmetically — O(1), allocation-free, no map.
//
// Complexity:
//
//   - Index, Letter, Contains: O(1).
//   - Normalize: O(len(s)).
package alphabet
