package alphabet

import (
	"strings"
	"unicode"
)

// Letters is the cipher alphabet: the 33 Russian capital letters in their
// conventional order, Ё included between Е and Ж.
const Letters = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

// Size is the number of letters in the alphabet.
// All modular cipher arithmetic is performed modulo Size.
const Size = 33

// yoPos is the spliced-in position of Ё, which lives outside the
// contiguous А..Я Unicode block.
const yoPos = 6

// letters is Letters decoded once into a position-indexed lookup table,
// so Letter is a plain slice access.
var letters = []rune(Letters)

// Index returns the zero-based alphabet position of r, uppercasing r first,
// and reports whether r belongs to the alphabet. Lowercase input maps to the
// same position as its capital, ё included.
//
// Positions are computed arithmetically from the Unicode layout:
// А..Е precede Ё, everything from Ж on is shifted by one.
// Complexity: O(1), no allocation.
func Index(r rune) (int, bool) {
	r = unicode.ToUpper(r) // ё (U+0451) folds to Ё (U+0401) here as well
	switch {
	case r == 'Ё':
		return yoPos, true
	case r >= 'А' && r <= 'Е':
		return int(r - 'А'), true
	case r >= 'Ж' && r <= 'Я':
		return int(r-'А') + 1, true
	}

	return 0, false
}

// Letter returns the alphabet letter at position i and reports whether i is
// a valid position in [0, Size). Inverse of Index over valid positions.
// Complexity: O(1).
func Letter(i int) (rune, bool) {
	if i < 0 || i >= Size {
		return 0, false
	}

	return letters[i], true
}

// Contains reports whether r (in either case) is a letter of the alphabet.
// Complexity: O(1).
func Contains(r rune) bool {
	_, ok := Index(r)

	return ok
}

// Normalize uppercases s under the same case rules Index applies, so that
// Normalize(s) and s always yield identical index sequences.
// Normalize performs no validation; membership checks belong to the cipher.
// Complexity: O(len(s)).
func Normalize(s string) string {
	return strings.ToUpper(s)
}
