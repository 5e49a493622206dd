package alphabet_test

import (
	"fmt"

	"github.com/avrorin/modalpha/alphabet"
)

// ExampleIndex demonstrates letter→position lookup, including the
// case-insensitive handling of ё.
func ExampleIndex() {
	for _, r := range []rune{'А', 'к', 'ё', 'Я', 'Q'} {
		if i, ok := alphabet.Index(r); ok {
			fmt.Printf("%c → %d\n", r, i)
		} else {
			fmt.Printf("%c is not in the alphabet\n", r)
		}
	}
	// Output:
	// А → 0
	// к → 11
	// ё → 6
	// Я → 32
	// Q is not in the alphabet
}

// ExampleLetter demonstrates the inverse position→letter lookup.
func ExampleLetter() {
	r, _ := alphabet.Letter(19)
	fmt.Printf("position 19 is %c\n", r)
	// Output:
	// position 19 is Т
}
