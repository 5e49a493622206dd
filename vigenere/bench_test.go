package vigenere_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/avrorin/modalpha/alphabet"
	"github.com/avrorin/modalpha/vigenere"
)

// randomText builds a deterministic pseudo-random alphabet-only text of n
// letters for benchmarking.
func randomText(n int) string {
	rng := rand.New(rand.NewSource(42))
	var b strings.Builder
	b.Grow(n * 2)
	for i := 0; i < n; i++ {
		r, _ := alphabet.Letter(rng.Intn(alphabet.Size))
		b.WriteRune(r)
	}

	return b.String()
}

// BenchmarkEncrypt measures Encrypt throughput on a 4-letter key over a
// 4096-letter text. Complexity: O(n).
func BenchmarkEncrypt(b *testing.B) {
	c, err := vigenere.New("КЛЮЧ")
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	text := randomText(4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = c.Encrypt(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecrypt measures Decrypt throughput on the same setup.
func BenchmarkDecrypt(b *testing.B) {
	c, err := vigenere.New("КЛЮЧ")
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	ct, err := c.Encrypt(randomText(4096))
	if err != nil {
		b.Fatalf("setup Encrypt failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = c.Decrypt(ct); err != nil {
			b.Fatal(err)
		}
	}
}
