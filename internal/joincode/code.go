// Package joincode generates and validates the short codes players type
// (or scan) to join an event.
//
// A code is 7 characters: 6 drawn uniformly from an unambiguous uppercase
// alphabet plus a final checksum character. The alphabet excludes 0/O and
// 1/I so codes survive handwriting and low-quality QR scans. The checksum
// is a position-weighted sum, so single-character mutations and adjacent
// transpositions are caught.
package joincode

import (
	"crypto/rand"
)

// Alphabet is the exact 32-character set codes are drawn from.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the total code length including the checksum character.
const Length = 7

var indexOf = buildIndex()

func buildIndex() map[byte]int {
	m := make(map[byte]int, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = i
	}
	return m
}

// Generate returns a fresh join code. Randomness comes from crypto/rand;
// the 32^6 body space keeps accidental collisions negligible without a
// registry.
func Generate() string {
	buf := make([]byte, Length-1)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	code := make([]byte, Length)
	for i, b := range buf {
		code[i] = Alphabet[int(b)%len(Alphabet)]
	}
	code[Length-1] = Alphabet[checksum(code[:Length-1])]
	return string(code)
}

// Validate reports whether code is a well-formed join code: exactly 7
// characters, every character in Alphabet (case-sensitive), and a
// matching checksum. It never panics on arbitrary input.
func Validate(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < Length; i++ {
		if _, ok := indexOf[code[i]]; !ok {
			return false
		}
	}
	return code[Length-1] == Alphabet[checksum([]byte(code[:Length-1]))]
}

// checksum folds the body into a single alphabet index. Odd position
// weights are invertible mod 32, so changing any single body character
// always changes the checksum.
func checksum(body []byte) int {
	sum := 0
	for i, c := range body {
		sum += (2*i + 1) * indexOf[c]
	}
	return sum % len(Alphabet)
}
