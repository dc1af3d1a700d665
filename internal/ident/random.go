package ident

import "github.com/google/uuid"

// RandomLength is the number of symbols in a random identifier body.
const RandomLength = 8

// randomBytes skips bytes 6 and 8, whose fixed version and variant bits
// overlap the six bits kept per symbol.
var randomBytes = [RandomLength]int{0, 1, 2, 3, 4, 5, 7, 9}

// RandomID returns prefix followed by RandomLength symbols taken from the
// bits of a random (version 4) UUID. Uniqueness is probabilistic only.
func RandomID(prefix string) string {
	u := uuid.New()
	var body [RandomLength]byte
	for i, b := range randomBytes {
		body[i] = Alphabet[u[b]&63]
	}
	return prefix + string(body[:])
}
