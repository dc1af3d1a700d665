package ident

import "fmt"

// Alphabet is the 64-symbol alphabet used for identifier bodies.
// Every symbol is valid inside a CSS identifier.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

var alphabetIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		idx[Alphabet[i]] = int8(i)
	}
	return idx
}()

// Encode renders n in the 64-symbol alphabet, most significant digit first.
// Encode(0) is "0".
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [11]byte // 64^11 > 2^64
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = Alphabet[n%64]
		n /= 64
	}
	return string(buf[i:])
}

// Decode inverts Encode.
func Decode(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("decode: empty string")
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		d := alphabetIndex[s[i]]
		if d < 0 {
			return 0, fmt.Errorf("decode: invalid symbol %q at %d", s[i], i)
		}
		if n > (^uint64(0)-uint64(d))/64 {
			return 0, fmt.Errorf("decode: %q overflows uint64", s)
		}
		n = n*64 + uint64(d)
	}
	return n, nil
}
