package ident

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// fingerprintMask keeps 53 bits, so fingerprints stay exact in any
// consumer that stores them as IEEE-754 doubles.
const fingerprintMask = 1<<53 - 1

// Fingerprint hashes the canonical serialization of v with xxHash64 and
// returns the low 53 bits. Equal canonical text yields equal fingerprints
// across runs for the same seed.
func Fingerprint(v any, seed uint64) (uint64, error) {
	data, err := MarshalCanonical(v)
	if err != nil {
		return 0, fmt.Errorf("fingerprint: %w", err)
	}
	return FingerprintBytes(data, seed), nil
}

// FingerprintBytes hashes raw bytes with the same scheme as Fingerprint.
func FingerprintBytes(data []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(data) & fingerprintMask
	}
	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(data)
	return d.Sum64() & fingerprintMask
}

// HashID returns prefix + Encode(Fingerprint(v, seed)).
func HashID(prefix string, v any, seed uint64) (string, error) {
	h, err := Fingerprint(v, seed)
	if err != nil {
		return "", err
	}
	return prefix + Encode(h), nil
}
