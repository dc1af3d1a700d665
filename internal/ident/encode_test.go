package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKnownValues(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{9, "9"},
		{10, "a"},
		{35, "z"},
		{36, "A"},
		{61, "Z"},
		{62, "-"},
		{63, "_"},
		{64, "10"},
		{4095, "__"},
		{4096, "100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Encode(tt.n), "Encode(%d)", tt.n)
	}
}

func TestEncodeUsesOnlyAlphabet(t *testing.T) {
	for n := uint64(0); n < 20000; n += 7 {
		s := Encode(n)
		for _, r := range s {
			assert.True(t, strings.ContainsRune(Alphabet, r), "symbol %q of Encode(%d)", r, n)
		}
	}
	max := Encode(^uint64(0))
	assert.Len(t, max, 11)
}

func TestDecodeInvertsEncode(t *testing.T) {
	for n := uint64(0); n < 100000; n += 13 {
		got, err := Decode(Encode(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}

	got, err := Decode(Encode(^uint64(0)))
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), got)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("")
	assert.Error(t, err)

	_, err = Decode("ab.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid symbol")

	_, err = Decode("__________________")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows")
}
