package ident

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/styl/internal/rule"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"no html escape", "a > b & c", `"a > b & c"`},
		{"int", 42, "42"},
		{"negative int", int64(-100), "-100"},
		{"uint", uint8(7), "7"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"nil", nil, "null"},
		{"list", []any{"a", 1}, `["a",1]`},
		{"strings", []string{"x", "y"}, `["x","y"]`},
		{"empty rule", rule.Rule{}, "{}"},
		{"rule keeps order", rule.New("z", 1, "a", 2), `{"z":1,"a":2}`},
		{"map sorted", map[string]any{"z": 1, "a": 2}, `{"a":2,"z":1}`},
		{"string map sorted", map[string]string{"b": "1", "a": "2"}, `{"a":"2","b":"1"}`},
		{"nested", rule.New("&:hover", rule.New("color", "red")), `{"&:hover":{"color":"red"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestMarshalCanonicalNFC(t *testing.T) {
	// "é" as e + combining acute vs precomposed
	decomposed, err := MarshalCanonical("e\u0301")
	require.NoError(t, err)
	composed, err := MarshalCanonical("\u00e9")
	require.NoError(t, err)
	assert.Equal(t, composed, decomposed)
}

func TestMarshalCanonicalRejects(t *testing.T) {
	_, err := MarshalCanonical(math.NaN())
	assert.Error(t, err)

	_, err = MarshalCanonical(rule.New("a", struct{}{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value for key "a"`)

	_, err = MarshalCanonical(make(chan int))
	assert.Error(t, err)
}

func TestFingerprintDeterminism(t *testing.T) {
	r := rule.New("color", "blue", "selectors", rule.New("&:hover", rule.New("color", "red")))
	same := rule.New("color", "blue", "selectors", rule.New("&:hover", rule.New("color", "red")))

	h1, err := Fingerprint(r, 0)
	require.NoError(t, err)
	h2, err := Fingerprint(same, 0)
	require.NoError(t, err)

	assert.Equal(t, h1, h2, "structurally identical rules share a fingerprint")
	assert.Less(t, h1, uint64(1)<<53)
}

func TestFingerprintChangesWithInput(t *testing.T) {
	h1, err := Fingerprint(rule.New("color", "blue"), 0)
	require.NoError(t, err)
	h2, err := Fingerprint(rule.New("color", "red"), 0)
	require.NoError(t, err)
	h3, err := Fingerprint(rule.New("color", "blue"), 42)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "different values")
	assert.NotEqual(t, h1, h3, "different seed")
}

func TestFingerprintMapOrderIrrelevant(t *testing.T) {
	h1, err := Fingerprint(map[string]any{"a": 1, "b": 2}, 0)
	require.NoError(t, err)
	h2, err := Fingerprint(map[string]any{"b": 2, "a": 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestHashID(t *testing.T) {
	id, err := HashID("c", rule.New("color", "blue"), 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "c"))

	again, err := HashID("c", rule.New("color", "blue"), 0)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	_, err = HashID("c", make(chan int), 0)
	assert.Error(t, err)
}

func TestRandomID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := RandomID("c")
		require.Len(t, id, 1+RandomLength)
		require.True(t, strings.HasPrefix(id, "c"))
		for _, r := range id[1:] {
			require.True(t, strings.ContainsRune(Alphabet, r))
		}
		seen[id] = true
	}
	assert.Greater(t, len(seen), 190, "random ids should rarely collide")
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []string{"", "sequential", "hash", "random"} {
		_, err := ParseStrategy(s)
		assert.NoError(t, err, s)
	}
	got, _ := ParseStrategy("")
	assert.Equal(t, Sequential, got)

	_, err := ParseStrategy("uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id strategy")
}

func TestPrefixesWithDefaults(t *testing.T) {
	p := Prefixes{Class: "x"}.WithDefaults()
	assert.Equal(t, "x", p.Class)
	assert.Equal(t, "k", p.Keyframes)
	assert.Equal(t, "v", p.Var)
	assert.Equal(t, "o", p.Container)
	assert.Equal(t, "t", p.Theme)
}
