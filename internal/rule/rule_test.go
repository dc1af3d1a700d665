package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		key  string
		want Kind
	}{
		{"color", KindProperty},
		{"backgroundColor", KindProperty},
		{"z-index", KindProperty},
		{"msTransform", KindProperty},
		{"&:hover", KindNested},
		{"&:hover, &:active", KindNested},
		{"div &", KindNested},
		{"@media", KindAtRuleGroup},
		{"@supports", KindAtRuleGroup},
		{"@container", KindAtRuleGroup},
		{"@media (min-width: 100px)", KindAtRule},
		{"@media screen", KindAtRule},
		{"@supports(display:grid)", KindAtRule},
		{"selectors", KindSelectors},
		{"vars", KindVars},
		{"var(--abc)", KindVar},
		{"var(--abc, 1px)", KindVar},
		{"--abc", KindVar},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.key), "kind for %q", tt.key)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "property", KindProperty.String())
	assert.Equal(t, "at-rule-group", KindAtRuleGroup.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestVarName(t *testing.T) {
	tests := map[string]string{
		"var(--a)":          "--a",
		"var(--a, 10px)":    "--a",
		"var(--a,var(--b))": "--a",
		"--a":               "--a",
		"a":                 "--a",
		" var(--pad) ":      "--pad",
	}
	for in, want := range tests {
		assert.Equal(t, want, VarName(in), "VarName(%q)", in)
	}
}

func TestNew(t *testing.T) {
	r := New("color", "blue", "zIndex", 2)
	require.Len(t, r, 2)
	assert.Equal(t, []string{"color", "zIndex"}, r.Keys())

	v, ok := r.Lookup("zIndex")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestNewPanicsOnMalformedPairs(t *testing.T) {
	assert.Panics(t, func() { New("color") })
	assert.Panics(t, func() { New(1, "blue") })
}

func TestAsSortsMaps(t *testing.T) {
	r, ok := As(map[string]any{"zebra": 1, "alpha": 2, "beta": 3})
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta", "zebra"}, r.Keys())

	r, ok = As(map[string]string{"b": "1", "a": "2"})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, r.Keys())

	orig := New("b", 1, "a", 2)
	r, ok = As(orig)
	require.True(t, ok)
	assert.Equal(t, orig, r, "rules keep declaration order")

	_, ok = As("color: red")
	assert.False(t, ok)
	_, ok = As(nil)
	assert.False(t, ok)
}

func TestCompareKeysUTF16(t *testing.T) {
	// U+1F600 encodes as a surrogate pair (0xD83D...) which sorts before
	// U+FF61 in UTF-16 but after it in UTF-8.
	assert.Equal(t, -1, CompareKeys("\U0001F600", "｡"))
	assert.Equal(t, -1, CompareKeys("a", "ab"))
	assert.Equal(t, 0, CompareKeys("same", "same"))
	assert.Equal(t, 1, CompareKeys("b", "a"))
}
