package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/styl/internal/rule"
	"github.com/roach88/styl/internal/tokens"
)

func expectedButton() *Document {
	return &Document{
		Themes: []Theme{{
			Selector: ":root",
			Tokens: tokens.Tokens{
				"color": tokens.Tokens{"brand": "#0af", "text": "#111"},
				"space": "4px",
			},
		}},
		Globals: []Entry{{Name: "html, body", Value: rule.New("margin", int64(0))}},
		Keyframes: []Entry{{Name: "fade", Value: rule.New(
			"from", rule.New("opacity", int64(0)),
			"to", rule.New("opacity", int64(1)),
		)}},
		Styles: []Entry{
			{Name: "button", Value: rule.New(
				"display", "inline-flex",
				"padding", int64(8),
				"selectors", rule.New("&:hover", rule.New("opacity", 0.8)),
				"@media", rule.New("(min-width: 640px)", rule.New("padding", int64(12))),
			)},
			{Name: "link", Value: []any{"btn-reset", rule.New("textDecoration", "none")}},
		},
	}
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		file   string
		format Format
	}{
		{"button.cue", FormatCUE},
		{"button.yaml", FormatYAML},
		{"button.json", FormatJSON},
		{"button.toml", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			path := filepath.Join("testdata", tt.file)
			doc, err := Load(path)
			require.NoError(t, err)

			want := expectedButton()
			want.Path = path
			want.Format = tt.format
			assert.Equal(t, want, doc)
		})
	}
}

func TestParseKeepsKeyOrder(t *testing.T) {
	inputs := map[string]string{
		"order.json": `{"styles": {"z": {"zIndex": 1, "color": "red", "alignItems": "center"}}}`,
		"order.yaml": "styles:\n  z:\n    zIndex: 1\n    color: red\n    alignItems: center\n",
		"order.cue":  `styles: z: {zIndex: 1, color: "red", alignItems: "center"}`,
		"order.toml": "[styles.z]\nzIndex = 1\ncolor = \"red\"\nalignItems = \"center\"\n",
	}

	for name, src := range inputs {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse(name, []byte(src))
			require.NoError(t, err)
			require.Len(t, doc.Styles, 1)
			assert.Equal(t, []string{"zIndex", "color", "alignItems"}, doc.Styles[0].Value.(rule.Rule).Keys())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, name := range []string{"e.json", "e.yaml", "e.toml", "e.cue"} {
		doc, err := Parse(name, nil)
		require.NoError(t, err, name)
		assert.Empty(t, doc.Styles, name)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
		code string
		msg  string
	}{
		{"unsupported extension", "a.css", "", ErrCodeUnsupported, "unsupported file type"},
		{"bad json", "a.json", `{"styles": }`, ErrCodeParse, ""},
		{"trailing json", "a.json", `{} {}`, ErrCodeParse, "after top-level value"},
		{"bad yaml", "a.yaml", "styles: [\n", ErrCodeParse, ""},
		{"bad toml", "a.toml", "[styles\n", ErrCodeParse, ""},
		{"bad cue", "a.cue", "styles: {", ErrCodeParse, ""},
		{"incomplete cue", "a.cue", "styles: x: color: string", ErrCodeParse, "not concrete"},
		{"top level list", "a.json", `[1]`, ErrCodeShape, "top level"},
		{"unknown section", "a.json", `{"rules": {}}`, ErrCodeShape, "unknown section"},
		{"section not a mapping", "a.yaml", "styles: 3\n", ErrCodeShape, "section must be a mapping"},
		{"global not a rule", "a.json", `{"globals": {"body": "x"}}`, ErrCodeShape, "globals.body"},
		{"keyframes not a rule", "a.json", `{"keyframes": {"k": [1]}}`, ErrCodeShape, "keyframes.k"},
		{"style number", "a.json", `{"styles": {"s": 3}}`, ErrCodeShape, "styles.s"},
		{"style list item", "a.json", `{"styles": {"s": ["a", 3]}}`, ErrCodeShape, "styles.s[1]"},
		{"theme with list", "a.json", `{"themes": {":root": {"a": [1]}}}`, ErrCodeShape, "themes.:root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.file, []byte(tt.src))
			require.Error(t, err)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.code, le.Code)
			assert.Equal(t, tt.file, le.File)
			assert.Contains(t, le.Error(), tt.msg)
		})
	}
}

func TestYAMLErrorPosition(t *testing.T) {
	_, err := Parse("a.yaml", []byte("styles:\n  s:\n    ? [a]\n    : b\n"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
	assert.Contains(t, le.Error(), "a.yaml:3:")
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeNotFound, le.Code)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a10.yaml", "a2.yaml", "notes.txt", filepath.Join("sub", "c.json")} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("{}"), 0o644))
	}

	files, err := Find([]string{dir, filepath.Join(dir, "a2.yaml")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a2.yaml"),
		filepath.Join(dir, "a10.yaml"),
		filepath.Join(dir, "sub", "c.json"),
	}, files)

	_, err = Find([]string{filepath.Join(dir, "nope")})
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeNotFound, le.Code)
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("x/Theme.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	assert.True(t, Supported("a.toml"))
	assert.False(t, Supported("a.css"))
}
