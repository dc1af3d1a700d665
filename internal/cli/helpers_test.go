package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const buttonDoc = `themes:
  ":root":
    color:
      brand: "#0af"
keyframes:
  fade:
    from: {opacity: 0}
    to: {opacity: 1}
styles:
  base:
    padding: 4
  button:
    - base
    - color: red
`

const badDoc = `styles:
  ok:
    color: blue
  broken:
    selectors:
      ":hover": {color: red}
`

// writeDoc writes content to dir/name and returns the path.
func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// buttonCSS is the sheet buttonDoc compiles to under the default config.
func buttonCSS(path string) string {
	h, _ := ScopeFor(path, 0)
	return ":root{--v" + h + "0:#0af;}" +
		"@keyframes k" + h + "1{from{opacity:0;}to{opacity:1;}}" +
		".c" + h + "2{padding:4px;}" +
		".c" + h + "3{color:red;}"
}
