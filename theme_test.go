package styl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/styl"
	"github.com/roach88/styl/internal/tokens"
)

func TestThemeContractRoundTrip(t *testing.T) {
	e := newEngine(t)

	shape := styl.Tokens{
		"color": map[string]any{"brand": nil, "text": map[string]any{"base": nil, "muted": nil}},
		"space": styl.Tokens{"sm": nil, "lg": nil},
	}
	values := styl.Tokens{
		"color": map[string]any{"brand": "blue", "text": map[string]string{"base": "#111", "muted": "#999"}},
		"space": styl.Tokens{"sm": "4px", "lg": "16px"},
	}

	contract := e.CreateThemeContract(shape)
	vars, err := styl.AssignVars(contract, values)
	require.NoError(t, err)
	require.Len(t, vars, tokens.Leaves(contract))

	i := 0
	err = tokens.Walk(contract, func(path tokens.Path, ref any) error {
		want, ok := tokens.Get(values, path)
		require.True(t, ok, path.String())
		assert.Equal(t, ref, vars[i].Key, path.String())
		assert.Equal(t, want, vars[i].Value, path.String())
		i++
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "var(--v0)", vars[0].Key, "variables are allocated in sorted path order")
}

func TestAssignVarsErrors(t *testing.T) {
	e := newEngine(t)
	contract := e.CreateThemeContract(styl.Tokens{"color": styl.Tokens{"brand": nil}})

	_, err := styl.AssignVars(contract, styl.Tokens{})
	var pe *tokens.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, tokens.Path{"color", "brand"}, pe.Path)
	assert.Equal(t, "missing value", pe.Message)

	_, err = styl.AssignVars(contract, styl.Tokens{"color": styl.Tokens{"brand": "red", "accent": "blue"}})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, tokens.Path{"color", "accent"}, pe.Path)
	assert.Equal(t, "not in contract", pe.Message)

	_, err = styl.AssignVars(contract, styl.Tokens{"color": styl.Tokens{"brand": styl.Tokens{"x": "y"}}})
	assert.ErrorContains(t, err, "value is a group")

	_, err = styl.AssignVars(styl.Tokens{"a": "plain"}, styl.Tokens{"a": "b"})
	assert.ErrorContains(t, err, "not a variable reference")
}

func TestCreateGlobalTheme(t *testing.T) {
	e := newEngine(t)

	vars, err := e.CreateGlobalTheme(":root", styl.Tokens{
		"color": styl.Tokens{"brand": "blue"},
		"font":  "Inter",
	})
	require.NoError(t, err)
	assert.Equal(t, styl.Tokens{
		"color": styl.Tokens{"brand": "var(--v0)"},
		"font":  "var(--v1)",
	}, vars)
	assert.Equal(t, ":root{--v0:blue;--v1:Inter;}", e.Extract())

	require.NoError(t, e.CreateGlobalThemeFromContract(".dark", vars, styl.Tokens{
		"color": styl.Tokens{"brand": "navy"},
		"font":  "Mono",
	}))
	assert.Equal(t, ".dark{--v0:navy;--v1:Mono;}", e.Extract())

	err = e.CreateGlobalThemeFromContract(".broken", vars, styl.Tokens{"font": "Mono"})
	assert.ErrorContains(t, err, `theme ".broken"`)
	assert.Equal(t, "", e.Extract())
}

func TestCreateTheme(t *testing.T) {
	e := newEngine(t)

	name, vars, err := e.CreateTheme(styl.Tokens{"brand": "blue", "space": "4px"})
	require.NoError(t, err)
	assert.Equal(t, "t0", name)
	assert.Equal(t, styl.Tokens{"brand": "var(--v1)", "space": "var(--v2)"}, vars)

	alt, err := e.CreateThemeFromContract(vars, styl.Tokens{"brand": "red", "space": "8px"})
	require.NoError(t, err)
	assert.Equal(t, "t3", alt)

	assert.Equal(t, ".t0{--v1:blue;--v2:4px;}.t3{--v1:red;--v2:8px;}", e.Extract())

	_, err = e.CreateThemeFromContract(vars, styl.Tokens{"brand": "red"})
	assert.Error(t, err)
}

func TestThemeInScope(t *testing.T) {
	e := newEngine(t)
	e.EnterDebug()
	e.EnterFileScope("f1", "theme")
	defer e.LeaveFileScope()

	name, vars, err := e.CreateTheme(styl.Tokens{"color": styl.Tokens{"brand": "blue"}})
	require.NoError(t, err)
	assert.Equal(t, "theme__tf10", name)
	assert.Equal(t, "var(--theme__color-brand_vf11)", vars["color"].(styl.Tokens)["brand"])
	assert.Equal(t, ".theme__tf10{--theme__color-brand_vf11:blue;}", e.Extract())
}
