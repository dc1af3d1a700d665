package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/styl/internal/rule"
	"github.com/roach88/styl/internal/testutil"
)

func TestCompileKeyframes(t *testing.T) {
	tests := []struct {
		name string
		kf   rule.Rule
		want string
	}{
		{
			name: "from and to",
			kf: rule.New(
				"from", rule.New("opacity", 0),
				"to", rule.New("opacity", 1),
			),
			want: "@keyframes fade{from{opacity:0;}to{opacity:1;}}",
		},
		{
			name: "percent steps keep order",
			kf: rule.New(
				"0%", rule.New("width", 0),
				"100%", rule.New("width", 100),
				"50%", rule.New("width", 50),
			),
			want: "@keyframes fade{0%{width:0px;}100%{width:100px;}50%{width:50px;}}",
		},
		{
			name: "empty steps are omitted",
			kf: rule.New(
				"from", rule.Rule{},
				"to", rule.New("color", "red"),
			),
			want: "@keyframes fade{to{color:red;}}",
		},
		{
			name: "var keys",
			kf:   rule.New("to", rule.New("var(--x)", "1", "--y", 2)),
			want: "@keyframes fade{to{--x:1;--y:2;}}",
		},
		{
			name: "no steps",
			kf:   rule.Rule{},
			want: "",
		},
		{
			name: "only empty steps",
			kf:   rule.New("from", rule.Rule{}, "to", rule.New("color", nil)),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompileKeyframes("fade", tt.kf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileKeyframesRejectsNesting(t *testing.T) {
	tests := []struct {
		name string
		kf   rule.Rule
		path []string
		msg  string
	}{
		{
			name: "selectors",
			kf:   rule.New("to", rule.New("selectors", rule.New("&:hover", rule.New("color", "red")))),
			path: []string{"to", "selectors"},
			msg:  "selectors keys are not allowed in keyframes",
		},
		{
			name: "at-rule",
			kf:   rule.New("to", rule.New("@media print", rule.New("color", "red"))),
			path: []string{"to", "@media print"},
			msg:  "at-rule keys are not allowed in keyframes",
		},
		{
			name: "nested selector",
			kf:   rule.New("from", rule.New("&:hover", rule.New("color", "red"))),
			path: []string{"from", "&:hover"},
			msg:  "nested keys are not allowed in keyframes",
		},
		{
			name: "step not a rule",
			kf:   rule.New("from", "opacity: 0"),
			path: []string{"from"},
			msg:  "expected a nested rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileKeyframes("fade", tt.kf)
			var ce *CompileError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.path, ce.Path)
			assert.Contains(t, ce.Message, tt.msg)
		})
	}
}

func TestCompileKeyframesGolden(t *testing.T) {
	kf := rule.New(
		"from", rule.New("transform", "rotate(0deg)"),
		"50%", rule.New("vars", rule.New("--spin-speed", 2), "opacity", 0.5),
		"to", rule.New("transform", "rotate(360deg)"),
	)

	css, err := CompileKeyframes("spin_k0", kf)
	require.NoError(t, err)
	testutil.AssertGoldenCSS(t, "spin", css)
}
