package loader

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/styl/internal/rule"
)

// parseCUE evaluates a single CUE file. Fields keep their declaration order.
func parseCUE(file string, data []byte) (rule.Rule, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(file))
	if err := v.Err(); err != nil {
		return nil, parseError(file, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, parseError(file, fmt.Errorf("document is not concrete: %w", err))
	}

	tree, err := fromCUE(v)
	if err != nil {
		return nil, parseError(file, err)
	}
	root, ok := tree.(rule.Rule)
	if !ok {
		return nil, shapeError(file, "", "top level must be a struct")
	}
	return root, nil
}

func fromCUE(v cue.Value) (any, error) {
	switch v.IncompleteKind() {
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, err
		}
		r := rule.Rule{}
		for iter.Next() {
			child, err := fromCUE(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", iter.Label(), err)
			}
			r = append(r, rule.Decl{Key: iter.Label(), Value: child})
		}
		return r, nil

	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, err
		}
		var list []any
		for iter.Next() {
			child, err := fromCUE(iter.Value())
			if err != nil {
				return nil, err
			}
			list = append(list, child)
		}
		return list, nil

	case cue.StringKind:
		return v.String()
	case cue.IntKind:
		return v.Int64()
	case cue.FloatKind, cue.NumberKind:
		return v.Float64()
	case cue.BoolKind:
		return v.Bool()
	case cue.NullKind:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported CUE value of kind %v", v.IncompleteKind())
	}
}
