package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/roach88/styl/internal/rule"
)

// parseJSON streams tokens so object keys keep their document order.
func parseJSON(file string, data []byte) (rule.Rule, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return rule.Rule{}, nil
	}
	if err != nil {
		return nil, jsonError(file, dec, err)
	}

	tree, err := fromJSON(dec, tok)
	if err != nil {
		return nil, jsonError(file, dec, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, jsonError(file, dec, errors.New("unexpected data after top-level value"))
	}

	root, ok := tree.(rule.Rule)
	if !ok {
		return nil, shapeError(file, "", "top level must be an object")
	}
	return root, nil
}

func jsonError(file string, dec *json.Decoder, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeParse,
		File:    file,
		Message: fmt.Sprintf("%v (offset %d)", err, dec.InputOffset()),
	}
}

func fromJSON(dec *json.Decoder, tok json.Token) (any, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			r := rule.Rule{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key must be a string, got %v", kt)
				}
				vt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				child, err := fromJSON(dec, vt)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", key, err)
				}
				r = append(r, rule.Decl{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return r, nil

		case '[':
			list := []any{}
			for dec.More() {
				vt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				child, err := fromJSON(dec, vt)
				if err != nil {
					return nil, err
				}
				list = append(list, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)

	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", v.String(), err)
		}
		return f, nil

	case string, bool, nil:
		return v, nil
	case float64:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected token %v (%T)", tok, tok)
	}
}
