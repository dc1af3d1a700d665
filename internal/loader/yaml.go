package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/roach88/styl/internal/rule"
)

func parseYAML(file string, data []byte) (rule.Rule, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError(file, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return rule.Rule{}, nil
	}

	tree, err := fromYAML(doc.Content[0])
	if err != nil {
		return nil, err.withFile(file)
	}
	root, ok := tree.(rule.Rule)
	if !ok {
		return nil, shapeError(file, "", "top level must be a mapping")
	}
	return root, nil
}

type yamlError struct {
	node *yaml.Node
	msg  string
}

func (e *yamlError) withFile(file string) *LoadError {
	return &LoadError{Code: ErrCodeParse, File: file, Line: e.node.Line, Column: e.node.Column, Message: e.msg}
}

func fromYAML(n *yaml.Node) (any, *yamlError) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAML(n.Content[0])

	case yaml.AliasNode:
		return fromYAML(n.Alias)

	case yaml.MappingNode:
		r := make(rule.Rule, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, &yamlError{node: k, msg: "mapping keys must be scalars"}
			}
			if k.Tag == "!!merge" {
				return nil, &yamlError{node: k, msg: "merge keys are not supported"}
			}
			child, err := fromYAML(v)
			if err != nil {
				return nil, err
			}
			r = append(r, rule.Decl{Key: k.Value, Value: child})
		}
		return r, nil

	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			list = append(list, child)
		}
		return list, nil

	case yaml.ScalarNode:
		return yamlScalar(n)

	default:
		return nil, &yamlError{node: n, msg: fmt.Sprintf("unsupported YAML node kind %d", n.Kind)}
	}
}

func yamlScalar(n *yaml.Node) (any, *yamlError) {
	var (
		v   any
		err error
	)
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!int":
		var i int64
		err = n.Decode(&i)
		v = i
	case "!!float":
		var f float64
		err = n.Decode(&f)
		v = f
	case "!!bool":
		var b bool
		err = n.Decode(&b)
		v = b
	default:
		return n.Value, nil
	}
	if err != nil {
		return nil, &yamlError{node: n, msg: err.Error()}
	}
	return v, nil
}
