package compiler

import (
	"strings"

	"github.com/roach88/styl/internal/rule"
)

// CompileKeyframes compiles a keyframes rule named name. Each step is a flat
// rule: properties, vars and variable keys only. Steps without declarations
// are omitted; a rule without any non-empty step compiles to "".
func CompileKeyframes(name string, kf rule.Rule) (string, error) {
	c := &ruleCompiler{}
	var steps strings.Builder

	for _, step := range kf {
		c.push(step.Key)
		props, err := c.nestedRule(step.Value)
		if err != nil {
			return "", err
		}

		var decls strings.Builder
		for _, d := range props {
			c.push(d.Key)
			switch kind := rule.Classify(d.Key); kind {
			case rule.KindProperty:
				err = c.writeProperty(&decls, d.Key, d.Value)
			case rule.KindVar:
				err = c.writeVar(&decls, d.Key, d.Value)
			case rule.KindVars:
				var vars rule.Rule
				if vars, err = c.nestedRule(d.Value); err == nil {
					for _, v := range vars {
						if err = c.writeVar(&decls, v.Key, v.Value); err != nil {
							break
						}
					}
				}
			default:
				err = newError(c.path, "%s keys are not allowed in keyframes", kind)
			}
			if err != nil {
				return "", err
			}
			c.pop()
		}

		if decls.Len() > 0 {
			steps.WriteString(step.Key)
			steps.WriteByte('{')
			steps.WriteString(decls.String())
			steps.WriteByte('}')
		}
		c.pop()
	}

	if steps.Len() == 0 {
		return "", nil
	}
	return "@keyframes " + name + "{" + steps.String() + "}", nil
}
