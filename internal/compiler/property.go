package compiler

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/roach88/styl/internal/rule"
)

// unitlessRe matches properties whose bare numeric values must not get a
// px unit: flex-grow/shrink, z-index, opacity, line-height, font-weight,
// order, orphans/widows, scale, tab-size, columns, animation iteration
// counts and the like. It is tested against the property as written.
var unitlessRe = regexp.MustCompile(`^(-|f[lo].*[^se]$|g.{5,}[^ps]$|z|o[pr]|(W.{5})?[lL]i.*(t|mp)$|an|(bo|s).{4}Im|sca|m.{6}[ds]|ta|c.*[st]$|wido|ini)`)

// IsUnitless reports whether numeric values of property are rendered bare.
func IsUnitless(property string) bool {
	return unitlessRe.MatchString(property)
}

// Kebab converts a camelCase property name to kebab-case. Every uppercase
// ASCII letter becomes "-" plus its lowercase form; names starting with
// "ms" get a leading "-" for the Microsoft vendor prefix.
func Kebab(property string) string {
	var sb strings.Builder
	sb.Grow(len(property) + 4)
	if strings.HasPrefix(property, "ms") {
		sb.WriteByte('-')
	}
	for i := 0; i < len(property); i++ {
		c := property[i]
		if c >= 'A' && c <= 'Z' {
			sb.WriteByte('-')
			sb.WriteByte(c + ('a' - 'A'))
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// formatValue renders a declaration value. A false second result means the
// declaration is skipped (nil value or empty list). Bare numbers get unit
// appended when unit is non-empty.
func formatValue(v any, unit string) (string, bool, error) {
	switch val := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return val, true, nil
	case int:
		return strconv.FormatInt(int64(val), 10) + unit, true, nil
	case int8:
		return strconv.FormatInt(int64(val), 10) + unit, true, nil
	case int16:
		return strconv.FormatInt(int64(val), 10) + unit, true, nil
	case int32:
		return strconv.FormatInt(int64(val), 10) + unit, true, nil
	case int64:
		return strconv.FormatInt(val, 10) + unit, true, nil
	case uint:
		return strconv.FormatUint(uint64(val), 10) + unit, true, nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10) + unit, true, nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10) + unit, true, nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10) + unit, true, nil
	case uint64:
		return strconv.FormatUint(val, 10) + unit, true, nil
	case float32:
		return formatFloat(float64(val), 32, unit)
	case float64:
		return formatFloat(val, 64, unit)
	case []string:
		if len(val) == 0 {
			return "", false, nil
		}
		return strings.Join(val, ","), true, nil
	case []any:
		parts := make([]string, 0, len(val))
		for i, elem := range val {
			s, ok, err := formatValue(elem, unit)
			if err != nil {
				return "", false, fmt.Errorf("list element %d: %w", i, err)
			}
			if ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false, nil
		}
		return strings.Join(parts, ","), true, nil
	case rule.Rule, []rule.Decl, map[string]any, map[string]string:
		return "", false, fmt.Errorf("nested rule under a property key; use a selector with &, an at-rule or selectors")
	case fmt.Stringer:
		return val.String(), true, nil
	default:
		return "", false, fmt.Errorf("unsupported value type %T", v)
	}
}

func formatFloat(f float64, bits int, unit string) (string, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false, fmt.Errorf("non-finite number %v", f)
	}
	return strconv.FormatFloat(f, 'f', -1, bits) + unit, true, nil
}

// unitFor returns the unit appended to bare numbers of property.
func unitFor(property string) string {
	if IsUnitless(property) {
		return ""
	}
	return "px"
}
