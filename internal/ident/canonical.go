package ident

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/styl/internal/rule"
)

// MarshalCanonical produces deterministic JSON text for fingerprinting.
//
// Differences from json.Marshal:
//  1. rule.Rule is an object whose members keep declaration order
//  2. map keys are sorted by UTF-16 code units
//  3. strings are NFC normalized and never HTML-escaped
//  4. floats use the shortest round-trip form; NaN and Inf are rejected
func MarshalCanonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		return writeCanonicalString(buf, val)
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case int:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int8:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int16:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case uint:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint8:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint16:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(val, 10))
	case float32:
		return writeCanonicalFloat(buf, float64(val), 32)
	case float64:
		return writeCanonicalFloat(buf, val, 64)
	case rule.Rule:
		return writeCanonicalRule(buf, val)
	case []rule.Decl:
		return writeCanonicalRule(buf, rule.Rule(val))
	case map[string]any, map[string]string:
		r, _ := rule.As(val)
		return writeCanonicalRule(buf, r)
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case []string:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalString(buf, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case fmt.Stringer:
		return writeCanonicalString(buf, val.String())
	default:
		return fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
	return nil
}

func writeCanonicalRule(buf *bytes.Buffer, r rule.Rule) error {
	buf.WriteByte('{')
	for i, d := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeCanonicalString(buf, d.Key); err != nil {
			return fmt.Errorf("key %q: %w", d.Key, err)
		}
		buf.WriteByte(':')
		if err := writeCanonical(buf, d.Value); err != nil {
			return fmt.Errorf("value for key %q: %w", d.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeCanonicalFloat(buf *bytes.Buffer, f float64, bits int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("non-finite float in canonical JSON: %v", f)
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	return nil
}

// writeCanonicalString writes a JSON string with NFC normalization and
// HTML escaping disabled.
func writeCanonicalString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return err
	}
	// Encoder terminates every value with a newline.
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
