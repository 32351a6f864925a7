package reqschema

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/reqschema/reqschema/i18n"
)

// Coerce reports whether a payload value already matches the declared kind
// and returns its normalized Go representation (string, int64, float64, bool,
// or map[string]any for objects). There is no implicit cross-type coercion:
// a numeric string never satisfies integer or number, and null satisfies
// nothing. json.Number inputs (UseNumber decoding) keep integer/number
// typing exact; float64 inputs (pre-decoded payloads) satisfy integer only
// when they carry no fractional part, because the standard decoder has no
// other way to represent an integral JSON number.
func Coerce(v any, kind Kind) (any, bool) {
	switch kind {
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindBoolean:
		b, ok := v.(bool)
		return b, ok
	case KindInteger:
		switch t := v.(type) {
		case int:
			return int64(t), true
		case int64:
			return t, true
		case json.Number:
			n, err := t.Int64()
			return n, err == nil
		case float64:
			// int64(t) is implementation-defined once t leaves int64 range,
			// so the bounds are checked before converting. float64(MaxInt64)
			// rounds up to 2^63, hence >= rather than >.
			if t != math.Trunc(t) || t < math.MinInt64 || t >= math.MaxInt64 {
				return nil, false
			}
			return int64(t), true
		default:
			return nil, false
		}
	case KindNumber:
		switch t := v.(type) {
		case float64:
			return t, true
		case int:
			return float64(t), true
		case int64:
			return float64(t), true
		case json.Number:
			f, err := strconv.ParseFloat(t.String(), 64)
			return f, err == nil
		default:
			return nil, false
		}
	case KindObject:
		m, ok := v.(map[string]any)
		return m, ok
	default:
		return nil, false
	}
}

// CheckType verifies that a present value matches the declared kind,
// returning the coerced value on success or a single type violation.
func CheckType(path string, v any, kind Kind) (any, Issues) {
	cv, ok := Coerce(v, kind)
	if ok {
		return cv, nil
	}
	return nil, Issues{{
		Path: path, Rule: RuleType,
		Message: i18n.T(RuleType, map[string]string{"expected": kind.String()}),
		Hint:    "expected " + kind.String(),
		Params:  map[string]any{"expected": kind.String()},
	}}
}
