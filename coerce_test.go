package reqschema_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/reqschema/reqschema"
)

func TestCoerce_NoImplicitStringToNumber(t *testing.T) {
	if _, ok := reqschema.Coerce("42", reqschema.KindInteger); ok {
		t.Fatalf("numeric string must not satisfy integer")
	}
	if _, ok := reqschema.Coerce("4.2", reqschema.KindNumber); ok {
		t.Fatalf("numeric string must not satisfy number")
	}
	if _, ok := reqschema.Coerce("true", reqschema.KindBoolean); ok {
		t.Fatalf("string must not satisfy boolean")
	}
}

func TestCoerce_Integer(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"int", 42, 42, true},
		{"int64", int64(42), 42, true},
		{"json.Number integral", json.Number("42"), 42, true},
		{"json.Number fractional", json.Number("4.2"), 0, false},
		{"float64 integral", float64(42), 42, true},
		{"float64 fractional", 4.2, 0, false},
		{"float64 above int64 range", 1e30, 0, false},
		{"float64 2^63", 9.223372036854776e18, 0, false},
		{"float64 min int64", -9.223372036854776e18, math.MinInt64, true},
		{"float64 +inf", math.Inf(1), 0, false},
		{"float64 nan", math.NaN(), 0, false},
		{"bool", true, 0, false},
		{"null", nil, 0, false},
	}
	for _, tc := range cases {
		v, ok := reqschema.Coerce(tc.in, reqschema.KindInteger)
		if ok != tc.ok {
			t.Fatalf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
		}
		if ok && v.(int64) != tc.want {
			t.Fatalf("%s: v = %v, want %d", tc.name, v, tc.want)
		}
	}
}

func TestCoerce_Number(t *testing.T) {
	if v, ok := reqschema.Coerce(json.Number("4.2"), reqschema.KindNumber); !ok || v.(float64) != 4.2 {
		t.Fatalf("json.Number: %v, %v", v, ok)
	}
	if v, ok := reqschema.Coerce(7, reqschema.KindNumber); !ok || v.(float64) != 7 {
		t.Fatalf("int widens to float64: %v, %v", v, ok)
	}
	if _, ok := reqschema.Coerce(true, reqschema.KindNumber); ok {
		t.Fatalf("bool must not satisfy number")
	}
}

func TestCoerce_ObjectAndNull(t *testing.T) {
	if _, ok := reqschema.Coerce(map[string]any{}, reqschema.KindObject); !ok {
		t.Fatalf("map must satisfy object")
	}
	if _, ok := reqschema.Coerce([]any{}, reqschema.KindObject); ok {
		t.Fatalf("array must not satisfy object")
	}
	for _, k := range []reqschema.Kind{
		reqschema.KindString, reqschema.KindInteger, reqschema.KindNumber,
		reqschema.KindBoolean, reqschema.KindObject,
	} {
		if _, ok := reqschema.Coerce(nil, k); ok {
			t.Fatalf("null must not satisfy %s", k)
		}
	}
}
