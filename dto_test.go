package reqschema_test

import (
	"reflect"
	"testing"

	"github.com/reqschema/reqschema"
	g "github.com/reqschema/reqschema/dsl"
)

func profileSchema(t *testing.T) *reqschema.RequestSchema {
	t.Helper()
	rs, err := g.Request("POST").
		Field("name", g.String().Required()).
		Field("age", g.Integer()).
		Field("active", g.Boolean()).
		Field("address", g.Object().
			Field("zip", g.String()).
			Field("geo", g.Object().
				Field("lat", g.Number()).
				Field("lng", g.Number()))).
		Build()
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}
	return rs
}

func TestNewDTO_PrePopulatesShape(t *testing.T) {
	rs := profileSchema(t)
	dto := reqschema.NewDTO(rs.Body)

	want := []string{"name", "age", "active", "address"}
	if got := dto.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields() = %v, want declaration order %v", got, want)
	}
	// Scalars are unset, objects exist all the way down.
	if dto.Has("name") || dto.Has("age") {
		t.Fatalf("scalar leaves must start unset")
	}
	geo := dto.Object("address").Object("geo")
	if geo == nil {
		t.Fatalf("nested objects must be instantiated before validation")
	}
	if got := geo.Fields(); !reflect.DeepEqual(got, []string{"lat", "lng"}) {
		t.Fatalf("geo fields = %v", got)
	}
}

func TestDTO_TypedGetters(t *testing.T) {
	rs := profileSchema(t)
	dto, iss := reqschema.Validate(rs, map[string]any{
		"name":   "gopher",
		"age":    29,
		"active": true,
		"address": map[string]any{
			"zip": "10115",
			"geo": map[string]any{"lat": 52.53, "lng": 13.38},
		},
	})
	if len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}

	if s, ok := dto.String("name"); !ok || s != "gopher" {
		t.Fatalf("String(name) = %q, %v", s, ok)
	}
	if n, ok := dto.Int("age"); !ok || n != 29 {
		t.Fatalf("Int(age) = %d, %v", n, ok)
	}
	if b, ok := dto.Bool("active"); !ok || !b {
		t.Fatalf("Bool(active) = %v, %v", b, ok)
	}
	if f, ok := dto.Object("address").Object("geo").Float("lat"); !ok || f != 52.53 {
		t.Fatalf("Float(lat) = %v, %v", f, ok)
	}
	// Getter with the wrong type reports no value.
	if _, ok := dto.Int("name"); ok {
		t.Fatalf("Int(name) must not report a value for a string field")
	}
	if dto.Object("name") != nil {
		t.Fatalf("Object(name) must be nil for a scalar field")
	}
}

func TestDTO_Lookup(t *testing.T) {
	rs := profileSchema(t)
	dto, iss := reqschema.Validate(rs, map[string]any{
		"name":    "gopher",
		"address": map[string]any{"geo": map[string]any{"lat": 1.5}},
	})
	if len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}

	if v, ok := dto.Lookup("address.geo.lat"); !ok || v != 1.5 {
		t.Fatalf("Lookup(address.geo.lat) = %v, %v", v, ok)
	}
	if _, ok := dto.Lookup("address.zip"); ok {
		t.Fatalf("Lookup must miss for unset leaves")
	}
	if _, ok := dto.Lookup("name.zip"); ok {
		t.Fatalf("Lookup must miss when traversing through a scalar")
	}
}

func TestDTO_SchemaIntrospection(t *testing.T) {
	rs := profileSchema(t)
	dto := reqschema.NewDTO(rs.Body)

	if dto.Schema() != rs.Body {
		t.Fatalf("Schema() must return the originating node")
	}
	zip, ok := dto.Object("address").Schema().Child("zip")
	if !ok || zip.Kind != reqschema.KindString {
		t.Fatalf("Child(zip) = %+v, %v", zip, ok)
	}
}

func TestDTO_ExportOmitsUnset(t *testing.T) {
	rs := profileSchema(t)
	dto, iss := reqschema.Validate(rs, map[string]any{"name": "gopher"})
	if len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}

	want := map[string]any{
		"name":    "gopher",
		"address": map[string]any{"geo": map[string]any{}},
	}
	if got := dto.Export(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Export() = %v, want %v", got, want)
	}
}
