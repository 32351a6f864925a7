package middleware_test

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/reqschema/reqschema"
	"github.com/reqschema/reqschema/dsl"
	"github.com/reqschema/reqschema/middleware"
)

func TestContextRoundTrip(t *testing.T) {
	rs := dsl.Request("POST").Field("name", dsl.String()).MustBuild()
	dto := reqschema.NewDTO(rs.Body)

	ctx := middleware.ContextWithDTO(context.Background(), dto)
	got, ok := middleware.DTOFromContext(ctx)
	if !ok || got != dto {
		t.Fatalf("DTOFromContext = %v, %v", got, ok)
	}

	if _, ok := middleware.DTOFromContext(context.Background()); ok {
		t.Fatal("empty context must not yield a DTO")
	}
}

func TestHeaderMap_KeepsFirstValue(t *testing.T) {
	h := http.Header{}
	h.Add("Content-Type", "application/json")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")
	h["Empty"] = nil

	got := middleware.HeaderMap(h)
	want := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("HeaderMap = %v, want %v", got, want)
	}
}

func TestErrorPayload_GroupsByPathInOrder(t *testing.T) {
	issues := []reqschema.Issue{
		{Path: "headers.Content-Type", Rule: reqschema.RuleRequired, Message: "required property missing"},
		{Path: "username", Rule: reqschema.RuleMinLength, Message: "too short"},
		{Path: "username", Rule: reqschema.RulePattern, Message: "does not match the required pattern"},
	}

	p := middleware.ErrorPayload(issues)
	fields, ok := p["fields"].([]string)
	if !ok {
		t.Fatalf("fields = %T", p["fields"])
	}
	if want := []string{"headers.Content-Type", "username"}; !reflect.DeepEqual(fields, want) {
		t.Fatalf("fields = %v, want %v", fields, want)
	}

	errs := p["errors"].(map[string][]map[string]string)
	if len(errs["username"]) != 2 {
		t.Fatalf("username errors = %v", errs["username"])
	}
	if errs["username"][0]["rule"] != "minLength" {
		t.Fatalf("first username rule = %q", errs["username"][0]["rule"])
	}
}
