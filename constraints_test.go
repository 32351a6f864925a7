package reqschema_test

import (
	"testing"

	"github.com/reqschema/reqschema"
	g "github.com/reqschema/reqschema/dsl"
)

func intp(n int) *int { return &n }

func TestCheckLength_CountsCodePoints(t *testing.T) {
	// Three runes, nine bytes.
	iss := reqschema.CheckLength("name", "日本語", intp(3), intp(3))
	if len(iss) != 0 {
		t.Fatalf("multibyte string of 3 code points failed [3,3]: %v", iss)
	}
	iss = reqschema.CheckLength("name", "日本語", intp(4), nil)
	if len(iss) != 1 || iss[0].Rule != reqschema.RuleMinLength {
		t.Fatalf("expected one minLength issue, got %v", iss)
	}
}

func TestCheckLength_BothBoundsCanFire(t *testing.T) {
	// min > actual and max < actual cannot both hold for one string, but a
	// short value under min reports exactly one issue even when max exists.
	iss := reqschema.CheckLength("name", "ab", intp(3), intp(5))
	if len(iss) != 1 || iss[0].Rule != reqschema.RuleMinLength {
		t.Fatalf("issues = %v", iss)
	}
	if iss[0].Path != "name" {
		t.Fatalf("path = %q", iss[0].Path)
	}
}

func TestCheckRange_InclusiveBounds(t *testing.T) {
	min, max := 1.0, 10.0
	if iss := reqschema.CheckRange("n", 1, &min, &max); len(iss) != 0 {
		t.Fatalf("lower bound is inclusive: %v", iss)
	}
	if iss := reqschema.CheckRange("n", 10, &min, &max); len(iss) != 0 {
		t.Fatalf("upper bound is inclusive: %v", iss)
	}
	iss := reqschema.CheckRange("n", 0.5, &min, nil)
	if len(iss) != 1 || iss[0].Rule != reqschema.RuleMinimum {
		t.Fatalf("issues = %v", iss)
	}
	iss = reqschema.CheckRange("n", 11, nil, &max)
	if len(iss) != 1 || iss[0].Rule != reqschema.RuleMaximum {
		t.Fatalf("issues = %v", iss)
	}
}

func TestCheckPattern_AnchoredWholeString(t *testing.T) {
	// The loader/builder anchors patterns; a substring match must not pass.
	rs, err := g.Request("POST").
		Field("zip", g.String().Required().Pattern(`[0-9]{5}`)).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	_, iss := reqschema.Validate(rs, map[string]any{"zip": "zip is 10115"})
	if len(iss) != 1 || iss[0].Rule != reqschema.RulePattern {
		t.Fatalf("substring match must fail the anchored pattern, got %v", iss)
	}
	_, iss = reqschema.Validate(rs, map[string]any{"zip": "10115"})
	if len(iss) != 0 {
		t.Fatalf("exact match rejected: %v", iss)
	}
}

func TestCheckPattern_AlternationIsFullyAnchored(t *testing.T) {
	// ^(?:a|bb)$; without the group, "ab" would satisfy "^a|bb$".
	rs, err := g.Request("POST").
		Field("v", g.String().Required().Pattern(`a|bb`)).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	_, iss := reqschema.Validate(rs, map[string]any{"v": "ab"})
	if len(iss) != 1 || iss[0].Rule != reqschema.RulePattern {
		t.Fatalf("alternation leaked past anchoring: %v", iss)
	}
}

func TestCheckFormat_UnregisteredNameFails(t *testing.T) {
	iss := reqschema.CheckFormat("f", "anything", "no-such-format")
	if len(iss) != 1 || iss[0].Rule != reqschema.RuleFormat {
		t.Fatalf("issues = %v", iss)
	}
	if iss := reqschema.CheckFormat("f", "anything", ""); len(iss) != 0 {
		t.Fatalf("empty format means no check: %v", iss)
	}
}
