package reqschema

import (
	"fmt"
	"unicode/utf8"

	"github.com/reqschema/reqschema/i18n"
)

// Constraint checks are stateless: each inspects one value against one rule
// and contributes zero or one Issue. Checks are independent of each other;
// the validator decides which ones apply and runs every applicable check even
// when an earlier one already failed.

// CheckRequired reports a required violation when a declared-required node is
// absent from the input.
func CheckRequired(path string, present, required bool) Issues {
	if present || !required {
		return nil
	}
	return Issues{{Path: path, Rule: RuleRequired, Message: i18n.T(RuleRequired, nil), Hint: "required property missing"}}
}

// CheckLength validates string length in code points against inclusive
// bounds. Either bound may be nil.
func CheckLength(path, s string, min, max *int) Issues {
	n := utf8.RuneCountInString(s)
	var iss Issues
	if min != nil && n < *min {
		iss = AppendIssues(iss, Issue{
			Path: path, Rule: RuleMinLength,
			Message: i18n.T(RuleMinLength, map[string]string{"min": fmt.Sprint(*min)}),
			Params:  map[string]any{"min": *min, "got": n},
		})
	}
	if max != nil && n > *max {
		iss = AppendIssues(iss, Issue{
			Path: path, Rule: RuleMaxLength,
			Message: i18n.T(RuleMaxLength, map[string]string{"max": fmt.Sprint(*max)}),
			Params:  map[string]any{"max": *max, "got": n},
		})
	}
	return iss
}

// CheckRange validates a numeric value against inclusive bounds. Either bound
// may be nil.
func CheckRange(path string, v float64, min, max *float64) Issues {
	var iss Issues
	if min != nil && v < *min {
		iss = AppendIssues(iss, Issue{
			Path: path, Rule: RuleMinimum,
			Message: i18n.T(RuleMinimum, map[string]string{"min": trimFloat(*min)}),
			Params:  map[string]any{"min": *min, "got": v},
		})
	}
	if max != nil && v > *max {
		iss = AppendIssues(iss, Issue{
			Path: path, Rule: RuleMaximum,
			Message: i18n.T(RuleMaximum, map[string]string{"max": trimFloat(*max)}),
			Params:  map[string]any{"max": *max, "got": v},
		})
	}
	return iss
}

// CheckPattern requires the whole string to satisfy the compiled expression.
// Anchoring happens at schema load, not here.
func CheckPattern(path, s string, c Constraints) Issues {
	if c.Pattern == nil || c.Pattern.MatchString(s) {
		return nil
	}
	return Issues{{
		Path: path, Rule: RulePattern,
		Message: i18n.T(RulePattern, nil),
		Hint:    c.PatternSrc,
		Params:  map[string]any{"pattern": c.PatternSrc},
	}}
}

// CheckFormat runs the named semantic validator registered for the format.
// Unknown format names are rejected at schema load, so a miss here means the
// registry was mutated after load; the value is treated as invalid.
func CheckFormat(path, s, format string) Issues {
	if format == "" {
		return nil
	}
	fn, ok := lookupFormat(format)
	if ok && fn(s) {
		return nil
	}
	return Issues{{
		Path: path, Rule: RuleFormat,
		Message: i18n.T(RuleFormat, map[string]string{"format": format}),
		Hint:    format,
		Params:  map[string]any{"format": format},
	}}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprint(int64(f))
	}
	return fmt.Sprint(f)
}
