package reqschema

import (
	"errors"
	"fmt"
	"strings"
)

// Rule tags (exported consts for IDE completion and type safety by convention).
// The tags match the constraint keys used in schema documents so that a
// violation can be traced back to the schema line that produced it.
const (
	RuleRequired  = "required"
	RuleType      = "type"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleMinimum   = "minimum"
	RuleMaximum   = "maximum"
	RulePattern   = "pattern"
	RuleFormat    = "format"
	RuleHeader    = "header"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dot path (for example: address.zip, headers.Content-Type).
	Rule    string // One of the rule tags listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":3, "got":2})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
// The engine returns violations as data; only Request escalates a non-empty
// list into a raised failure.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. minLength at username
		fmt.Fprintf(b, "%s at %s", it.Rule, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaError reports a malformed schema document. It is fatal at load time
// and never produced during request processing.
type SchemaError struct {
	Path    string // Dot path of the offending node ("" for the document root).
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "schema: " + e.Message
	}
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Message)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// PayloadError reports input that could not be decoded as the expected
// format. It short-circuits processing before any validation runs and is
// distinct from field violations.
type PayloadError struct {
	Cause error
}

func (e *PayloadError) Error() string {
	if e.Cause == nil {
		return "payload: undecodable input"
	}
	return "payload: " + e.Cause.Error()
}

func (e *PayloadError) Unwrap() error { return e.Cause }
