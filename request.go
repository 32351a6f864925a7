package reqschema

import (
	"errors"

	"github.com/google/uuid"

	"github.com/reqschema/reqschema/i18n"
)

// State tracks the Request lifecycle. Validated and Failed are terminal; a
// Request is single use and a caller must construct a new one per inbound
// request.
type State int

const (
	StateSchemaLoaded State = iota
	StateProcessing
	StateValidated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSchemaLoaded:
		return "schema_loaded"
	case StateProcessing:
		return "processing"
	case StateValidated:
		return "validated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrRequestConsumed is returned when Process is invoked on a Request that
// already reached a terminal state.
var ErrRequestConsumed = errors.New("reqschema: request already processed; build a new Request per inbound request")

// Request orchestrates one inbound request against a loaded schema: header
// verification, payload ingestion, validation, and DTO exposure. The schema
// is shared read-only; everything else on a Request belongs to a single
// in-flight request.
type Request struct {
	id     string
	schema *RequestSchema
	dto    *DTO
	state  State
	issues Issues
}

// NewRequest builds a Request for one inbound request. The DTO shape is
// pre-populated immediately so collaborators can introspect declared fields
// before any payload is processed.
func NewRequest(rs *RequestSchema) *Request {
	return &Request{
		id:     uuid.NewString(),
		schema: rs,
		dto:    NewDTO(rs.Body),
		state:  StateSchemaLoaded,
	}
}

// ID returns the generated per-request identifier, for correlating an
// aggregate failure with transport-level logs.
func (r *Request) ID() string { return r.id }

// State returns the current lifecycle state.
func (r *Request) State() State { return r.state }

// Schema returns the schema this Request validates against.
func (r *Request) Schema() *RequestSchema { return r.schema }

// DTO returns the request's DTO. Before processing it carries the empty
// pre-populated shape; after a successful Process it is the same instance
// with validated values filled in.
func (r *Request) DTO() *DTO { return r.dto }

// Issues returns the violations collected by Process, nil before processing
// or after a fully valid request.
func (r *Request) Issues() Issues { return r.issues }

// Process verifies headers and validates an already-decoded payload. On any
// violation the whole operation fails with the complete ordered list (header
// violations first, body violations appended); on success the populated DTO
// is returned. Either way the Request reaches a terminal state.
func (r *Request) Process(headers map[string]string, payload map[string]any) (*DTO, error) {
	if r.state != StateSchemaLoaded {
		return nil, ErrRequestConsumed
	}
	r.state = StateProcessing

	iss := CheckHeaders(r.schema.Headers, headers)
	iss = AppendIssues(iss, ValidateInto(r.dto, payload)...)
	if len(iss) > 0 {
		r.issues = iss
		r.state = StateFailed
		return nil, iss
	}
	r.state = StateValidated
	return r.dto, nil
}

// ProcessJSON decodes raw JSON and delegates to Process. A decode failure is
// a *PayloadError: fatal, reported alone, and nothing enters the validator.
func (r *Request) ProcessJSON(headers map[string]string, body []byte) (*DTO, error) {
	if r.state != StateSchemaLoaded {
		return nil, ErrRequestConsumed
	}
	payload, err := DecodeJSON(body)
	if err != nil {
		r.state = StateFailed
		return nil, err
	}
	return r.Process(headers, payload)
}

// CheckHeaders verifies declared required headers against the supplied
// header mapping. Each declared header must be present; when a literal
// expected value was declared it must match exactly (case-sensitive).
// Violations use the path prefix "headers.<name>".
func CheckHeaders(declared []Header, supplied map[string]string) Issues {
	var iss Issues
	for _, h := range declared {
		path := "headers." + h.Name
		got, ok := supplied[h.Name]
		if !ok {
			iss = AppendIssues(iss, CheckRequired(path, false, true)...)
			continue
		}
		if h.Value != "" && got != h.Value {
			iss = AppendIssues(iss, Issue{
				Path: path, Rule: RuleHeader,
				Message: i18n.T(RuleHeader, nil),
				Hint:    "expected " + h.Value,
				Params:  map[string]any{"expected": h.Value, "got": got},
			})
		}
	}
	return iss
}
