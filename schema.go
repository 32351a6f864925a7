package reqschema

import "regexp"

// Kind enumerates the property types a schema node may declare.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBoolean
	KindObject
)

// String returns the schema-document spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// KindOf maps a schema-document type spelling to its Kind.
func KindOf(s string) (Kind, bool) {
	switch s {
	case "string":
		return KindString, true
	case "integer":
		return KindInteger, true
	case "number":
		return KindNumber, true
	case "boolean":
		return KindBoolean, true
	case "object":
		return KindObject, true
	default:
		return 0, false
	}
}

// Constraints holds the per-node validation parameters recognized by the
// engine. Pointer fields distinguish "absent" from zero values; Pattern is
// compiled (anchored) at load time so validation never recompiles.
type Constraints struct {
	MinLength *int
	MaxLength *int
	Minimum   *float64
	Maximum   *float64
	Pattern   *regexp.Regexp
	// PatternSrc preserves the declared expression for messages.
	PatternSrc string
	Format     string
}

// Property is one schema node. Object-kind nodes carry an ordered child set;
// scalar nodes never do. A Property tree is immutable after load and safe to
// share read-only across concurrent requests.
type Property struct {
	Name        string
	Kind        Kind
	Required    bool
	Constraints Constraints

	// props preserves declaration order; index maps name to position.
	props []*Property
	index map[string]int
}

// AddChild appends a child node, preserving declaration order. It is intended
// for loaders; mutating a Property after it is in use is not supported.
func (p *Property) AddChild(c *Property) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	p.index[c.Name] = len(p.props)
	p.props = append(p.props, c)
}

// Properties returns the child nodes in declaration order. The returned slice
// must not be modified.
func (p *Property) Properties() []*Property { return p.props }

// Child looks up a child node by name.
func (p *Property) Child(name string) (*Property, bool) {
	i, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return p.props[i], true
}

// Header declares one required request header. An empty Value means the
// header only needs to be present; a non-empty Value must match exactly
// (case-sensitive).
type Header struct {
	Name  string
	Value string
}

// RequestSchema is a loaded top-level schema: the HTTP method, the required
// headers in declaration order, and the root object node describing the body.
// It is built once per schema document and immutable thereafter.
type RequestSchema struct {
	Method  string
	Headers []Header
	Body    *Property
}
