// Package dsl builds request schemas programmatically, as an alternative to
// loading schema documents with schemafile. Declaration order of Field calls
// matches document order, so validation order and error ordering behave the
// same either way.
package dsl

import (
	"strconv"

	"github.com/reqschema/reqschema"
)

// RequestBuilder assembles a RequestSchema.
type RequestBuilder struct {
	method  string
	headers []reqschema.Header
	body    *PropertyBuilder
}

// Request starts a schema for the given HTTP method.
func Request(method string) *RequestBuilder {
	return &RequestBuilder{method: method, body: Object()}
}

// Header declares a required header. An empty value means present-only; a
// non-empty value must match exactly.
func (b *RequestBuilder) Header(name, value string) *RequestBuilder {
	b.headers = append(b.headers, reqschema.Header{Name: name, Value: value})
	return b
}

// Field declares a body property in declaration order.
func (b *RequestBuilder) Field(name string, p *PropertyBuilder) *RequestBuilder {
	b.body.Field(name, p)
	return b
}

// Build compiles the schema, enforcing the same structural invariants as the
// document loader.
func (b *RequestBuilder) Build() (*reqschema.RequestSchema, error) {
	body, err := b.body.finish("", "")
	if err != nil {
		return nil, err
	}
	body.Required = true
	rs := &reqschema.RequestSchema{
		Method:  b.method,
		Headers: b.headers,
		Body:    body,
	}
	if err := rs.Compile(); err != nil {
		return nil, err
	}
	return rs, nil
}

// MustBuild is Build for wiring done at program init, where a malformed
// schema is a programming error.
func (b *RequestBuilder) MustBuild() *reqschema.RequestSchema {
	rs, err := b.Build()
	if err != nil {
		panic(err)
	}
	return rs
}

// PropertyBuilder assembles one schema node.
type PropertyBuilder struct {
	kind     reqschema.Kind
	required bool
	c        reqschema.Constraints
	names    []string
	children map[string]*PropertyBuilder
	dups     []string
}

// String declares a string node.
func String() *PropertyBuilder { return &PropertyBuilder{kind: reqschema.KindString} }

// Integer declares an integer node.
func Integer() *PropertyBuilder { return &PropertyBuilder{kind: reqschema.KindInteger} }

// Number declares a number node.
func Number() *PropertyBuilder { return &PropertyBuilder{kind: reqschema.KindNumber} }

// Boolean declares a boolean node.
func Boolean() *PropertyBuilder { return &PropertyBuilder{kind: reqschema.KindBoolean} }

// Object declares an object node; populate it with Field.
func Object() *PropertyBuilder {
	return &PropertyBuilder{kind: reqschema.KindObject, children: map[string]*PropertyBuilder{}}
}

// Required marks the node as required.
func (p *PropertyBuilder) Required() *PropertyBuilder {
	p.required = true
	return p
}

// MinLength sets the inclusive lower string-length bound (code points).
func (p *PropertyBuilder) MinLength(n int) *PropertyBuilder {
	p.c.MinLength = &n
	return p
}

// MaxLength sets the inclusive upper string-length bound (code points).
func (p *PropertyBuilder) MaxLength(n int) *PropertyBuilder {
	p.c.MaxLength = &n
	return p
}

// Min sets the inclusive numeric lower bound.
func (p *PropertyBuilder) Min(v float64) *PropertyBuilder {
	p.c.Minimum = &v
	return p
}

// Max sets the inclusive numeric upper bound.
func (p *PropertyBuilder) Max(v float64) *PropertyBuilder {
	p.c.Maximum = &v
	return p
}

// Pattern sets the expression the whole string must match. Compilation (and
// anchoring) happens in Build.
func (p *PropertyBuilder) Pattern(src string) *PropertyBuilder {
	p.c.PatternSrc = src
	return p
}

// Format names a registered semantic validator for the node.
func (p *PropertyBuilder) Format(name string) *PropertyBuilder {
	p.c.Format = name
	return p
}

// Field declares a child node in declaration order. Schema mistakes (Field on
// a non-object node, a name declared twice) are rejected by Build, not here,
// so they surface as SchemaError like every other structural problem.
func (p *PropertyBuilder) Field(name string, c *PropertyBuilder) *PropertyBuilder {
	if p.children == nil {
		p.children = map[string]*PropertyBuilder{}
	}
	if _, dup := p.children[name]; dup {
		p.dups = append(p.dups, name)
		return p
	}
	p.names = append(p.names, name)
	p.children[name] = c
	return p
}

func (p *PropertyBuilder) finish(name, path string) (*reqschema.Property, error) {
	if len(p.dups) > 0 {
		d := p.dups[0]
		return nil, &reqschema.SchemaError{Path: joinPath(path, d), Message: "duplicate field " + strconv.Quote(d)}
	}
	out := &reqschema.Property{
		Name:        name,
		Kind:        p.kind,
		Required:    p.required,
		Constraints: p.c,
	}
	for _, n := range p.names {
		c, err := p.children[n].finish(n, joinPath(path, n))
		if err != nil {
			return nil, err
		}
		out.AddChild(c)
	}
	return out, nil
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
