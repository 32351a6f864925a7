package reqschema

import "strings"

// DTO is a navigable property bag mirroring an object schema node. It is
// created in an "empty" shape at schema-load time (declared names known,
// nested objects allocated, scalar leaves unset) and filled in place by the
// validator, so the identity observed before and after validation is the
// same. A DTO belongs to a single in-flight request and must not be shared.
type DTO struct {
	prop   *Property
	values map[string]any
}

// NewDTO builds the pre-populated shape for an object node: every declared
// object child becomes an empty nested DTO, scalar children stay unset.
func NewDTO(p *Property) *DTO {
	d := &DTO{prop: p, values: make(map[string]any, len(p.props))}
	for _, c := range p.props {
		if c.Kind == KindObject {
			d.values[c.Name] = NewDTO(c)
		}
	}
	return d
}

// Schema returns the object node this DTO was built from, so callers can
// introspect declared fields before any payload has been processed.
func (d *DTO) Schema() *Property { return d.prop }

// Fields returns the declared property names in declaration order.
func (d *DTO) Fields() []string {
	out := make([]string, len(d.prop.props))
	for i, c := range d.prop.props {
		out[i] = c.Name
	}
	return out
}

// Has reports whether a validated value has been assigned to name. Nested
// DTOs exist from construction, so Has is true for object children even
// before validation ran.
func (d *DTO) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Get returns the value stored at name: the coerced scalar for leaf nodes or
// a *DTO for object nodes.
func (d *DTO) Get(name string) (any, bool) {
	v, ok := d.values[name]
	return v, ok
}

// String returns the value at name when it is a validated string.
func (d *DTO) String(name string) (string, bool) {
	s, ok := d.values[name].(string)
	return s, ok
}

// Int returns the value at name when it is a validated integer.
func (d *DTO) Int(name string) (int64, bool) {
	n, ok := d.values[name].(int64)
	return n, ok
}

// Float returns the value at name when it is a validated number. Integer
// values are not widened; use Int for integer-kind properties.
func (d *DTO) Float(name string) (float64, bool) {
	f, ok := d.values[name].(float64)
	return f, ok
}

// Bool returns the value at name when it is a validated boolean.
func (d *DTO) Bool(name string) (bool, bool) {
	b, ok := d.values[name].(bool)
	return b, ok
}

// Object returns the nested DTO at name, or nil when name does not declare
// an object property.
func (d *DTO) Object(name string) *DTO {
	nd, _ := d.values[name].(*DTO)
	return nd
}

// Lookup resolves a dot path like "address.zip" from this DTO downward.
func (d *DTO) Lookup(path string) (any, bool) {
	cur := d
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := cur.values[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		nd, ok := v.(*DTO)
		if !ok {
			return nil, false
		}
		cur = nd
	}
	return nil, false
}

// Export renders the DTO as a plain nested map of the values set so far.
// Unset scalar leaves are omitted; nested DTOs become nested maps.
func (d *DTO) Export() map[string]any {
	out := make(map[string]any, len(d.values))
	for _, c := range d.prop.props {
		v, ok := d.values[c.Name]
		if !ok {
			continue
		}
		if nd, isObj := v.(*DTO); isObj {
			out[c.Name] = nd.Export()
			continue
		}
		out[c.Name] = v
	}
	return out
}

// set assigns a validated value. Only the validator writes through here.
func (d *DTO) set(name string, v any) { d.values[name] = v }
