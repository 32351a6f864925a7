package reqschema

import js "github.com/reqschema/reqschema/jsonschema"

// JSONSchema projects the body schema into a JSON Schema representation, for
// documentation endpoints and client generators. Unknown payload keys are
// ignored at validation time, so additionalProperties is exported as true.
func (rs *RequestSchema) JSONSchema() *js.Schema {
	return rs.Body.JSONSchema()
}

// JSONSchema projects one schema node.
func (p *Property) JSONSchema() *js.Schema {
	out := &js.Schema{Type: p.Kind.String()}
	c := p.Constraints
	out.MinLength = c.MinLength
	out.MaxLength = c.MaxLength
	out.Minimum = c.Minimum
	out.Maximum = c.Maximum
	out.Pattern = c.PatternSrc
	out.Format = c.Format
	if p.Kind != KindObject {
		return out
	}
	out.Properties = make(map[string]*js.Schema, len(p.props))
	for _, child := range p.props {
		out.Properties[child.Name] = child.JSONSchema()
		if child.Required {
			out.Required = append(out.Required, child.Name)
		}
	}
	out.AdditionalProperties = true
	return out
}
