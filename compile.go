package reqschema

import "regexp"

// Compile finalizes a schema built by a loader or the dsl package and
// enforces the structural invariants shared by both: an object node carries a
// non-empty property set and nothing else does, constraints only appear on
// types they apply to, bounds are not inverted, patterns compile, and
// formats are registered. Pattern expressions are compiled here with
// whole-string anchoring so validation is a plain match.
func (rs *RequestSchema) Compile() error {
	if rs.Method == "" {
		return &SchemaError{Path: "request.method", Message: "missing method"}
	}
	if rs.Body == nil || rs.Body.Kind != KindObject {
		return &SchemaError{Path: "request.properties", Message: "missing properties"}
	}
	return compileProperty(rs.Body, "")
}

func compileProperty(p *Property, path string) error {
	if p.Kind == KindObject {
		if err := checkConstraintScope(p, path); err != nil {
			return err
		}
		if len(p.props) == 0 {
			return &SchemaError{Path: path, Message: "object requires a non-empty properties map"}
		}
		for _, c := range p.props {
			if err := compileProperty(c, joinPath(path, c.Name)); err != nil {
				return err
			}
		}
		return nil
	}
	if len(p.props) > 0 {
		return &SchemaError{Path: path, Message: p.Kind.String() + " type must not declare properties"}
	}
	if err := checkConstraintScope(p, path); err != nil {
		return err
	}
	c := &p.Constraints
	if c.PatternSrc != "" && c.Pattern == nil {
		re, err := regexp.Compile("^(?:" + c.PatternSrc + ")$")
		if err != nil {
			return &SchemaError{Path: path + ".pattern", Message: "invalid pattern", Cause: err}
		}
		c.Pattern = re
	}
	if c.Format != "" && !HasFormat(c.Format) {
		return &SchemaError{Path: path + ".format", Message: "unknown format \"" + c.Format + "\""}
	}
	return nil
}

// checkConstraintScope rejects constraints that cannot apply to the declared
// type, plus inverted bounds.
func checkConstraintScope(p *Property, path string) error {
	c := p.Constraints
	if p.Kind != KindString {
		switch {
		case c.MinLength != nil || c.MaxLength != nil:
			return &SchemaError{Path: path, Message: "length constraints require type string"}
		case c.PatternSrc != "" || c.Pattern != nil:
			return &SchemaError{Path: path + ".pattern", Message: "pattern requires type string"}
		case c.Format != "":
			return &SchemaError{Path: path + ".format", Message: "format requires type string"}
		}
	}
	numeric := p.Kind == KindInteger || p.Kind == KindNumber
	if !numeric && (c.Minimum != nil || c.Maximum != nil) {
		return &SchemaError{Path: path, Message: "numeric bounds require type integer or number"}
	}
	if c.MinLength != nil && *c.MinLength < 0 {
		return &SchemaError{Path: path + ".minLength", Message: "must not be negative"}
	}
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return &SchemaError{Path: path, Message: "minLength exceeds maxLength"}
	}
	if c.Minimum != nil && c.Maximum != nil && *c.Minimum > *c.Maximum {
		return &SchemaError{Path: path, Message: "minimum exceeds maximum"}
	}
	return nil
}
