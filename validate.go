package reqschema

// Validate walks the schema's body properties against the payload and returns
// a freshly built DTO together with every violation, discovered depth-first
// in property declaration order. The DTO is always returned, possibly
// partially populated; callers decide whether a non-empty issue list is
// fatal. Validation is deterministic: identical schema and payload yield an
// identical DTO and an identically ordered issue list.
func Validate(rs *RequestSchema, payload map[string]any) (*DTO, Issues) {
	dto := NewDTO(rs.Body)
	return dto, ValidateInto(dto, payload)
}

// ValidateInto fills an existing pre-populated DTO in place. The DTO must
// have been built from the same object node the payload is checked against;
// this keeps DTO identity stable across the request lifecycle.
func ValidateInto(dto *DTO, payload map[string]any) Issues {
	return validateObject(dto.Schema(), payload, dto, "")
}

func validateObject(node *Property, src map[string]any, dto *DTO, base string) Issues {
	var iss Issues
	for _, c := range node.Properties() {
		path := joinPath(base, c.Name)
		v, present := src[c.Name]
		if !present {
			// Absent: one required violation at most, nothing below this
			// node is reported.
			iss = AppendIssues(iss, CheckRequired(path, false, c.Required)...)
			continue
		}
		cv, tIss := CheckType(path, v, c.Kind)
		if len(tIss) > 0 {
			// Wrong shape: constraint and nested checks would only cascade
			// noise, so the node is done after the single type violation.
			iss = AppendIssues(iss, tIss...)
			continue
		}
		switch c.Kind {
		case KindObject:
			iss = AppendIssues(iss, validateObject(c, cv.(map[string]any), dto.Object(c.Name), path)...)
		case KindString:
			s := cv.(string)
			child := CheckLength(path, s, c.Constraints.MinLength, c.Constraints.MaxLength)
			child = AppendIssues(child, CheckPattern(path, s, c.Constraints)...)
			child = AppendIssues(child, CheckFormat(path, s, c.Constraints.Format)...)
			if len(child) == 0 {
				dto.set(c.Name, s)
			}
			iss = AppendIssues(iss, child...)
		case KindInteger:
			n := cv.(int64)
			// Bounds compare in float64; above 2^53 the comparison loses
			// exactness, which declared schema bounds stay well below.
			child := CheckRange(path, float64(n), c.Constraints.Minimum, c.Constraints.Maximum)
			if len(child) == 0 {
				dto.set(c.Name, n)
			}
			iss = AppendIssues(iss, child...)
		case KindNumber:
			f := cv.(float64)
			child := CheckRange(path, f, c.Constraints.Minimum, c.Constraints.Maximum)
			if len(child) == 0 {
				dto.set(c.Name, f)
			}
			iss = AppendIssues(iss, child...)
		case KindBoolean:
			dto.set(c.Name, cv.(bool))
		}
	}
	// Unknown payload keys are ignored for forward compatibility.
	return iss
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
