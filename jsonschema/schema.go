package jsonschema

// Schema is a minimal JSON Schema representation used for export. It covers
// exactly the constraint vocabulary of request schemas; extend incrementally
// if the engine grows.
type Schema struct {
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Numeric
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
}
