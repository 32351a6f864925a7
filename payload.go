package reqschema

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON object payload into a generic key/value tree.
// Numbers are kept as json.Number so integer and number typing stays exact.
// Any decode failure, trailing garbage, or non-object root is a
// *PayloadError; malformed input never reaches the validator.
func DecodeJSON(data []byte) (map[string]any, error) {
	return decodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader is the io.Reader variant of DecodeJSON.
func DecodeJSONReader(r io.Reader) (map[string]any, error) {
	return decodeJSONReader(r)
}

func decodeJSONReader(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, &PayloadError{Cause: err}
	}
	// A second document (or any trailing token) is as undecodable as a
	// syntax error in the first.
	if dec.More() {
		return nil, &PayloadError{Cause: errTrailingData}
	}
	// "null" decodes without error but is not an object payload.
	if m == nil {
		return nil, &PayloadError{Cause: errNotObject}
	}
	return m, nil
}

var (
	errTrailingData = errors.New("trailing data after JSON document")
	errNotObject    = errors.New("expected a JSON object")
)
