// Package schemafile parses declarative request-schema documents (YAML, and
// therefore JSON) into immutable reqschema.RequestSchema values. Documents
// are walked through yaml.Node so that mapping order is preserved: property
// declaration order determines validation order and with it the ordering of
// reported violations.
package schemafile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reqschema/reqschema"
)

// Load parses a schema document. Document-shape problems (missing `request`
// block, duplicate or unknown keys, non-scalar values where scalars are
// expected) and every structural invariant enforced by RequestSchema.Compile
// fail with a *reqschema.SchemaError.
func Load(data []byte) (*reqschema.RequestSchema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &reqschema.SchemaError{Message: "not well-formed", Cause: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &reqschema.SchemaError{Message: "empty document"}
	}
	return buildRequest(root.Content[0])
}

// LoadReader reads the whole stream and delegates to Load.
func LoadReader(r io.Reader) (*reqschema.RequestSchema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &reqschema.SchemaError{Message: "read schema document", Cause: err}
	}
	return Load(data)
}

// LoadFile loads a schema document from disk. Schema loading is a one-time
// blocking step; share the result (or use a Cache) rather than re-loading
// per request.
func LoadFile(path string) (*reqschema.RequestSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &reqschema.SchemaError{Message: "read " + path, Cause: err}
	}
	defer f.Close()
	return LoadReader(f)
}

// entry is one key/value pair of a YAML mapping, in document order.
type entry struct {
	key string
	val *yaml.Node
}

// mappingEntries flattens a mapping node, rejecting duplicate keys with
// their positions.
func mappingEntries(n *yaml.Node, path string) ([]entry, error) {
	if n.Kind != yaml.MappingNode {
		return nil, schemaErr(path, "expected a mapping")
	}
	out := make([]entry, 0, len(n.Content)/2)
	seen := make(map[string][2]int, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if pos, dup := seen[k.Value]; dup {
			return nil, schemaErr(path, fmt.Sprintf("duplicate key %q at %d:%d (first at %d:%d)", k.Value, k.Line, k.Column, pos[0], pos[1]))
		}
		seen[k.Value] = [2]int{k.Line, k.Column}
		out = append(out, entry{key: k.Value, val: n.Content[i+1]})
	}
	return out, nil
}

func buildRequest(doc *yaml.Node) (*reqschema.RequestSchema, error) {
	top, err := mappingEntries(doc, "")
	if err != nil {
		return nil, err
	}
	var req *yaml.Node
	for _, e := range top {
		if e.key != "request" {
			return nil, schemaErr(e.key, "unknown top-level key")
		}
		req = e.val
	}
	if req == nil {
		return nil, schemaErr("", "missing request block")
	}

	rs := &reqschema.RequestSchema{}
	var propsNode *yaml.Node
	entries, err := mappingEntries(req, "request")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		switch e.key {
		case "method":
			if err := decodeScalar(e.val, &rs.Method, "request.method"); err != nil {
				return nil, err
			}
		case "headers":
			hs, err := buildHeaders(e.val)
			if err != nil {
				return nil, err
			}
			rs.Headers = hs
		case "properties":
			propsNode = e.val
		default:
			return nil, schemaErr("request."+e.key, "unknown key")
		}
	}
	if propsNode == nil {
		return nil, schemaErr("request.properties", "missing properties")
	}

	// The body root behaves as an implicit required object node.
	body := &reqschema.Property{Kind: reqschema.KindObject, Required: true}
	if err := fillChildren(body, propsNode, ""); err != nil {
		return nil, err
	}
	rs.Body = body
	if err := rs.Compile(); err != nil {
		return nil, err
	}
	return rs, nil
}

func buildHeaders(n *yaml.Node) ([]reqschema.Header, error) {
	entries, err := mappingEntries(n, "request.headers")
	if err != nil {
		return nil, err
	}
	out := make([]reqschema.Header, 0, len(entries))
	for _, e := range entries {
		var v string
		if err := decodeScalar(e.val, &v, "request.headers."+e.key); err != nil {
			return nil, err
		}
		out = append(out, reqschema.Header{Name: e.key, Value: v})
	}
	return out, nil
}

func fillChildren(parent *reqschema.Property, propsNode *yaml.Node, base string) error {
	entries, err := mappingEntries(propsNode, propsPath(base))
	if err != nil {
		return err
	}
	for _, e := range entries {
		child, err := buildProperty(e.key, e.val, joinPath(base, e.key))
		if err != nil {
			return err
		}
		parent.AddChild(child)
	}
	return nil
}

func buildProperty(name string, n *yaml.Node, path string) (*reqschema.Property, error) {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return nil, err
	}
	p := &reqschema.Property{Name: name}
	var (
		typ       string
		propsNode *yaml.Node
	)
	c := &p.Constraints
	for _, e := range entries {
		switch e.key {
		case "type":
			if err := decodeScalar(e.val, &typ, path+".type"); err != nil {
				return nil, err
			}
		case "required":
			if err := decodeScalar(e.val, &p.Required, path+".required"); err != nil {
				return nil, err
			}
		case "minLength":
			c.MinLength = new(int)
			if err := decodeScalar(e.val, c.MinLength, path+".minLength"); err != nil {
				return nil, err
			}
		case "maxLength":
			c.MaxLength = new(int)
			if err := decodeScalar(e.val, c.MaxLength, path+".maxLength"); err != nil {
				return nil, err
			}
		case "minimum":
			c.Minimum = new(float64)
			if err := decodeScalar(e.val, c.Minimum, path+".minimum"); err != nil {
				return nil, err
			}
		case "maximum":
			c.Maximum = new(float64)
			if err := decodeScalar(e.val, c.Maximum, path+".maximum"); err != nil {
				return nil, err
			}
		case "pattern":
			if err := decodeScalar(e.val, &c.PatternSrc, path+".pattern"); err != nil {
				return nil, err
			}
		case "format":
			if err := decodeScalar(e.val, &c.Format, path+".format"); err != nil {
				return nil, err
			}
		case "properties":
			propsNode = e.val
		default:
			return nil, schemaErr(path+"."+e.key, "unknown key")
		}
	}

	kind, ok := reqschema.KindOf(typ)
	if !ok {
		if typ == "" {
			return nil, schemaErr(path, "missing type")
		}
		return nil, schemaErr(path+".type", fmt.Sprintf("unsupported type %q", typ))
	}
	p.Kind = kind

	// Children are collected even for scalar kinds; Compile rejects the
	// combination with the node's own path.
	if propsNode != nil {
		if err := fillChildren(p, propsNode, path); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func decodeScalar[T any](n *yaml.Node, dst *T, path string) error {
	if n.Kind != yaml.ScalarNode {
		return schemaErr(path, "expected a scalar value")
	}
	if err := n.Decode(dst); err != nil {
		return &reqschema.SchemaError{Path: path, Message: "invalid value", Cause: err}
	}
	return nil
}

func schemaErr(path, msg string) error {
	return &reqschema.SchemaError{Path: path, Message: msg}
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func propsPath(base string) string {
	if base == "" {
		return "request.properties"
	}
	return base + ".properties"
}
