package reqschema

// Package reqschema provides:
//
// - Declarative request schemas (method, required headers, body properties)
//   loaded once and shared read-only across requests
// - A stable error model via Issues (dot path, rule, message) that collects
//   every violation instead of stopping at the first
// - DTO construction mirroring the schema shape, pre-populated at load time
//   and filled in place during validation
// - A per-request orchestration surface (Request) that verifies headers,
//   decodes the payload, and either yields a populated DTO or an aggregate
//   validation failure
//
// Design policy:
// - Keep only public APIs in the root package; schema-document parsing lives
//   under schemafile/, messages under i18n/, transport glue under middleware/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	rs, err := schemafile.LoadFile("user.schema.yaml")
//	req := reqschema.NewRequest(rs)
//	dto, err := req.ProcessJSON(headers, body)
