// Package middleware holds framework-neutral glue between the validation
// engine and HTTP transports. Framework adapters (middleware/echo,
// middleware/gin) live in their own modules so the core stays dependency
// lean.
package middleware

import (
	"context"

	"github.com/reqschema/reqschema"
)

// ctxKeyDTO is a typed context key for storing a validated DTO.
type ctxKeyDTO struct{}

// ContextWithDTO attaches a validated DTO to the context.
func ContextWithDTO(ctx context.Context, dto *reqschema.DTO) context.Context {
	return context.WithValue(ctx, ctxKeyDTO{}, dto)
}

// DTOFromContext retrieves the validated DTO from context.
func DTOFromContext(ctx context.Context) (*reqschema.DTO, bool) {
	dto, ok := ctx.Value(ctxKeyDTO{}).(*reqschema.DTO)
	return dto, ok
}

// HeaderMap flattens an http.Header-shaped multimap into the single-valued
// mapping the engine consumes, keeping the first value per name.
func HeaderMap(h map[string][]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// ErrorPayload shapes violations for a 422-style JSON response, keyed by
// field path so clients can attach messages to inputs.
func ErrorPayload(issues []reqschema.Issue) map[string]any {
	fields := make(map[string][]map[string]string, len(issues))
	order := make([]string, 0, len(issues))
	for _, it := range issues {
		if _, seen := fields[it.Path]; !seen {
			order = append(order, it.Path)
		}
		fields[it.Path] = append(fields[it.Path], map[string]string{
			"rule":    it.Rule,
			"message": it.Message,
		})
	}
	return map[string]any{"errors": fields, "fields": order}
}
