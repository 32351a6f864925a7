package echomw

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reqschema/reqschema"
	"github.com/reqschema/reqschema/middleware"
)

// ValidateRequest runs an inbound request through a fresh reqschema.Request.
// On success the populated DTO is stored in the request context; violations
// yield 422 with the full field-keyed report and an undecodable body yields
// 400.
func ValidateRequest(rs *reqschema.RequestSchema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
			}
			req := reqschema.NewRequest(rs)
			dto, err := req.ProcessJSON(middleware.HeaderMap(c.Request().Header), body)
			if err != nil {
				if iss, ok := reqschema.AsIssues(err); ok {
					return c.JSON(http.StatusUnprocessableEntity, middleware.ErrorPayload(iss))
				}
				var pe *reqschema.PayloadError
				if errors.As(err, &pe) {
					return c.JSON(http.StatusBadRequest, map[string]any{"error": pe.Error()})
				}
				return err
			}
			ctx := middleware.ContextWithDTO(c.Request().Context(), dto)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetDTO fetches the validated DTO from echo.Context.
func GetDTO(c echo.Context) (*reqschema.DTO, bool) {
	return middleware.DTOFromContext(c.Request().Context())
}
