package ginmw

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqschema/reqschema"
	"github.com/reqschema/reqschema/middleware"
)

// ValidateRequest runs an inbound request through a fresh reqschema.Request,
// stores the populated DTO in the context, and on failure responds with 422
// (violations) or 400 (undecodable body).
func ValidateRequest(rs *reqschema.RequestSchema) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		req := reqschema.NewRequest(rs)
		dto, err := req.ProcessJSON(middleware.HeaderMap(c.Request.Header), body)
		if err != nil {
			if iss, ok := reqschema.AsIssues(err); ok {
				c.JSON(http.StatusUnprocessableEntity, middleware.ErrorPayload(iss))
				c.Abort()
				return
			}
			var pe *reqschema.PayloadError
			if errors.As(err, &pe) {
				c.JSON(http.StatusBadRequest, gin.H{"error": pe.Error()})
				c.Abort()
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithDTO(c.Request.Context(), dto))
		c.Next()
	}
}

// GetDTO fetches the validated DTO from gin.Context.
func GetDTO(c *gin.Context) (*reqschema.DTO, bool) {
	return middleware.DTOFromContext(c.Request.Context())
}
