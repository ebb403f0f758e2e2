package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wuchib/cbiu-website/internal/taxonomy"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// FieldErrorResponse carries per-field validation or conflict messages so
// the admin UI can render them next to the offending input.
type FieldErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondDomainError converts taxonomy errors into HTTP answers. Everything
// the taxonomy layer can return is recovered here; nothing bubbles past the
// handler boundary.
func respondDomainError(c *gin.Context, err error) {
	var ve *taxonomy.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, FieldErrorResponse{
			Error:  "Validation failed",
			Fields: map[string]string{ve.Field: ve.Message},
		})
		return
	}
	var ce *taxonomy.ConflictError
	if errors.As(err, &ce) {
		c.JSON(http.StatusConflict, FieldErrorResponse{
			Error:  "Conflict",
			Fields: map[string]string{ce.Field: ce.Message},
		})
		return
	}
	if errors.Is(err, taxonomy.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Write failed"})
}
