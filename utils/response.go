package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldError describes a single failed payload field in a 422 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// Error responses
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &ErrorResponse{Error: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &ErrorResponse{Error: message})
}

func UnprocessableEntity(c *gin.Context, message string, details []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, &ErrorResponse{
		Error:   message,
		Details: details,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: message})
}
