package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"

	"github.com/bookshelfhq/librarysystem/pkg/apperror"
	"github.com/bookshelfhq/librarysystem/pkg/validator"
)

// APIResponse is the envelope every endpoint answers with,
// for successes and failures alike.
type APIResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Status  int    `json:"status"`
	Data    any    `json:"data"`
}

// JSON writes a success envelope with the given status and payload.
func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, APIResponse{
		Message: message,
		Path:    c.Request.URL.Path,
		Status:  status,
		Data:    data,
	})
}

// Error writes an error envelope. Validation errors coming out of request
// binding are collated into a per-field message; everything else is mapped
// to a status once, here.
func Error(c *gin.Context, err error) {
	message := err.Error()
	code := apperror.MapErrorToStatus(err)

	var validationErrors govalidator.ValidationErrors
	if errors.As(err, &validationErrors) {
		code = http.StatusBadRequest
		message = validator.FormatValidationError(validationErrors)
	}

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	} else {
		log.Printf("[Request Error] %d: %v", code, err)
	}

	c.JSON(code, APIResponse{
		Message: message,
		Path:    c.Request.URL.Path,
		Status:  code,
		Data:    nil,
	})
}
