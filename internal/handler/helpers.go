package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"

	"github.com/bookshelfhq/librarysystem/pkg/apperror"
	"github.com/bookshelfhq/librarysystem/pkg/validator"
)

// bindError turns any request-binding failure into a ValidationError so a
// broken body or query string never surfaces as a server error.
func bindError(err error) error {
	var validationErrors govalidator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return apperror.NewValidation(validator.FormatValidationError(validationErrors))
	}
	return apperror.NewValidation(err.Error())
}

// pathID parses a path parameter as a non-negative integer identifier.
// Anything else is a validation failure and never reaches a service.
func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewValidation(
			fmt.Sprintf("%s: must be a non-negative integer", name))
	}
	return uint(id), nil
}
