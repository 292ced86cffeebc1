package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gerai/catalog-api/internal/utils"
)

// wrapValidation converts ozzo validation errors into the application error
// taxonomy, preserving per-field messages.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
		return utils.Validation("Validation failed", fields)
	}
	return utils.Validation(err.Error(), nil)
}
