package validator

import (
	"github.com/go-playground/validator/v10"

	"venturenest_backend/internal/models"
)

// registerCustomRules adds the domain-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("document_type", func(fl validator.FieldLevel) bool {
		return models.IsValidDocumentType(models.DocumentType(fl.Field().String()))
	})
}
