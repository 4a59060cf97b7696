package validator

import (
	"errors"
	"fmt"
	"rentals/pkg/logger"
	"rentals/pkg/model"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	PropertyID string `json:"property_id"`
	Field      string `json:"field"`
	Message    string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %s", v.PropertyID, v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type PropertyValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewPropertyValidator(log *logger.Logger) *PropertyValidator {
	return &PropertyValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// ValidateCatalog checks every record and that identifiers are unique.
func (v *PropertyValidator) ValidateCatalog(properties []model.Property) error {
	var all ValidationErrors
	seen := make(map[string]bool, len(properties))

	for i := range properties {
		p := &properties[i]
		if err := v.validate.Struct(p); err != nil {
			var validationErrs validator.ValidationErrors
			if !errors.As(err, &validationErrs) {
				return err
			}
			all = append(all, translateValidationErrors(p.ID, validationErrs)...)
		}
		if p.ID != "" && seen[p.ID] {
			all = append(all, ValidationError{
				PropertyID: p.ID,
				Field:      "ID",
				Message:    "ID must be unique within the catalog",
			})
		}
		seen[p.ID] = true
	}

	if len(all) > 0 {
		v.logger.Warn("Catalog validation failed", "errors", len(all))
		return all
	}
	return nil
}

func translateValidationErrors(propertyID string, errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must have at least %s item(s) or characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s cannot be negative", err.Field())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			PropertyID: propertyID,
			Field:      err.Field(),
			Message:    message,
		})
	}

	return validationErrors
}
