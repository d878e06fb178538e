package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for snapshot names
	_ = v.RegisterValidation("snapshotname", validateSnapshotName)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	// Check if it's a validator.ValidationErrors
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "snapshotname":
			errs[field] = "Must contain only letters, digits, dashes and underscores"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

var snapshotNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Custom validation function for snapshot names
func validateSnapshotName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if name == "" {
		return true
	}
	return snapshotNamePattern.MatchString(name)
}
