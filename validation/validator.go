package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kbukum/seqkit/errors"
)

// FieldError is one failed check, keyed by the config path of the field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates field errors from struct tags and from checks that
// span several fields. The zero value is ready to use.
type Validator struct {
	fields []FieldError
}

// New returns an empty Validator.
func New() *Validator { return &Validator{} }

// AddError records a failure for field.
func (v *Validator) AddError(field, message string) {
	v.fields = append(v.fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool { return len(v.fields) > 0 }

// Errors returns the recorded failures in the order they were found.
func (v *Validator) Errors() []FieldError { return v.fields }

// OneOf records a failure when value is set and not in allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" || slices.Contains(allowed, value) {
		return v
	}
	v.AddError(field, "must be one of: "+strings.Join(allowed, ", "))
	return v
}

// Validate folds the failures into one INVALID_INPUT AppError whose
// "fields" detail lists them. It returns nil when nothing failed.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}
	parts := make([]string, len(v.fields))
	for i, f := range v.fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return errors.Validation(strings.Join(parts, "; ")).WithDetail("fields", v.fields)
}

// Err is Validate as a plain error, so a nil result stays a nil interface.
func (v *Validator) Err() error {
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
