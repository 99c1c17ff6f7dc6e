// Package validation provides settings validation for seqkit packages.
//
// Struct tag validation (go-playground/validator) covers per-field rules;
// the programmatic Validator collects cross-field checks. Both report a
// single *errors.AppError with code INVALID_INPUT.
//
//	type Settings struct {
//	    Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
//	}
//	err := validation.Validate(s)
//
//	v := validation.New()
//	v.OneOf("logging.level", s.Logging.Level, []string{"debug", "trace"})
//	err := v.Err()
package validation
