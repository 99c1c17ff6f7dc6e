package validation

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/seqkit/errors"
)

var (
	structValidator *validator.Validate
	structOnce      sync.Once
)

// engine returns the shared go-playground validator. Field names are
// reported by their mapstructure key, the spelling used in config.yml and
// in NAME_* environment variables.
func engine() *validator.Validate {
	structOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
		structValidator.RegisterTagNameFunc(configKey)
	})
	return structValidator
}

func configKey(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
	if name == "" || name == "-" {
		return toSnakeCase(fld.Name)
	}
	return name
}

// Validate checks s against its `validate:"..."` tags. Every failing field
// is reported in one INVALID_INPUT *errors.AppError.
func Validate(s any) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}
	var failed validator.ValidationErrors
	if !stderrors.As(err, &failed) {
		return errors.Validation("cannot validate settings").WithCause(err)
	}
	v := New()
	for _, e := range failed {
		v.AddError(fieldPath(e), describe(e))
	}
	return v.Err()
}

// fieldPath drops the root struct name from the namespace: Settings.logging.level -> logging.level.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// toSnakeCase turns NoColor into no_color.
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
