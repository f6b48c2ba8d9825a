package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/newsportal/news-api/internal/core/domain"
)

// fieldMessages holds what clients see for a failing field: missing covers
// required/notblank, invalid covers every other rule.
type fieldMessages struct {
	missing string
	invalid string
}

var fieldRules = map[string]fieldMessages{
	"Username":   {"Username must be specified", "Username length must be 3 <= length <= 50"},
	"Email":      {"Email must be specified", "Email length must be 3 <= length <= 256"},
	"Password":   {"Password must be specified", "Password length must be 3 <= length <= 256"},
	"Roles":      {"Roles must be specified", "User roles must be any of ['USER', 'MODERATOR', 'ADMIN']"},
	"Name":       {"Name must be specified", "News category name length must be 1 <= length <= 50"},
	"Content":    {"Content must be specified", "Content must be specified"},
	"CategoryID": {"Category id must be specified", "Category id must be specified"},
	"NewsID":     {"News id must be specified", "News id must be specified"},
	"AuthorID":   {"Author id must be specified", "Author id must be specified"},
}

// FieldViolation is one failed constraint.
type FieldViolation struct {
	Field   string
	Message string
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures come back as a
// domain validation error listing every violated field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	violations := make([]FieldViolation, 0, len(ve))
	seen := make(map[string]bool, len(ve))
	for _, fe := range ve {
		fv := violation(fe)
		if seen[fv.Message] {
			continue
		}
		seen[fv.Message] = true
		violations = append(violations, fv)
	}

	msgs := make([]string, len(violations))
	for i, fv := range violations {
		msgs[i] = fv.Message
	}
	return domain.Validation(msgs...)
}

// violation converts a single FieldError into its client message.
func violation(fe validator.FieldError) FieldViolation {
	field := fe.StructField()
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	rule, ok := fieldRules[field]
	if !ok {
		return FieldViolation{Field: field, Message: field + " is invalid"}
	}
	switch {
	case fe.Tag() == "required", fe.Tag() == "notblank":
		return FieldViolation{Field: field, Message: rule.missing}
	case fe.Tag() == "min" && fe.Kind() == reflect.Slice:
		return FieldViolation{Field: field, Message: rule.missing}
	default:
		return FieldViolation{Field: field, Message: rule.invalid}
	}
}
