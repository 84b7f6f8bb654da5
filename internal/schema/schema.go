// Package schema decodes MCP tool arguments into typed inputs and validates
// them before any network access happens.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Defaulter is implemented by inputs that pre-populate optional fields. The
// defaults are written before decoding so explicit zero values survive.
type Defaulter interface {
	Defaults()
}

// Checker is implemented by inputs with rules that span several fields and
// cannot be expressed as struct tags. It runs after tag validation succeeds.
type Checker interface {
	Check() error
}

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when input does not satisfy its declared shape.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Invalid builds a single-field ValidationError.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: "custom", Message: message}}}
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Bind decodes args into dst, which must be a pointer to a struct, and
// validates the result. Defaults are applied first when dst implements
// Defaulter.
func Bind(args map[string]any, dst any) error {
	if d, ok := dst.(Defaulter); ok {
		d.Defaults()
	}
	if len(args) > 0 {
		raw, err := json.Marshal(args)
		if err != nil {
			return Invalid("", fmt.Sprintf("arguments are not serialisable: %v", err))
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return decodeError(err)
		}
	}
	return Validate(dst)
}

// Validate runs tag validation and, when implemented, the Checker rules.
func Validate(v any) error {
	if err := instance().Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fromValidator(verrs)
		}
		return Invalid("", err.Error())
	}
	if c, ok := v.(Checker); ok {
		if err := c.Check(); err != nil {
			if IsValidation(err) {
				return err
			}
			return Invalid("", err.Error())
		}
	}
	return nil
}

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "arguments"
		}
		return &ValidationError{Fields: []FieldError{{
			Field:   field,
			Rule:    "type",
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.Kind(), typeErr.Value),
		}}}
	}
	return Invalid("", err.Error())
}

func fromValidator(verrs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	collection := false
	switch fe.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		collection = true
	}

	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "is required when " + lowerFirst(fe.Param()) + " is not set"
	case "excluded_with":
		return "must not be set together with " + lowerFirst(fe.Param())
	case "required_if":
		return "is required when " + conditionText(fe.Param())
	case "min":
		if collection {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " character(s) long"
		}
		return "must be at least " + fe.Param()
	case "max":
		if collection {
			return "must contain at most " + fe.Param() + " item(s)"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gtefield":
		return "must be greater than or equal to " + lowerFirst(fe.Param())
	case "oneof":
		return "must be one of [" + strings.ReplaceAll(fe.Param(), " ", ", ") + "]"
	case "url", "http_url":
		return "must be a valid URL"
	case "datetime":
		return "must be a timestamp in the layout " + fe.Param()
	}
	return fmt.Sprintf("failed the %q rule", fe.Tag())
}

func conditionText(param string) string {
	f := strings.Fields(param)
	if len(f) == 2 {
		return lowerFirst(f[0]) + " is " + f[1]
	}
	return param
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
