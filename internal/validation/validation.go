// Package validation checks inbound create requests and reports the first
// violation as a human-readable message keyed by the JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayouts are the accepted encodings for date fields
var DateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Error describes the first failed field rule
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// Struct validates v and returns *Error for the first violation
func Struct(v interface{}) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &Error{Field: fe.Field(), Message: message(fe)}
}

// ParseDate accepts a calendar date or a timestamp and returns it in UTC
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func message(fe validator.FieldError) string {
	field := fmt.Sprintf("%q", fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "date":
		return field + " must be a valid date"
	}
	return fmt.Sprintf("%s failed on the %q rule", field, fe.Tag())
}
