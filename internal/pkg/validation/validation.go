// Package validation holds the shared go-playground validator and the rules the
// customer order service applies to caller input.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// PhonePattern accepts a leading "+", a 1-3 digit country code and a 9-15 digit national number.
const PhonePattern = `^\+\d{1,3}\d{9,15}$`

var phoneRegexp = regexp.MustCompile(PhonePattern)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide validator with the custom "phone" rule registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRegexp.MatchString(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// Struct validates s against its `validate` tags and flattens failures into one error.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Email reports whether s is a syntactically valid email address.
func Email(s string) error {
	return Validator().Var(s, "required,email")
}

// Phone reports whether s matches PhonePattern.
func Phone(s string) error {
	return Validator().Var(s, "required,phone")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", fe.Field())
	case "phone":
		return fmt.Sprintf("%s must match %s", fe.Field(), PhonePattern)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
