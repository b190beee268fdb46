// ABOUTME: Shared validator instance and form-field helpers
// ABOUTME: Enforces required fields and value rules before any network call

package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validate is the process-wide validator instance.
var Validate *validator.Validate

const notBlankTag = "notblank"

func init() {
	Validate = validator.New()

	// Report errors with JSON field names instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return true
}

// Struct validates a tagged payload struct, returning the first rule
// violation as a plain error suitable for form display.
func Struct(v interface{}) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required", notBlankTag:
			return errors.New(fe.Field() + " is required")
		case "email":
			return errors.New(fe.Field() + " must be a valid email address")
		default:
			return errors.New(fe.Field() + " is invalid")
		}
	}
	return err
}

// NotBlank is a huh field validator for required text inputs.
func NotBlank(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}

// Email is a huh field validator for email inputs.
func Email(s string) error {
	if err := Validate.Var(s, "required,email"); err != nil {
		return errors.New("enter a valid email address")
	}
	return nil
}

// WallClock is a huh field validator for 24-hour HH:MM inputs.
func WallClock(name string) func(string) error {
	return func(s string) error {
		if err := Validate.Var(strings.TrimSpace(s), "required,datetime=15:04"); err != nil {
			return errors.New(name + " must be HH:MM (24-hour)")
		}
		return nil
	}
}

// MinLen is a huh field validator for minimum-length inputs.
func MinLen(name string, n int) func(string) error {
	return func(s string) error {
		if len(s) < n {
			return errors.New(name + " must be at least " + strconv.Itoa(n) + " characters")
		}
		return nil
	}
}

// DateTime is a huh field validator for timestamped inputs in the given
// reference layout, e.g. "2006-01-02 15:04".
func DateTime(name, layout string) func(string) error {
	return func(s string) error {
		if _, err := time.Parse(layout, strings.TrimSpace(s)); err != nil {
			return errors.New(name + " must look like " + layout)
		}
		return nil
	}
}

// NonNegativeInt is a huh field validator for count inputs.
func NonNegativeInt(name string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return errors.New(name + " must be a non-negative number")
		}
		return nil
	}
}
