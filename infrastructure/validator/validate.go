package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json names so messages match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	return v
}

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &[]error{err}
	}
	errs := []error{}
	for _, fieldErr := range validationErrs {
		errs = append(errs, errors.New(translateError(fieldErr)))
	}
	return &errs
}

func validateField(value any, rules string) error {
	err := validate.Var(value, rules)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return errors.New(translateError(validationErrs[0]))
	}
	return err
}

func translateError(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	if field == "" {
		field = "value"
	}
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fieldErr.Param())
	case "alphanum":
		return fmt.Sprintf("%s may only contain letters and numbers", field)
	case "subject_id":
		return fmt.Sprintf("%s must be 8 to 64 letters, digits, hyphens or underscores", field)
	case "security_level":
		return fmt.Sprintf("%s must be one of STANDARD, ENHANCED, MILITARY_GRADE, PHI_DIMENSIONAL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", field, fieldErr.Tag())
	}
}
