package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired     = "is required"
	ErrInvalidEmail = "must be a valid email address"
	ErrMinLength    = "must be at least %s characters long"
	ErrMaxLength    = "must be at most %s characters long"
	ErrMinValue     = "must be greater than or equal to %s"
	ErrMaxValue     = "must be less than or equal to %s"
	ErrMinItems     = "must contain at least %s items"
	ErrMaxItems     = "must contain at most %s items"
	ErrPositive     = "must be greater than %s"
	ErrPassword     = "must be at least 8 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)."
	ErrInvalid = "is invalid"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterTagNameFunc(jsonFieldName)

	return validator
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	numeric, collection := false, false
	switch err.Kind().String() {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64":
		numeric = true
	case "slice", "array", "map":
		collection = true
	}

	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "min":
		if collection {
			return fmt.Sprintf(ErrMinItems, err.Param())
		}
		if numeric {
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if collection {
			return fmt.Sprintf(ErrMaxItems, err.Param())
		}
		if numeric {
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gt":
		return fmt.Sprintf(ErrPositive, err.Param())
	case "password":
		return ErrPassword
	default:
		return ErrInvalid
	}
}
