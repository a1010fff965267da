// Package validate checks form payloads before they are sent to the API and
// turns validator failures into the messages shown to the admin.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Normalizer is implemented by forms that tidy their input (trimming names and
// emails) before validation.
type Normalizer interface {
	Normalize()
}

// Error is the first rule a form broke, with its user-facing message.
type Error struct {
	Form    string
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct normalizes form when it can and validates it. form must be a
// pointer when it implements Normalizer.
func Struct(form any) error {
	if n, ok := form.(Normalizer); ok {
		n.Normalize()
	}

	err := engine().Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %T: %w", form, err)
	}

	name := formName(form)
	first := fieldErrs[0]
	for _, fe := range fieldErrs[1:] {
		if rank(name, fe) < rank(name, first) {
			first = fe
		}
	}
	return &Error{
		Form:    name,
		Field:   first.Field(),
		Rule:    first.Tag(),
		Message: message(name, first),
	}
}

// mismatchFirst lists the password forms that report a confirmation mismatch
// before the password length.
var mismatchFirst = map[string]bool{"NewDriver": true, "PasswordChange": true}

// rank orders the rules a form reports: a missing required field first.
func rank(form string, fe validator.FieldError) int {
	switch {
	case fe.Tag() == "required":
		return 0
	case fe.Tag() == "eqfield" && mismatchFirst[form]:
		return 1
	default:
		return 2
	}
}

func formName(form any) string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func message(form string, fe validator.FieldError) string {
	if msg, ok := messages[form+"."+fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[form+"."+fe.Tag()]; ok {
		return msg
	}
	return generic(fe)
}

func generic(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

var messages = map[string]string{
	"Registration.required":                "Please fill in all fields",
	"Registration.Name.min":                "Name must be at least 2 characters long",
	"Registration.Surname.min":             "Surname must be at least 2 characters long",
	"Registration.Password.min":            "Password must be at least 6 characters long",
	"Registration.ConfirmPassword.eqfield": "Passwords do not match",

	"Credentials.required": "Please fill in all fields",

	"NewDriver.required":                "Please fill in all required fields",
	"NewDriver.Email.email":             "Please enter a valid email address",
	"NewDriver.Phone.min":               "Please enter a valid phone number",
	"NewDriver.Password.min":            "Password must be at least 6 characters long",
	"NewDriver.ConfirmPassword.eqfield": "Passwords do not match",

	"PasswordChange.required":                "Please fill in all fields",
	"PasswordChange.NewPassword.min":         "Password must be at least 6 characters long",
	"PasswordChange.ConfirmPassword.eqfield": "New passwords do not match",

	"NewRestaurant.required": "Vendor email, vendor name, and restaurant name are required",

	"MenuItemForm.required": "Name, description, category, and price are required",
	"MenuItemForm.Price.gt": "Price must be greater than 0",
}
