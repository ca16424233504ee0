package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired       = "This field is required."
	msgBlank          = "This field may not be blank."
	msgInvalidEmail   = "Enter a valid email address."
	msgInvalidUser    = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgInvalidValue   = "Invalid value."
	msgInvalidNumber  = "A valid number is required."
	msgInvalidInteger = "A valid integer is required."
	msgInvalidString  = "Not a valid string."
	msgMaxLength      = "Ensure this field has no more than %s characters."
)

// message turns a single validator failure into the reason shown to the
// client.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "notblank":
		return msgBlank
	case "email":
		return msgInvalidEmail
	case tagUsername:
		return msgInvalidUser
	case "max":
		return fmt.Sprintf(msgMaxLength, fe.Param())
	default:
		return msgInvalidValue
	}
}
