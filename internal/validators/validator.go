package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-shop-api/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

const tagUsername = "username"

var usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)

// RequestValidator implements the Validator interface for the request
// bodies of the auth and product endpoints: RegisterRequest, LoginRequest
// and ProductRequest.
//
// Both value and pointer forms are accepted. When field names are passed,
// only those struct fields are validated, which is how partial product
// updates are checked.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the custom
// "notblank" and "username" rules registered and field errors keyed by
// their JSON names.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or a nil function
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
	_ = v.RegisterValidation(tagUsername, func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj.
//
// Returns FieldErrors when one or more fields are rejected and
// ErrUnsupportedType for types that carry no validation rules.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, models.LoginRequest, models.ProductRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateStruct(ctx, *value, fields...)
	case *models.LoginRequest:
		return v.validateStruct(ctx, *value, fields...)
	case *models.ProductRequest:
		return v.validateStruct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), message(fe))
	}

	return fieldErrors
}
