// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the request bodies
// accepted by the API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for partial validation.
//   - FieldErrors: per-field list of human-readable reasons, returned as an
//     error and rendered as the "errors" object of a 400 response.
//
// Rules are declared with `validate` struct tags on the request models and
// enforced by go-playground/validator.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to the named struct fields.
	Validate(context.Context, any, ...string) error
}
