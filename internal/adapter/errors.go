package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx response decoded from the server's JSON error body.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string][]string

	kind error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "http %d: %s", e.StatusCode, e.Message)

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(&b, "; %s: %s", field, strings.Join(e.Errors[field], " "))
	}

	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.kind
}
