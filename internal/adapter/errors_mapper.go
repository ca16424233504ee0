package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-shop-api/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// The error body is expected to have been decoded into a
// [models.ErrorResponse] via resty's SetError.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), kind: ErrUnexpectedStatus}
	if kind, ok := statusErrors[resp.StatusCode()]; ok {
		apiErr.kind = kind
	}

	if body, ok := resp.Error().(*models.ErrorResponse); ok && body != nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
	} else if raw := strings.TrimSpace(resp.String()); raw != "" {
		apiErr.Message = raw
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	return apiErr
}
