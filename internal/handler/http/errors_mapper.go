package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is matched top to bottom, so an error wrapping several
// sentinels gets the first row it matches.
var errorStatusTable = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgAuthenticationNotProvided},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgAuthenticationNotProvided},

	{store.ErrProductNotFound, http.StatusNotFound, app.MsgProductDoesNotExist},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserDoesNotExist},
}

func statusFromError(err error) (int, string) {
	for _, row := range errorStatusTable {
		if errors.Is(err, row.target) {
			return row.status, row.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError renders err as a JSON error body. Field errors are attached
// only to 400 responses; 5xx details stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	response := models.ErrorResponse{Message: message}

	var fieldErrors validators.FieldErrors
	if status == http.StatusBadRequest && errors.As(err, &fieldErrors) {
		response.Errors = fieldErrors
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, response, status)
}
