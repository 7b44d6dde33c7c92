package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/service"
	"github.com/MKhiriev/go-time-sheet/internal/store"
	"github.com/MKhiriev/go-time-sheet/internal/utils"
	"github.com/MKhiriev/go-time-sheet/models"
)

// errorMapping pairs the HTTP status for a known sentinel error with the
// user-facing message returned in the JSON body. Errors not listed here are
// treated as internal: status 500 with a generic message, detail logged
// server-side only.
type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[error]errorMapping{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, "invalid data provided"},
	service.ErrInvalidCredentials:  {http.StatusBadRequest, "invalid username/password"},
	service.ErrTokenIsExpired:      {http.StatusUnauthorized, "session token expired"},
	service.ErrTokenIsInvalid:      {http.StatusUnauthorized, "invalid session token"},

	ErrMissingToken: {http.StatusUnauthorized, ErrMissingToken.Error()},
	ErrEmptyToken:   {http.StatusUnauthorized, ErrEmptyToken.Error()},

	store.ErrUsernameAlreadyExists: {http.StatusBadRequest, "username already exists"},
	store.ErrNoUserWasFound:        {http.StatusNotFound, "user not found"},
	store.ErrSheetNotFound:         {http.StatusNotFound, "sheet not found"},

	store.ErrSheetNotSaved:    {http.StatusInternalServerError, ""},
	store.ErrBuildingSQLQuery: {http.StatusInternalServerError, ""},
	store.ErrExecutingQuery:   {http.StatusInternalServerError, ""},
	store.ErrScanningRow:      {http.StatusInternalServerError, ""},
	store.ErrScanningRows:     {http.StatusInternalServerError, ""},
}

func mappingFromError(err error) errorMapping {
	for target, mapping := range errorMappings {
		if errors.Is(err, target) {
			return mapping
		}
	}
	return errorMapping{status: http.StatusInternalServerError}
}

// writeError translates err into a status code plus `{"message": "..."}` body
// and writes both to w. Internal errors never leak detail to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	mapping := mappingFromError(err)
	if mapping.status == http.StatusInternalServerError {
		log.Err(err).Msg("request ended with internal error")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Err(err).Int("status", mapping.status).Send()
	utils.WriteJSON(w, models.MessageResponse{Message: mapping.message}, mapping.status)
}
