package http

import (
	"errors"
	"net/http"

	"github.com/pzawadzki/filmoteka-auth/internal/service"
	"github.com/pzawadzki/filmoteka-auth/internal/store"
	"github.com/pzawadzki/filmoteka-auth/internal/utils"
	"github.com/pzawadzki/filmoteka-auth/models"
)

// errorStatus pairs the HTTP status with the safe, non-leaking detail
// message for a known service or store error.
type errorStatus struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorStatus{
	service.ErrInvalidDataProvided:   {http.StatusBadRequest, detailInvalidData},
	service.ErrInvalidCredentials:    {http.StatusUnauthorized, detailInvalidCredentials},
	service.ErrTokenExpired:          {http.StatusUnauthorized, detailTokenExpired},
	service.ErrTokenSignatureInvalid: {http.StatusUnauthorized, detailCannotVerifyCredentials},
	service.ErrTokenMalformed:        {http.StatusUnauthorized, detailCannotVerifyCredentials},

	store.ErrUsernameAlreadyExists: {http.StatusBadRequest, detailDuplicateUser},
}

func statusFromError(err error) errorStatus {
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped
		}
	}
	return errorStatus{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}
}

// writeDetail writes the uniform {"detail": ...} error body.
func writeDetail(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}

// writeError maps err onto a status/detail pair and writes the response.
func writeError(w http.ResponseWriter, err error) {
	mapped := statusFromError(err)
	writeDetail(w, mapped.detail, mapped.status)
}
