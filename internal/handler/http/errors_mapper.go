package http

import (
	"errors"
	"net/http"

	"github.com/dkordic/noteboard/internal/service"
	"github.com/dkordic/noteboard/internal/store"
	"github.com/dkordic/noteboard/internal/utils"
	"github.com/dkordic/noteboard/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	service.ErrValidationEmptyTitle:   http.StatusBadRequest,
	service.ErrValidationTitleTooLong: http.StatusBadRequest,
	service.ErrValidationEmptyContent: http.StatusBadRequest,
	service.ErrValidationEmptyUpdate:  http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrOwnerNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps a service or storage error to its HTTP status and writes a
// JSON error body. Internal errors are masked with the generic status text so
// that storage details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
