// Package controller holds what the admin and student route handlers
// share: mapping service failures onto HTTP status codes.
package controller

import (
	"errors"
	"net/http"

	"github.com/lshigami/Pangolins/internal/apperr"
)

// StatusFor translates the service error taxonomy into HTTP statuses.
// Business-rule rejections map to 4xx; anything unrecognized is a 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrExamNotFound), errors.Is(err, apperr.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrAlreadyTaken), errors.Is(err, apperr.ErrAttemptInProgress):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrNoActiveSession):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrResultsHidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrAuthFailed):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
