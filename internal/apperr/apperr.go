// Package apperr holds the sentinel errors shared across services and
// controllers. Business-rule rejections (retakes, hidden results) are
// expected control flow and are matched with errors.Is at the HTTP layer.
package apperr

import "errors"

var (
	ErrAuthFailed        = errors.New("authentication failed")
	ErrAlreadyTaken      = errors.New("exam already taken by this student")
	ErrAttemptInProgress = errors.New("an attempt is already in progress for this exam")
	ErrNoActiveSession   = errors.New("no active exam session found")
	ErrExamNotFound      = errors.New("exam not found")
	ErrResultsHidden     = errors.New("results are not available for viewing yet")
	ErrResultNotFound    = errors.New("no result found for this exam")
	ErrValidationFailed  = errors.New("exam validation failed")
	ErrPersistence       = errors.New("persistence failure")
)
