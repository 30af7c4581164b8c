package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when an authenticated actor lacks the rights
	// (role or ownership) for the requested operation. Read denials on
	// private notes are deliberately reported as store.ErrNoteNotFound
	// instead, to avoid confirming the note's existence.
	ErrForbidden = errors.New("operation is forbidden for this actor")

	ErrValidationEmptyTitle   = errors.New("note title must not be empty")
	ErrValidationTitleTooLong = errors.New("note title exceeds the maximum length")
	ErrValidationEmptyContent = errors.New("note content must not be empty")
	ErrValidationEmptyUpdate  = errors.New("note update carries no fields")
)
