package model

import (
	"errors"
	"net/http"
)

// Reason classifies why an author name was rejected
type Reason string

const (
	ReasonRequired  Reason = "required"
	ReasonTooShort  Reason = "tooShort"
	ReasonDuplicate Reason = "duplicate"
)

// ValidationError is an advisory message tied to the author name input
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// Validation Errors
	ErrNameRequired  = &ValidationError{Reason: ReasonRequired, Message: "Author name is required."}
	ErrNameTooShort  = &ValidationError{Reason: ReasonTooShort, Message: "Author name should be at least 2 characters."}
	ErrNameDuplicate = &ValidationError{Reason: ReasonDuplicate, Message: "Author already exists."}

	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateID    = errors.New("author with this id already exists")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateID):
		return "DUPLICATE_ID"
	case errors.Is(err, ErrNameRequired):
		return "NAME_REQUIRED"
	case errors.Is(err, ErrNameTooShort):
		return "NAME_TOO_SHORT"
	case errors.Is(err, ErrNameDuplicate):
		return "DUPLICATE_NAME"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNameDuplicate), errors.Is(err, ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrNameTooShort):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
