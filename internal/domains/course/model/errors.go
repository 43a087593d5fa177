package model

import (
	"errors"
	"net/http"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrDuplicateID    = errors.New("course with this id already exists")
	ErrInvalidCourse  = errors.New("course record is invalid")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCourse):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		return "COURSE_NOT_FOUND"
	case errors.Is(err, ErrDuplicateID):
		return "COURSE_DUPLICATE_ID"
	case errors.Is(err, ErrInvalidCourse):
		return "COURSE_INVALID"
	default:
		return "INTERNAL_ERROR"
	}
}
