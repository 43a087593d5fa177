package service

import (
	"context"

	"course-catalog-backend/internal/domains/course/model"
)

// AuthorResolver maps author ids to display names
type AuthorResolver interface {
	ResolveNames(ctx context.Context, ids []string) ([]string, error)
}

// ServiceInterface defines business logic for the course collection
type ServiceInterface interface {
	// Add stores a finished course record.
	// Errors: ErrInvalidCourse, ErrDuplicateID
	Add(ctx context.Context, course model.Course) error

	// GetByID errors: ErrCourseNotFound
	GetByID(ctx context.Context, id string) (*model.Course, error)

	// Exists reports whether id names a stored course
	Exists(ctx context.Context, id string) (bool, error)

	// List returns courses whose title or id contains the search text
	List(ctx context.Context, filter model.CourseFilter) ([]model.CourseView, error)

	// GetView returns one course with display values and author names
	GetView(ctx context.Context, id string) (*model.CourseView, error)
}
