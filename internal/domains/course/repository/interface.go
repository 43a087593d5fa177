package repository

import (
	"context"

	"course-catalog-backend/internal/domains/course/model"
)

type RepositoryInterface interface {
	// Create appends a course; ErrDuplicateID if the id is taken
	Create(ctx context.Context, course model.Course) error
	// GetByID returns ErrCourseNotFound if not exists
	GetByID(ctx context.Context, id string) (*model.Course, error)
	// List returns courses matching the filter in insertion order
	List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error)
}
