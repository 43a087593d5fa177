package repository

import (
	"context"
	"sync"

	"course-catalog-backend/internal/domains/course/model"
)

var _ RepositoryInterface = (*memoryRepository)(nil)

type memoryRepository struct {
	mu      sync.RWMutex
	courses []model.Course
	byID    map[string]int
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		byID: make(map[string]int),
	}
}

func (r *memoryRepository) Create(ctx context.Context, course model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[course.ID]; ok {
		return model.ErrDuplicateID
	}

	r.byID[course.ID] = len(r.courses)
	r.courses = append(r.courses, cloneCourse(course))
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, model.ErrCourseNotFound
	}
	c := cloneCourse(r.courses[idx])
	return &c, nil
}

func (r *memoryRepository) List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Course, 0, len(r.courses))
	for _, c := range r.courses {
		if filter.Matches(c) {
			out = append(out, cloneCourse(c))
		}
	}
	return out, nil
}

// cloneCourse keeps callers from sharing the authors slice with the store
func cloneCourse(c model.Course) model.Course {
	authors := make([]string, len(c.Authors))
	copy(authors, c.Authors)
	c.Authors = authors
	return c
}
