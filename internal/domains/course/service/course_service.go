package service

import (
	"context"
	"errors"
	"fmt"

	"course-catalog-backend/internal/domains/course/model"
	"course-catalog-backend/internal/domains/course/repository"
	"course-catalog-backend/pkg/logger"
)

type courseService struct {
	repo    repository.RepositoryInterface
	authors AuthorResolver
}

// NewCourseService creates a new course service instance
func NewCourseService(repo repository.RepositoryInterface, authors AuthorResolver) ServiceInterface {
	return &courseService{
		repo:    repo,
		authors: authors,
	}
}

func (s *courseService) Add(ctx context.Context, course model.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}

	logger.Info("course added", map[string]interface{}{
		"course_id": course.ID,
		"title":     course.Title,
		"authors":   len(course.Authors),
	})
	return nil
}

func (s *courseService) GetByID(ctx context.Context, id string) (*model.Course, error) {
	if id == "" {
		return nil, model.ErrCourseNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *courseService) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, model.ErrCourseNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *courseService) List(ctx context.Context, filter model.CourseFilter) ([]model.CourseView, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	views := make([]model.CourseView, 0, len(courses))
	for _, c := range courses {
		view, err := s.toView(ctx, c)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *courseService) GetView(ctx context.Context, id string) (*model.CourseView, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view, err := s.toView(ctx, *c)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *courseService) toView(ctx context.Context, c model.Course) (model.CourseView, error) {
	names, err := s.authors.ResolveNames(ctx, c.Authors)
	if err != nil {
		return model.CourseView{}, fmt.Errorf("resolve authors of course %s: %w", c.ID, err)
	}
	return c.ToView(names), nil
}
