package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"course-catalog-backend/internal/domains/author/model"
	"course-catalog-backend/internal/domains/author/repository"
	"course-catalog-backend/pkg/logger"
)

// authorService implements ServiceInterface
type authorService struct {
	repo repository.RepositoryInterface

	// serialises the name check and insert of Create
	createMu sync.Mutex
	newID    func() string
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo:  repo,
		newID: uuid.NewString,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	roster, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return roster.Authors, nil
}

func (s *authorService) GetByID(ctx context.Context, id string) (*model.Author, error) {
	if id == "" {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error) {
	s.createMu.Lock()
	defer s.createMu.Unlock()

	var lookupErr error
	name, err := model.CheckName(req.Name, func(name string) bool {
		exists, err := s.repo.ExistsByName(ctx, name)
		if err != nil {
			lookupErr = err
			return false
		}
		return exists
	})
	if lookupErr != nil {
		return nil, fmt.Errorf("check author name: %w", lookupErr)
	}
	if err != nil {
		return nil, err
	}

	author := model.Author{ID: s.newID(), Name: name}
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	logger.Info("author created", map[string]interface{}{
		"author_id": author.ID,
		"name":      author.Name,
	})
	return &author, nil
}

// Publish stores an author created inside a draft. Name uniqueness is
// enforced against that draft's pool, not the whole directory.
func (s *authorService) Publish(ctx context.Context, author model.Author) error {
	if author.ID == "" {
		return errors.New("publish author: empty id")
	}
	if err := s.repo.Create(ctx, author); err != nil {
		return fmt.Errorf("publish author: %w", err)
	}

	logger.Info("author published", map[string]interface{}{
		"author_id": author.ID,
		"name":      author.Name,
	})
	return nil
}

func (s *authorService) Roster(ctx context.Context) (model.Roster, error) {
	return s.repo.Snapshot(ctx)
}

func (s *authorService) ResolveNames(ctx context.Context, ids []string) ([]string, error) {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		a, err := s.repo.GetByID(ctx, id)
		if errors.Is(err, model.ErrAuthorNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve author %s: %w", id, err)
		}
		names = append(names, a.Name)
	}
	return names, nil
}
