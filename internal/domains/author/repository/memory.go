package repository

import (
	"context"
	"sync"

	"course-catalog-backend/internal/domains/author/model"
)

var _ RepositoryInterface = (*memoryRepository)(nil)

type memoryRepository struct {
	mu      sync.RWMutex
	authors []model.Author
	byID    map[string]int
	version uint64
}

// NewMemoryRepository creates an empty in-memory author directory
func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		byID: make(map[string]int),
	}
}

func (r *memoryRepository) Create(ctx context.Context, author model.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[author.ID]; ok {
		return model.ErrDuplicateID
	}

	r.byID[author.ID] = len(r.authors)
	r.authors = append(r.authors, author)
	r.version++

	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	a := r.authors[idx]
	return &a, nil
}

func (r *memoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.authors {
		if a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) Snapshot(ctx context.Context) (model.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	authors := make([]model.Author, len(r.authors))
	copy(authors, r.authors)

	return model.Roster{Authors: authors, Version: r.version}, nil
}
