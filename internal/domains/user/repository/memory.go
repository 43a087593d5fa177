package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"course-catalog-backend/internal/domains/user"
)

var _ user.Repository = (*memoryRepository)(nil)

type memoryRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

// NewMemoryRepository tạo repository lưu user trong bộ nhớ
func NewMemoryRepository() user.Repository {
	return &memoryRepository{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *memoryRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if _, ok := r.byEmail[key]; ok {
		return user.ErrEmailAlreadyExists
	}

	stored := *u
	r.byID[u.ID] = &stored
	r.byEmail[key] = u.ID
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	out := *r.byID[id]
	return &out, nil
}

func (r *memoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[emailKey(email)]
	return ok, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
