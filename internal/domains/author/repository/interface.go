package repository

import (
	"context"

	"course-catalog-backend/internal/domains/author/model"
)

// RepositoryInterface defines data access for the author directory
type RepositoryInterface interface {
	// Create appends a new author
	// Errors: ErrDuplicateID if the id is taken
	Create(ctx context.Context, author model.Author) error

	// GetByID returns ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id string) (*model.Author, error)

	// ExistsByName reports whether an author has exactly this name
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Snapshot returns all authors in insertion order with the current version
	Snapshot(ctx context.Context) (model.Roster, error)
}
