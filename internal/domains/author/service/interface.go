package service

import (
	"context"

	"course-catalog-backend/internal/domains/author/model"
)

// ServiceInterface defines business logic for the shared author directory
type ServiceInterface interface {
	// List returns every author in insertion order
	List(ctx context.Context) ([]model.Author, error)

	// GetByID errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id string) (*model.Author, error)

	// Create mints an author from a bare name.
	// Business rules: trimmed name required, at least 2 characters,
	// not already present in the directory.
	Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error)

	// Publish stores an author minted elsewhere (a creation session).
	// Errors: ErrDuplicateID
	Publish(ctx context.Context, author model.Author) error

	// Roster returns the directory with its version
	Roster(ctx context.Context) (model.Roster, error)

	// ResolveNames maps ids to names, skipping unknown ids
	ResolveNames(ctx context.Context, ids []string) ([]string, error)
}
