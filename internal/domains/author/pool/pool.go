// Package pool partitions the authors of one course-creation session into
// the ones still available and the ones assigned to the course being built.
//
// A Pool is not safe for concurrent use; callers serialise access.
package pool

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"course-catalog-backend/internal/domains/author/model"
)

// ErrMissingSink is returned by New when no AuthorSink is supplied
var ErrMissingSink = errors.New("pool: author sink is required")

// AuthorSink receives every author minted by a pool so the rest of the
// application can see it.
type AuthorSink interface {
	Publish(ctx context.Context, author model.Author) error
}

// Pool holds two disjoint ordered collections of authors.
// No id is ever present in both available and assigned.
type Pool struct {
	available []model.Author
	assigned  []model.Author

	sink  AuthorSink
	newID func() string
}

type Option func(*Pool)

// WithIDGenerator replaces the uuid generator used for new authors
func WithIDGenerator(fn func() string) Option {
	return func(p *Pool) {
		p.newID = fn
	}
}

func New(sink AuthorSink, opts ...Option) (*Pool, error) {
	if sink == nil {
		return nil, ErrMissingSink
	}

	p := &Pool{
		sink:  sink,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Initialize replaces the available collection with roster, keeping roster
// order. Authors currently assigned are left out so the two collections stay
// disjoint; repeated ids keep their first occurrence.
func (p *Pool) Initialize(roster []model.Author) {
	available := make([]model.Author, 0, len(roster))
	seen := make(map[string]struct{}, len(roster))

	for _, a := range roster {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}

		if model.IndexOf(p.assigned, a.ID) >= 0 {
			continue
		}
		available = append(available, a)
	}

	p.available = available
}

// Assign moves an available author to the end of the assigned collection.
// Assigning an already assigned author is a no-op.
func (p *Pool) Assign(id string) error {
	if model.IndexOf(p.assigned, id) >= 0 {
		return nil
	}

	idx := model.IndexOf(p.available, id)
	if idx < 0 {
		return model.ErrAuthorNotFound
	}

	a := p.available[idx]
	p.available = removeAt(p.available, idx)
	p.assigned = append(p.assigned, a)
	return nil
}

// Unassign moves an assigned author back to the end of the available
// collection and reports whether anything changed.
func (p *Pool) Unassign(id string) bool {
	idx := model.IndexOf(p.assigned, id)
	if idx < 0 {
		return false
	}

	a := p.assigned[idx]
	p.assigned = removeAt(p.assigned, idx)
	if model.IndexOf(p.available, id) < 0 {
		p.available = append(p.available, a)
	}
	return true
}

// CreateAuthor validates rawName against this pool, mints a new author,
// appends it to the available collection and publishes it to the sink.
// Validation failures are *model.ValidationError values and leave the pool
// untouched; a sink failure undoes the append.
func (p *Pool) CreateAuthor(ctx context.Context, rawName string) (model.Author, error) {
	name, err := model.CheckName(rawName, p.hasName)
	if err != nil {
		return model.Author{}, err
	}

	author := model.Author{ID: p.newID(), Name: name}
	p.available = append(p.available, author)

	if err := p.sink.Publish(ctx, author); err != nil {
		p.available = p.available[:len(p.available)-1]
		return model.Author{}, fmt.Errorf("publish new author: %w", err)
	}

	return author, nil
}

// DrainAssigned returns the assigned ids in assignment order without
// changing the pool.
func (p *Pool) DrainAssigned() []string {
	return model.IDs(p.assigned)
}

// ResetAfterSubmit returns every assigned author to the available
// collection, after the authors already there, and empties assigned.
func (p *Pool) ResetAfterSubmit() {
	for _, a := range p.assigned {
		if model.IndexOf(p.available, a.ID) < 0 {
			p.available = append(p.available, a)
		}
	}
	p.assigned = nil
}

func (p *Pool) Available() []model.Author {
	return clone(p.available)
}

func (p *Pool) Assigned() []model.Author {
	return clone(p.assigned)
}

func (p *Pool) hasName(name string) bool {
	for _, a := range p.available {
		if a.Name == name {
			return true
		}
	}
	for _, a := range p.assigned {
		if a.Name == name {
			return true
		}
	}
	return false
}

func removeAt(authors []model.Author, idx int) []model.Author {
	out := make([]model.Author, 0, len(authors)-1)
	out = append(out, authors[:idx]...)
	return append(out, authors[idx+1:]...)
}

func clone(authors []model.Author) []model.Author {
	out := make([]model.Author, len(authors))
	copy(out, authors)
	return out
}
