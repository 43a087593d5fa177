// Package draft ties one form and one author pool into a course-creation
// session and turns a valid draft into a stored course.
package draft

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	authormodel "course-catalog-backend/internal/domains/author/model"
	"course-catalog-backend/internal/domains/author/pool"
	"course-catalog-backend/internal/domains/course/form"
	"course-catalog-backend/internal/domains/course/model"
	"course-catalog-backend/internal/shared/utils"
)

var (
	ErrMissingCollaborator = errors.New("draft: author and course sinks are required")
	ErrInvalidForm         = errors.New("draft: form has invalid fields")
)

// FormError carries the field messages of a refused submit
type FormError struct {
	Fields form.Errors
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: %s", ErrInvalidForm.Error(), strings.Join(keys, ", "))
}

func (e *FormError) Is(target error) bool {
	return target == ErrInvalidForm
}

// CourseSink stores finished courses
type CourseSink interface {
	Add(ctx context.Context, course model.Course) error
}

// Collaborators are the outside parties a session reports to
type Collaborators struct {
	Authors pool.AuthorSink
	Courses CourseSink
}

// State is a snapshot of a session for display
type State struct {
	Values            form.Values          `json:"values"`
	Errors            form.Errors          `json:"errors"`
	Available         []authormodel.Author `json:"available"`
	Assigned          []authormodel.Author `json:"assigned"`
	FormattedDuration string               `json:"formatted_duration"`
	RosterVersion     uint64               `json:"roster_version"`
}

type Session struct {
	form    *form.Form
	authors *pool.Pool
	courses CourseSink

	rosterVersion uint64
	now           func() time.Time
	newID         func() string
}

type Option func(*sessionOptions)

type sessionOptions struct {
	now         func() time.Time
	newID       func() string
	poolOptions []pool.Option
}

func WithClock(now func() time.Time) Option {
	return func(o *sessionOptions) {
		o.now = now
	}
}

// WithIDGenerator sets the generator for course ids
func WithIDGenerator(fn func() string) Option {
	return func(o *sessionOptions) {
		o.newID = fn
	}
}

// WithAuthorIDGenerator sets the generator for authors created in the session
func WithAuthorIDGenerator(fn func() string) Option {
	return func(o *sessionOptions) {
		o.poolOptions = append(o.poolOptions, pool.WithIDGenerator(fn))
	}
}

// NewSession starts an empty draft whose available authors are the roster
func NewSession(roster authormodel.Roster, collab Collaborators, opts ...Option) (*Session, error) {
	if collab.Authors == nil || collab.Courses == nil {
		return nil, ErrMissingCollaborator
	}

	o := sessionOptions{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	p, err := pool.New(collab.Authors, o.poolOptions...)
	if err != nil {
		return nil, err
	}
	p.Initialize(roster.Authors)

	return &Session{
		form:          form.New(),
		authors:       p,
		courses:       collab.Courses,
		rosterVersion: roster.Version,
		now:           o.now,
		newID:         o.newID,
	}, nil
}

func (s *Session) SetField(field form.Field, raw string) (bool, error) {
	return s.form.SetField(field, raw)
}

func (s *Session) Validate() bool {
	return s.form.Validate()
}

func (s *Session) Assign(id string) error {
	return s.authors.Assign(id)
}

func (s *Session) Unassign(id string) bool {
	return s.authors.Unassign(id)
}

func (s *Session) CreateAuthor(ctx context.Context, rawName string) (authormodel.Author, error) {
	return s.authors.CreateAuthor(ctx, rawName)
}

// SyncRoster re-seeds the available authors from a newer roster
func (s *Session) SyncRoster(roster authormodel.Roster) {
	s.authors.Initialize(roster.Authors)
	s.rosterVersion = roster.Version
}

func (s *Session) RosterVersion() uint64 {
	return s.rosterVersion
}

// Submit validates the draft, hands the course to the course sink and resets
// the session. A refused or failed submit leaves the draft as it was.
func (s *Session) Submit(ctx context.Context) (*model.Course, error) {
	if !s.form.Validate() {
		return nil, &FormError{Fields: s.form.Errors()}
	}

	duration, err := s.form.Duration()
	if err != nil {
		return nil, fmt.Errorf("parse duration: %w", err)
	}

	course := model.Course{
		ID:           s.newID(),
		Title:        s.form.Title(),
		Description:  s.form.Description(),
		CreationDate: utils.FormatDate(s.now()),
		Duration:     duration,
		Authors:      s.authors.DrainAssigned(),
	}

	if err := s.courses.Add(ctx, course); err != nil {
		return nil, fmt.Errorf("add course: %w", err)
	}

	s.form.Reset()
	s.authors.ResetAfterSubmit()
	return &course, nil
}

// Cancel drops the draft and returns assigned authors to the available pool
func (s *Session) Cancel() {
	s.form.Reset()
	s.authors.ResetAfterSubmit()
}

func (s *Session) State() State {
	values := s.form.Values()
	return State{
		Values:            values,
		Errors:            s.form.Errors(),
		Available:         s.authors.Available(),
		Assigned:          s.authors.Assigned(),
		FormattedDuration: utils.FormatDuration(values.Duration),
		RosterVersion:     s.rosterVersion,
	}
}
