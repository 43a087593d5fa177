package draft

import (
	"context"
	"errors"
	"sync"

	authormodel "course-catalog-backend/internal/domains/author/model"
	"course-catalog-backend/internal/domains/course/form"
	"course-catalog-backend/internal/domains/course/model"
	"course-catalog-backend/pkg/logger"
)

var ErrNoSession = errors.New("draft: no creation session for this user")

// Directory is the shared author directory seen by every session
type Directory interface {
	Publish(ctx context.Context, author authormodel.Author) error
	Roster(ctx context.Context) (authormodel.Roster, error)
}

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Manager keeps one creation session per user.
// Calls for the same user are serialised; different users run in parallel.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	directory Directory
	courses   CourseSink
	opts      []Option
}

func NewManager(directory Directory, courses CourseSink, opts ...Option) *Manager {
	return &Manager{
		sessions:  make(map[string]*entry),
		directory: directory,
		courses:   courses,
		opts:      opts,
	}
}

// Start opens a fresh session for userID, replacing any existing one
func (m *Manager) Start(ctx context.Context, userID string) (State, error) {
	roster, err := m.directory.Roster(ctx)
	if err != nil {
		return State{}, err
	}

	session, err := NewSession(roster, Collaborators{Authors: m.directory, Courses: m.courses}, m.opts...)
	if err != nil {
		return State{}, err
	}

	m.mu.Lock()
	m.sessions[userID] = &entry{session: session}
	m.mu.Unlock()

	logger.Info("course draft started", map[string]interface{}{
		"user_id":        userID,
		"roster_version": roster.Version,
	})
	return session.State(), nil
}

func (m *Manager) Get(ctx context.Context, userID string) (State, error) {
	var state State
	err := m.with(ctx, userID, func(s *Session) error {
		state = s.State()
		return nil
	})
	return state, err
}

func (m *Manager) SetField(ctx context.Context, userID string, field form.Field, raw string) (bool, State, error) {
	var (
		accepted bool
		state    State
	)
	err := m.with(ctx, userID, func(s *Session) error {
		ok, err := s.SetField(field, raw)
		if err != nil {
			return err
		}
		accepted = ok
		state = s.State()
		return nil
	})
	return accepted, state, err
}

func (m *Manager) Validate(ctx context.Context, userID string) (bool, State, error) {
	var (
		valid bool
		state State
	)
	err := m.with(ctx, userID, func(s *Session) error {
		valid = s.Validate()
		state = s.State()
		return nil
	})
	return valid, state, err
}

func (m *Manager) Assign(ctx context.Context, userID, authorID string) (State, error) {
	var state State
	err := m.with(ctx, userID, func(s *Session) error {
		if err := s.Assign(authorID); err != nil {
			return err
		}
		state = s.State()
		return nil
	})
	return state, err
}

func (m *Manager) Unassign(ctx context.Context, userID, authorID string) (bool, State, error) {
	var (
		changed bool
		state   State
	)
	err := m.with(ctx, userID, func(s *Session) error {
		changed = s.Unassign(authorID)
		state = s.State()
		return nil
	})
	return changed, state, err
}

func (m *Manager) CreateAuthor(ctx context.Context, userID, rawName string) (authormodel.Author, State, error) {
	var (
		author authormodel.Author
		state  State
	)
	err := m.with(ctx, userID, func(s *Session) error {
		created, err := s.CreateAuthor(ctx, rawName)
		if err != nil {
			return err
		}
		author = created
		state = s.State()
		return nil
	})
	return author, state, err
}

func (m *Manager) Submit(ctx context.Context, userID string) (*model.Course, State, error) {
	var (
		course *model.Course
		state  State
	)
	err := m.with(ctx, userID, func(s *Session) error {
		submitted, err := s.Submit(ctx)
		state = s.State()
		if err != nil {
			return err
		}
		course = submitted
		return nil
	})
	if err == nil {
		logger.Info("course draft submitted", map[string]interface{}{
			"user_id":   userID,
			"course_id": course.ID,
			"authors":   len(course.Authors),
		})
	}
	return course, state, err
}

func (m *Manager) Cancel(ctx context.Context, userID string) (State, error) {
	var state State
	err := m.with(ctx, userID, func(s *Session) error {
		s.Cancel()
		state = s.State()
		return nil
	})
	return state, err
}

// Discard forgets the session of userID
func (m *Manager) Discard(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}

// with runs fn on the session of userID under its lock, first catching the
// session up with the directory if the roster changed since it last looked.
func (m *Manager) with(ctx context.Context, userID string, fn func(*Session) error) error {
	m.mu.RLock()
	e, ok := m.sessions[userID]
	m.mu.RUnlock()
	if !ok {
		return ErrNoSession
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	roster, err := m.directory.Roster(ctx)
	if err != nil {
		return err
	}
	if roster.Version != e.session.RosterVersion() {
		e.session.SyncRoster(roster)
	}

	return fn(e.session)
}
