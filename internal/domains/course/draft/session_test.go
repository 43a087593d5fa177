package draft

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "course-catalog-backend/internal/domains/author/model"
	"course-catalog-backend/internal/domains/course/form"
	"course-catalog-backend/internal/domains/course/model"
)

type authorSink struct {
	published []authormodel.Author
}

func (s *authorSink) Publish(ctx context.Context, a authormodel.Author) error {
	s.published = append(s.published, a)
	return nil
}

type courseSink struct {
	added []model.Course
	err   error
}

func (s *courseSink) Add(ctx context.Context, c model.Course) error {
	if s.err != nil {
		return s.err
	}
	s.added = append(s.added, c)
	return nil
}

var (
	ann = authormodel.Author{ID: "a1", Name: "Ann"}
	bob = authormodel.Author{ID: "a2", Name: "Bob"}

	fixedNow = time.Date(2024, time.March, 7, 15, 4, 5, 0, time.Local)
)

func counter(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newSession(t *testing.T, courses *courseSink, roster ...authormodel.Author) *Session {
	t.Helper()
	s, err := NewSession(
		authormodel.Roster{Authors: roster, Version: 1},
		Collaborators{Authors: &authorSink{}, Courses: courses},
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(counter("course")),
		WithAuthorIDGenerator(counter("author")),
	)
	require.NoError(t, err)
	return s
}

func fill(t *testing.T, s *Session, title, description, duration string) {
	t.Helper()
	for field, value := range map[form.Field]string{
		form.FieldTitle:       title,
		form.FieldDescription: description,
		form.FieldDuration:    duration,
	} {
		_, err := s.SetField(field, value)
		require.NoError(t, err)
	}
}

func TestNewSession_RequiresCollaborators(t *testing.T) {
	_, err := NewSession(authormodel.Roster{}, Collaborators{Courses: &courseSink{}})
	assert.ErrorIs(t, err, ErrMissingCollaborator)

	_, err = NewSession(authormodel.Roster{}, Collaborators{Authors: &authorSink{}})
	assert.ErrorIs(t, err, ErrMissingCollaborator)
}

func TestSession_SubmitEndToEnd(t *testing.T) {
	courses := &courseSink{}
	s := newSession(t, courses, ann)

	require.NoError(t, s.Assign("a1"))
	state := s.State()
	assert.Empty(t, state.Available)
	assert.Equal(t, []authormodel.Author{ann}, state.Assigned)

	fill(t, s, "Algebra", "Intro math", "90")
	assert.Equal(t, "01:30 hours", s.State().FormattedDuration)
	require.True(t, s.Validate())

	course, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Course{
		ID:           "course-1",
		Title:        "Algebra",
		Description:  "Intro math",
		CreationDate: "07.03.2024",
		Duration:     90,
		Authors:      []string{"a1"},
	}, *course)
	assert.Equal(t, []model.Course{*course}, courses.added)

	state = s.State()
	assert.Equal(t, []authormodel.Author{ann}, state.Available)
	assert.Empty(t, state.Assigned)
	assert.Equal(t, form.Values{}, state.Values)
	assert.Empty(t, state.Errors)
}

func TestSession_SubmitTrimsAndKeepsAssignmentOrder(t *testing.T) {
	courses := &courseSink{}
	s := newSession(t, courses, ann, bob)

	require.NoError(t, s.Assign("a2"))
	require.NoError(t, s.Assign("a1"))
	fill(t, s, "  Algebra  ", " Intro ", "120")

	course, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Algebra", course.Title)
	assert.Equal(t, "Intro", course.Description)
	assert.Equal(t, []string{"a2", "a1"}, course.Authors)
	assert.Empty(t, s.State().Assigned)
}

func TestSession_SubmitInvalidKeepsDraft(t *testing.T) {
	courses := &courseSink{}
	s := newSession(t, courses, ann)

	require.NoError(t, s.Assign("a1"))
	fill(t, s, "A", "Intro math", "0")

	course, err := s.Submit(context.Background())
	assert.Nil(t, course)
	assert.ErrorIs(t, err, ErrInvalidForm)

	var formErr *FormError
	require.True(t, errors.As(err, &formErr))
	assert.Equal(t, form.Errors{
		form.FieldTitle:    form.MsgTitle,
		form.FieldDuration: form.MsgDurationPositive,
	}, formErr.Fields)

	state := s.State()
	assert.Equal(t, "A", state.Values.Title)
	assert.Equal(t, []authormodel.Author{ann}, state.Assigned)
	assert.Empty(t, courses.added)
}

func TestSession_SubmitSinkFailureKeepsDraft(t *testing.T) {
	courses := &courseSink{err: model.ErrDuplicateID}
	s := newSession(t, courses, ann)

	require.NoError(t, s.Assign("a1"))
	fill(t, s, "Algebra", "Intro math", "90")

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, model.ErrDuplicateID)

	state := s.State()
	assert.Equal(t, "Algebra", state.Values.Title)
	assert.Equal(t, []authormodel.Author{ann}, state.Assigned)
}

func TestSession_Cancel(t *testing.T) {
	courses := &courseSink{}
	s := newSession(t, courses, ann, bob)

	require.NoError(t, s.Assign("a1"))
	fill(t, s, "Algebra", "", "90")
	s.Validate()

	s.Cancel()
	state := s.State()
	assert.Equal(t, form.Values{}, state.Values)
	assert.Empty(t, state.Errors)
	assert.Equal(t, []authormodel.Author{bob, ann}, state.Available)
	assert.Empty(t, state.Assigned)
	assert.Empty(t, courses.added)
}

func TestSession_CreateAuthorAndSync(t *testing.T) {
	s := newSession(t, &courseSink{}, ann)

	created, err := s.CreateAuthor(context.Background(), "  Carol ")
	require.NoError(t, err)
	assert.Equal(t, authormodel.Author{ID: "author-1", Name: "Carol"}, created)
	assert.Equal(t, []authormodel.Author{ann, created}, s.State().Available)

	_, err = s.CreateAuthor(context.Background(), "Ann")
	assert.ErrorIs(t, err, authormodel.ErrNameDuplicate)

	require.NoError(t, s.Assign("a1"))
	s.SyncRoster(authormodel.Roster{Authors: []authormodel.Author{ann, bob, created}, Version: 3})

	state := s.State()
	assert.Equal(t, uint64(3), state.RosterVersion)
	assert.Equal(t, []authormodel.Author{bob, created}, state.Available)
	assert.Equal(t, []authormodel.Author{ann}, state.Assigned)
}
