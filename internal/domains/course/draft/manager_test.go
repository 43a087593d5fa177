package draft

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "course-catalog-backend/internal/domains/author/model"
	authorrepo "course-catalog-backend/internal/domains/author/repository"
	authorservice "course-catalog-backend/internal/domains/author/service"
	"course-catalog-backend/internal/domains/course/form"
	"course-catalog-backend/internal/domains/course/model"
	courserepo "course-catalog-backend/internal/domains/course/repository"
	courseservice "course-catalog-backend/internal/domains/course/service"
)

func newManager(t *testing.T) (*Manager, authorservice.ServiceInterface, courseservice.ServiceInterface) {
	t.Helper()
	authors := authorservice.NewAuthorService(authorrepo.NewMemoryRepository())
	courses := courseservice.NewCourseService(courserepo.NewMemoryRepository(), authors)

	require.NoError(t, authors.Publish(context.Background(), ann))
	return NewManager(authors, courses), authors, courses
}

func TestManager_RequiresStart(t *testing.T) {
	m, _, _ := newManager(t)

	_, err := m.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNoSession)

	_, _, err = m.Submit(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_FullFlow(t *testing.T) {
	ctx := context.Background()
	m, authors, courses := newManager(t)

	state, err := m.Start(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []authormodel.Author{ann}, state.Available)

	state, err = m.Assign(ctx, "u1", "a1")
	require.NoError(t, err)
	assert.Equal(t, []authormodel.Author{ann}, state.Assigned)

	for field, value := range map[form.Field]string{
		form.FieldTitle:       "Algebra",
		form.FieldDescription: "Intro math",
		form.FieldDuration:    "90",
	} {
		accepted, _, err := m.SetField(ctx, "u1", field, value)
		require.NoError(t, err)
		assert.True(t, accepted)
	}

	accepted, state, err := m.SetField(ctx, "u1", form.FieldDuration, "90x")
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, "90", state.Values.Duration)

	valid, _, err := m.Validate(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, valid)

	course, state, err := m.Submit(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 90, course.Duration)
	assert.Equal(t, []string{"a1"}, course.Authors)
	assert.Equal(t, []authormodel.Author{ann}, state.Available)
	assert.Empty(t, state.Assigned)

	view, err := courses.GetView(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, view.AuthorNames)

	roster, err := authors.Roster(ctx)
	require.NoError(t, err)
	assert.Len(t, roster.Authors, 1)
}

func TestManager_SessionsSeeEachOthersAuthors(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	_, err := m.Start(ctx, "u1")
	require.NoError(t, err)
	_, err = m.Start(ctx, "u2")
	require.NoError(t, err)

	_, err = m.Assign(ctx, "u2", "a1")
	require.NoError(t, err)

	created, _, err := m.CreateAuthor(ctx, "u1", "Carol")
	require.NoError(t, err)

	state, err := m.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []authormodel.Author{created}, state.Available)
	assert.Equal(t, []authormodel.Author{ann}, state.Assigned)

	// second session now knows Carol, so the name is taken there too
	_, _, err = m.CreateAuthor(ctx, "u2", "Carol")
	assert.ErrorIs(t, err, authormodel.ErrNameDuplicate)
}

func TestManager_CancelAndDiscard(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	_, err := m.Start(ctx, "u1")
	require.NoError(t, err)
	_, err = m.Assign(ctx, "u1", "a1")
	require.NoError(t, err)

	changed, _, err := m.Unassign(ctx, "u1", "a1")
	require.NoError(t, err)
	assert.True(t, changed)
	_, err = m.Assign(ctx, "u1", "a1")
	require.NoError(t, err)

	state, err := m.Cancel(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []authormodel.Author{ann}, state.Available)
	assert.Empty(t, state.Assigned)

	m.Discard("u1")
	_, err = m.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_ConcurrentUsers(t *testing.T) {
	ctx := context.Background()
	m, _, courses := newManager(t)

	users := []string{"u1", "u2", "u3", "u4"}
	var wg sync.WaitGroup
	for _, u := range users {
		_, err := m.Start(ctx, u)
		require.NoError(t, err)

		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_, _, _ = m.SetField(ctx, user, form.FieldTitle, "Course "+user)
			_, _, _ = m.SetField(ctx, user, form.FieldDescription, "About "+user)
			_, _, _ = m.SetField(ctx, user, form.FieldDuration, "30")
			_, _, _ = m.CreateAuthor(ctx, user, "Author "+user)
			_, _, _ = m.Submit(ctx, user)
		}(u)
	}
	wg.Wait()

	views, err := courses.List(ctx, model.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, views, len(users))
}
