package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-catalog-backend/internal/domains/course/model"
	"course-catalog-backend/internal/domains/course/repository"
)

type staticResolver map[string]string

func (r staticResolver) ResolveNames(ctx context.Context, ids []string) ([]string, error) {
	var names []string
	for _, id := range ids {
		if name, ok := r[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func seededService(t *testing.T) ServiceInterface {
	t.Helper()
	svc := NewCourseService(repository.NewMemoryRepository(), staticResolver{"a1": "Ann", "a2": "Bob"})

	courses := []model.Course{
		{ID: "de5aaa59-90f5", Title: "JavaScript", Description: "JS basics", CreationDate: "08/03/2021", Duration: 160, Authors: []string{"a1", "a2"}},
		{ID: "b5630fdd-7bf7", Title: "Angular", Description: "Framework", CreationDate: "2020-11-10", Duration: 210, Authors: []string{"a2", "ghost"}},
	}
	for _, c := range courses {
		require.NoError(t, svc.Add(context.Background(), c))
	}
	return svc
}

func TestCourseService_Add(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Add(ctx, model.Course{ID: "de5aaa59-90f5", Duration: 10}), model.ErrDuplicateID)
	assert.ErrorIs(t, svc.Add(ctx, model.Course{ID: "", Duration: 10}), model.ErrInvalidCourse)
	assert.ErrorIs(t, svc.Add(ctx, model.Course{ID: "x", Duration: 0}), model.ErrInvalidCourse)
}

func TestCourseService_List(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty query returns all", search: "", want: []string{"JavaScript", "Angular"}},
		{name: "blank query returns all", search: "   ", want: []string{"JavaScript", "Angular"}},
		{name: "title match ignores case", search: "ANGU", want: []string{"Angular"}},
		{name: "id match", search: "de5a", want: []string{"JavaScript"}},
		{name: "no match", search: "python", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := svc.List(ctx, model.CourseFilter{Search: tt.search})
			require.NoError(t, err)

			titles := make([]string, 0, len(views))
			for _, v := range views {
				titles = append(titles, v.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestCourseService_GetView(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	view, err := svc.GetView(ctx, "b5630fdd-7bf7")
	require.NoError(t, err)
	assert.Equal(t, "03:30 hours", view.FormattedDuration)
	assert.Equal(t, "10.11.2020", view.FormattedCreationDate)
	assert.Equal(t, []string{"Bob"}, view.AuthorNames)

	view, err = svc.GetView(ctx, "de5aaa59-90f5")
	require.NoError(t, err)
	assert.Equal(t, "02:40 hours", view.FormattedDuration)
	assert.Equal(t, "08.03.2021", view.FormattedCreationDate)
	assert.Equal(t, []string{"Ann", "Bob"}, view.AuthorNames)

	_, err = svc.GetView(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrCourseNotFound)
}

func TestCourseService_Exists(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	ok, err := svc.Exists(ctx, "de5aaa59-90f5")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}
