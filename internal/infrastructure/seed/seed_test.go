package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorrepo "course-catalog-backend/internal/domains/author/repository"
	authorservice "course-catalog-backend/internal/domains/author/service"
	coursemodel "course-catalog-backend/internal/domains/course/model"
	courserepo "course-catalog-backend/internal/domains/course/repository"
	courseservice "course-catalog-backend/internal/domains/course/service"
)

const sample = `
authors:
  - id: a1
    name: Vasiliy Dobkin
  - id: a2
    name: Nicolas Kim
courses:
  - id: c1
    title: JavaScript
    description: Basics
    creation_date: 08/03/2021
    duration: 160
    authors: [a1, a2]
`

func TestLoadFileAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	catalog, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, catalog.Authors, 2)
	require.Len(t, catalog.Courses, 1)
	assert.Equal(t, []string{"a1", "a2"}, catalog.Courses[0].Authors)

	ctx := context.Background()
	authors := authorservice.NewAuthorService(authorrepo.NewMemoryRepository())
	courses := courseservice.NewCourseService(courserepo.NewMemoryRepository(), authors)
	require.NoError(t, Apply(ctx, catalog, authors, courses))

	view, err := courses.GetView(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "02:40 hours", view.FormattedDuration)
	assert.Equal(t, "08.03.2021", view.FormattedCreationDate)
	assert.Equal(t, []string{"Vasiliy Dobkin", "Nicolas Kim"}, view.AuthorNames)

	// applying twice collides on ids
	assert.Error(t, Apply(ctx, catalog, authors, courses))
}

func TestParse(t *testing.T) {
	catalog, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, catalog.Authors)

	_, err = Parse([]byte("authors:\n  - id: a1\n    nickname: x\n"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply_RejectsInvalidCourse(t *testing.T) {
	ctx := context.Background()
	authors := authorservice.NewAuthorService(authorrepo.NewMemoryRepository())
	courses := courseservice.NewCourseService(courserepo.NewMemoryRepository(), authors)

	err := Apply(ctx, &Catalog{Courses: []coursemodel.Course{{ID: "c1", Duration: 0}}}, authors, courses)
	assert.ErrorIs(t, err, coursemodel.ErrInvalidCourse)
}
