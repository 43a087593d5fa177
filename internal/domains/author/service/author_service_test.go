package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-catalog-backend/internal/domains/author/model"
	"course-catalog-backend/internal/domains/author/repository"
)

func newService(t *testing.T, seed ...model.Author) ServiceInterface {
	t.Helper()
	repo := repository.NewMemoryRepository()
	for _, a := range seed {
		require.NoError(t, repo.Create(context.Background(), a))
	}
	return NewAuthorService(repo)
}

func TestAuthorService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, model.Author{ID: "a1", Name: "Ann"})

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "   ", wantErr: model.ErrNameRequired},
		{name: "too short", input: " A ", wantErr: model.ErrNameTooShort},
		{name: "duplicate", input: " Ann ", wantErr: model.ErrNameDuplicate},
		{name: "valid", input: "  Bob  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Create(ctx, model.CreateAuthorRequest{Name: tt.input})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bob", got.Name)
			assert.NotEmpty(t, got.ID)
		})
	}

	authors, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob"}, []string{authors[0].Name, authors[1].Name})
}

func TestAuthorService_PublishBumpsRosterVersion(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	before, err := svc.Roster(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Publish(ctx, model.Author{ID: "x", Name: "Xena"}))
	assert.ErrorIs(t, svc.Publish(ctx, model.Author{ID: "x", Name: "Other"}), model.ErrDuplicateID)
	assert.Error(t, svc.Publish(ctx, model.Author{Name: "No id"}))

	after, err := svc.Roster(ctx)
	require.NoError(t, err)
	assert.Greater(t, after.Version, before.Version)
	assert.Equal(t, []model.Author{{ID: "x", Name: "Xena"}}, after.Authors)
}

func TestAuthorService_PublishLeavesNameCheckToDraftPool(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	require.NoError(t, svc.Publish(ctx, model.Author{ID: "x1", Name: "Xena"}))
	require.NoError(t, svc.Publish(ctx, model.Author{ID: "x2", Name: "Xena"}))

	roster, err := svc.Roster(ctx)
	require.NoError(t, err)
	assert.Len(t, roster.Authors, 2)
}

func TestAuthorService_GetByIDAndResolveNames(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, model.Author{ID: "a1", Name: "Ann"}, model.Author{ID: "a2", Name: "Bob"})

	a, err := svc.GetByID(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, "Bob", a.Name)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	names, err := svc.ResolveNames(ctx, []string{"a2", "ghost", "a1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Ann"}, names)
}
