package composer

import (
	"context"
	"testing"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestDocRepo_CreateGetListDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewDocStore(docstore.NewMemory())

	created, err := repo.Create(ctx, domain.Composer{FirstName: "Johann", LastName: "Bach"})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := repo.GetByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, *created, *got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, created.ID.Hex()))
	require.ErrorIs(t, repo.Delete(ctx, created.ID.Hex()), domain.ErrNotFound)
}

func TestDocRepo_SaveBumpsVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewDocStore(docstore.NewMemory())

	created, err := repo.Create(ctx, domain.Composer{FirstName: "Clara", LastName: "Wieck"})
	require.NoError(t, err)

	created.LastName = "Schumann"
	saved, err := repo.Save(ctx, *created)
	require.NoError(t, err)
	require.Equal(t, 1, saved.Version)

	_, err = repo.Save(ctx, *created)
	require.ErrorIs(t, err, domain.ErrConcurrentModification)

	got, err := repo.GetByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Schumann", got.LastName)
}

func TestDocRepo_MalformedID(t *testing.T) {
	repo := NewDocStore(docstore.NewMemory())
	_, err := repo.GetByID(context.Background(), "123")
	require.ErrorIs(t, err, domain.ErrInvalidID)
	require.ErrorIs(t, repo.Delete(context.Background(), "123"), domain.ErrInvalidID)
}
