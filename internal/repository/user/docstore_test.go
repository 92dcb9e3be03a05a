package user

import (
	"context"
	"testing"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestDocRepo_StoresHashUnderPasswordField(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	repo := NewDocStore(store)

	created, err := repo.Create(ctx, domain.User{
		UserName:       "brock",
		PasswordHash:   "$2a$10$hash",
		EmailAddresses: []string{"b@example.com"},
	})
	require.NoError(t, err)

	raw, err := store.FindByID(ctx, Collection, created.ID)
	require.NoError(t, err)
	require.Equal(t, "$2a$10$hash", raw.Lookup("password").StringValue())
	var emails []string
	require.NoError(t, raw.Lookup("emailAddress").Unmarshal(&emails))
	require.Equal(t, []string{"b@example.com"}, emails)

	got, err := repo.GetByUserName(ctx, "brock")
	require.NoError(t, err)
	require.Equal(t, "$2a$10$hash", got.PasswordHash)
	require.Equal(t, created.ID, got.ID)
}

func TestDocRepo_GetByUserNameMissing(t *testing.T) {
	_, err := NewDocStore(docstore.NewMemory()).GetByUserName(context.Background(), "nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

