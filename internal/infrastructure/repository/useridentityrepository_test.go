package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
)

func TestUserIdentityRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserIdentityRepository(db)
	ctx := context.Background()

	snapshot := []byte(`{"sub": "replit-123", "email": "shasta@uh.edu"}`)

	t.Run("create and lookup by provider subject", func(t *testing.T) {
		identity, err := user.NewUserIdentity(1, "replit", "replit-123", snapshot)
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, identity))
		assert.NotZero(t, identity.ID)

		found, err := repo.GetByProviderAndUserID(ctx, "replit", "replit-123")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint(1), found.UserID)
		assert.JSONEq(t, string(snapshot), string(found.ProfileSnapshot))
	})

	t.Run("lookup miss returns nil without error", func(t *testing.T) {
		found, err := repo.GetByProviderAndUserID(ctx, "facebook", "fb-999")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("same subject under another provider is distinct", func(t *testing.T) {
		identity, err := user.NewUserIdentity(2, "facebook", "replit-123", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, identity))

		found, err := repo.GetByProviderAndUserID(ctx, "facebook", "replit-123")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint(2), found.UserID)
	})

	t.Run("duplicate provider subject conflicts", func(t *testing.T) {
		identity, err := user.NewUserIdentity(3, "replit", "replit-123", nil)
		require.NoError(t, err)

		err = repo.Create(ctx, identity)
		assert.Error(t, err)
	})

	t.Run("record login updates counters", func(t *testing.T) {
		found, err := repo.GetByProviderAndUserID(ctx, "replit", "replit-123")
		require.NoError(t, err)
		require.NotNil(t, found)

		found.RecordLogin()
		require.NoError(t, repo.Update(ctx, found))

		reloaded, err := repo.GetByProviderAndUserID(ctx, "replit", "replit-123")
		require.NoError(t, err)
		assert.Equal(t, uint(2), reloaded.LoginCount)
	})

	t.Run("list by user", func(t *testing.T) {
		identities, err := repo.GetByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, identities, 1)
	})
}
