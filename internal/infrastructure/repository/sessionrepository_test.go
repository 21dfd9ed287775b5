package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/persistence/models"
)

func TestSessionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		session, err := user.NewSession(42, "replit")
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, session))

		found, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint(42), found.UserID)
		assert.Equal(t, "replit", found.Provider)
	})

	t.Run("get miss returns nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("legacy payload rows still decode", func(t *testing.T) {
		legacy := models.SessionModel{
			ID:        "legacy-session-id",
			UserID:    7,
			Payload:   datatypes.JSON(`{"claims": {"sub": "7", "email": "old@uh.edu"}}`),
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}
		require.NoError(t, db.Create(&legacy).Error)

		found, err := repo.GetByID(ctx, "legacy-session-id")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint(7), found.UserID)
		assert.Equal(t, "replit", found.Provider)
	})

	t.Run("delete", func(t *testing.T) {
		session, err := user.NewSession(1, "facebook")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, session))

		require.NoError(t, repo.Delete(ctx, session.ID))

		found, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete by user removes all their sessions", func(t *testing.T) {
		s1, err := user.NewSession(9, "replit")
		require.NoError(t, err)
		s2, err := user.NewSession(9, "linkedin")
		require.NoError(t, err)
		other, err := user.NewSession(10, "replit")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s1))
		require.NoError(t, repo.Create(ctx, s2))
		require.NoError(t, repo.Create(ctx, other))

		require.NoError(t, repo.DeleteByUserID(ctx, 9))

		found, err := repo.GetByID(ctx, s1.ID)
		require.NoError(t, err)
		assert.Nil(t, found)

		kept, err := repo.GetByID(ctx, other.ID)
		require.NoError(t, err)
		assert.NotNil(t, kept)
	})

	t.Run("delete expired", func(t *testing.T) {
		expired := models.SessionModel{
			ID:        "expired-session-id",
			UserID:    5,
			Payload:   datatypes.JSON(`{"id": 5, "provider": "replit"}`),
			ExpiresAt: time.Now().UTC().Add(-time.Hour),
		}
		require.NoError(t, db.Create(&expired).Error)

		live, err := user.NewSession(5, "replit")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, live))

		require.NoError(t, repo.DeleteExpired(ctx))

		found, err := repo.GetByID(ctx, "expired-session-id")
		require.NoError(t, err)
		assert.Nil(t, found)

		kept, err := repo.GetByID(ctx, live.ID)
		require.NoError(t, err)
		assert.NotNil(t, kept)
	})
}
