package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
)

func TestDecodeSessionPayload(t *testing.T) {
	t.Run("canonical shape", func(t *testing.T) {
		id, provider, err := DecodeSessionPayload([]byte(`{"id": 42, "provider": "facebook"}`))
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
		assert.Equal(t, "facebook", provider)
	})

	t.Run("canonical shape without provider defaults to replit", func(t *testing.T) {
		id, provider, err := DecodeSessionPayload([]byte(`{"id": 7}`))
		require.NoError(t, err)
		assert.Equal(t, uint(7), id)
		assert.Equal(t, "replit", provider)
	})

	t.Run("legacy claims shape", func(t *testing.T) {
		id, provider, err := DecodeSessionPayload([]byte(`{"claims": {"sub": "123", "email": "x@uh.edu"}}`))
		require.NoError(t, err)
		assert.Equal(t, uint(123), id)
		assert.Equal(t, "replit", provider)
	})

	t.Run("legacy claims with non-numeric sub", func(t *testing.T) {
		_, _, err := DecodeSessionPayload([]byte(`{"claims": {"sub": "abc"}}`))
		assert.Error(t, err)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, _, err := DecodeSessionPayload(nil)
		assert.Error(t, err)
	})

	t.Run("unrecognized shape", func(t *testing.T) {
		_, _, err := DecodeSessionPayload([]byte(`{"something": "else"}`))
		assert.Error(t, err)
	})
}

func TestSessionMapper_RoundTrip(t *testing.T) {
	mapper := NewSessionMapper()

	session, err := user.NewSession(42, "linkedin")
	require.NoError(t, err)

	model, err := mapper.ToModel(session)
	require.NoError(t, err)
	assert.Equal(t, session.ID, model.ID)
	assert.Equal(t, uint(42), model.UserID)
	assert.JSONEq(t, `{"id": 42, "provider": "linkedin"}`, string(model.Payload))

	restored, err := mapper.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, session.ID, restored.ID)
	assert.Equal(t, session.UserID, restored.UserID)
	assert.Equal(t, session.Provider, restored.Provider)
	assert.WithinDuration(t, session.ExpiresAt, restored.ExpiresAt, time.Second)
}
