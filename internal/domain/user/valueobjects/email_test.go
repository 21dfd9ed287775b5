package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := NewEmail("  Shasta@CougarNet.UH.edu ")
		require.NoError(t, err)
		assert.Equal(t, "shasta@cougarnet.uh.edu", email.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewEmail("")
		assert.Error(t, err)
	})

	t.Run("rejects missing at sign", func(t *testing.T) {
		_, err := NewEmail("not-an-email")
		assert.Error(t, err)
	})

	t.Run("domain and local part", func(t *testing.T) {
		email, err := NewEmail("shasta@uh.edu")
		require.NoError(t, err)
		assert.Equal(t, "uh.edu", email.Domain())
		assert.Equal(t, "shasta", email.LocalPart())
	})

	t.Run("suffix check is case insensitive", func(t *testing.T) {
		email, err := NewEmail("Shasta@Alumni.UH.EDU")
		require.NoError(t, err)
		assert.True(t, email.HasSuffix("@alumni.uh.edu"))
		assert.False(t, email.HasSuffix("@uh.edu.evil.com"))
	})
}
