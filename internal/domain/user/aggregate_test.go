package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/jerphayes/Coogsnation-sub000/internal/domain/user/valueobjects"
)

func strPtr(s string) *string { return &s }

func TestNewLocalUser(t *testing.T) {
	email, err := vo.NewEmail("shasta@cougarnet.uh.edu")
	require.NoError(t, err)

	u, err := NewLocalUser(email, "Shasta", "Cougar", "hashed-password")
	require.NoError(t, err)

	assert.True(t, u.IsLocalAccount)
	assert.Equal(t, "shasta@cougarnet.uh.edu", *u.Email)
	assert.Equal(t, "hashed-password", *u.PasswordHash)
	assert.True(t, u.EmailNotifications)
	assert.False(t, u.SMSNotifications)
}

func TestNewLocalUser_RequiresPasswordHash(t *testing.T) {
	email, err := vo.NewEmail("shasta@uh.edu")
	require.NoError(t, err)

	_, err = NewLocalUser(email, "Shasta", "Cougar", "")
	assert.Error(t, err)
}

func TestNewFederatedUser(t *testing.T) {
	u := NewFederatedUser(strPtr("shasta@uh.edu"), strPtr("Shasta"), nil, nil)

	assert.False(t, u.IsLocalAccount)
	assert.Nil(t, u.PasswordHash)
	assert.Equal(t, "shasta@uh.edu", *u.Email)
	assert.Nil(t, u.LastName)
}

func TestDisplayName(t *testing.T) {
	t.Run("full name", func(t *testing.T) {
		u := NewFederatedUser(strPtr("s@uh.edu"), strPtr("Shasta"), strPtr("Cougar"), nil)
		assert.Equal(t, "Shasta Cougar", u.DisplayName())
	})

	t.Run("first name only", func(t *testing.T) {
		u := NewFederatedUser(strPtr("s@uh.edu"), strPtr("Shasta"), nil, nil)
		assert.Equal(t, "Shasta", u.DisplayName())
	})

	t.Run("falls back to email local part", func(t *testing.T) {
		u := NewFederatedUser(strPtr("shasta@uh.edu"), nil, nil, nil)
		assert.Equal(t, "shasta", u.DisplayName())
	})

	t.Run("nothing known", func(t *testing.T) {
		u := NewFederatedUser(nil, nil, nil, nil)
		assert.Equal(t, "Member", u.DisplayName())
	})
}

func TestIsCommunityMember(t *testing.T) {
	tests := []struct {
		name     string
		email    *string
		first    *string
		last     *string
		expected bool
	}{
		{
			name:     "cougarnet email with full name",
			email:    strPtr("shasta@cougarnet.uh.edu"),
			first:    strPtr("Shasta"),
			last:     strPtr("Cougar"),
			expected: true,
		},
		{
			name:     "alumni email with full name",
			email:    strPtr("grad@alumni.uh.edu"),
			first:    strPtr("Grad"),
			last:     strPtr("Student"),
			expected: true,
		},
		{
			name:     "case insensitive domain",
			email:    strPtr("shasta@UH.EDU"),
			first:    strPtr("Shasta"),
			last:     strPtr("Cougar"),
			expected: true,
		},
		{
			name:     "outside email",
			email:    strPtr("shasta@gmail.com"),
			first:    strPtr("Shasta"),
			last:     strPtr("Cougar"),
			expected: false,
		},
		{
			name:     "lookalike domain rejected",
			email:    strPtr("evil@uh.edu.evil.com"),
			first:    strPtr("Evil"),
			last:     strPtr("Actor"),
			expected: false,
		},
		{
			name:     "missing last name",
			email:    strPtr("shasta@uh.edu"),
			first:    strPtr("Shasta"),
			last:     nil,
			expected: false,
		},
		{
			name:     "no email",
			email:    nil,
			first:    strPtr("Shasta"),
			last:     strPtr("Cougar"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewFederatedUser(tt.email, tt.first, tt.last, nil)
			assert.Equal(t, tt.expected, u.IsCommunityMember())
		})
	}
}

func TestVerificationCodeLifecycle(t *testing.T) {
	now := time.Now().UTC()
	u := NewFederatedUser(strPtr("shasta@uh.edu"), strPtr("Shasta"), strPtr("Cougar"), nil)

	t.Run("issue stores hash and expiry", func(t *testing.T) {
		require.NoError(t, u.IssueVerificationCode("hash-1", now))
		assert.True(t, u.HasActiveVerificationCode(now))
		assert.Equal(t, now.Add(VerificationCodeTTL), *u.MFACodeExpiresAt)
		assert.Zero(t, u.MFAAttempts)
	})

	t.Run("reissue overwrites outstanding code", func(t *testing.T) {
		u.MFAAttempts = 2
		require.NoError(t, u.IssueVerificationCode("hash-2", now))
		assert.Equal(t, "hash-2", *u.MFACodeHash)
		assert.Zero(t, u.MFAAttempts)
	})

	t.Run("expired code is not active", func(t *testing.T) {
		assert.False(t, u.HasActiveVerificationCode(now.Add(VerificationCodeTTL+time.Second)))
	})

	t.Run("failed attempts lock out at the limit", func(t *testing.T) {
		require.NoError(t, u.IssueVerificationCode("hash-3", now))
		assert.False(t, u.RecordFailedVerification(now))
		assert.False(t, u.RecordFailedVerification(now))
		assert.True(t, u.RecordFailedVerification(now))
		assert.Nil(t, u.MFACodeHash)
		assert.False(t, u.HasActiveVerificationCode(now))
	})

	t.Run("clear discards everything", func(t *testing.T) {
		require.NoError(t, u.IssueVerificationCode("hash-4", now))
		u.ClearVerificationCode(now)
		assert.Nil(t, u.MFACodeHash)
		assert.Nil(t, u.MFACodeExpiresAt)
		assert.Zero(t, u.MFAAttempts)
	})
}

func TestSessionGeneration(t *testing.T) {
	s, err := NewSession(42, "replit")
	require.NoError(t, err)

	assert.Len(t, s.ID, 64)
	assert.Equal(t, uint(42), s.UserID)
	assert.Equal(t, "replit", s.Provider)
	assert.False(t, s.IsExpired())
	assert.WithinDuration(t, time.Now().UTC().Add(SessionTTL), s.ExpiresAt, time.Minute)

	s2, err := NewSession(42, "replit")
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, s2.ID)
}

func TestNewSession_Validation(t *testing.T) {
	_, err := NewSession(0, "replit")
	assert.Error(t, err)

	_, err = NewSession(1, "")
	assert.Error(t, err)
}
