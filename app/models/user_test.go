package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserPreConfirmed(t *testing.T) {
	u, err := NewUser("buyer@example.com", "some-long-password", true)
	require.NoError(t, err)

	assert.Equal(t, ROLE_USER, u.Role)
	assert.Equal(t, STATUS_ACTIVE, u.Status)
	require.NotNil(t, u.EmailConfirmedAt)
	assert.True(t, u.IsActive())

	// Stored password is hashed, not the plaintext.
	assert.NotEqual(t, "some-long-password", u.Password)
	assert.True(t, u.CheckPassword("some-long-password"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestNewUserUnconfirmed(t *testing.T) {
	u, err := NewUser("buyer@example.com", "some-long-password", false)
	require.NoError(t, err)
	assert.Nil(t, u.EmailConfirmedAt)
}

func TestNewUserRejectsInvalidEmail(t *testing.T) {
	_, err := NewUser("not-an-email", "some-long-password", true)
	require.Error(t, err)
}

func TestGenerateRandomPassword(t *testing.T) {
	a, err := GenerateRandomPassword()
	require.NoError(t, err)
	b, err := GenerateRandomPassword()
	require.NoError(t, err)

	assert.Len(t, a, 48)
	assert.NotEqual(t, a, b)
}
