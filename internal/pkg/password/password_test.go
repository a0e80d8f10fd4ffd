//go:build unit

package password_test

import (
	"strings"
	"testing"

	"badminton-club/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("smash-123")
	require.NoError(t, err)
	assert.NotEqual(t, "smash-123", hash)

	assert.NoError(t, password.ComparePassword(hash, "smash-123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "drop-shot"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "smash-123"), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashPassword_RejectsInputBcryptWouldTruncate(t *testing.T) {
	_, err := password.HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)

	hash, err := password.HashPassword(strings.Repeat("x", 72))
	require.NoError(t, err)
	assert.NoError(t, password.ComparePassword(hash, strings.Repeat("x", 72)))
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := password.ComparePassword("not-a-bcrypt-hash", "smash-123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrComparisonFailed)
}
