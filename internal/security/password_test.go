package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	first, err := HashPassword("pass123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pass123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "pass123", first)
	assert.NotEqual(t, first, second, "хэши одного пароля должны отличаться солью")

	cost, err := bcrypt.Cost([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("pass123", bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("pass123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword("pass123", hash))
	assert.False(t, CheckPassword("pass124", hash))
	assert.False(t, CheckPassword("pass123", "not-a-hash"))
}

func TestHashPassword_LongerThan72Bytes(t *testing.T) {
	long := strings.Repeat("a1", 40)

	hash, err := HashPassword(long, bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(long, hash))
	// значимы только первые 72 байта
	assert.True(t, CheckPassword(long[:MaxPasswordBytes]+"zz99", hash))
	assert.False(t, CheckPassword(long[:MaxPasswordBytes-1], hash))
}
