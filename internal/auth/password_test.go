package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("ChangeMe@123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "ChangeMe@123", hash)

	assert.NoError(t, ComparePassword(hash, "ChangeMe@123"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}
