package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, h.Verify("secret-password", hash))
	assert.False(t, h.Verify("wrong-password", hash))
}

func TestHasher_RejectsEmptyPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	assert.Error(t, err)
}

func TestGenerateTempPassword(t *testing.T) {
	pw, err := GenerateTempPassword(16)
	assert.NoError(t, err)
	assert.Len(t, pw, 16)
	for _, c := range pw {
		assert.Contains(t, tempPasswordAlphabet, string(c))
	}

	other, err := GenerateTempPassword(16)
	assert.NoError(t, err)
	assert.NotEqual(t, pw, other)
}

func TestGenerateTempPassword_DefaultLength(t *testing.T) {
	pw, err := GenerateTempPassword(0)
	assert.NoError(t, err)
	assert.Len(t, pw, 12)
}
