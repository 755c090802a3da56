package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	const pepper = "test-pepper"

	hashed, err := hashPassword("mysecretpassword", pepper)
	require.NoError(t, err)
	assert.NotEqual(t, "mysecretpassword", hashed)

	assert.True(t, checkPasswordHash("mysecretpassword", hashed, pepper))
	assert.False(t, checkPasswordHash("wrongpassword", hashed, pepper))
	assert.False(t, checkPasswordHash("mysecretpassword", hashed, "another-pepper"))
	assert.False(t, checkPasswordHash("mysecretpassword", "not-a-bcrypt-hash", pepper))
}

func TestApplyPepper_FixedLength(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, applyPepper(string(long), "p"), 32)
	assert.NotEqual(t, applyPepper("same", "p1"), applyPepper("same", "p2"))
}
