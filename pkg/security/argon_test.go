package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	a := New()

	hash, err := a.GenerateFromPassword("correct-horse")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := a.VerifyPasswd("correct-horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong-horse!", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	a := New()

	_, err := a.VerifyPasswd("whatever", "not-a-phc-string")
	assert.Error(t, err)
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	a := New()

	h1, err := a.GenerateFromPassword("correct-horse")
	require.NoError(t, err)
	h2, err := a.GenerateFromPassword("correct-horse")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
