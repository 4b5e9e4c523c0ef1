package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, Verify(hash, "correct horse battery staple"))
	assert.False(t, Verify(hash, "wrong password"))
	assert.False(t, Verify(hash, ""))
}

func TestHashEncodesCostParameters(t *testing.T) {
	hash, err := Hash("secret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"), hash)
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("secret")
	require.NoError(t, err)
	second, err := Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify(first, "secret"))
	assert.True(t, Verify(second, "secret"))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	assert.False(t, Verify("", "secret"))
	assert.False(t, Verify("not-a-hash", "secret"))
	assert.False(t, Verify("$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA", "secret"))
	assert.False(t, Verify("$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA", "secret"))
}
