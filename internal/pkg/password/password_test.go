package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	ok, err := Compare(hash, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Compare(hash, "wrong password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashFormat(t *testing.T) {
	hash, err := Hash("secret")
	require.NoError(t, err)

	key, salt, found := strings.Cut(hash, ".")
	require.True(t, found)
	assert.Len(t, key, keyLen*2)
	assert.Len(t, salt, saltBytes*2)
}

func TestHashUsesFreshSalt(t *testing.T) {
	a, err := Hash("secret")
	require.NoError(t, err)
	b, err := Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCompareMalformed(t *testing.T) {
	for _, stored := range []string{"", "nodot", "zz.zz", "abcd.zz"} {
		_, err := Compare(stored, "anything")
		assert.ErrorIs(t, err, ErrMalformedHash, "stored=%q", stored)
	}
}
