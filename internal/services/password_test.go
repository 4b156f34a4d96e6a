package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainScheme(t *testing.T) {
	s := PlainScheme{}

	stored, err := s.Hash("secret1")
	require.NoError(t, err)
	assert.Equal(t, "secret1", stored)

	assert.True(t, s.Match("secret1", "secret1"))
	assert.False(t, s.Match("secret1", "SECRET1"))
	assert.False(t, s.Match("secret1", ""))
}

func TestBcryptScheme(t *testing.T) {
	s := BcryptScheme{Cost: 4} // minimum cost keeps the test fast

	stored, err := s.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored)

	assert.True(t, s.Match(stored, "secret1"))
	assert.False(t, s.Match(stored, "secret2"))
	assert.False(t, s.Match("not-a-hash", "secret1"))
}

func TestSchemeByName(t *testing.T) {
	scheme, err := SchemeByName("")
	require.NoError(t, err)
	assert.IsType(t, PlainScheme{}, scheme)

	scheme, err = SchemeByName("plain")
	require.NoError(t, err)
	assert.IsType(t, PlainScheme{}, scheme)

	scheme, err = SchemeByName("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, BcryptScheme{}, scheme)

	_, err = SchemeByName("md5")
	require.Error(t, err)
}
