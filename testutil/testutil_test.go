package testutil

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	rng := NewRNG(4711)

	for v := uint8(0); v < 16; v++ {
		u := rng.UUID(v)
		assert.Equal(t, uuid.Version(v), u.Version())
		assert.Equal(t, uuid.RFC4122, u.Variant())
	}
}

func TestUUIDStrings(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.UUIDStrings(8, 4)
	require.Len(t, s, 8)
	for _, v := range s {
		u, err := uuid.Parse(v)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), u.Version())
		assert.Equal(t, strings.ToLower(v), v)
	}
	assert.NotEqual(t, s[0], s[1])
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	a := rng.UUIDStrings(4, 7)
	rng.Reset()
	b := rng.UUIDStrings(4, 7)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestMixedCase(t *testing.T) {
	rng := NewRNG(1)
	s := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	m := rng.MixedCase(s)
	assert.Len(t, m, len(s))
	assert.True(t, strings.EqualFold(s, m))
}
