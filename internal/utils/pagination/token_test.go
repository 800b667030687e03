package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(createdAt, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedSeq, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedCreatedAt), "Created at time should match after decode")
	assert.Equal(t, int64(42), decodedSeq)

	// Non-UTC times are normalized.
	local := createdAt.In(time.FixedZone("CST", -6*3600))
	decodedCreatedAt, _, err = DecodeToken(EncodeToken(local, 1))
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedCreatedAt))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("notadate|1")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")

	_, _, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z|x")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence parse")
}

func TestIsAfter(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Second)

	assert.True(t, IsAfter(t1, 5, t2, 1), "older rows come after")
	assert.False(t, IsAfter(t2, 1, t1, 5), "newer rows come before")
	assert.True(t, IsAfter(t1, 3, t1, 4), "same time, lower sequence comes after")
	assert.False(t, IsAfter(t1, 4, t1, 4), "the token row itself is excluded")
}
