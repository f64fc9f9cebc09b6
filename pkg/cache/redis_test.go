package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis(t *testing.T) {
	_, err := NewRedis("", "")
	assert.Error(t, err)

	r, err := NewRedis("127.0.0.1:6379", "")
	require.NoError(t, err)
	assert.Equal(t, defaultRedisPrefix, r.prefix)
	assert.NoError(t, r.Close())
}

func TestRedis_Unreachable(t *testing.T) {
	// ポート 1 には Redis がいないため、すべてキャッシュミスになるのだ
	r, err := NewRedis("127.0.0.1:1", "test:")
	require.NoError(t, err)
	defer r.Close()

	assert.NotPanics(t, func() { r.Set("key", []byte("value"), time.Minute) })
	_, ok := r.Get("key")
	assert.False(t, ok)
}

func TestRedis_SetUnsupportedType(t *testing.T) {
	r, err := NewRedis("127.0.0.1:1", "test:")
	require.NoError(t, err)
	defer r.Close()

	assert.NotPanics(t, func() { r.Set("key", 42, time.Minute) })
}
