package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowmaxapp/lowmax/internal/config"
	"github.com/lowmaxapp/lowmax/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := models.AnalysisResult{
		Overall:    82,
		Potential:  94,
		Strengths:  []string{"a", "b", "c"},
		Weaknesses: []string{"x", "y", "z"},
	}
	err := cache.Set(AnalysisKey("0011"), expected, time.Minute)
	require.NoError(t, err)

	var actual models.AnalysisResult
	found, err := cache.Get(AnalysisKey("0011"), &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out models.AnalysisResult
	found, err := cache.Get(AnalysisKey("no_such_hash"), &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	err := cache.Set("key", "value", time.Minute)
	require.NoError(t, err)

	err = cache.Invalidate("key")
	require.NoError(t, err)

	var out string
	found, err := cache.Get("key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetInvalidJSON(t *testing.T) {
	cache := setupTestCache(t)

	err := cache.Db.Set(context.Background(), "bad", []byte("not-json"), time.Minute).Err()
	require.NoError(t, err)

	var out models.AnalysisResult
	found, err := cache.Get("bad", &out)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestAnalysisKey(t *testing.T) {
	assert.Equal(t, "analysis:0011", AnalysisKey("0011"))
}
