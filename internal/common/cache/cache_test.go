package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundtrip(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []string{"a", "b"}))

	var got []string
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemory(time.Minute)

	var got []string
	assert.Error(t, c.Get(context.Background(), "missing", &got))
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemory(time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []string{"a"}))
	time.Sleep(5 * time.Millisecond)

	var got []string
	assert.Error(t, c.Get(ctx, "k", &got))
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []string{"a"}))
	require.NoError(t, c.Set(ctx, "k2", []string{"b"}))
	require.NoError(t, c.Delete(ctx, "k1", "k2"))

	var got []string
	assert.Error(t, c.Get(ctx, "k1", &got))
	assert.Error(t, c.Get(ctx, "k2", &got))
}

func TestGetOrSetPopulatesOnMiss(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	calls := 0
	setter := func() ([]string, error) {
		calls++
		return []string{"Cajero", "Gerente"}, nil
	}

	var got []string
	require.NoError(t, GetOrSet(ctx, c, "cargos", &got, setter))
	assert.Equal(t, []string{"Cajero", "Gerente"}, got)
	assert.Equal(t, 1, calls)

	// Second read is served from the cache.
	got = nil
	require.NoError(t, GetOrSet(ctx, c, "cargos", &got, setter))
	assert.Equal(t, []string{"Cajero", "Gerente"}, got)
	assert.Equal(t, 1, calls)
}

func TestGetOrSetPropagatesSetterError(t *testing.T) {
	c := NewMemory(time.Minute)

	var got []string
	err := GetOrSet(context.Background(), c, "k", &got, func() ([]string, error) {
		return nil, errors.New("boom")
	})
	assert.Error(t, err)
}
