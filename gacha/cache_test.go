package gacha_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gacha-backend/gacha"
	gachamock "gacha-backend/gacha/mock"
	"gacha-backend/models"
)

const testCatalogKey = "gacha:catalog:pool:0"

var testCatalog = []models.Character{
	{MasterNumber: 101, Rarity: 1, Name: "Slime"},
	{MasterNumber: 601, Rarity: 6, Name: "Phoenix"},
}

func newTestCache(t *testing.T) (*gacha.CachedCatalog, *gachamock.MockCatalogProvider, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	ctrl := gomock.NewController(t)
	next := gachamock.NewMockCatalogProvider(ctrl)

	return gacha.NewCachedCatalog(client, next, models.StandardPoolType, 30*time.Second), next, mr
}

func TestCachedCatalogReadsThrough(t *testing.T) {
	cache, next, mr := newTestCache(t)
	ctx := context.Background()

	next.EXPECT().FetchDraftablePool(gomock.Any()).Return(testCatalog, nil).Times(1)

	first, err := cache.FetchDraftablePool(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCatalog, first)
	assert.True(t, mr.Exists(testCatalogKey))
	assert.Equal(t, 30*time.Second, mr.TTL(testCatalogKey))

	second, err := cache.FetchDraftablePool(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCatalog, second)
}

func TestCachedCatalogServesExistingEntry(t *testing.T) {
	cache, _, mr := newTestCache(t)

	payload, err := json.Marshal(testCatalog)
	require.NoError(t, err)
	require.NoError(t, mr.Set(testCatalogKey, string(payload)))

	characters, err := cache.FetchDraftablePool(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCatalog, characters)
}

func TestCachedCatalogDoesNotCacheEmptyCatalog(t *testing.T) {
	cache, next, mr := newTestCache(t)

	next.EXPECT().FetchDraftablePool(gomock.Any()).Return([]models.Character{}, nil).Times(2)

	for i := 0; i < 2; i++ {
		characters, err := cache.FetchDraftablePool(context.Background())
		require.NoError(t, err)
		assert.Empty(t, characters)
	}
	assert.False(t, mr.Exists(testCatalogKey))
}

func TestCachedCatalogPropagatesProviderError(t *testing.T) {
	cache, next, mr := newTestCache(t)

	next.EXPECT().FetchDraftablePool(gomock.Any()).Return(nil, gacha.ErrDataUnavailable)

	_, err := cache.FetchDraftablePool(context.Background())
	require.ErrorIs(t, err, gacha.ErrDataUnavailable)
	assert.False(t, mr.Exists(testCatalogKey))
}

func TestCachedCatalogReplacesCorruptEntry(t *testing.T) {
	cache, next, mr := newTestCache(t)
	require.NoError(t, mr.Set(testCatalogKey, "{not json"))

	next.EXPECT().FetchDraftablePool(gomock.Any()).Return(testCatalog, nil)

	characters, err := cache.FetchDraftablePool(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCatalog, characters)

	stored, err := mr.Get(testCatalogKey)
	require.NoError(t, err)
	assert.JSONEq(t, mustJSON(t, testCatalog), stored)
}

func TestCachedCatalogFallsBackWhenRedisIsDown(t *testing.T) {
	cache, next, mr := newTestCache(t)
	mr.Close()

	next.EXPECT().FetchDraftablePool(gomock.Any()).Return(testCatalog, nil)

	characters, err := cache.FetchDraftablePool(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCatalog, characters)
}

func TestCachedCatalogInvalidate(t *testing.T) {
	cache, next, mr := newTestCache(t)
	ctx := context.Background()

	next.EXPECT().FetchDraftablePool(gomock.Any()).Return(testCatalog, nil).Times(2)

	_, err := cache.FetchDraftablePool(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx))
	assert.False(t, mr.Exists(testCatalogKey))

	_, err = cache.FetchDraftablePool(ctx)
	require.NoError(t, err)
}

func TestCachedCatalogInvalidateError(t *testing.T) {
	cache, _, mr := newTestCache(t)
	mr.Close()

	err := cache.Invalidate(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, gacha.ErrDataUnavailable))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
