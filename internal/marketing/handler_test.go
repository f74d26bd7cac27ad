package marketing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"agency-backend/internal/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	c.sets++
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListUsesCache(t *testing.T) {
	c := newMemoryCache()
	h := NewHandler(NewService(catalog.Static()), c, time.Minute, discardLogger())
	list := h.List(KindService)

	first := httptest.NewRecorder()
	list(first, httptest.NewRequest(http.MethodGet, "/api/services", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, c.sets)

	second := httptest.NewRecorder()
	list(second, httptest.NewRequest(http.MethodGet, "/api/services", nil))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, c.sets, "second request should be served from cache")
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestRandomHandlerReadsPathParam(t *testing.T) {
	h := NewHandler(NewService(catalog.Static()), nil, time.Minute, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/marketing/specialized/random", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("type", "specialized")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.Random(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"specialized-service"`)
}

func TestErrorMessageFallback(t *testing.T) {
	assert.Equal(t, fallbackErrorMessage, errorMessage(nil))
	assert.Equal(t, fallbackErrorMessage, errorMessage(errors.New("")))
	assert.Equal(t, fallbackErrorMessage, errorMessage(errors.New("   ")))
	assert.Equal(t, "boom", errorMessage(errors.New("boom")))
	assert.Equal(t, assert.AnError.Error(), errorMessage(assert.AnError))
}

func TestInvalidateListsDropsCachedListings(t *testing.T) {
	c := newMemoryCache()
	h := NewHandler(NewService(catalog.Static()), c, time.Minute, discardLogger())
	for _, kind := range []Kind{KindService, KindSpecialized, KindProject} {
		rec := httptest.NewRecorder()
		h.List(kind)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		_, ok, _ := c.Get(context.Background(), ListCacheKey(kind))
		require.True(t, ok, kind)
	}
	c.items["unrelated"] = []byte("keep")

	require.NoError(t, InvalidateLists(context.Background(), c))
	assert.Equal(t, map[string][]byte{"unrelated": []byte("keep")}, c.items)
}

type failingCache struct{ memoryCache }

func (f *failingCache) Delete(ctx context.Context, key string) error {
	return errors.New("redis down")
}

func TestInvalidateListsReportsDeleteErrors(t *testing.T) {
	err := InvalidateLists(context.Background(), &failingCache{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

func TestClientErrorsAreNotLoggedAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := NewHandler(NewService(catalog.New(nil, nil, nil)), nil, time.Minute, log)

	for _, raw := range []string{"unknown", "project"} {
		req := httptest.NewRequest(http.MethodGet, "/api/marketing/"+raw+"/random", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("type", raw)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rec := httptest.NewRecorder()
		h.Random(rec, req)
		assert.Less(t, rec.Code, http.StatusInternalServerError)
	}
	assert.Empty(t, buf.String())
}
