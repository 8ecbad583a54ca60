package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wehouse/infras/otel/mocks"
	"wehouse/internal/handlers/health"
	cacheMocks "wehouse/shared/cache/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func serve(t *testing.T, handler health.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	router := chi.NewRouter()
	handler.Router(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return recorder, body
}

func TestWelcome(t *testing.T) {
	recorder, body := serve(t, health.New(nil, nil, mocks.NewOtel()), "/")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Welcome to WeHouse API", body["message"])
}

func TestHealth(t *testing.T) {
	up := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := cacheMocks.NewMockRedisCache(ctrl)
		cache.EXPECT().Ping(gomock.Any()).Return(nil)

		recorder, body := serve(t, health.New(up, cache, mocks.NewOtel()), "/health")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, map[string]any{"database": "up", "cache": "up"}, body["data"])
	})

	t.Run("database down", func(t *testing.T) {
		recorder, body := serve(t, health.New(down, up, mocks.NewOtel()), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Equal(t, "SERVER UNHEALTHY", body["message"])
	})

	t.Run("cache down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := cacheMocks.NewMockRedisCache(ctrl)
		cache.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp: refused"))

		recorder, _ := serve(t, health.New(up, cache, mocks.NewOtel()), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}
