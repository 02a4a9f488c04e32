package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func nominatimStub(t *testing.T, results string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(results))
	}))
	return server, &calls
}

func TestClientResolve(t *testing.T) {
	t.Run("resolves coordinates from provider", func(t *testing.T) {
		server, _ := nominatimStub(t, `[{"lat": "34.9671", "lon": "135.7727"}]`)
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, UserAgent: "test/1.0"}, nil)
		coord, err := client.Resolve(context.Background(), "KyotoFushimi Inari")
		require.NoError(t, err)
		assert.InDelta(t, 34.9671, coord.Lat, 0.0001)
		assert.InDelta(t, 135.7727, coord.Lng, 0.0001)
	})

	t.Run("no results maps to ErrNotFound", func(t *testing.T) {
		server, _ := nominatimStub(t, `[]`)
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, UserAgent: "test/1.0"}, nil)
		_, err := client.Resolve(context.Background(), "Nowhere Special")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("empty place maps to ErrNotFound without a request", func(t *testing.T) {
		server, calls := nominatimStub(t, `[]`)
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, UserAgent: "test/1.0"}, nil)
		_, err := client.Resolve(context.Background(), "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, 0, *calls)
	})

	t.Run("provider error status fails the lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, UserAgent: "test/1.0"}, nil)
		_, err := client.Resolve(context.Background(), "Kyoto Station")
		require.Error(t, err)
	})

	t.Run("non-numeric coordinates fail the lookup", func(t *testing.T) {
		server, _ := nominatimStub(t, `[{"lat": "north", "lon": "west"}]`)
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, UserAgent: "test/1.0"}, nil)
		_, err := client.Resolve(context.Background(), "Kyoto Station")
		require.Error(t, err)
	})
}

func TestClientResolveCache(t *testing.T) {
	coord := types.Coordinate{Lat: 34.9671, Lng: 135.7727}
	payload, err := json.Marshal(coord)
	require.NoError(t, err)

	t.Run("cache hit skips the provider", func(t *testing.T) {
		server, calls := nominatimStub(t, `[]`)
		defer server.Close()

		db, cacheMock := redismock.NewClientMock()
		cacheMock.ExpectGet("geocode:KyotoFushimi Inari").SetVal(string(payload))

		client := NewClient(Config{BaseURL: server.URL, UserAgent: "test/1.0"}, db)
		got, err := client.Resolve(context.Background(), "KyotoFushimi Inari")
		require.NoError(t, err)
		assert.Equal(t, coord, got)
		assert.Equal(t, 0, *calls)
		assert.NoError(t, cacheMock.ExpectationsWereMet())
	})

	t.Run("cache miss queries provider and writes back", func(t *testing.T) {
		server, calls := nominatimStub(t, `[{"lat": "34.9671", "lon": "135.7727"}]`)
		defer server.Close()

		db, cacheMock := redismock.NewClientMock()
		cacheMock.ExpectGet("geocode:KyotoFushimi Inari").RedisNil()
		cacheMock.ExpectSet("geocode:KyotoFushimi Inari", payload, 24*time.Hour).SetVal("OK")

		client := NewClient(Config{BaseURL: server.URL, UserAgent: "test/1.0", CacheTTL: 24 * time.Hour}, db)
		got, err := client.Resolve(context.Background(), "KyotoFushimi Inari")
		require.NoError(t, err)
		assert.Equal(t, coord, got)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, cacheMock.ExpectationsWereMet())
	})

	t.Run("cache read error falls through to provider", func(t *testing.T) {
		server, calls := nominatimStub(t, `[{"lat": "34.9671", "lon": "135.7727"}]`)
		defer server.Close()

		db, cacheMock := redismock.NewClientMock()
		cacheMock.ExpectGet("geocode:KyotoFushimi Inari").SetErr(errors.New("connection refused"))
		cacheMock.ExpectSet("geocode:KyotoFushimi Inari", payload, 24*time.Hour).SetVal("OK")

		client := NewClient(Config{BaseURL: server.URL, UserAgent: "test/1.0", CacheTTL: 24 * time.Hour}, db)
		got, err := client.Resolve(context.Background(), "KyotoFushimi Inari")
		require.NoError(t, err)
		assert.Equal(t, coord, got)
		assert.Equal(t, 1, *calls)
	})
}
