// Package geocode resolves place-name strings to map coordinates through a
// Nominatim-compatible provider, with an optional Redis cache in front.
// One request per place name; the provider has no batching contract.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound means the provider returned no result for the place string.
// Callers treat this as non-fatal: an unresolvable venue is simply not
// plotted.
var ErrNotFound = errors.New("geocode: no location found")

// Resolver resolves one place string to a coordinate.
type Resolver interface {
	Resolve(ctx context.Context, place string) (types.Coordinate, error)
}

// Config holds the provider settings.
type Config struct {
	BaseURL   string
	UserAgent string
	CacheTTL  time.Duration
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      *redis.Client
	cacheTTL   time.Duration
}

var _ Resolver = (*Client)(nil)

// NewClient creates a geocoding client. cache may be nil to disable caching.
func NewClient(cfg Config, cache *redis.Client) *Client {
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:    cache,
		cacheTTL: ttl,
	}
}

func cacheKey(place string) string {
	return "geocode:" + place
}

// Resolve maps a place string to a coordinate, consulting the cache first.
// Cache failures fall through to the provider; they never fail the lookup.
func (c *Client) Resolve(ctx context.Context, place string) (types.Coordinate, error) {
	log := logger.GetLogger()

	if place == "" {
		return types.Coordinate{}, ErrNotFound
	}

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, cacheKey(place)).Result()
		if err == nil {
			var coord types.Coordinate
			if err := json.Unmarshal([]byte(cached), &coord); err == nil {
				log.Debugw("Geocode cache hit", "place", place)
				return coord, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warnw("Geocode cache read failed", "place", place, "error", err)
		}
	}

	coord, err := c.query(ctx, place)
	if err != nil {
		return types.Coordinate{}, err
	}

	if c.cache != nil {
		payload, err := json.Marshal(coord)
		if err == nil {
			if err := c.cache.Set(ctx, cacheKey(place), payload, c.cacheTTL).Err(); err != nil {
				log.Warnw("Geocode cache write failed", "place", place, "error", err)
			}
		}
	}

	return coord, nil
}

func (c *Client) query(ctx context.Context, place string) (types.Coordinate, error) {
	params := url.Values{}
	params.Add("q", place)
	params.Add("format", "json")
	params.Add("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return types.Coordinate{}, err
	}

	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Coordinate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Coordinate{}, fmt.Errorf("geocoding API error: %s", resp.Status)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return types.Coordinate{}, err
	}

	if len(results) == 0 {
		return types.Coordinate{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("invalid latitude: %s", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("invalid longitude: %s", results[0].Lon)
	}

	return types.Coordinate{Lat: lat, Lng: lng}, nil
}
