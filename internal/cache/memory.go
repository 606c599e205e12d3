package cache

import (
	"context"
	"time"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps the flight list in process. It is used when no Redis
// address is configured.
type MemoryCache struct {
	cache      *gocache.Cache
	flightsTTL time.Duration
}

func NewMemoryCache(flightsTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		cache:      gocache.New(flightsTTL, 2*flightsTTL),
		flightsTTL: flightsTTL,
	}
}

func (c *MemoryCache) GetFlights(_ context.Context) ([]domain.Flight, error) {
	v, found := c.cache.Get(flightsKey)
	if !found {
		return nil, nil
	}
	flights, ok := v.([]domain.Flight)
	if !ok {
		return nil, nil
	}
	return cloneFlights(flights), nil
}

// SetFlights stores a copy. An empty list is cached as a non-nil slice so it
// is served as a hit.
func (c *MemoryCache) SetFlights(_ context.Context, flights []domain.Flight) error {
	c.cache.Set(flightsKey, cloneFlights(flights), c.flightsTTL)
	return nil
}

func cloneFlights(flights []domain.Flight) []domain.Flight {
	out := make([]domain.Flight, len(flights))
	copy(out, flights)
	return out
}

func (c *MemoryCache) InvalidateFlights(_ context.Context) error {
	c.cache.Delete(flightsKey)
	return nil
}

func (c *MemoryCache) Ping(_ context.Context) error {
	return nil
}

func (c *MemoryCache) Close() error {
	c.cache.Flush()
	return nil
}
