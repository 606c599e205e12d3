package cache

import (
	"context"
	"time"

	"github.com/Domenick1991/airline-tracking/config"
	"github.com/Domenick1991/airline-tracking/internal/domain"
)

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// New picks Redis when an address is configured and the in-process cache
// otherwise.
func New(cfg config.RedisConfig, flightsTTL time.Duration) FlightCache {
	if cfg.Addr == "" {
		return NewMemoryCache(flightsTTL)
	}
	return NewRedisCache(cfg, flightsTTL)
}

var (
	_ FlightCache = (*RedisCache)(nil)
	_ FlightCache = (*MemoryCache)(nil)
)
