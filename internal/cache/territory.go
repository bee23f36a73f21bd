package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/territoryiq/backend-go/internal/config"
	"github.com/territoryiq/backend-go/internal/domain"
)

const (
	overviewKeyPrefix  = "territory:overview"
	scanBatchSize      = 100
	defaultOverviewTTL = 5 * time.Minute
)

// TerritoryCache stores computed territory overviews per (rep, year). The
// overview is rebuilt from the live dealer set whenever absent, so stale
// entries only cost freshness, never correctness; commits invalidate the rep.
type TerritoryCache interface {
	GetOverview(ctx context.Context, repID string, year int) (*domain.TerritoryOverview, bool, error)
	SetOverview(ctx context.Context, repID string, year int, overview *domain.TerritoryOverview) error
	InvalidateRep(ctx context.Context, repID string) error
}

type redisTerritoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopTerritoryCache struct{}

func NewTerritoryCache(cfg config.CacheConfig) (TerritoryCache, error) {
	if !cfg.Enabled {
		return &noopTerritoryCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.OverviewTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultOverviewTTL
	}

	return &redisTerritoryCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopTerritoryCache() TerritoryCache {
	return &noopTerritoryCache{}
}

func (c *redisTerritoryCache) GetOverview(ctx context.Context, repID string, year int) (*domain.TerritoryOverview, bool, error) {
	payload, err := c.client.Get(ctx, overviewKey(repID, year)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var overview domain.TerritoryOverview
	if err := json.Unmarshal(payload, &overview); err != nil {
		return nil, false, fmt.Errorf("decode territory overview cache: %w", err)
	}

	return &overview, true, nil
}

func (c *redisTerritoryCache) SetOverview(ctx context.Context, repID string, year int, overview *domain.TerritoryOverview) error {
	payload, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("encode territory overview cache: %w", err)
	}

	if err := c.client.Set(ctx, overviewKey(repID, year), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisTerritoryCache) InvalidateRep(ctx context.Context, repID string) error {
	pattern := fmt.Sprintf("%s:%s:*", overviewKeyPrefix, repID)

	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}

func (n *noopTerritoryCache) GetOverview(ctx context.Context, repID string, year int) (*domain.TerritoryOverview, bool, error) {
	return nil, false, nil
}

func (n *noopTerritoryCache) SetOverview(ctx context.Context, repID string, year int, overview *domain.TerritoryOverview) error {
	return nil
}

func (n *noopTerritoryCache) InvalidateRep(ctx context.Context, repID string) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func overviewKey(repID string, year int) string {
	return fmt.Sprintf("%s:%s:%d", overviewKeyPrefix, repID, year)
}
