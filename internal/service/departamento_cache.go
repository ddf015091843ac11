package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/orgdesk/org-service/internal/domain"
)

const (
	cacheKeyGeneration = "departamentos:gen"
	cacheKeyPrefix     = "departamentos:g"
)

// listScope names one cached listing inside a generation.
type listScope string

const scopeAllDepartamentos listScope = "all"

func empresaScope(empresaID int64) listScope {
	return listScope("empresa:" + strconv.FormatInt(empresaID, 10))
}

func generationKey(gen int64, scope listScope) string {
	return cacheKeyPrefix + strconv.FormatInt(gen, 10) + ":" + string(scope)
}

// departamentoCache is a read-through cache for department listings.
// Entries live under a generation counter; every committed write bumps the
// counter so lists read before the write are stored under a key nobody reads.
// Redis failures are logged and treated as misses.
type departamentoCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// newDepartamentoCache returns nil, meaning no caching, without a client or
// without a positive ttl.
func newDepartamentoCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *departamentoCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		logger.Info("departamento cache disabled: non-positive ttl")
		return nil
	}
	return &departamentoCache{client: client, ttl: ttl, logger: logger}
}

// generation returns the current generation. ok is false when Redis cannot
// be read, in which case the caller must neither read nor fill the cache.
func (c *departamentoCache) generation(ctx context.Context) (gen int64, ok bool) {
	if c == nil {
		return 0, false
	}
	gen, err := c.client.Get(ctx, cacheKeyGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		c.logger.Warn("departamento cache generation read failed", zap.Error(err))
		return 0, false
	}
	return gen, true
}

func (c *departamentoCache) get(ctx context.Context, gen int64, scope listScope) ([]domain.Departamento, bool) {
	if c == nil {
		return nil, false
	}
	key := generationKey(gen, scope)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("departamento cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var list []domain.Departamento
	if err := json.Unmarshal(raw, &list); err != nil {
		c.logger.Warn("departamento cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if list == nil {
		list = []domain.Departamento{}
	}
	return list, true
}

func (c *departamentoCache) set(ctx context.Context, gen int64, scope listScope, list []domain.Departamento) {
	if c == nil {
		return
	}
	key := generationKey(gen, scope)
	raw, err := json.Marshal(list)
	if err != nil {
		c.logger.Warn("departamento cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("departamento cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate retires every cached listing by moving to a new generation.
// Old entries expire with their ttl.
func (c *departamentoCache) invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, cacheKeyGeneration).Err(); err != nil {
		c.logger.Warn("departamento cache invalidation failed", zap.Error(err))
	}
}
