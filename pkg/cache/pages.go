package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/pagination"
)

// PageCache memoizes canonical list payloads for a short TTL. Every failure
// mode degrades to a miss: a broken or absent redis never blocks the fetch
// path, it only removes the shortcut.
type PageCache struct {
	client *Client
	ttl    time.Duration
	logg   *logger.Logger
}

// NewPageCache wraps the redis client; a nil client yields a disabled cache.
func NewPageCache(client *Client, ttl time.Duration, logg *logger.Logger) *PageCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &PageCache{client: client, ttl: ttl, logg: logg}
}

// Enabled reports whether lookups can succeed at all.
func (p *PageCache) Enabled() bool {
	return p != nil && p.client != nil
}

// Key builds the cache key for one entity listing page. The filter component
// keeps differently-filtered listings from sharing entries.
func (p *PageCache) Key(entity, filters string, params pagination.Params) string {
	if filters == "" {
		filters = "-"
	}
	return fmt.Sprintf("%s:page:%s:%s:%d:%d", keyNamespace, entity, filters, params.Page, params.Limit)
}

// Get loads a cached payload into dest, reporting whether it was found.
func (p *PageCache) Get(ctx context.Context, key string, dest any) bool {
	if !p.Enabled() {
		return false
	}
	raw, err := p.client.Get(ctx, key)
	if err != nil {
		if !IsMiss(err) && p.logg != nil {
			p.logg.Warn(p.logg.WithField(ctx, "cache_key", key), "cache.get failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

// Set stores a payload under key for the configured TTL; best effort.
func (p *PageCache) Set(ctx context.Context, key string, value any) {
	if !p.Enabled() {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := p.client.Set(ctx, key, string(encoded), p.ttl); err != nil && p.logg != nil {
		p.logg.Warn(p.logg.WithField(ctx, "cache_key", key), "cache.set failed")
	}
}
