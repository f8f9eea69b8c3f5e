// Package leaderboard provides ladder read models on top of the primary
// store: a short-lived cache and a Redis sorted-set projection.
package leaderboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// CachedBoard memoizes ladder reads for a short TTL. Results may lag the
// primary store by up to the TTL unless writes go through UpsertEntry.
type CachedBoard struct {
	inner repository.Leaderboard
	lru   *expirable.LRU[string, []domain.RankEntry]

	mu   sync.Mutex
	seen map[string]domain.RankEntry
}

// NewCachedBoard wraps inner with a cache of size entries living ttl
func NewCachedBoard(inner repository.Leaderboard, size int, ttl time.Duration) *CachedBoard {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedBoard{
		inner: inner,
		lru:   expirable.NewLRU[string, []domain.RankEntry](size, nil, ttl),
		seen:  make(map[string]domain.RankEntry),
	}
}

func (c *CachedBoard) TopN(ctx context.Context, n int) ([]domain.RankEntry, error) {
	return c.cached(ctx, fmt.Sprintf("top:%d", n), func() ([]domain.RankEntry, error) {
		return c.inner.TopN(ctx, n)
	})
}

func (c *CachedBoard) FindOpponents(ctx context.Context, q domain.OpponentQuery) ([]domain.RankEntry, error) {
	key := fmt.Sprintf("opp:%s:%d:%d:%d:%d", q.ExcludeID, q.MinLevel, q.MaxLevel, q.BelowRank, q.Limit)
	return c.cached(ctx, key, func() ([]domain.RankEntry, error) {
		return c.inner.FindOpponents(ctx, q)
	})
}

// UpsertEntry forwards to the wrapped board when it keeps its own projection.
// Cached reads are dropped only when the visible entry actually changed.
func (c *CachedBoard) UpsertEntry(ctx context.Context, entry domain.RankEntry) error {
	if w, ok := c.inner.(repository.RankWriter); ok {
		if err := w.UpsertEntry(ctx, entry); err != nil {
			return err
		}
	}

	c.mu.Lock()
	prev, known := c.seen[entry.PlayerID]
	c.seen[entry.PlayerID] = entry
	c.mu.Unlock()

	if !known || prev != entry {
		c.Invalidate(ctx)
	}
	return nil
}

// Invalidate empties the cache
func (c *CachedBoard) Invalidate(ctx context.Context) {
	c.lru.Purge()
	logger.FromContext(ctx).Debug(LogMsgCacheInvalidate)
}

func (c *CachedBoard) cached(ctx context.Context, key string, load func() ([]domain.RankEntry, error)) ([]domain.RankEntry, error) {
	if v, ok := c.lru.Get(key); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "key", key)
		return append([]domain.RankEntry(nil), v...), nil
	}
	v, err := load()
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, v)
	return append([]domain.RankEntry(nil), v...), nil
}
