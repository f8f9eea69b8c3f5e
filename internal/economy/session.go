package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/concurrency"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/metrics"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// Saver persists committed snapshots in the background
type Saver interface {
	Schedule(p *domain.Player)
	Latest(playerID string) (*domain.Player, bool)
	Flush(ctx context.Context) error
}

// sessions holds the live snapshot of recently used players. Every access to
// a player happens under that player's lock, which makes the lock holder the
// single owner of the session for the duration of one operation.
type sessions struct {
	repo  repository.Player
	saver Saver
	cache *expirable.LRU[string, *domain.Player]
	locks *concurrency.LockManager
}

func newSessions(repo repository.Player, saver Saver, size int, ttl time.Duration) *sessions {
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	onEvict := func(string, *domain.Player) { metrics.ActiveSessions.Dec() }
	return &sessions{
		repo:  repo,
		saver: saver,
		cache: expirable.NewLRU[string, *domain.Player](size, onEvict, ttl),
		locks: concurrency.NewLockManager(),
	}
}

func (s *sessions) lock(playerID string) func() {
	return s.locks.Lock(playerID)
}

// lockPair holds both players' locks for an operation that changes both
func (s *sessions) lockPair(a, b string) func() {
	return s.locks.LockAll(a, b)
}

// load returns the live snapshot for playerID. The caller must hold its lock
// and must not mutate the result. A snapshot still waiting to be written wins
// over the stored one.
func (s *sessions) load(ctx context.Context, playerID string) (*domain.Player, error) {
	if p, ok := s.cache.Get(playerID); ok {
		return p, nil
	}

	p, ok := s.saver.Latest(playerID)
	if !ok {
		var err error
		p, err = s.repo.Load(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgLoadPlayerFmt, playerID, err)
		}
	}

	s.put(p)
	logger.FromContext(ctx).Debug(LogMsgPlayerLoaded, "player_id", playerID)
	return p, nil
}

// put installs p as the live snapshot. The caller must hold its lock.
func (s *sessions) put(p *domain.Player) {
	if !s.cache.Contains(p.ID) {
		metrics.ActiveSessions.Inc()
	}
	s.cache.Add(p.ID, p)
}

func (s *sessions) len() int {
	return s.cache.Len()
}
