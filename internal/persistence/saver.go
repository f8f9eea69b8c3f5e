// Package persistence coalesces player snapshot writes.
//
// Each mutation hands the Saver a fresh snapshot. Writes happen once the
// player has been quiet for the debounce period, on the worker pool. A failed
// write is never surfaced to the game action that caused it: the snapshot
// stays dirty and is written again on the next debounce cycle or on Flush.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/metrics"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/worker"
)

type pendingSave struct {
	player  *domain.Player
	version uint64
	timer   *time.Timer
}

// Saver debounces player writes
type Saver struct {
	repo  repository.Player
	pool  *worker.Pool
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
	version uint64
	writeMu sync.Mutex
}

// NewSaver creates a Saver writing through repo on pool
func NewSaver(repo repository.Player, pool *worker.Pool, delay time.Duration) *Saver {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Saver{
		repo:    repo,
		pool:    pool,
		delay:   delay,
		pending: make(map[string]*pendingSave),
	}
}

// Schedule records p as the latest snapshot and restarts the quiet period
func (s *Saver) Schedule(p *domain.Player) {
	snap := p.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	ps, ok := s.pending[snap.ID]
	if !ok {
		ps = &pendingSave{}
		s.pending[snap.ID] = ps
	}
	ps.player = snap
	ps.version = s.version
	if ps.timer != nil {
		ps.timer.Stop()
	}

	id := snap.ID
	ps.timer = time.AfterFunc(s.delay, func() { s.enqueue(id) })
}

// Pending returns the number of players with unsaved snapshots
func (s *Saver) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Latest returns the unsaved snapshot for playerID, if any
func (s *Saver) Latest(playerID string) (*domain.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.pending[playerID]
	if !ok {
		return nil, false
	}
	return ps.player.Clone(), true
}

func (s *Saver) enqueue(playerID string) {
	job := worker.JobFunc(func(ctx context.Context) error {
		return s.write(ctx, playerID)
	})
	if !s.pool.Enqueue(job) {
		logger.FromContext(context.Background()).Warn(LogMsgSaveNotQueued, "player_id", playerID)
	}
}

// write saves the current snapshot for playerID and clears it unless a newer one arrived meanwhile
func (s *Saver) write(ctx context.Context, playerID string) error {
	s.mu.Lock()
	ps, ok := s.pending[playerID]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	snap, version := ps.player, ps.version
	s.mu.Unlock()

	s.writeMu.Lock()
	err := s.repo.Save(ctx, snap, snap.Wins)
	s.writeMu.Unlock()

	if err != nil {
		metrics.PersistenceWrites.WithLabelValues(metrics.ResultError).Inc()
		logger.FromContext(ctx).Warn(LogMsgSaveFailed, "player_id", playerID, "error", err)
		return nil
	}
	metrics.PersistenceWrites.WithLabelValues(metrics.ResultSuccess).Inc()
	logger.FromContext(ctx).Debug(LogMsgSaved, "player_id", playerID)

	s.mu.Lock()
	if cur, ok := s.pending[playerID]; ok && cur.version == version {
		delete(s.pending, playerID)
	}
	s.mu.Unlock()
	return nil
}

// Flush writes every pending snapshot synchronously. Used on shutdown and
// as the periodic checkpoint.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	ids := make([]string, 0, len(s.pending))
	for id, ps := range s.pending {
		if ps.timer != nil {
			ps.timer.Stop()
		}
		ids = append(ids, id)
	}
	s.mu.Unlock()
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgFlushStarted, "count", len(ids))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = s.write(ctx, id)
	}

	if left := s.Pending(); left > 0 {
		log.Error(LogMsgFlushFailed, "count", left)
		return fmt.Errorf("%d players unsaved: %w", left, errUnsaved)
	}
	return nil
}

var errUnsaved = errors.New("snapshots left unsaved")
