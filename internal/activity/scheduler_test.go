package activity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/character"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/loot"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// rolls returns the given values in order, repeating the last one when exhausted
func rolls(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[min(i, len(vals)-1)]
		i++
		return v
	}
}

func newScheduler(vals ...float64) *Scheduler {
	rnd := rolls(vals...)
	return NewScheduler(DefaultCatalog(), loot.NewGenerator(rnd), rnd)
}

func playerAt(level int) *domain.Player {
	p := character.NewPlayer("p1", "Spartacus", t0)
	p.Level = level
	return p
}

func TestStart(t *testing.T) {
	s := newScheduler(0)
	p := playerAt(1)

	next, err := s.Start(p, "Outskirts Road", t0)
	require.NoError(t, err)
	require.NotNil(t, next.Activity)
	assert.Equal(t, t0.Add(5*time.Minute), next.Activity.EndTime)
	assert.False(t, next.Activity.IsBoss)
	assert.Nil(t, p.Activity, "input untouched")

	_, err = s.Start(next, "Outskirts Road", t0)
	assert.ErrorIs(t, err, domain.ErrActivityInProgress)
}

func TestStartRejections(t *testing.T) {
	s := newScheduler(0)

	_, err := s.Start(playerAt(1), "Atlantis", t0)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)

	_, err = s.Start(playerAt(2), "Hydra Marsh", t0)
	assert.ErrorIs(t, err, domain.ErrLevelTooLow)
}

func TestRemainingUsesAbsoluteDeadline(t *testing.T) {
	a := &domain.ActivityState{StartTime: t0, EndTime: t0.Add(30 * time.Minute)}

	assert.Equal(t, 30*time.Minute, Remaining(a, t0))
	assert.Equal(t, 10*time.Minute, Remaining(a, t0.Add(20*time.Minute)))
	assert.Equal(t, time.Duration(0), Remaining(a, t0.Add(2*time.Hour)))
	assert.False(t, IsComplete(a, t0.Add(29*time.Minute)))
	assert.True(t, IsComplete(a, t0.Add(30*time.Minute)))
	assert.False(t, IsComplete(nil, t0))
}

func TestCompleteRejections(t *testing.T) {
	s := newScheduler(0)

	_, _, err := s.Complete(playerAt(1), t0)
	assert.ErrorIs(t, err, domain.ErrNoActivity)

	p, err := s.Start(playerAt(1), "Outskirts Road", t0)
	require.NoError(t, err)
	_, _, err = s.Complete(p, t0.Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrActivityNotFinished)
	assert.NotNil(t, p.Activity)
}

func TestCompleteExpedition(t *testing.T) {
	t.Run("rewards without drop", func(t *testing.T) {
		s := newScheduler(0.5, 0.5, 0.9)
		p, err := s.Start(playerAt(1), "Outskirts Road", t0)
		require.NoError(t, err)

		next, res, err := s.Complete(p, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Nil(t, next.Activity)
		assert.True(t, res.Won)
		assert.Equal(t, 47, res.XP)
		assert.Equal(t, 30, res.Gold)
		assert.Nil(t, res.Item)
		assert.Equal(t, p.Gold+30, next.Gold)
		assert.Equal(t, 47, next.CurrentXP)
	})

	t.Run("drop at target level", func(t *testing.T) {
		s := newScheduler(0, 0, 0.1, 0)
		p, err := s.Start(playerAt(4), "Whispering Woods", t0)
		require.NoError(t, err)

		next, res, err := s.Complete(p, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 80, res.XP)
		assert.Equal(t, 50, res.Gold)
		require.NotNil(t, res.Item)
		assert.Equal(t, 4, res.Item.RequiredLevel)
		assert.Equal(t, len(p.Inventory)+1, len(next.Inventory))
	})
}

func TestBossWinChance(t *testing.T) {
	assert.InDelta(t, 0.55, BossWinChance(1), 1e-9)
	assert.InDelta(t, 0.55, BossWinChance(0), 1e-9)
	assert.InDelta(t, 1.0, BossWinChance(10), 1e-9)
	assert.Greater(t, BossWinChance(20), 1.0)
}

func TestCompleteBoss(t *testing.T) {
	t.Run("loss sets hp to one", func(t *testing.T) {
		s := newScheduler(0.8)
		p, err := s.Start(playerAt(5), "Bandit King's Hideout", t0)
		require.NoError(t, err)

		next, res, err := s.Complete(p, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, res.Won)
		assert.Equal(t, 1, next.HP)
		assert.Equal(t, p.Gold, next.Gold)
		assert.Equal(t, p.CurrentXP, next.CurrentXP)
		assert.Nil(t, next.Activity)
	})

	t.Run("win grants legendary", func(t *testing.T) {
		s := newScheduler(0.1, 0.2, 0)
		p, err := s.Start(playerAt(5), "Bandit King's Hideout", t0)
		require.NoError(t, err)

		next, res, err := s.Complete(p, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, res.Won)
		assert.Equal(t, BossRewardXP, res.XP)
		assert.Equal(t, p.Gold+BossRewardGold, next.Gold)
		require.NotNil(t, res.Item)
		assert.Equal(t, domain.RarityLegendary, res.Item.Rarity)
	})

	t.Run("win grants epic on high roll", func(t *testing.T) {
		s := newScheduler(0.1, 0.7, 0)
		p, err := s.Start(playerAt(5), "Bandit King's Hideout", t0)
		require.NoError(t, err)

		_, res, err := s.Complete(p, t0.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, res.Item)
		assert.Equal(t, domain.RarityEpic, res.Item.Rarity)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		c, err := LoadCatalog(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		assert.Len(t, c.All(), len(DefaultCatalog().All()))
	})

	t.Run("parses durations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "locations.yaml")
		data := "locations:\n  - name: Pit\n    tier: 2\n    duration: 90s\n    min_level: 1\n    boss: true\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		c, err := LoadCatalog(path)
		require.NoError(t, err)
		loc, ok := c.Get("Pit")
		require.True(t, ok)
		assert.Equal(t, 90*time.Second, loc.Duration)
		assert.True(t, loc.IsBoss)
		assert.Equal(t, 2, loc.Tier)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("locations: [::"), 0o600))
		_, err := LoadCatalog(path)
		assert.Error(t, err)
	})
}
