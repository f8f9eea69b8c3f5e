// Package activity runs the single timed activity a player may have in flight.
//
// An activity stores only its absolute deadline. Whether it is finished is
// decided by comparing that deadline with the clock at read time, so progress
// survives restarts without any elapsed-time bookkeeping.
package activity

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/character"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/loot"
)

// Result describes a completed activity
type Result struct {
	Location string       `json:"location"`
	Level    int          `json:"level"`
	IsBoss   bool         `json:"is_boss"`
	Won      bool         `json:"won"`
	XP       int          `json:"xp"`
	Gold     int          `json:"gold"`
	Item     *domain.Item `json:"item,omitempty"`
	LevelsUp int          `json:"levels_up"`
}

// Scheduler starts and completes activities against a location catalogue
type Scheduler struct {
	catalog *Catalog
	loot    *loot.Generator
	rnd     func() float64
}

// NewScheduler creates a Scheduler. A nil rnd uses math/rand.
func NewScheduler(catalog *Catalog, gen *loot.Generator, rnd func() float64) *Scheduler {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if rnd == nil {
		rnd = rand.Float64
	}
	if gen == nil {
		gen = loot.NewGenerator(rnd)
	}
	return &Scheduler{catalog: catalog, loot: gen, rnd: rnd}
}

// Catalog returns the locations this scheduler serves
func (s *Scheduler) Catalog() *Catalog {
	return s.catalog
}

// Start sends the player to the named location, fixing the deadline at now + duration
func (s *Scheduler) Start(p *domain.Player, name string, now time.Time) (*domain.Player, error) {
	if p.IsBusy() {
		return nil, fmt.Errorf("start %s: %w", name, domain.ErrActivityInProgress)
	}
	loc, ok := s.catalog.Get(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrLocationNotFound)
	}
	if p.Level < loc.MinLevel {
		return nil, fmt.Errorf("%s requires level %d: %w", name, loc.MinLevel, domain.ErrLevelTooLow)
	}

	next := p.Clone()
	next.Activity = &domain.ActivityState{
		LocationName: loc.Name,
		StartTime:    now,
		EndTime:      now.Add(loc.Duration),
		IsBoss:       loc.IsBoss,
		Level:        p.Level,
	}
	return next, nil
}

// Remaining returns the time left until the deadline, never negative
func Remaining(a *domain.ActivityState, now time.Time) time.Duration {
	if a == nil {
		return 0
	}
	if d := a.EndTime.Sub(now); d > 0 {
		return d
	}
	return 0
}

// IsComplete reports whether the deadline has passed
func IsComplete(a *domain.ActivityState, now time.Time) bool {
	return a != nil && !now.Before(a.EndTime)
}

// BossWinChance returns the probability of beating a boss at level.
// It is not capped; at level 10 and above the win is certain.
func BossWinChance(level int) float64 {
	if level < 1 {
		level = 1
	}
	return BossWinBase + float64(level)*BossWinPerLevel
}

// Complete resolves a finished activity and returns the player back in the idle state.
func (s *Scheduler) Complete(p *domain.Player, now time.Time) (*domain.Player, Result, error) {
	if p.Activity == nil {
		return nil, Result{}, domain.ErrNoActivity
	}
	if !IsComplete(p.Activity, now) {
		return nil, Result{}, fmt.Errorf("%s ends in %s: %w",
			p.Activity.LocationName, Remaining(p.Activity, now).Round(time.Second), domain.ErrActivityNotFinished)
	}

	next := p.Clone()
	act := *next.Activity
	next.Activity = nil

	var res Result
	if act.IsBoss {
		res = s.resolveBoss(next, act)
	} else {
		res = s.resolveExpedition(next, act)
	}
	return next, res, nil
}

func (s *Scheduler) resolveExpedition(p *domain.Player, act domain.ActivityState) Result {
	tier := 1
	if loc, ok := s.catalog.Get(act.LocationName); ok {
		tier = loc.Tier
	}

	res := Result{Location: act.LocationName, Level: act.Level, Won: true}
	res.XP = tier*XPPerTier + int(s.rnd()*float64(tier*XPJitterPerTier))
	res.Gold = tier*GoldPerTier + int(s.rnd()*float64(tier*GoldJitterPerTier))

	if s.rnd() < ItemDropChance {
		item := s.loot.Generate(act.Level, "")
		res.Item = &item
	}

	s.grant(p, &res)
	return res
}

func (s *Scheduler) resolveBoss(p *domain.Player, act domain.ActivityState) Result {
	res := Result{Location: act.LocationName, Level: act.Level, IsBoss: true}
	if s.rnd() >= BossWinChance(act.Level) {
		p.HP = BossLossHP
		return res
	}

	res.Won = true
	res.XP = BossRewardXP
	res.Gold = BossRewardGold
	rarity := domain.RarityEpic
	if s.rnd() < BossLegendaryChance {
		rarity = domain.RarityLegendary
	}
	item := s.loot.Generate(act.Level, rarity)
	res.Item = &item

	s.grant(p, &res)
	return res
}

func (s *Scheduler) grant(p *domain.Player, res *Result) {
	p.Gold += res.Gold
	if res.Item != nil {
		p.Inventory = append(p.Inventory, *res.Item)
	}
	res.LevelsUp = character.ApplyXP(p, res.XP)
}
