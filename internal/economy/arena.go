package economy

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/character"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/combat"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/stats"
)

// DuelOutcome is what a fight did to the challenger
type DuelOutcome struct {
	Report     domain.CombatReport `json:"report"`
	Enemy      *domain.Enemy       `json:"enemy,omitempty"`
	LevelsUp   int                 `json:"levels_up"`
	OldRank    int                 `json:"old_rank"`
	NewRank    int                 `json:"new_rank"`
	GoldStolen int                 `json:"gold_stolen,omitempty"`
}

// ArenaRewards returns the XP and gold for beating an arena enemy at level.
// Gold carries up to ArenaGoldJitter extra on top of the base.
func ArenaRewards(level int, roll float64) (xp, gold int) {
	base := ArenaGoldPerLevel * level
	return ArenaXPPerLevel * level, base + int(roll*ArenaGoldJitter*float64(base))
}

// PvPRewards returns the XP and gold for beating a ranked opponent
func PvPRewards(level, opponentLevel int) (xp, gold int) {
	return PvPXPPerLevel * level, PvPGoldPerLevel * opponentLevel
}

// Theft returns the gold lost from hand on a PvP defeat. Vault deposits are never touched.
func Theft(gold int) int {
	return gold * PvPTheftPercent / 100
}

// PlayerCombatant builds the player's side of a duel from effective stats and current HP
func PlayerCombatant(p *domain.Player) combat.Combatant {
	return combat.Combatant{Name: p.Name, Stats: stats.EffectiveStats(p), HP: p.HP}
}

// OpponentCombatant builds a defending player at full health
func OpponentCombatant(p *domain.Player) combat.Combatant {
	return combat.Combatant{Name: p.Name, Stats: stats.EffectiveStats(p), HP: p.MaxHP}
}

// FightArena duels an idle player against enemy and applies the result
func FightArena(p *domain.Player, enemy domain.Enemy, r *combat.Resolver, roll func() float64, now time.Time) (*domain.Player, DuelOutcome, error) {
	if p.IsBusy() {
		return nil, DuelOutcome{}, fmt.Errorf("arena: %w", domain.ErrPlayerBusy)
	}

	res := r.Duel(PlayerCombatant(p), combat.EnemyCombatant(enemy))

	next := p.Clone()
	report := newReport(domain.CombatKindArena, enemy.Name, res, now)
	out := DuelOutcome{Enemy: &enemy, OldRank: p.Rank, NewRank: p.Rank}
	if res.PlayerWon {
		xp, gold := ArenaRewards(p.Level, roll())
		next.Gold += gold
		report.XPGained, report.GoldDelta = xp, gold
		out.LevelsUp = character.ApplyXP(next, xp)
	}
	settle(next, res, report, out.LevelsUp)
	out.Report = report
	return next, out, nil
}

// Challenge duels p against a ranked opponent. A win takes the opponent's rank;
// a loss hands over Theft(gold) from hand. The opponent's own record is
// updated separately by the caller.
func Challenge(p, opponent *domain.Player, r *combat.Resolver, now time.Time) (*domain.Player, DuelOutcome, error) {
	if p.IsBusy() {
		return nil, DuelOutcome{}, fmt.Errorf("challenge: %w", domain.ErrPlayerBusy)
	}

	res := r.Duel(PlayerCombatant(p), OpponentCombatant(opponent))

	next := p.Clone()
	report := newReport(domain.CombatKindPvP, opponent.Name, res, now)
	out := DuelOutcome{OldRank: p.Rank, NewRank: p.Rank}
	if res.PlayerWon {
		xp, gold := PvPRewards(p.Level, opponent.Level)
		next.Gold += gold
		next.Wins++
		next.Rank = opponent.Rank
		out.NewRank = opponent.Rank
		report.XPGained, report.GoldDelta = xp, gold
		out.LevelsUp = character.ApplyXP(next, xp)
	} else {
		stolen := Theft(next.Gold)
		next.Gold -= stolen
		next.Losses++
		report.GoldDelta = -stolen
		out.GoldStolen = stolen
	}
	settle(next, res, report, out.LevelsUp)
	out.Report = report
	return next, out, nil
}

func newReport(kind, opponent string, res combat.DuelResult, now time.Time) domain.CombatReport {
	return domain.CombatReport{
		ID:        uuid.NewString(),
		Kind:      kind,
		Opponent:  opponent,
		Won:       res.PlayerWon,
		Rounds:    res.Rounds,
		CreatedAt: now,
	}
}

// settle carries the duel's HP into the owned player and files the report.
// A level-up has already refilled HP and wins over the damage taken.
func settle(p *domain.Player, res combat.DuelResult, report domain.CombatReport, levelsUp int) {
	if levelsUp == 0 {
		p.HP = max(MinHPAfterDuel, min(res.PlayerHP, p.MaxHP))
	}
	p.Reports = appendCapped(p.Reports, report, MaxReports)
}

func appendCapped[T any](list []T, v T, limit int) []T {
	list = append(list, v)
	if len(list) > limit {
		list = append([]T(nil), list[len(list)-limit:]...)
	}
	return list
}
