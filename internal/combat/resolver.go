// Package combat resolves attacks and duels between stat blocks.
//
// A duel is computed completely up front into an ordered round log; any
// delayed presentation is done by Replay and never re-rolls anything.
package combat

import (
	"math"
	"math/rand/v2"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// Combatant is one side of a duel
type Combatant struct {
	Name  string
	Stats domain.Stats
	HP    int
}

// Hit is the outcome of a single attack
type Hit struct {
	Damage int  `json:"damage"`
	Crit   bool `json:"crit"`
}

// DuelResult is the fully resolved duel
type DuelResult struct {
	PlayerWon  bool                 `json:"player_won"`
	Rounds     []domain.CombatRound `json:"rounds"`
	PlayerHP   int                  `json:"player_hp"`
	OpponentHP int                  `json:"opponent_hp"`
}

// Turns returns the number of attacks made
func (d DuelResult) Turns() int {
	return len(d.Rounds)
}

// CritChance returns the attacker's crit probability. It is not capped;
// values at or above 1 always crit.
func CritChance(att domain.Stats) float64 {
	return float64(att.LUK+att.AGI) * CritChancePerPt
}

// CalculateDamage applies the damage formula for a known variation and crit outcome
func CalculateDamage(att, def domain.Stats, variation float64, crit bool) int {
	base := float64(att.STR) * StrengthFactor
	mitigation := float64(def.VIT) * MitigationFactor
	mult := 1.0
	if crit {
		mult = CritMultiplier
	}
	dmg := int(math.Floor((base - mitigation) * variation * mult))
	if dmg < MinDamage {
		return MinDamage
	}
	return dmg
}

// Resolver rolls attacks and duels from an injected random source
type Resolver struct {
	rnd func() float64
}

// NewResolver creates a Resolver. A nil rnd uses math/rand.
func NewResolver(rnd func() float64) *Resolver {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &Resolver{rnd: rnd}
}

// Attack resolves one attack. It draws the crit roll first, then the variation roll.
func (r *Resolver) Attack(att, def domain.Stats) Hit {
	crit := r.rnd() < CritChance(att)
	variation := VariationMin + r.rnd()*VariationSpread
	return Hit{Damage: CalculateDamage(att, def, variation, crit), Crit: crit}
}

// Duel alternates attacks, player first, until one side's HP reaches zero.
// The loser's HP is reported as 0.
func (r *Resolver) Duel(player, opponent Combatant) DuelResult {
	playerHP, opponentHP := player.HP, opponent.HP
	var rounds []domain.CombatRound

	for turn := 1; ; turn++ {
		attackerIsPlayer := turn%2 == 1

		var hit Hit
		if attackerIsPlayer {
			hit = r.Attack(player.Stats, opponent.Stats)
			opponentHP = max(0, opponentHP-hit.Damage)
		} else {
			hit = r.Attack(opponent.Stats, player.Stats)
			playerHP = max(0, playerHP-hit.Damage)
		}

		side := domain.SideOpponent
		if attackerIsPlayer {
			side = domain.SidePlayer
		}
		rounds = append(rounds, domain.CombatRound{
			Turn:       turn,
			Attacker:   side,
			Damage:     hit.Damage,
			Crit:       hit.Crit,
			PlayerHP:   playerHP,
			OpponentHP: opponentHP,
		})

		if opponentHP <= 0 || playerHP <= 0 {
			break
		}
	}

	return DuelResult{
		PlayerWon:  opponentHP <= 0,
		Rounds:     rounds,
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
	}
}
