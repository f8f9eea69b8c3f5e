// Package stats derives a character's effective attributes and resource ceilings.
// Everything here is a pure function of the player value passed in.
package stats

import (
	"math"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// EffectiveStats returns base stats plus the bonuses of every equipped item
func EffectiveStats(p *domain.Player) domain.Stats {
	total := p.Stats
	for _, item := range p.Equipment {
		total = total.Plus(item.Stats)
	}
	return total
}

// MaxXP returns the XP needed to advance past level
func MaxXP(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseXP * math.Pow(XPGrowth, float64(level-1))))
}

// MaxHP returns the hit point ceiling for the given vitality and level
func MaxHP(vit, level int) int {
	return BaseHP + vit*HPPerVIT + level*HPPerLevel
}

// MaxMP returns the mana ceiling for the given intelligence and level
func MaxMP(intelligence, level int) int {
	return BaseMP + intelligence*MPPerINT + level*MPPerLevel
}

// Recalculate refreshes MaxHP and MaxMP from effective stats and clamps the
// current pools into range. Call it on a player you own after any change to
// stats, level or equipment.
func Recalculate(p *domain.Player) {
	eff := EffectiveStats(p)
	p.MaxHP = MaxHP(eff.VIT, p.Level)
	p.MaxMP = MaxMP(eff.INT, p.Level)
	p.HP = clamp(p.HP, 0, p.MaxHP)
	p.MP = clamp(p.MP, 0, p.MaxMP)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
