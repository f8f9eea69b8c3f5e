package combat

import (
	"fmt"
	"math"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

var (
	enemyNames = []string{"Brigand", "Pit Fighter", "Dire Wolf", "Cultist", "Deserter", "Ogre"}
	bossNames  = []string{"Warlord", "Hydra", "Minotaur", "Lich King"}
)

// statWeights scales each attribute against the target level
var statWeights = domain.Stats{STR: 4, AGI: 2, VIT: 3, INT: 2, LUK: 1}

// GenerateEnemy rolls an opponent for the target level. Bosses have every
// stat roll and their HP multiplied by BossMultiplier.
func (r *Resolver) GenerateEnemy(level int, isBoss bool) domain.Enemy {
	if level < 1 {
		level = 1
	}
	mult := 1.0
	pool := enemyNames
	if isBoss {
		mult = BossMultiplier
		pool = bossNames
	}

	roll := func(weight int) int {
		base := float64(level*weight)/2 + 1 + r.rnd()*StatJitter
		return int(math.Floor(base * mult))
	}

	s := domain.Stats{
		STR: roll(statWeights.STR),
		AGI: roll(statWeights.AGI),
		VIT: roll(statWeights.VIT),
		INT: roll(statWeights.INT),
		LUK: roll(statWeights.LUK),
	}
	hp := int(math.Floor(float64(EnemyBaseHP+level*EnemyHPPerLevel+int(r.rnd()*float64(level*EnemyHPJitter))) * mult))
	name := pool[int(r.rnd()*float64(len(pool)))%len(pool)]

	return domain.Enemy{
		Name:        name,
		Description: fmt.Sprintf("A level %d %s.", level, name),
		Level:       level,
		Stats:       s,
		HP:          hp,
		MaxHP:       hp,
		IsBoss:      isBoss,
	}
}

// EnemyCombatant adapts an enemy into a duel participant
func EnemyCombatant(e domain.Enemy) Combatant {
	return Combatant{Name: e.Name, Stats: e.Stats, HP: e.HP}
}
