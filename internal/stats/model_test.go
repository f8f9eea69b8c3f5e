package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

func TestMaxXP(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 100},
		{2, 150},
		{3, 225},
		{5, 506},
		{0, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaxXP(tt.level), "level %d", tt.level)
	}
}

func TestMaxHPAndMP(t *testing.T) {
	assert.Equal(t, 220, MaxHP(10, 1))
	assert.Equal(t, 120, MaxHP(0, 1))
	assert.Equal(t, 60+50, MaxMP(10, 1))
}

func TestEffectiveStats(t *testing.T) {
	p := &domain.Player{
		Stats: domain.Stats{STR: 5, AGI: 5, VIT: 5, INT: 5, LUK: 5},
		Equipment: domain.Equipment{
			domain.SlotWeapon: {ID: "w", Type: domain.ItemTypeWeapon, Stats: domain.StatBonus{domain.StatSTR: 4}},
			domain.SlotRing1:  {ID: "r", Type: domain.ItemTypeRing, Stats: domain.StatBonus{domain.StatLUK: 2, domain.StatSTR: 1}},
		},
	}

	eff := EffectiveStats(p)
	assert.Equal(t, domain.Stats{STR: 10, AGI: 5, VIT: 5, INT: 5, LUK: 7}, eff)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, eff, EffectiveStats(p))
		assert.Equal(t, 5, p.Stats.STR, "base stats must not change")
	})
}

func TestRecalculate(t *testing.T) {
	p := &domain.Player{
		Level: 1,
		Stats: domain.Stats{VIT: 10, INT: 10},
		HP:    500,
		MP:    -3,
	}
	Recalculate(p)
	assert.Equal(t, 220, p.MaxHP)
	assert.Equal(t, 110, p.MaxMP)
	assert.Equal(t, 220, p.HP)
	assert.Equal(t, 0, p.MP)

	p.Equipment = domain.Equipment{
		domain.SlotArmor: {ID: "a", Type: domain.ItemTypeArmor, Stats: domain.StatBonus{domain.StatVIT: 3}},
	}
	Recalculate(p)
	assert.Equal(t, 250, p.MaxHP)
	assert.Equal(t, 220, p.HP, "equipping does not heal")
}
