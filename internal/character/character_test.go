package character

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPlayer() *domain.Player {
	p := NewPlayer("p1", "Maximus", testNow)
	p.Inventory = []domain.Item{
		{ID: "sword", Name: "Gladius", Type: domain.ItemTypeWeapon, Stats: domain.StatBonus{domain.StatSTR: 3}},
		{ID: "sword2", Name: "Spatha", Type: domain.ItemTypeWeapon, Stats: domain.StatBonus{domain.StatSTR: 5}},
		{ID: "ring-a", Name: "Band", Type: domain.ItemTypeRing, Stats: domain.StatBonus{domain.StatLUK: 1}},
		{ID: "ring-b", Name: "Loop", Type: domain.ItemTypeRing, Stats: domain.StatBonus{domain.StatLUK: 2}},
		{ID: "ore", Name: "Iron Ore", Key: domain.ItemKeyIronOre, Type: domain.ItemTypeMaterial},
		{ID: "vest", Name: "Vest", Type: domain.ItemTypeArmor, Stats: domain.StatBonus{domain.StatVIT: 4}},
	}
	return p
}

func allItemIDs(p *domain.Player) []string {
	var ids []string
	for _, it := range p.Inventory {
		ids = append(ids, it.ID)
	}
	for _, it := range p.Equipment {
		ids = append(ids, it.ID)
	}
	sort.Strings(ids)
	return ids
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("id", "Spartacus", testNow)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, StartingGold, p.Gold)
	assert.Equal(t, 100+5*10+20, p.MaxHP)
	assert.Equal(t, p.MaxHP, p.HP)
	assert.Equal(t, p.MaxMP, p.MP)
	assert.Equal(t, 0, p.Rank)
	assert.NotNil(t, p.Equipment)
}

func TestSpendStatPoint(t *testing.T) {
	p := newTestPlayer()

	_, err := SpendStatPoint(p, domain.StatVIT)
	assert.ErrorIs(t, err, domain.ErrNoStatPoints)

	p.StatPoints = 1
	next, err := SpendStatPoint(p, domain.StatVIT)
	require.NoError(t, err)
	assert.Equal(t, 6, next.Stats.VIT)
	assert.Equal(t, 0, next.StatPoints)
	assert.Equal(t, p.MaxHP+10, next.MaxHP)

	assert.Equal(t, 1, p.StatPoints, "input player untouched")
	assert.Equal(t, 5, p.Stats.VIT)

	_, err = SpendStatPoint(p, domain.StatType("charisma"))
	assert.ErrorIs(t, err, domain.ErrInvalidStat)
}

func TestEquipUnequipPreservesItems(t *testing.T) {
	p := newTestPlayer()
	before := allItemIDs(p)

	next, err := Equip(p, "sword", "")
	require.NoError(t, err)
	assert.Equal(t, "sword", next.Equipment[domain.SlotWeapon].ID)
	assert.Equal(t, -1, next.InventoryIndex("sword"))
	assert.Equal(t, before, allItemIDs(next))

	next, err = Equip(next, "sword2", "")
	require.NoError(t, err)
	assert.Equal(t, "sword2", next.Equipment[domain.SlotWeapon].ID)
	assert.GreaterOrEqual(t, next.InventoryIndex("sword"), 0, "displaced item returns to inventory")
	assert.Equal(t, before, allItemIDs(next))

	next, err = Unequip(next, domain.SlotWeapon)
	require.NoError(t, err)
	_, equipped := next.Equipment[domain.SlotWeapon]
	assert.False(t, equipped)
	assert.Equal(t, before, allItemIDs(next))

	assert.Empty(t, p.Equipment, "original untouched")
}

func TestEquipRingsFillBothSlots(t *testing.T) {
	p := newTestPlayer()
	next, err := Equip(p, "ring-a", "")
	require.NoError(t, err)
	next, err = Equip(next, "ring-b", "")
	require.NoError(t, err)

	assert.Equal(t, "ring-a", next.Equipment[domain.SlotRing1].ID)
	assert.Equal(t, "ring-b", next.Equipment[domain.SlotRing2].ID)
}

func TestEquipErrors(t *testing.T) {
	p := newTestPlayer()

	_, err := Equip(p, "missing", "")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = Equip(p, "ore", "")
	assert.ErrorIs(t, err, domain.ErrNotEquippable)

	_, err = Equip(p, "sword", domain.SlotHelmet)
	assert.ErrorIs(t, err, domain.ErrSlotMismatch)

	p.Inventory[0].RequiredLevel = 10
	_, err = Equip(p, "sword", "")
	assert.ErrorIs(t, err, domain.ErrRequirementsNotMet)

	p.Inventory[1].RequiredStats = domain.StatBonus{domain.StatSTR: 20}
	_, err = Equip(p, "sword2", "")
	assert.ErrorIs(t, err, domain.ErrRequirementsNotMet)

	_, err = Unequip(p, domain.SlotBelt)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestEquipRecomputesMaxHP(t *testing.T) {
	p := newTestPlayer()
	next, err := Equip(p, "vest", "")
	require.NoError(t, err)
	assert.Equal(t, p.MaxHP+40, next.MaxHP)

	back, err := Unequip(next, domain.SlotArmor)
	require.NoError(t, err)
	assert.Equal(t, p.MaxHP, back.MaxHP)
}

func TestApplyXP(t *testing.T) {
	t.Run("no level", func(t *testing.T) {
		p := newTestPlayer()
		assert.Equal(t, 0, ApplyXP(p, 99))
		assert.Equal(t, 99, p.CurrentXP)
		assert.Equal(t, 1, p.Level)
	})

	t.Run("multi level", func(t *testing.T) {
		p := newTestPlayer()
		p.HP = 1
		// 100 for level 1, 150 for level 2, 10 carried
		gained := ApplyXP(p, 260)
		assert.Equal(t, 2, gained)
		assert.Equal(t, 3, p.Level)
		assert.Equal(t, 10, p.CurrentXP)
		assert.Equal(t, 2*StatPointsPerLevel, p.StatPoints)
		assert.Equal(t, p.MaxHP, p.HP)
	})

	t.Run("non positive", func(t *testing.T) {
		p := newTestPlayer()
		assert.Equal(t, 0, ApplyXP(p, -5))
		assert.Equal(t, 0, p.CurrentXP)
	})
}

func TestApplyHealAndMana(t *testing.T) {
	p := newTestPlayer()
	p.HP = p.MaxHP - 10
	assert.Equal(t, 10, ApplyHeal(p, 50))
	assert.Equal(t, p.MaxHP, p.HP)

	p.MP = 0
	assert.Equal(t, 20, ApplyRestoreMana(p, 20))
}

func TestApplyRemoveItem(t *testing.T) {
	p := newTestPlayer()
	item, ok := ApplyRemoveItem(p, "ore")
	assert.True(t, ok)
	assert.Equal(t, "Iron Ore", item.Name)
	assert.Equal(t, -1, p.InventoryIndex("ore"))

	_, ok = ApplyRemoveItem(p, "ore")
	assert.False(t, ok)
}
