package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

func always(v float64) func() float64 {
	return func() float64 { return v }
}

func testPlayer(gold int) *domain.Player {
	return &domain.Player{
		ID:    "p1",
		Level: 5,
		Gold:  gold,
		Stats: domain.Stats{VIT: 5},
		Inventory: []domain.Item{
			{ID: "blade", Name: "Gladius", Type: domain.ItemTypeWeapon, Rarity: domain.RarityCommon,
				Stats: domain.StatBonus{domain.StatSTR: 10, domain.StatLUK: 0}, Value: 100},
			{ID: "charm", Key: domain.ItemKeyLuckCharge, Name: "Luck Charge", Type: domain.ItemTypeConsumable, Value: 50},
		},
		Equipment: domain.Equipment{
			domain.SlotArmor: {ID: "mail", Name: "Lorica", Type: domain.ItemTypeArmor, Rarity: domain.RarityEpic,
				Stats: domain.StatBonus{domain.StatVIT: 4}, Value: 300, UpgradeLevel: 2},
		},
	}
}

func TestCost(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.Item
		expected int
	}{
		{"floor applies", domain.Item{Value: 100, Rarity: domain.RarityCommon}, 50},
		{"half value", domain.Item{Value: 300, Rarity: domain.RarityCommon}, 150},
		{"level scales", domain.Item{Value: 100, Rarity: domain.RarityCommon, UpgradeLevel: 2}, 150},
		{"uncommon", domain.Item{Value: 100, Rarity: domain.RarityUncommon}, 60},
		{"rare", domain.Item{Value: 100, Rarity: domain.RarityRare}, 75},
		{"epic", domain.Item{Value: 300, Rarity: domain.RarityEpic, UpgradeLevel: 2}, 900},
		{"legendary", domain.Item{Value: 1000, Rarity: domain.RarityLegendary}, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Cost(tt.item))
		})
	}
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, 100, BaseSuccessRate(domain.Item{}))
	assert.Equal(t, 70, BaseSuccessRate(domain.Item{UpgradeLevel: 3}))
	assert.Equal(t, 10, BaseSuccessRate(domain.Item{UpgradeLevel: 9}))
	assert.Equal(t, 10, BaseSuccessRate(domain.Item{UpgradeLevel: 15}))

	assert.Equal(t, 100, SuccessRate(domain.Item{UpgradeLevel: 1}, true), "capped at 100")
	assert.Equal(t, 30, SuccessRate(domain.Item{UpgradeLevel: 12}, true))
}

func TestUpgraded(t *testing.T) {
	item := domain.Item{Stats: domain.StatBonus{domain.StatSTR: 10, domain.StatAGI: 3, domain.StatLUK: 0}, Value: 101}
	next := Upgraded(item)

	assert.Equal(t, 12, next.Stats[domain.StatSTR]) // ceil(11.0)+1
	assert.Equal(t, 5, next.Stats[domain.StatAGI])  // ceil(3.3)+1
	assert.Equal(t, 0, next.Stats[domain.StatLUK])
	assert.Equal(t, 1, next.UpgradeLevel)
	assert.Equal(t, 121, next.Value)
	assert.Equal(t, 10, item.Stats[domain.StatSTR], "original untouched")
}

func TestAttemptSuccessInInventory(t *testing.T) {
	p := testPlayer(100)
	next, out, err := Attempt(p, "blade", false, always(0.5))
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, 50, out.Cost)
	assert.Equal(t, 100, out.Chance)
	assert.Equal(t, 50, next.Gold)
	blade := next.Inventory[next.InventoryIndex("blade")]
	assert.Equal(t, 1, blade.UpgradeLevel)
	assert.Equal(t, 12, blade.Stats[domain.StatSTR])
	assert.Equal(t, 120, blade.Value)

	assert.Equal(t, 100, p.Gold, "input untouched")
	assert.Equal(t, 0, p.Inventory[0].UpgradeLevel)
}

func TestAttemptFailureKeepsItemButChargesGold(t *testing.T) {
	p := testPlayer(2000)
	// equipped epic at +2: 80% base, roll 0.9 fails
	next, out, err := Attempt(p, "mail", false, always(0.9))
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Equal(t, 80, out.Chance)
	assert.Equal(t, 2000-900, next.Gold)
	assert.Equal(t, p.Equipment[domain.SlotArmor], next.Equipment[domain.SlotArmor])
}

func TestAttemptEquippedSuccessRecomputesHP(t *testing.T) {
	p := testPlayer(2000)
	next, out, err := Attempt(p, "mail", false, always(0.1))
	require.NoError(t, err)
	require.True(t, out.Success)

	assert.Equal(t, 6, next.Equipment[domain.SlotArmor].Stats[domain.StatVIT]) // ceil(4.4)+1
	assert.Equal(t, 3, next.Equipment[domain.SlotArmor].UpgradeLevel)
	assert.Positive(t, next.MaxHP)
}

func TestAttemptLuckCharge(t *testing.T) {
	t.Run("consumed on failure", func(t *testing.T) {
		p := testPlayer(2000)
		p.Inventory[0].UpgradeLevel = 5
		next, out, err := Attempt(p, "blade", true, always(0.9))
		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.True(t, out.UsedLuckCharge)
		assert.Equal(t, 70, out.Chance)
		assert.Equal(t, 2000-300, next.Gold)
		assert.Equal(t, -1, next.InventoryIndexByKey(domain.ItemKeyLuckCharge))
	})

	t.Run("missing charge rejects without mutation", func(t *testing.T) {
		p := testPlayer(2000)
		p.Inventory = p.Inventory[:1]
		next, _, err := Attempt(p, "blade", true, always(0))
		assert.ErrorIs(t, err, domain.ErrLuckChargeMissing)
		assert.Nil(t, next)
		assert.Equal(t, 2000, p.Gold)
	})
}

func TestAttemptRejections(t *testing.T) {
	p := testPlayer(10)

	_, _, err := Attempt(p, "blade", false, always(0))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, _, err = Attempt(p, "ghost", false, always(0))
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	p.Gold = 1000
	_, _, err = Attempt(p, "charm", false, always(0))
	assert.ErrorIs(t, err, domain.ErrNotEquippable)
}
