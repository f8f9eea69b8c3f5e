package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/character"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

var t0 = time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

func TestSellPrice(t *testing.T) {
	assert.Equal(t, 40, SellPrice(domain.Item{Value: 100}))
	assert.Equal(t, 10, SellPrice(domain.Item{Value: 25}))
	assert.Equal(t, MinSellPrice, SellPrice(domain.Item{Value: 1}))
	assert.Equal(t, MinSellPrice, SellPrice(domain.Item{}))
}

func TestResaleNeverProfits(t *testing.T) {
	for _, e := range Shop {
		item := e.NewItem()
		assert.Equal(t, e.Price/2, item.Value, e.Key)
		assert.LessOrEqual(t, SellPrice(item), e.Price, e.Key)
	}
}

func TestBuy(t *testing.T) {
	p := character.NewPlayer("p1", "Crixus", t0)
	p.Gold = 500

	next, trade, err := Buy(p, domain.ItemKeyHealthPotion, 3)
	require.NoError(t, err)
	assert.Equal(t, 350, next.Gold)
	assert.Equal(t, 150, trade.Gold)
	require.Len(t, next.Inventory, 3)
	assert.NotEqual(t, next.Inventory[0].ID, next.Inventory[1].ID)
	assert.Equal(t, domain.ItemTypeConsumable, next.Inventory[0].Type)
	assert.Equal(t, 500, p.Gold, "input untouched")
	assert.Empty(t, p.Inventory)
}

func TestBuyRejections(t *testing.T) {
	p := character.NewPlayer("p1", "Crixus", t0)
	p.Gold = 100

	tests := []struct {
		name     string
		key      string
		quantity int
		want     error
	}{
		{"unknown good", "dragon_egg", 1, domain.ErrNotBuyable},
		{"zero quantity", domain.ItemKeyIronOre, 0, domain.ErrInvalidAmount},
		{"above cap", domain.ItemKeyIronOre, MaxBuyQuantity + 1, domain.ErrInvalidAmount},
		{"too expensive", domain.ItemKeyLuckCharge, 1, domain.ErrInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, err := Buy(p, tt.key, tt.quantity)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, next)
		})
	}
}

func TestSellAndDiscard(t *testing.T) {
	p := character.NewPlayer("p1", "Crixus", t0)
	p.Inventory = []domain.Item{{ID: "axe", Name: "Axe", Type: domain.ItemTypeWeapon, Value: 100}}
	p.Equipment = domain.Equipment{domain.SlotWeapon: {ID: "sword", Name: "Sword", Type: domain.ItemTypeWeapon, Value: 500}}

	next, trade, err := Sell(p, "axe")
	require.NoError(t, err)
	assert.Equal(t, p.Gold+40, next.Gold)
	assert.Equal(t, 40, trade.Gold)
	assert.Empty(t, next.Inventory)

	_, _, err = Sell(p, "sword")
	assert.ErrorIs(t, err, domain.ErrItemNotFound, "equipped items are not for sale")

	gone, item, err := Discard(p, "axe")
	require.NoError(t, err)
	assert.Equal(t, "Axe", item.Name)
	assert.Equal(t, p.Gold, gone.Gold)
	assert.Empty(t, gone.Inventory)

	_, _, err = Discard(p, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestConsume(t *testing.T) {
	hp, _ := ShopEntryFor(domain.ItemKeyHealthPotion)
	mp, _ := ShopEntryFor(domain.ItemKeyManaPotion)
	luck, _ := ShopEntryFor(domain.ItemKeyLuckCharge)

	p := character.NewPlayer("p1", "Crixus", t0)
	heal, mana, charm := hp.NewItem(), mp.NewItem(), luck.NewItem()
	p.Inventory = []domain.Item{heal, mana, charm}
	p.HP = 1
	p.MP = p.MaxMP

	t.Run("health potion restores half the pool", func(t *testing.T) {
		next, use, err := Consume(p, heal.ID)
		require.NoError(t, err)
		assert.Equal(t, p.MaxHP*PotionRestorePercent/100, use.HPRestored)
		assert.Equal(t, 1+use.HPRestored, next.HP)
		assert.Len(t, next.Inventory, 2)
	})

	t.Run("mana potion clamps to max", func(t *testing.T) {
		next, use, err := Consume(p, mana.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, use.MPRestored)
		assert.Equal(t, p.MaxMP, next.MP)
		assert.Len(t, next.Inventory, 2, "consumed even when nothing restored")
	})

	t.Run("luck charge is forge only", func(t *testing.T) {
		_, _, err := Consume(p, charm.ID)
		assert.ErrorIs(t, err, domain.ErrNotConsumable)
	})

	t.Run("missing item", func(t *testing.T) {
		_, _, err := Consume(p, "nope")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}
