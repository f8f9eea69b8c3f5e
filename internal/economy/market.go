package economy

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/character"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// ShopEntry is one good the market always stocks
type ShopEntry struct {
	Key   string          `json:"key"`
	Name  string          `json:"name"`
	Type  domain.ItemType `json:"type"`
	Price int             `json:"price"`
}

// Shop is the fixed market catalogue
var Shop = []ShopEntry{
	{Key: domain.ItemKeyHealthPotion, Name: "Health Potion", Type: domain.ItemTypeConsumable, Price: 50},
	{Key: domain.ItemKeyManaPotion, Name: "Mana Potion", Type: domain.ItemTypeConsumable, Price: 50},
	{Key: domain.ItemKeyLuckCharge, Name: "Luck Charge", Type: domain.ItemTypeMaterial, Price: 200},
	{Key: domain.ItemKeyIronOre, Name: "Iron Ore", Type: domain.ItemTypeMaterial, Price: 30},
}

// ShopEntryFor looks up a catalogue entry by key
func ShopEntryFor(key string) (ShopEntry, bool) {
	i := slices.IndexFunc(Shop, func(e ShopEntry) bool { return e.Key == key })
	if i < 0 {
		return ShopEntry{}, false
	}
	return Shop[i], true
}

// NewItem issues a fresh unit of the entry. Its value is half the price paid.
func (e ShopEntry) NewItem() domain.Item {
	return domain.Item{
		ID:     uuid.NewString(),
		Key:    e.Key,
		Name:   e.Name,
		Type:   e.Type,
		Rarity: domain.RarityCommon,
		Value:  e.Price / 2,
	}
}

// SellPrice is what the market pays for item
func SellPrice(item domain.Item) int {
	return max(MinSellPrice, item.Value*SellPricePercent/100)
}

// Trade summarises a purchase or sale
type Trade struct {
	Key      string        `json:"key,omitempty"`
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
	Gold     int           `json:"gold"`
	Items    []domain.Item `json:"items,omitempty"`
}

// Use summarises a consumed item
type Use struct {
	ItemKey    string `json:"item_key"`
	HPRestored int    `json:"hp_restored"`
	MPRestored int    `json:"mp_restored"`
}

// Buy purchases quantity units of the catalogue entry key
func Buy(p *domain.Player, key string, quantity int) (*domain.Player, Trade, error) {
	entry, ok := ShopEntryFor(key)
	if !ok {
		return nil, Trade{}, fmt.Errorf(ErrMsgNotBuyableFmt, key, domain.ErrNotBuyable)
	}
	if quantity < 1 || quantity > MaxBuyQuantity {
		return nil, Trade{}, fmt.Errorf(ErrMsgQuantityFmt, quantity, domain.ErrInvalidAmount)
	}
	cost := entry.Price * quantity
	if p.Gold < cost {
		return nil, Trade{}, fmt.Errorf(ErrMsgBuyCostFmt, cost, p.Gold, domain.ErrInsufficientFunds)
	}

	next := p.Clone()
	next.Gold -= cost
	trade := Trade{Key: entry.Key, Name: entry.Name, Quantity: quantity, Gold: cost}
	for range quantity {
		item := entry.NewItem()
		next.Inventory = append(next.Inventory, item)
		trade.Items = append(trade.Items, item)
	}
	return next, trade, nil
}

// Sell sells one inventory item. Equipped items must be unequipped first.
func Sell(p *domain.Player, itemID string) (*domain.Player, Trade, error) {
	next := p.Clone()
	item, ok := character.ApplyRemoveItem(next, itemID)
	if !ok {
		return nil, Trade{}, fmt.Errorf(ErrMsgItemNotInventoryFmt, itemID, domain.ErrItemNotFound)
	}
	price := SellPrice(item)
	next.Gold += price
	return next, Trade{Key: item.Key, Name: item.Name, Quantity: 1, Gold: price}, nil
}

// Discard destroys one inventory item without payment
func Discard(p *domain.Player, itemID string) (*domain.Player, domain.Item, error) {
	next := p.Clone()
	item, ok := character.ApplyRemoveItem(next, itemID)
	if !ok {
		return nil, domain.Item{}, fmt.Errorf(ErrMsgItemNotInventoryFmt, itemID, domain.ErrItemNotFound)
	}
	return next, item, nil
}

// Consume uses a potion from the inventory. Luck charges are only spent by the forge.
func Consume(p *domain.Player, itemID string) (*domain.Player, Use, error) {
	idx := p.InventoryIndex(itemID)
	if idx < 0 {
		return nil, Use{}, fmt.Errorf(ErrMsgItemNotInventoryFmt, itemID, domain.ErrItemNotFound)
	}
	key := p.Inventory[idx].Key
	if key != domain.ItemKeyHealthPotion && key != domain.ItemKeyManaPotion {
		return nil, Use{}, fmt.Errorf(ErrMsgItemNotInventoryFmt, p.Inventory[idx].Name, domain.ErrNotConsumable)
	}

	next := p.Clone()
	character.ApplyRemoveItem(next, itemID)
	use := Use{ItemKey: key}
	switch key {
	case domain.ItemKeyHealthPotion:
		use.HPRestored = character.ApplyHeal(next, next.MaxHP*PotionRestorePercent/100)
	case domain.ItemKeyManaPotion:
		use.MPRestored = character.ApplyRestoreMana(next, next.MaxMP*PotionRestorePercent/100)
	}
	return next, use, nil
}
