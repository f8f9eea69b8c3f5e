// Package forge implements item enhancement. An attempt always costs gold,
// may consume a luck charge, and never destroys the item.
package forge

import (
	"fmt"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/character"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/stats"
)

// Outcome describes one upgrade attempt
type Outcome struct {
	ItemID         string      `json:"item_id"`
	Success        bool        `json:"success"`
	Cost           int         `json:"cost"`
	Chance         int         `json:"chance"`
	UsedLuckCharge bool        `json:"used_luck_charge"`
	Before         domain.Item `json:"before"`
	After          domain.Item `json:"after"`
}

// Cost returns the gold needed for the next upgrade of item
func Cost(item domain.Item) int {
	base := max(MinBaseCost, item.Value/2)
	tier := item.Rarity.Tier()
	if tier < 0 {
		tier = 0
	}
	return base * (item.UpgradeLevel + 1) * rarityCostPercent[tier] / 100
}

// BaseSuccessRate returns the unassisted success chance in percent
func BaseSuccessRate(item domain.Item) int {
	return max(MinSuccessRate, MaxSuccessRate-item.UpgradeLevel*SuccessPenaltyPerLvl)
}

// SuccessRate returns the success chance in percent with an optional luck charge
func SuccessRate(item domain.Item, luckCharge bool) int {
	rate := BaseSuccessRate(item)
	if luckCharge {
		rate = min(MaxSuccessRate, rate+LuckChargeBonus)
	}
	return rate
}

// Upgraded returns the item after a successful enhancement
func Upgraded(item domain.Item) domain.Item {
	next := item.Clone()
	for stat, v := range next.Stats {
		if v != 0 {
			next.Stats[stat] = ceilTenths(v, StatGrowthTenths) + StatFlatBonus
		}
	}
	next.UpgradeLevel++
	next.Value = next.Value * ValueGrowthTenths / 10
	return next
}

// Attempt tries to enhance the item with itemID, wherever the player holds it.
// On any rejected precondition nothing changes and an error is returned.
// Otherwise gold is spent and the luck charge consumed whatever the roll.
func Attempt(p *domain.Player, itemID string, useLuck bool, rnd func() float64) (*domain.Player, Outcome, error) {
	item, slot, found := locate(p, itemID)
	if !found {
		return nil, Outcome{}, fmt.Errorf("upgrade %s: %w", itemID, domain.ErrItemNotFound)
	}
	if !item.Type.IsEquippable() {
		return nil, Outcome{}, fmt.Errorf("upgrade %s: %w", item.Name, domain.ErrNotEquippable)
	}

	chargeIdx := -1
	if useLuck {
		chargeIdx = p.InventoryIndexByKey(domain.ItemKeyLuckCharge)
		if chargeIdx < 0 {
			return nil, Outcome{}, domain.ErrLuckChargeMissing
		}
	}

	cost := Cost(item)
	if p.Gold < cost {
		return nil, Outcome{}, fmt.Errorf("upgrade costs %d gold: %w", cost, domain.ErrInsufficientFunds)
	}

	out := Outcome{
		ItemID:         item.ID,
		Cost:           cost,
		Chance:         SuccessRate(item, useLuck),
		UsedLuckCharge: useLuck,
		Before:         item.Clone(),
		After:          item.Clone(),
	}

	next := p.Clone()
	next.Gold -= cost
	if useLuck {
		character.ApplyRemoveItem(next, next.Inventory[chargeIdx].ID)
	}

	if rnd()*100 < float64(out.Chance) {
		out.Success = true
		out.After = Upgraded(item)
		if slot != "" {
			next.Equipment[slot] = out.After
			stats.Recalculate(next)
		} else {
			next.Inventory[next.InventoryIndex(item.ID)] = out.After
		}
	}

	return next, out, nil
}

func locate(p *domain.Player, itemID string) (domain.Item, domain.Slot, bool) {
	if idx := p.InventoryIndex(itemID); idx >= 0 {
		return p.Inventory[idx], "", true
	}
	if slot, ok := p.Equipment.Find(itemID); ok {
		return p.Equipment[slot], slot, true
	}
	return domain.Item{}, "", false
}

// ceilTenths returns ceil(v * tenths / 10) without floating point error
func ceilTenths(v, tenths int) int {
	n := v * tenths
	if n >= 0 {
		return (n + 9) / 10
	}
	return n / 10
}
