// Package character holds the mutations that touch a player's own sheet:
// attribute spending, equipment, XP and resource pools.
//
// Exported operations taking a *domain.Player and returning one never touch
// their argument; they work on a clone and return it only on success.
// The Apply* helpers mutate the player they are given and are meant for
// callers that already own a private copy.
package character

import (
	"fmt"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/stats"
)

// NewPlayer builds a fresh level one character with full pools
func NewPlayer(id, name string, now time.Time) *domain.Player {
	p := &domain.Player{
		ID:    id,
		Name:  name,
		Level: StartingLevel,
		Gold:  StartingGold,
		Stats: domain.Stats{
			STR: StartingStatValue,
			AGI: StartingStatValue,
			VIT: StartingStatValue,
			INT: StartingStatValue,
			LUK: StartingStatValue,
		},
		Equipment:    domain.Equipment{},
		Inventory:    []domain.Item{},
		Deposits:     []domain.BankDeposit{},
		Messages:     []domain.Message{},
		Reports:      []domain.CombatReport{},
		LastIncomeAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	stats.Recalculate(p)
	p.HP = p.MaxHP
	p.MP = p.MaxMP
	return p
}

// SpendStatPoint moves one unspent point into the given attribute
func SpendStatPoint(p *domain.Player, stat domain.StatType) (*domain.Player, error) {
	if !stat.IsValid() {
		return nil, fmt.Errorf("%q: %w", stat, domain.ErrInvalidStat)
	}
	if p.StatPoints <= 0 {
		return nil, domain.ErrNoStatPoints
	}

	next := p.Clone()
	next.StatPoints--
	next.Stats = next.Stats.With(stat, 1)
	stats.Recalculate(next)
	return next, nil
}

// Equip moves an inventory item into an equipment slot. An empty slot
// argument picks the first free slot for the item type, falling back to the
// first slot. Any previous occupant returns to the inventory.
func Equip(p *domain.Player, itemID string, slot domain.Slot) (*domain.Player, error) {
	idx := p.InventoryIndex(itemID)
	if idx < 0 {
		return nil, fmt.Errorf("equip %s: %w", itemID, domain.ErrItemNotFound)
	}
	item := p.Inventory[idx]

	candidates := domain.SlotsFor(item.Type)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("equip %s: %w", item.Name, domain.ErrNotEquippable)
	}

	if slot == "" {
		slot = candidates[0]
		for _, s := range candidates {
			if _, taken := p.Equipment[s]; !taken {
				slot = s
				break
			}
		}
	} else if !slot.Accepts(item.Type) {
		return nil, fmt.Errorf("equip %s into %s: %w", item.Name, slot, domain.ErrSlotMismatch)
	}

	if err := checkRequirements(p, item); err != nil {
		return nil, err
	}

	next := p.Clone()
	next.Inventory = append(next.Inventory[:idx], next.Inventory[idx+1:]...)
	if prev, ok := next.Equipment[slot]; ok {
		next.Inventory = append(next.Inventory, prev)
	}
	if next.Equipment == nil {
		next.Equipment = domain.Equipment{}
	}
	next.Equipment[slot] = item.Clone()
	stats.Recalculate(next)
	return next, nil
}

// Unequip returns the item in slot to the end of the inventory
func Unequip(p *domain.Player, slot domain.Slot) (*domain.Player, error) {
	if _, ok := p.Equipment[slot]; !ok {
		return nil, fmt.Errorf("unequip %s: %w", slot, domain.ErrSlotEmpty)
	}

	next := p.Clone()
	item := next.Equipment[slot]
	delete(next.Equipment, slot)
	next.Inventory = append(next.Inventory, item)
	stats.Recalculate(next)
	return next, nil
}

func checkRequirements(p *domain.Player, item domain.Item) error {
	if item.RequiredLevel > p.Level {
		return fmt.Errorf("%s needs level %d: %w", item.Name, item.RequiredLevel, domain.ErrRequirementsNotMet)
	}
	for stat, need := range item.RequiredStats {
		if p.Stats.Get(stat) < need {
			return fmt.Errorf("%s needs %d %s: %w", item.Name, need, stat, domain.ErrRequirementsNotMet)
		}
	}
	return nil
}

// ApplyXP adds xp to an owned player, performing every level-up it pays for.
// Each level grants StatPointsPerLevel points and refills HP and MP to the
// new ceilings. Returns the number of levels gained.
func ApplyXP(p *domain.Player, xp int) int {
	if xp <= 0 {
		return 0
	}
	p.CurrentXP += xp

	gained := 0
	for p.CurrentXP >= stats.MaxXP(p.Level) {
		p.CurrentXP -= stats.MaxXP(p.Level)
		p.Level++
		p.StatPoints += StatPointsPerLevel
		gained++
	}

	stats.Recalculate(p)
	if gained > 0 {
		p.HP = p.MaxHP
		p.MP = p.MaxMP
	}
	return gained
}

// ApplyHeal restores up to amount HP on an owned player and returns what was restored
func ApplyHeal(p *domain.Player, amount int) int {
	before := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - before
}

// ApplyRestoreMana restores up to amount MP on an owned player and returns what was restored
func ApplyRestoreMana(p *domain.Player, amount int) int {
	before := p.MP
	p.MP += amount
	if p.MP > p.MaxMP {
		p.MP = p.MaxMP
	}
	return p.MP - before
}

// ApplyRemoveItem takes an item out of an owned player's inventory
func ApplyRemoveItem(p *domain.Player, itemID string) (domain.Item, bool) {
	idx := p.InventoryIndex(itemID)
	if idx < 0 {
		return domain.Item{}, false
	}
	item := p.Inventory[idx]
	p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
	return item, true
}
