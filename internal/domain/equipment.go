package domain

// Slot is a named equipment position on a character.
type Slot string

const (
	SlotWeapon   Slot = "weapon"
	SlotShield   Slot = "shield"
	SlotHelmet   Slot = "helmet"
	SlotArmor    Slot = "armor"
	SlotGloves   Slot = "gloves"
	SlotBoots    Slot = "boots"
	SlotNecklace Slot = "necklace"
	SlotRing1    Slot = "ring1"
	SlotRing2    Slot = "ring2"
	SlotEarring1 Slot = "earring1"
	SlotEarring2 Slot = "earring2"
	SlotBelt     Slot = "belt"
)

// AllSlots lists every equipment slot
var AllSlots = []Slot{
	SlotWeapon, SlotShield, SlotHelmet, SlotArmor, SlotGloves, SlotBoots,
	SlotNecklace, SlotRing1, SlotRing2, SlotEarring1, SlotEarring2, SlotBelt,
}

var slotsByType = map[ItemType][]Slot{
	ItemTypeWeapon:   {SlotWeapon},
	ItemTypeShield:   {SlotShield},
	ItemTypeHelmet:   {SlotHelmet},
	ItemTypeArmor:    {SlotArmor},
	ItemTypeGloves:   {SlotGloves},
	ItemTypeBoots:    {SlotBoots},
	ItemTypeNecklace: {SlotNecklace},
	ItemTypeRing:     {SlotRing1, SlotRing2},
	ItemTypeEarring:  {SlotEarring1, SlotEarring2},
	ItemTypeBelt:     {SlotBelt},
}

// SlotsFor returns the slots an item type may occupy, in fill order
func SlotsFor(t ItemType) []Slot {
	return slotsByType[t]
}

// Accepts reports whether an item of type t may be placed in s
func (s Slot) Accepts(t ItemType) bool {
	for _, slot := range slotsByType[t] {
		if slot == s {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known slot
func (s Slot) IsValid() bool {
	for _, slot := range AllSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// Equipment maps occupied slots to their items. Absent keys are empty slots.
type Equipment map[Slot]Item

// Clone returns a deep copy
func (e Equipment) Clone() Equipment {
	out := make(Equipment, len(e))
	for slot, item := range e {
		out[slot] = item.Clone()
	}
	return out
}

// Find returns the slot holding the item with the given id
func (e Equipment) Find(itemID string) (Slot, bool) {
	for slot, item := range e {
		if item.ID == itemID {
			return slot, true
		}
	}
	return "", false
}
