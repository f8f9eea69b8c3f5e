package domain

// ItemType is either an equipment category or a stackless utility kind.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeShield     ItemType = "shield"
	ItemTypeHelmet     ItemType = "helmet"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeGloves     ItemType = "gloves"
	ItemTypeBoots      ItemType = "boots"
	ItemTypeNecklace   ItemType = "necklace"
	ItemTypeRing       ItemType = "ring"
	ItemTypeEarring    ItemType = "earring"
	ItemTypeBelt       ItemType = "belt"
	ItemTypeMaterial   ItemType = "material"
	ItemTypeConsumable ItemType = "consumable"
)

// IsEquippable reports whether items of this type can occupy an equipment slot
func (t ItemType) IsEquippable() bool {
	return len(SlotsFor(t)) > 0
}

// Rarity is the ordered quality tier of an item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every tier from lowest to highest
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// Tier returns the zero-based position of r in the rarity order, or -1 if unknown
func (r Rarity) Tier() int {
	for i, v := range Rarities {
		if v == r {
			return i
		}
	}
	return -1
}

// AtLeast reports whether r is the same tier as other or higher
func (r Rarity) AtLeast(other Rarity) bool {
	return r.Tier() >= other.Tier()
}

// Well-known catalogue keys for market goods
const (
	ItemKeyHealthPotion = "health_potion"
	ItemKeyManaPotion   = "mana_potion"
	ItemKeyLuckCharge   = "luck_charge"
	ItemKeyIronOre      = "iron_ore"
)

// Item is a single owned object. ID never changes once issued.
type Item struct {
	ID            string    `json:"id"`
	Key           string    `json:"key,omitempty"`
	Name          string    `json:"name"`
	Type          ItemType  `json:"type"`
	Rarity        Rarity    `json:"rarity"`
	Stats         StatBonus `json:"stats,omitempty"`
	Value         int       `json:"value"`
	UpgradeLevel  int       `json:"upgrade_level"`
	RequiredLevel int       `json:"required_level,omitempty"`
	RequiredStats StatBonus `json:"required_stats,omitempty"`
}

// Clone returns a deep copy of the item
func (i Item) Clone() Item {
	i.Stats = i.Stats.Clone()
	i.RequiredStats = i.RequiredStats.Clone()
	return i
}
