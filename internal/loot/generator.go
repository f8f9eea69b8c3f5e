// Package loot procedurally generates equipment drops.
package loot

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// rarityThreshold maps a minimum roll to the rarity it grants.
type rarityThreshold struct {
	threshold float64
	rarity    domain.Rarity
}

// rarityThresholds is ordered rarest first; the first match wins.
var rarityThresholds = []rarityThreshold{
	{LegendaryThreshold, domain.RarityLegendary},
	{EpicThreshold, domain.RarityEpic},
	{RareThreshold, domain.RarityRare},
	{UncommonThreshold, domain.RarityUncommon},
}

var rarityMultipliers = map[domain.Rarity]float64{
	domain.RarityCommon:    1,
	domain.RarityUncommon:  1.5,
	domain.RarityRare:      2,
	domain.RarityEpic:      3,
	domain.RarityLegendary: 5,
}

var rarityPrefixes = map[domain.Rarity]string{
	domain.RarityCommon:    "Worn",
	domain.RarityUncommon:  "Sturdy",
	domain.RarityRare:      "Gleaming",
	domain.RarityEpic:      "Heroic",
	domain.RarityLegendary: "Mythic",
}

// DropTypes is the set of item types the generator picks from uniformly.
// It covers every equippable type.
var DropTypes = []domain.ItemType{
	domain.ItemTypeWeapon,
	domain.ItemTypeArmor,
	domain.ItemTypeHelmet,
	domain.ItemTypeGloves,
	domain.ItemTypeBoots,
	domain.ItemTypeShield,
	domain.ItemTypeNecklace,
	domain.ItemTypeRing,
	domain.ItemTypeEarring,
	domain.ItemTypeBelt,
}

var baseNames = map[domain.ItemType][]string{
	domain.ItemTypeWeapon:   {"Gladius", "Spatha", "Trident", "War Axe", "Falx"},
	domain.ItemTypeArmor:    {"Lorica", "Chainmail", "Leather Cuirass", "Scale Vest"},
	domain.ItemTypeHelmet:   {"Galea", "Crested Helm", "Iron Cap"},
	domain.ItemTypeGloves:   {"Cestus", "Hide Gloves", "Gauntlets"},
	domain.ItemTypeBoots:    {"Caligae", "Greaves", "Sandals"},
	domain.ItemTypeShield:   {"Scutum", "Parma", "Buckler"},
	domain.ItemTypeNecklace: {"Torque", "Bulla", "Amulet"},
	domain.ItemTypeRing:     {"Signet", "Band", "Loop"},
	domain.ItemTypeEarring:  {"Stud", "Hoop", "Pendant"},
	domain.ItemTypeBelt:     {"Cingulum", "Balteus", "Sash"},
}

// RollRarity maps a uniform roll in [0,1) to a rarity tier
func RollRarity(roll float64) domain.Rarity {
	for _, rt := range rarityThresholds {
		if roll > rt.threshold {
			return rt.rarity
		}
	}
	return domain.RarityCommon
}

// RarityMultiplier returns the stat and value multiplier for a rarity
func RarityMultiplier(r domain.Rarity) float64 {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return 1
}

// Generator creates items from an injected random source
type Generator struct {
	rnd   func() float64
	newID func() string
}

// NewGenerator creates a Generator. A nil rnd uses math/rand.
func NewGenerator(rnd func() float64) *Generator {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &Generator{rnd: rnd, newID: uuid.NewString}
}

// Generate rolls a new item for the given level. A non-empty forced rarity
// skips the rarity roll. Draw order: type, rarity, base stat, name.
func (g *Generator) Generate(level int, forced domain.Rarity) domain.Item {
	if level < 1 {
		level = 1
	}

	itemType := DropTypes[g.pick(len(DropTypes))]

	rarity := forced
	if rarity == "" {
		rarity = RollRarity(g.rnd())
	}
	mult := RarityMultiplier(rarity)

	base := int(math.Floor((float64(level)*LevelStatFactor + g.rnd()*BaseStatJitter) * mult))
	if base < 1 {
		base = 1
	}

	names := baseNames[itemType]
	name := rarityPrefixes[rarity] + " " + names[g.pick(len(names))]

	return domain.Item{
		ID:            g.newID(),
		Name:          name,
		Type:          itemType,
		Rarity:        rarity,
		Stats:         bonusFor(itemType, rarity, base),
		Value:         int(math.Floor(float64(base*ValuePerStat) * mult)),
		RequiredLevel: level,
	}
}

func (g *Generator) pick(n int) int {
	i := int(g.rnd() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func bonusFor(t domain.ItemType, r domain.Rarity, base int) domain.StatBonus {
	bonus := domain.StatBonus{}
	secondary := max(1, int(math.Floor(float64(base)*SecondaryStatFactor)))

	switch t {
	case domain.ItemTypeWeapon:
		bonus[domain.StatSTR] = base
	case domain.ItemTypeArmor:
		bonus[domain.StatVIT] = base
	case domain.ItemTypeNecklace:
		bonus[domain.StatINT] = base
	case domain.ItemTypeHelmet, domain.ItemTypeShield, domain.ItemTypeBelt:
		bonus[domain.StatVIT] = secondary
	case domain.ItemTypeGloves, domain.ItemTypeBoots:
		bonus[domain.StatAGI] = secondary
	case domain.ItemTypeRing:
		bonus[domain.StatLUK] = secondary
	case domain.ItemTypeEarring:
		bonus[domain.StatINT] = secondary
	}

	if r.AtLeast(domain.RarityRare) {
		if luk := int(math.Floor(float64(base) * LuckBonusFactor)); luk > 0 {
			bonus[domain.StatLUK] += luk
		}
	}
	return bonus
}
