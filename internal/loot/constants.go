package loot

// ============================================================================
// Rarity Roll Thresholds
// ============================================================================

// A roll strictly above a threshold earns that rarity. Checked rarest first.
const (
	LegendaryThreshold = 0.98
	EpicThreshold      = 0.90
	RareThreshold      = 0.75
	UncommonThreshold  = 0.50
)

// ============================================================================
// Stat Generation
// ============================================================================

const (
	// LevelStatFactor scales the item level into the base stat roll
	LevelStatFactor = 0.5

	// BaseStatJitter is the exclusive upper bound of the random part of the base stat roll
	BaseStatJitter = 2.0

	// SecondaryStatFactor applies to every type except weapons, armor and necklaces
	SecondaryStatFactor = 0.7

	// LuckBonusFactor is the LUK bonus share for rare and better items
	LuckBonusFactor = 0.5

	// ValuePerStat converts the base stat into gold value before the rarity multiplier
	ValuePerStat = 10
)
