package activity

// Normal expedition rewards, scaled by location tier
const (
	XPPerTier         = 40
	XPJitterPerTier   = 15
	GoldPerTier       = 25
	GoldJitterPerTier = 10
	ItemDropChance    = 0.2
)

// Boss encounters
const (
	BossWinBase         = 0.5
	BossWinPerLevel     = 0.05
	BossRewardXP        = 500
	BossRewardGold      = 1000
	BossLegendaryChance = 0.5
	BossLossHP          = 1
)

// DefaultCatalogPath is where the location catalogue is read from when not configured
const DefaultCatalogPath = "configs/locations.yaml"

// Error context messages
const (
	ErrContextReadCatalog  = "reading location catalog"
	ErrContextParseCatalog = "parsing location catalog"
)
