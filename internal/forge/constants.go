package forge

// Cost
const (
	MinBaseCost = 50
)

// rarityCostPercent scales the upgrade cost by rarity tier, in percent
var rarityCostPercent = [...]int{100, 120, 150, 200, 300}

// Success odds, in percentage points
const (
	MaxSuccessRate       = 100
	MinSuccessRate       = 10
	SuccessPenaltyPerLvl = 10
	LuckChargeBonus      = 20
)

// Growth applied on success, as tenths
const (
	StatGrowthTenths  = 11
	StatFlatBonus     = 1
	ValueGrowthTenths = 12
)
