package stats

// XP curve: XP to clear level L = floor(BaseXP * XPGrowth^(L-1))
const (
	BaseXP   = 100
	XPGrowth = 1.5
)

// HP and MP ceilings
const (
	BaseHP     = 100
	HPPerVIT   = 10
	HPPerLevel = 20

	BaseMP     = 50
	MPPerINT   = 5
	MPPerLevel = 10
)
