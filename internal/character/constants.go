package character

// New character defaults
const (
	StartingLevel      = 1
	StartingGold       = 100
	StartingStatValue  = 5
	StatPointsPerLevel = 5
)
