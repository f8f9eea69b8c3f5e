package combat

// Damage model
const (
	StrengthFactor   = 1.5
	MitigationFactor = 0.5
	VariationMin     = 0.9
	VariationSpread  = 0.2
	CritChancePerPt  = 0.01
	CritMultiplier   = 2.0
	MinDamage        = 1
)

// Enemy generation
const (
	BossMultiplier = 3.0
	StatJitter     = 3.0

	EnemyBaseHP     = 50
	EnemyHPPerLevel = 20
	EnemyHPJitter   = 5
)
