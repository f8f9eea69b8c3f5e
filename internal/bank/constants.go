package bank

import "time"

// Vault rules
const (
	CommissionPercent = 2
	MaturityWindow    = 7 * 24 * time.Hour
)
