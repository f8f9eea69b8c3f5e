package config

// Storage backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendSQLite   = "sqlite"
)

// Leaderboard backends
const (
	LeaderboardBackendStore = "store"
	LeaderboardBackendRedis = "redis"
)

// Data file paths
const (
	ConfigPathLocations = "configs/locations.yaml"
)

// ExpectedEnvSchemaVersion is the .env layout the binary understands
const ExpectedEnvSchemaVersion = "1.0"

// Error messages
const (
	ErrMsgParseEnv      = "failed to parse environment"
	ErrMsgInvalidConfig = "invalid configuration"
	ErrMsgSchemaVersion = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
)
