package logger

// Log level string values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log format string values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service configuration values
const (
	DefaultServiceName = "arena-engine"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environment string values
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Log attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyPlayerID    = "player_id"
)
