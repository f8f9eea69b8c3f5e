package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION"`

	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`

	TrustedProxies    []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"1000" validate:"min=1"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES" envDefault:"1048576" validate:"min=1"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"postgres" validate:"oneof=postgres sqlite"`
	DBUser         string `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBName         string `env:"DB_NAME" envDefault:"arena"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"20" validate:"min=1"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"data/arena.db" validate:"required_if=StorageBackend sqlite"`

	LeaderboardBackend  string        `env:"LEADERBOARD_BACKEND" envDefault:"store" validate:"oneof=store redis"`
	RedisAddr           string        `env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required_if=LeaderboardBackend redis"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0" validate:"min=0"`
	LeaderboardCacheTTL time.Duration `env:"LEADERBOARD_CACHE_TTL" envDefault:"5s"`

	NarrativeURL     string        `env:"NARRATIVE_URL" validate:"omitempty,url"`
	NarrativeAPIKey  string        `env:"NARRATIVE_API_KEY"`
	NarrativeTimeout time.Duration `env:"NARRATIVE_TIMEOUT" envDefault:"3s"`

	SaveDebounce       time.Duration `env:"SAVE_DEBOUNCE" envDefault:"2s"`
	CheckpointInterval time.Duration `env:"CHECKPOINT_INTERVAL" envDefault:"1m"`

	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" envDefault:"1024" validate:"min=1"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	LocationsPath    string        `env:"LOCATIONS_PATH" envDefault:"configs/locations.yaml"`
	LocationsSchema  string        `env:"LOCATIONS_SCHEMA" envDefault:"configs/schemas/locations.schema.json"`

	WorkerCount     int           `env:"WORKER_COUNT" envDefault:"4" validate:"min=1"`
	WorkerQueueSize int           `env:"WORKER_QUEUE_SIZE" envDefault:"256" validate:"min=1"`
	DuelReplayDelay time.Duration `env:"DUEL_REPLAY_DELAY" envDefault:"750ms"`

	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5" validate:"min=0"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`
}

var validate = validator.New()

// Load reads .env when present, parses the environment and validates the result
func Load() (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and the env schema version
func (c *Config) Validate() error {
	if c.EnvSchemaVersion != "" && c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaVersion, ExpectedEnvSchemaVersion, c.EnvSchemaVersion)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Warnings lists settings that work but look like leftovers from the example file
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.StorageBackend == StorageBackendPostgres && c.Environment == "prod" && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is the default value in production")
	}
	if c.NarrativeURL != "" && c.NarrativeAPIKey == "" {
		warnings = append(warnings, "NARRATIVE_URL is set without NARRATIVE_API_KEY")
	}
	return warnings
}
