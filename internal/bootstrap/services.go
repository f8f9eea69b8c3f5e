package bootstrap

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/activity"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/combat"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/config"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/league"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/loot"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/narrative"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/persistence"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/scheduler"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/validation"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/worker"
)

// Services holds the engine and the background machinery behind it
type Services struct {
	Economy   economy.Service
	Saver     *persistence.Saver
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// InitializeServices builds the economy service over storage. Events are
// published through publisher.
func InitializeServices(cfg *config.Config, store *Storage, publisher event.Bus) (*Services, error) {
	if err := validateCatalog(cfg); err != nil {
		return nil, err
	}
	catalog, err := activity.LoadCatalog(cfg.LocationsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "path", cfg.LocationsPath, "locations", len(catalog.All()))

	var client narrative.Client
	if cfg.NarrativeURL != "" {
		client = narrative.NewHTTPClient(cfg.NarrativeURL, cfg.NarrativeAPIKey)
		slog.Info(LogMsgNarrativeEnabled, "url", cfg.NarrativeURL)
	} else {
		slog.Info(LogMsgNarrativeDisabled)
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	saver := persistence.NewSaver(store.Players, pool, cfg.SaveDebounce)

	rnd := rand.Float64
	svc := economy.NewService(economy.Deps{
		Repo:             store.Players,
		Saver:            saver,
		Bus:              publisher,
		RankWriter:       store.Leaderboard,
		Scheduler:        activity.NewScheduler(catalog, loot.NewGenerator(rnd), rnd),
		Matchmaker:       league.NewMatchmaker(store.Leaderboard, 0),
		Narrative:        narrative.NewService(client, cfg.NarrativeTimeout),
		Resolver:         combat.NewResolver(rnd),
		SessionCacheSize: cfg.SessionCacheSize,
		SessionTTL:       cfg.SessionTTL,
		Rnd:              rnd,
	})

	sched := scheduler.New(pool)
	sched.Schedule(scheduler.JobCheckpoint, cfg.CheckpointInterval, worker.JobFunc(saver.Flush))

	return &Services{Economy: svc, Saver: saver, Pool: pool, Scheduler: sched}, nil
}

// validateCatalog checks the location file against its schema. A missing
// file is left to LoadCatalog, which falls back to the built-in locations.
func validateCatalog(cfg *config.Config) error {
	if cfg.LocationsSchema == "" {
		return nil
	}
	if _, err := os.Stat(cfg.LocationsPath); err != nil {
		return nil
	}
	if err := validation.NewSchemaValidator().ValidateFile(cfg.LocationsPath, cfg.LocationsSchema); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	return nil
}
