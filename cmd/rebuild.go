package cmd

import (
	"context"
	"fmt"

	"bettracker/application"
	"bettracker/config"
	"bettracker/database"
	"bettracker/infrastructure"
	"bettracker/repository"

	log "github.com/sirupsen/logrus"
)

// RebuildStats recomputes every stats record once and reports drift
func RebuildStats(ctx context.Context) error {
	cfg := config.Get()
	ConfigureLogging(cfg)

	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL(), cfg.PoolOptions())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	worker := application.NewStatsRebuildWorker(
		infrastructure.NewUnitOfWorkFactory(db, infrastructure.NewNoopEventPublisher()),
		repository.NewGuildRepository(db),
		cfg.DefaultUnitSize,
	)

	results, err := worker.RunOnce(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		log.WithFields(log.Fields{
			"guild_id":      r.GuildID,
			"users_checked": r.UsersChecked,
			"drifted":       r.Drifted,
		}).Info("Guild stats rebuilt")
	}
	return nil
}
