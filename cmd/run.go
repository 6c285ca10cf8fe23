package cmd

import (
	"context"
	"fmt"
	"time"

	"bettracker/application"
	"bettracker/bot"
	"bettracker/bot/common"
	"bettracker/config"
	"bettracker/database"
	"bettracker/infrastructure"
	"bettracker/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	ConfigureLogging(cfg)

	log.Info("Starting bettracker bot...")

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL(), cfg.PoolOptions())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.MigrateUp(cfg.GetDatabaseURL()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database connection established successfully")

	// Remote event publishing is optional
	var natsClient *infrastructure.NATSClient
	if cfg.NATSServers != "" {
		natsClient = infrastructure.NewNATSClient(cfg.NATSServers)
		if err := natsClient.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer func() {
			if err := natsClient.Close(); err != nil {
				log.WithError(err).Error("Error closing NATS connection")
			}
		}()
	} else {
		log.Info("NATS_SERVERS not set, publishing events in-process only")
	}

	eventPublisher := infrastructure.NewNATSEventPublisher(natsClient, infrastructure.NewEventSubjectMapper())
	if natsClient != nil {
		if err := eventPublisher.EnsureDomainEventStream(natsClient); err != nil {
			return fmt.Errorf("failed to ensure event stream: %w", err)
		}
	}

	uowFactory := infrastructure.NewUnitOfWorkFactory(db, eventPublisher)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:            cfg.DiscordToken,
		GuildID:          cfg.GuildID,
		StreakChannelID:  cfg.StreakChannelID,
		LeaderboardLimit: cfg.LeaderboardDefaultLimit,
		Defaults: common.ServiceDefaults{
			VerifiedIDs:     cfg.VerifiedDiscordIDs,
			DefaultUnitSize: cfg.DefaultUnitSize,
		},
	}
	discordBot, err := bot.New(botConfig, uowFactory, eventPublisher)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Nightly rebuild recomputes from history without announcing
	rebuildWorker := application.NewStatsRebuildWorker(
		infrastructure.NewUnitOfWorkFactory(db, infrastructure.NewNoopEventPublisher()),
		repository.NewGuildRepository(db),
		cfg.DefaultUnitSize,
	)
	stopRebuildWorker, err := rebuildWorker.Start(ctx, cfg.StatsRebuildSchedule)
	if err != nil {
		discordBot.Close()
		return fmt.Errorf("failed to start stats rebuild worker: %w", err)
	}

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")

	stopped := make(chan struct{})
	go func() {
		stopRebuildWorker()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(30 * time.Second):
		log.Warn("Stats rebuild did not finish before shutdown timeout")
	}

	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	log.Info("Shutdown completed")
	return nil
}
