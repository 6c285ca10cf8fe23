package application

import (
	"context"
	"fmt"
	"time"

	"bettracker/domain/entities"
	"bettracker/domain/interfaces"
	"bettracker/domain/services"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// StatsRebuildWorker periodically recomputes every stats record from the
// wager history and reports records that had drifted
type StatsRebuildWorker struct {
	uowFactory      UnitOfWorkFactory
	guildRepo       interfaces.GuildRepository
	defaultUnitSize decimal.Decimal
}

// NewStatsRebuildWorker creates a new stats rebuild worker
func NewStatsRebuildWorker(
	uowFactory UnitOfWorkFactory,
	guildRepo interfaces.GuildRepository,
	defaultUnitSize decimal.Decimal,
) *StatsRebuildWorker {
	return &StatsRebuildWorker{
		uowFactory:      uowFactory,
		guildRepo:       guildRepo,
		defaultUnitSize: defaultUnitSize,
	}
}

// Start schedules the rebuild with a standard five field cron expression
// evaluated in UTC. The returned function stops the schedule and waits for
// a running rebuild to finish.
func (w *StatsRebuildWorker) Start(ctx context.Context, schedule string) (func(), error) {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(schedule, func() {
		log.Info("Rebuilding stats for all guilds")
		if _, err := w.RunOnce(ctx); err != nil {
			log.WithError(err).Error("Error rebuilding stats")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid stats rebuild schedule %q: %w", schedule, err)
	}

	c.Start()
	log.WithField("schedule", schedule).Info("Stats rebuild worker started")

	return func() {
		<-c.Stop().Done()
		log.Info("Stats rebuild worker stopped")
	}, nil
}

// RunOnce rebuilds every guild. A failing guild is logged and skipped.
func (w *StatsRebuildWorker) RunOnce(ctx context.Context) ([]*entities.RebuildResult, error) {
	guildIDs, err := w.guildRepo.ListGuildIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}

	var successCount, failureCount, driftCount int
	results := make([]*entities.RebuildResult, 0, len(guildIDs))

	for _, guildID := range guildIDs {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		result, err := w.rebuildGuild(ctx, guildID)
		if err != nil {
			log.WithError(err).WithField("guild_id", guildID).Error("Error rebuilding guild stats")
			failureCount++
			continue
		}

		successCount++
		driftCount += result.Drifted
		results = append(results, result)
	}

	log.WithFields(log.Fields{
		"total_guilds": len(guildIDs),
		"successful":   successCount,
		"failed":       failureCount,
		"drifted":      driftCount,
	}).Info("Completed stats rebuild")

	return results, nil
}

func (w *StatsRebuildWorker) rebuildGuild(ctx context.Context, guildID int64) (*entities.RebuildResult, error) {
	uow := w.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	statsService := services.NewStatsService(
		guildID,
		uow.StatsRepository(),
		uow.WagerRepository(),
		uow.EventBus(),
		w.defaultUnitSize,
	)

	result, err := statsService.RebuildAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stats rebuild: %w", err)
	}

	return result, nil
}
