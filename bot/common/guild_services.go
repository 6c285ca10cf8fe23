package common

import (
	"context"
	"fmt"

	"bettracker/application"
	"bettracker/domain/entities"
	"bettracker/domain/interfaces"
	"bettracker/domain/services"

	"github.com/shopspring/decimal"
)

// ServiceDefaults carries the configuration every guild-scoped service needs
type ServiceDefaults struct {
	VerifiedIDs     []int64
	DefaultUnitSize decimal.Decimal
}

// GuildServices are the domain services bound to one unit of work
type GuildServices struct {
	Users  interfaces.UserService
	Wagers interfaces.WagerService
	Stats  interfaces.StatsService
}

// RunInGuild runs fn inside a guild-scoped unit of work after registering
// the invoking member. The unit of work commits only if fn succeeds.
func RunInGuild(
	ctx context.Context,
	uowFactory application.UnitOfWorkFactory,
	defaults ServiceDefaults,
	invoker *Invoker,
	fn func(svc *GuildServices, user *entities.User) error,
) error {
	uow := uowFactory.CreateForGuild(invoker.GuildID)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	statsService := services.NewStatsService(
		invoker.GuildID,
		uow.StatsRepository(),
		uow.WagerRepository(),
		uow.EventBus(),
		defaults.DefaultUnitSize,
	)
	svc := &GuildServices{
		Users:  services.NewUserService(uow.UserRepository(), uow.EventBus(), defaults.VerifiedIDs),
		Wagers: services.NewWagerService(uow.WagerRepository(), statsService, uow.EventBus()),
		Stats:  statsService,
	}

	user, err := svc.Users.GetOrCreateUser(ctx, invoker.DiscordID, invoker.Profile)
	if err != nil {
		return err
	}

	if err := fn(svc, user); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
