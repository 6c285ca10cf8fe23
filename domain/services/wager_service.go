package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bettracker/domain"
	"bettracker/domain/entities"
	"bettracker/domain/events"
	"bettracker/domain/interfaces"
	"bettracker/domain/odds"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var validate = validator.New()

const (
	defaultWagerListLimit = 10
	maxWagerListLimit     = 100
)

// wagerService implements the WagerService interface
type wagerService struct {
	wagerRepo      interfaces.WagerRepository
	statsService   interfaces.StatsService
	eventPublisher interfaces.EventPublisher
}

// NewWagerService creates a new wager service
func NewWagerService(
	wagerRepo interfaces.WagerRepository,
	statsService interfaces.StatsService,
	eventPublisher interfaces.EventPublisher,
) interfaces.WagerService {
	return &wagerService{
		wagerRepo:      wagerRepo,
		statsService:   statsService,
		eventPublisher: eventPublisher,
	}
}

// PlaceWager validates and logs a new pending wager
func (s *wagerService) PlaceWager(ctx context.Context, req *entities.PlaceWagerRequest) (*entities.Wager, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", describeValidationError(err), domain.ErrInvalidInput)
	}

	potential, err := odds.PotentialReturn(req.Stake, req.OddsAmerican)
	if err != nil {
		return nil, err
	}
	decimalOdds, err := odds.ToDecimalOdds(req.OddsAmerican)
	if err != nil {
		return nil, err
	}

	wager := &entities.Wager{
		DiscordID:       req.DiscordID,
		Sport:           strings.TrimSpace(req.Sport),
		League:          optionalString(req.League),
		BetType:         req.BetType,
		Description:     strings.TrimSpace(req.Description),
		OddsAmerican:    req.OddsAmerican,
		OddsDecimal:     decimalOdds,
		Stake:           req.Stake,
		PotentialReturn: potential,
		Result:          entities.WagerResultPending,
		Sportsbook:      optionalString(req.Sportsbook),
		GameDate:        req.GameDate,
		Notes:           optionalString(req.Notes),
		Tags:            req.Tags,
	}

	if err := s.wagerRepo.Create(ctx, wager); err != nil {
		return nil, fmt.Errorf("failed to create wager: %w", err)
	}

	if err := s.eventPublisher.Publish(events.WagerPlacedEvent{
		WagerID:         wager.ID,
		DiscordID:       wager.DiscordID,
		GuildID:         wager.GuildID,
		Sport:           wager.Sport,
		BetType:         string(wager.BetType),
		OddsAmerican:    wager.OddsAmerican,
		Stake:           wager.Stake,
		PotentialReturn: wager.PotentialReturn,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish wager placed event: %w", err)
	}

	// Pending count is part of the stats record
	if _, err := s.statsService.RecomputeStats(ctx, wager.DiscordID); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"wager_id":   wager.ID,
		"discord_id": wager.DiscordID,
		"odds":       wager.OddsAmerican,
		"stake":      wager.Stake.String(),
	}).Info("Wager placed")

	return wager, nil
}

// SettleWager records the outcome of a pending wager owned by discordID
func (s *wagerService) SettleWager(ctx context.Context, discordID, wagerID int64, result entities.WagerResult) (*entities.Wager, *entities.UserStats, error) {
	if !result.IsSettled() {
		return nil, nil, fmt.Errorf("cannot settle wager as %q: %w", result, domain.ErrInvalidInput)
	}

	wager, err := s.wagerRepo.GetByID(ctx, wagerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get wager: %w", err)
	}
	if wager == nil {
		return nil, nil, fmt.Errorf("wager %d: %w", wagerID, domain.ErrWagerNotFound)
	}
	if wager.DiscordID != discordID {
		return nil, nil, fmt.Errorf("wager %d: %w", wagerID, domain.ErrNotWagerOwner)
	}
	if !wager.IsPending() {
		return nil, nil, fmt.Errorf("wager %d is %s: %w", wagerID, wager.Result, domain.ErrAlreadySettled)
	}

	actualReturn, err := odds.ActualReturn(wager.Stake, wager.PotentialReturn, result)
	if err != nil {
		return nil, nil, err
	}

	settled, err := s.wagerRepo.Settle(ctx, wagerID, result, actualReturn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to settle wager: %w", err)
	}
	if settled == nil {
		// Another settlement won the race
		return nil, nil, fmt.Errorf("wager %d: %w", wagerID, domain.ErrAlreadySettled)
	}

	if err := s.eventPublisher.Publish(events.WagerSettledEvent{
		WagerID:      settled.ID,
		DiscordID:    settled.DiscordID,
		GuildID:      settled.GuildID,
		Result:       string(settled.Result),
		Stake:        settled.Stake,
		ActualReturn: actualReturn,
		SettledAt:    *settled.SettledAt,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to publish wager settled event: %w", err)
	}

	userStats, err := s.statsService.RecomputeStats(ctx, discordID)
	if err != nil {
		return nil, nil, err
	}

	log.WithFields(log.Fields{
		"wager_id":      settled.ID,
		"discord_id":    discordID,
		"result":        settled.Result,
		"actual_return": actualReturn.String(),
	}).Info("Wager settled")

	return settled, userStats, nil
}

// ListWagers returns a user's most recent wagers, newest first
func (s *wagerService) ListWagers(ctx context.Context, discordID int64, limit int) ([]*entities.Wager, error) {
	if limit == 0 {
		limit = defaultWagerListLimit
	}
	if limit < 1 || limit > maxWagerListLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d: %w", maxWagerListLimit, domain.ErrInvalidInput)
	}

	wagers, err := s.wagerRepo.GetRecentByUser(ctx, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list wagers: %w", err)
	}
	return wagers, nil
}

// describeValidationError turns validator field errors into a short message
func describeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", strings.ToLower(fe.Field()), fe.Param()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of %s", strings.ToLower(fe.Field()), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(parts, "; ")
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
