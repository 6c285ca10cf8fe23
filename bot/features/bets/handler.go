package bets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bettracker/bot/common"
	"bettracker/domain/entities"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const gameDateLayout = "2006-01-02"

// handlePlace logs a new pending wager for the invoking member
func (f *Feature) handlePlace(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) {
	ctx := context.Background()

	invoker, err := common.InvokerFromInteraction(i)
	if err != nil {
		common.HandleError(s, i, err, "failed to resolve invoker")
		return
	}

	req, err := buildPlaceRequest(invoker.DiscordID, opts)
	if err != nil {
		common.HandleError(s, i, err, "failed to parse wager")
		return
	}

	var wager *entities.Wager
	err = common.RunInGuild(ctx, f.uowFactory, f.defaults, invoker, func(svc *common.GuildServices, _ *entities.User) error {
		var placeErr error
		wager, placeErr = svc.Wagers.PlaceWager(ctx, req)
		return placeErr
	})
	if err != nil {
		common.HandleError(s, i, err, "failed to place wager")
		return
	}

	respondWithEmbed(s, i, BuildPlacedEmbed(wager))
}

// handleSettle records the outcome of one of the member's pending wagers
func (f *Feature) handleSettle(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) {
	ctx := context.Background()

	invoker, err := common.InvokerFromInteraction(i)
	if err != nil {
		common.HandleError(s, i, err, "failed to resolve invoker")
		return
	}

	result, err := entities.ParseSettlementResult(opts.String("result"))
	if err != nil {
		common.HandleError(s, i, common.NewUserError("Result must be won, lost, push or void.", err), "")
		return
	}
	wagerID := opts.Int("id", 0)

	var (
		wager     *entities.Wager
		userStats *entities.UserStats
	)
	err = common.RunInGuild(ctx, f.uowFactory, f.defaults, invoker, func(svc *common.GuildServices, _ *entities.User) error {
		var settleErr error
		wager, userStats, settleErr = svc.Wagers.SettleWager(ctx, invoker.DiscordID, wagerID, result)
		return settleErr
	})
	if err != nil {
		common.HandleError(s, i, err, "failed to settle wager")
		return
	}

	respondWithEmbed(s, i, BuildSettledEmbed(wager, userStats))
}

// handleList shows the member's most recent wagers
func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) {
	ctx := context.Background()

	invoker, err := common.InvokerFromInteraction(i)
	if err != nil {
		common.HandleError(s, i, err, "failed to resolve invoker")
		return
	}

	var (
		wagers []*entities.Wager
		user   *entities.User
	)
	err = common.RunInGuild(ctx, f.uowFactory, f.defaults, invoker, func(svc *common.GuildServices, u *entities.User) error {
		user = u
		var listErr error
		wagers, listErr = svc.Wagers.ListWagers(ctx, invoker.DiscordID, int(opts.Int("limit", 0)))
		return listErr
	})
	if err != nil {
		common.HandleError(s, i, err, "failed to list wagers")
		return
	}

	respondWithEmbed(s, i, BuildWagerListEmbed(displayName(user), wagers))
}

// buildPlaceRequest converts /bet place options into a wager request.
// Field validation is left to the wager service.
func buildPlaceRequest(discordID int64, opts common.Options) (*entities.PlaceWagerRequest, error) {
	stake, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(opts.String("stake")), "$"))
	if err != nil {
		return nil, common.NewUserError("Stake must be a number such as 25 or 12.50.", err)
	}

	req := &entities.PlaceWagerRequest{
		DiscordID:    discordID,
		Sport:        strings.TrimSpace(opts.String("sport")),
		League:       opts.String("league"),
		BetType:      entities.BetType(opts.String("bet_type")),
		Description:  opts.String("description"),
		OddsAmerican: int(opts.Int("odds", 0)),
		Stake:        stake,
		Sportsbook:   opts.String("sportsbook"),
		Notes:        opts.String("notes"),
		Tags:         parseTags(opts.String("tags")),
	}

	if raw := strings.TrimSpace(opts.String("game_date")); raw != "" {
		gameDate, err := time.ParseInLocation(gameDateLayout, raw, time.UTC)
		if err != nil {
			return nil, common.NewUserError(fmt.Sprintf("Game date must look like %s.", gameDateLayout), err)
		}
		req.GameDate = &gameDate
	}

	return req, nil
}

// parseTags splits a comma separated tag list, dropping blanks
func parseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, strings.ToLower(tag))
		}
	}
	return tags
}

func displayName(user *entities.User) string {
	if user.DisplayName != nil && *user.DisplayName != "" {
		return *user.DisplayName
	}
	return user.Username
}

func respondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.WithError(err).WithField("command", "bet").Error("Failed to respond to interaction")
	}
}
