package stats

import (
	"context"
	"strings"

	"bettracker/bot/common"
	"bettracker/domain/entities"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// handleUserStats shows the stats card of the invoker or of targetID
func (f *Feature) handleUserStats(s *discordgo.Session, i *discordgo.InteractionCreate, targetID string) {
	ctx := context.Background()

	invoker, err := common.InvokerFromInteraction(i)
	if err != nil {
		common.HandleError(s, i, err, "failed to resolve invoker")
		return
	}

	discordID := invoker.DiscordID
	name := invoker.Profile.DisplayName
	if name == "" {
		name = invoker.Profile.Username
	}
	if targetID != "" {
		if discordID, err = common.ParseUserID(targetID); err != nil {
			common.HandleError(s, i, err, "failed to parse target user")
			return
		}
		name = resolvedName(i, targetID)
	}

	var userStats *entities.UserStats
	err = common.RunInGuild(ctx, f.uowFactory, f.defaults, invoker, func(svc *common.GuildServices, _ *entities.User) error {
		var statsErr error
		userStats, statsErr = svc.Stats.GetUserStats(ctx, discordID)
		return statsErr
	})
	if err != nil {
		common.HandleError(s, i, err, "failed to load stats")
		return
	}

	respondWithEmbed(s, i, BuildStatsEmbed(name, userStats))
}

// handleLeaderboard shows the guild ranking
func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) {
	ctx := context.Background()

	invoker, err := common.InvokerFromInteraction(i)
	if err != nil {
		common.HandleError(s, i, err, "failed to resolve invoker")
		return
	}

	limit := int(opts.Int("limit", int64(f.leaderboardLimit)))

	var entries []*entities.LeaderboardEntry
	err = common.RunInGuild(ctx, f.uowFactory, f.defaults, invoker, func(svc *common.GuildServices, _ *entities.User) error {
		var boardErr error
		entries, boardErr = svc.Stats.GetLeaderboard(ctx, limit)
		return boardErr
	})
	if err != nil {
		common.HandleError(s, i, err, "failed to load leaderboard")
		return
	}

	respondWithEmbed(s, i, BuildLeaderboardEmbed(entries))
}

// handleUnitSize changes the invoker's unit size
func (f *Feature) handleUnitSize(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) {
	ctx := context.Background()

	invoker, err := common.InvokerFromInteraction(i)
	if err != nil {
		common.HandleError(s, i, err, "failed to resolve invoker")
		return
	}

	unitSize, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(opts.String("amount")), "$"))
	if err != nil {
		common.HandleError(s, i, common.NewUserError("Unit size must be a number such as 50 or 12.50.", err), "")
		return
	}

	var userStats *entities.UserStats
	err = common.RunInGuild(ctx, f.uowFactory, f.defaults, invoker, func(svc *common.GuildServices, _ *entities.User) error {
		var statsErr error
		userStats, statsErr = svc.Stats.SetUnitSize(ctx, invoker.DiscordID, unitSize)
		return statsErr
	})
	if err != nil {
		common.HandleError(s, i, err, "failed to set unit size")
		return
	}

	respondWithEmbed(s, i, BuildUnitSizeEmbed(userStats))
}

// resolvedName looks up a user option in the interaction's resolved data
func resolvedName(i *discordgo.InteractionCreate, userID string) string {
	resolved := i.ApplicationCommandData().Resolved
	if resolved != nil {
		if member, ok := resolved.Members[userID]; ok && member.Nick != "" {
			return member.Nick
		}
		if user, ok := resolved.Users[userID]; ok {
			if user.GlobalName != "" {
				return user.GlobalName
			}
			return user.Username
		}
	}
	return "<@" + userID + ">"
}

func respondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.WithError(err).WithField("command", "stats").Error("Failed to respond to interaction")
	}
}
