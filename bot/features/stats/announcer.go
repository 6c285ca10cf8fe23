package stats

import (
	"context"
	"fmt"

	"bettracker/bot/common"
	"bettracker/domain/events"
	"bettracker/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// StreakMilestone is the streak length announced, along with its multiples
const StreakMilestone = 5

// embedSender is the part of a Discord session used to post announcements
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// StreakAnnouncer posts win and loss streak milestones to a channel
type StreakAnnouncer struct {
	sender    embedSender
	channelID string
	guildID   int64 // zero accepts every guild
}

// NewStreakAnnouncer creates an announcer posting to channelID
func NewStreakAnnouncer(sender embedSender, channelID string, guildID int64) *StreakAnnouncer {
	return &StreakAnnouncer{
		sender:    sender,
		channelID: channelID,
		guildID:   guildID,
	}
}

// HandleStatsUpdated is registered as a local handler for stats updates
func (a *StreakAnnouncer) HandleStatsUpdated(ctx context.Context, event events.Event) error {
	updated, ok := event.(events.StatsUpdatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	if a.guildID != 0 && updated.GuildID != a.guildID {
		return nil
	}
	if !reachedMilestone(updated.PreviousStreak, updated.CurrentStreak) {
		return nil
	}

	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, buildStreakEmbed(updated)); err != nil {
		return fmt.Errorf("failed to post streak announcement: %w", err)
	}

	log.WithFields(log.Fields{
		"discord_id": updated.DiscordID,
		"guild_id":   updated.GuildID,
		"streak":     updated.CurrentStreak,
	}).Info("Announced streak milestone")
	return nil
}

// reachedMilestone reports whether the streak just moved onto a multiple of StreakMilestone
func reachedMilestone(previous, current int) bool {
	if current == 0 || current == previous {
		return false
	}
	if current < 0 {
		current = -current
	}
	return current%StreakMilestone == 0
}

func buildStreakEmbed(e events.StatsUpdatedEvent) *discordgo.MessageEmbed {
	mention := common.GetUserMention(e.DiscordID)
	if e.CurrentStreak > 0 {
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔥 %s heater", utils.FormatStreak(e.CurrentStreak)),
			Description: fmt.Sprintf("%s has won %d in a row. Net %s, ROI %s.", mention, e.CurrentStreak, utils.FormatSignedCurrency(e.NetProfit), utils.FormatPercentage(e.ROI)),
			Color:       common.ColorSuccess,
		}
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🧊 %s cold streak", utils.FormatStreak(e.CurrentStreak)),
		Description: fmt.Sprintf("%s has lost %d in a row. Net %s, ROI %s.", mention, -e.CurrentStreak, utils.FormatSignedCurrency(e.NetProfit), utils.FormatPercentage(e.ROI)),
		Color:       common.ColorDanger,
	}
}
