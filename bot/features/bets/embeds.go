package bets

import (
	"fmt"
	"strings"
	"time"

	"bettracker/bot/common"
	"bettracker/domain/entities"
	"bettracker/domain/odds"
	"bettracker/domain/utils"

	"github.com/bwmarrin/discordgo"
)

// resultIcons maps a wager result to the emoji shown next to it
var resultIcons = map[entities.WagerResult]string{
	entities.WagerResultPending: "⏳",
	entities.WagerResultWon:     "✅",
	entities.WagerResultLost:    "❌",
	entities.WagerResultPush:    "➖",
	entities.WagerResultVoid:    "🚫",
}

// resultColors maps a wager result to the embed color
var resultColors = map[entities.WagerResult]int{
	entities.WagerResultPending: common.ColorInfo,
	entities.WagerResultWon:     common.ColorSuccess,
	entities.WagerResultLost:    common.ColorDanger,
	entities.WagerResultPush:    common.ColorNeutral,
	entities.WagerResultVoid:    common.ColorNeutral,
}

// BuildPlacedEmbed confirms a newly logged wager
func BuildPlacedEmbed(w *entities.Wager) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Odds", Value: fmt.Sprintf("%s (%s)", odds.FormatAmerican(w.OddsAmerican), w.OddsDecimal.StringFixed(2)), Inline: true},
		{Name: "Stake", Value: utils.FormatCurrency(w.Stake), Inline: true},
		{Name: "To Win", Value: utils.FormatCurrency(w.PotentialReturn.Sub(w.Stake)), Inline: true},
	}
	fields = append(fields, detailFields(w)...)

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Wager #%d logged", resultIcons[w.Result], w.ID),
		Description: fmt.Sprintf("**%s**\n%s", w.Description, marketLine(w)),
		Color:       resultColors[w.Result],
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Settle with /bet settle id:%d", w.ID),
		},
		Timestamp: w.CreatedAt.Format(time.RFC3339),
	}
}

// BuildSettledEmbed shows a settled wager with the member's updated record
func BuildSettledEmbed(w *entities.Wager, stats *entities.UserStats) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Wager #%d %s", resultIcons[w.Result], w.ID, strings.ToUpper(string(w.Result))),
		Description: fmt.Sprintf("**%s**\n%s", w.Description, marketLine(w)),
		Color:       resultColors[w.Result],
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Stake", Value: utils.FormatCurrency(w.Stake), Inline: true},
			{Name: "Returned", Value: utils.FormatCurrency(w.Stake.Add(w.NetProfit())), Inline: true},
			{Name: "Profit", Value: utils.FormatSignedCurrency(w.NetProfit()), Inline: true},
		},
	}

	if stats != nil {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Record", Value: recordLine(stats), Inline: true},
			&discordgo.MessageEmbedField{Name: "Net", Value: utils.FormatSignedCurrency(stats.NetProfit), Inline: true},
			&discordgo.MessageEmbedField{Name: "Streak", Value: utils.FormatStreak(stats.CurrentStreak), Inline: true},
		)
	}
	if w.SettledAt != nil {
		embed.Timestamp = w.SettledAt.Format(time.RFC3339)
	}
	return embed
}

// BuildWagerListEmbed lists recent wagers, newest first
func BuildWagerListEmbed(name string, wagers []*entities.Wager) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📋 Recent wagers for %s", name),
		Color: common.ColorPrimary,
	}

	if len(wagers) == 0 {
		embed.Description = "No wagers logged yet. Use /bet place to log one."
		return embed
	}

	var b strings.Builder
	for _, w := range wagers {
		line := fmt.Sprintf("%s `#%d` **%s** %s @ %s, %s",
			resultIcons[w.Result], w.ID, w.Description,
			w.Sport, odds.FormatAmerican(w.OddsAmerican), utils.FormatCurrency(w.Stake))
		if !w.IsPending() {
			line += fmt.Sprintf(" → %s", utils.FormatSignedCurrency(w.NetProfit()))
		}
		if b.Len()+len(line)+1 > common.MaxEmbedDescription {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	embed.Description = strings.TrimRight(b.String(), "\n")
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Showing %d wagers", len(wagers))}
	return embed
}

func marketLine(w *entities.Wager) string {
	parts := []string{w.Sport}
	if w.League != nil {
		parts = append(parts, *w.League)
	}
	parts = append(parts, string(w.BetType))
	return strings.Join(parts, " · ")
}

func detailFields(w *entities.Wager) []*discordgo.MessageEmbedField {
	var fields []*discordgo.MessageEmbedField
	if w.Sportsbook != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Book", Value: *w.Sportsbook, Inline: true})
	}
	if w.GameDate != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Game", Value: w.GameDate.Format(gameDateLayout), Inline: true})
	}
	if len(w.Tags) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Tags", Value: strings.Join(w.Tags, ", "), Inline: true})
	}
	if w.Notes != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Notes", Value: *w.Notes})
	}
	return fields
}

func recordLine(stats *entities.UserStats) string {
	record := fmt.Sprintf("%d-%d", stats.Wins, stats.Losses)
	if stats.Pushes > 0 {
		record += fmt.Sprintf("-%d", stats.Pushes)
	}
	return record
}
