package stats

import (
	"fmt"
	"strings"

	"bettracker/bot/common"
	"bettracker/domain/entities"
	"bettracker/domain/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
)

// getMedalForRank returns the appropriate medal emoji or rank number
func getMedalForRank(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

// BuildStatsEmbed renders one member's performance card
func BuildStatsEmbed(name string, s *entities.UserStats) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 %s", name),
		Color: profitColor(s.NetProfit),
	}

	if s.TotalBets == 0 && s.Pending == 0 {
		embed.Description = "No wagers logged yet."
		return embed
	}

	record := fmt.Sprintf("%d-%d", s.Wins, s.Losses)
	if s.Pushes > 0 {
		record += fmt.Sprintf("-%d", s.Pushes)
	}
	if voids := s.Voids(); voids > 0 {
		record += fmt.Sprintf(" (%d void)", voids)
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Record", Value: record, Inline: true},
		{Name: "Win Rate", Value: utils.FormatPercentage(s.WinRate), Inline: true},
		{Name: "Pending", Value: fmt.Sprintf("%d", s.Pending), Inline: true},
		{Name: "Staked", Value: utils.FormatCurrency(s.TotalStaked), Inline: true},
		{Name: "Net", Value: utils.FormatSignedCurrency(s.NetProfit), Inline: true},
		{Name: "ROI", Value: utils.FormatPercentage(s.ROI), Inline: true},
		{Name: "Units", Value: fmt.Sprintf("%s on %s wagered", utils.FormatUnits(s.UnitsWon), s.UnitsWagered.StringFixed(2)), Inline: true},
		{Name: "Avg Odds", Value: s.AverageOdds.StringFixed(2), Inline: true},
		{Name: "Streak", Value: fmt.Sprintf("%s (best %s, worst %s)",
			utils.FormatStreak(s.CurrentStreak), utils.FormatStreak(s.BestStreak), utils.FormatStreak(s.WorstStreak)), Inline: true},
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("1u = %s", utils.FormatCurrency(s.UnitSize)),
	}
	return embed
}

// BuildLeaderboardEmbed renders ranked entries, one line each
func BuildLeaderboardEmbed(entries []*entities.LeaderboardEntry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🏆 Leaderboard 🏆",
		Color: common.ColorPrimary,
	}

	if len(entries) == 0 {
		embed.Description = "Nobody has settled a wager yet."
		return embed
	}

	var b strings.Builder
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsVerified {
			name += " ✔️"
		}
		line := fmt.Sprintf("%s **%s** %s ROI · %s · %s",
			getMedalForRank(entry.Rank),
			name,
			utils.FormatPercentage(entry.Stats.ROI),
			formatProfitLoss(entry.Stats.NetProfit),
			utils.FormatStreak(entry.Stats.CurrentStreak))
		if b.Len()+len(line)+1 > common.MaxEmbedDescription {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	embed.Description = strings.TrimRight(b.String(), "\n")
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Ranked by ROI, then net profit"}
	return embed
}

// BuildUnitSizeEmbed confirms a unit size change
func BuildUnitSizeEmbed(s *entities.UserStats) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⚖️ Unit size updated",
		Description: fmt.Sprintf("1u is now %s.", utils.FormatCurrency(s.UnitSize)),
		Color:       common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Units Wagered", Value: s.UnitsWagered.StringFixed(2), Inline: true},
			{Name: "Units Won", Value: utils.FormatUnits(s.UnitsWon), Inline: true},
		},
	}
}

// formatProfitLoss formats net profit with markdown emphasis and short notation
func formatProfitLoss(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return fmt.Sprintf("*%s*", utils.FormatShortCurrency(amount))
	}
	return fmt.Sprintf("**+%s**", utils.FormatShortCurrency(amount))
}

func profitColor(net decimal.Decimal) int {
	switch {
	case net.IsPositive():
		return common.ColorSuccess
	case net.IsNegative():
		return common.ColorDanger
	default:
		return common.ColorNeutral
	}
}
