package stats

import (
	"strings"
	"testing"
	"time"

	"bettracker/bot/common"
	"bettracker/domain/entities"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldValue(t *testing.T, embed *discordgo.MessageEmbed, name string) string {
	t.Helper()
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	require.Failf(t, "missing field", "embed has no %q field", name)
	return ""
}

func sampleStats() *entities.UserStats {
	last := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	return &entities.UserStats{
		DiscordID:     111,
		GuildID:       999,
		TotalBets:     6,
		Wins:          3,
		Losses:        1,
		Pushes:        1,
		Pending:       2,
		TotalStaked:   decimal.NewFromInt(600),
		NetProfit:     decimal.RequireFromString("172.73"),
		ROI:           decimal.RequireFromString("28.7883"),
		WinRate:       decimal.NewFromInt(75),
		AverageOdds:   decimal.RequireFromString("1.95"),
		CurrentStreak: 2,
		BestStreak:    3,
		WorstStreak:   -1,
		UnitSize:      decimal.NewFromInt(50),
		UnitsWagered:  decimal.NewFromInt(12),
		UnitsWon:      decimal.RequireFromString("3.4546"),
		LastBetAt:     &last,
	}
}

func TestBuildStatsEmbed(t *testing.T) {
	embed := BuildStatsEmbed("Sharp", sampleStats())

	assert.Equal(t, "📊 Sharp", embed.Title)
	assert.Equal(t, common.ColorSuccess, embed.Color)
	assert.Equal(t, "3-1-1 (1 void)", fieldValue(t, embed, "Record"))
	assert.Equal(t, "75.00%", fieldValue(t, embed, "Win Rate"))
	assert.Equal(t, "+$172.73", fieldValue(t, embed, "Net"))
	assert.Equal(t, "28.79%", fieldValue(t, embed, "ROI"))
	assert.Equal(t, "+3.45u on 12.00 wagered", fieldValue(t, embed, "Units"))
	assert.Equal(t, "W2 (best W3, worst L1)", fieldValue(t, embed, "Streak"))
	assert.Equal(t, "1u = $50.00", embed.Footer.Text)
}

func TestBuildStatsEmbed_NoHistory(t *testing.T) {
	embed := BuildStatsEmbed("Rookie", &entities.UserStats{UnitSize: decimal.NewFromInt(100)})

	assert.Equal(t, common.ColorNeutral, embed.Color)
	assert.Equal(t, "No wagers logged yet.", embed.Description)
	assert.Empty(t, embed.Fields)
}

func TestBuildLeaderboardEmbed(t *testing.T) {
	display := "Sharp"
	losing := sampleStats()
	losing.ROI = decimal.NewFromInt(-15)
	losing.NetProfit = decimal.NewFromInt(-1500)
	losing.CurrentStreak = -3

	entries := []*entities.LeaderboardEntry{
		{Rank: 1, Stats: sampleStats(), Username: "sharpshooter", DisplayName: &display, IsVerified: true},
		{Rank: 2, Stats: sampleStats(), Username: "second"},
		{Rank: 3, Stats: sampleStats(), Username: "third"},
		{Rank: 4, Stats: losing, Username: "fader"},
	}

	embed := BuildLeaderboardEmbed(entries)
	lines := strings.Split(embed.Description, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "🥇 **Sharp ✔️** 28.79% ROI · **+$172.73** · W2", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "🥈 **second**"))
	assert.True(t, strings.HasPrefix(lines[2], "🥉 **third**"))
	assert.Equal(t, "4. **fader** -15.00% ROI · *-$1.5k* · L3", lines[3])
}

func TestBuildLeaderboardEmbed_Empty(t *testing.T) {
	embed := BuildLeaderboardEmbed(nil)
	assert.Equal(t, "Nobody has settled a wager yet.", embed.Description)
}

func TestBuildUnitSizeEmbed(t *testing.T) {
	embed := BuildUnitSizeEmbed(sampleStats())

	assert.Equal(t, "1u is now $50.00.", embed.Description)
	assert.Equal(t, "12.00", fieldValue(t, embed, "Units Wagered"))
	assert.Equal(t, "+3.45u", fieldValue(t, embed, "Units Won"))
}
