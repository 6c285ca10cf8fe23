package stats

import (
	"testing"
	"time"

	"bettracker/domain"
	"bettracker/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(discordID int64, totalBets int, roi, net string, lastBet *time.Time) *entities.LeaderboardEntry {
	return &entities.LeaderboardEntry{
		Username: "user",
		Stats: &entities.UserStats{
			DiscordID: discordID,
			GuildID:   testGuildID,
			TotalBets: totalBets,
			ROI:       dec(roi),
			NetProfit: dec(net),
			LastBetAt: lastBet,
		},
	}
}

func at(minutes int) *time.Time {
	t := baseTime.Add(time.Duration(minutes) * time.Minute)
	return &t
}

func ids(entries []*entities.LeaderboardEntry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Stats.DiscordID)
	}
	return out
}

func TestRankLeaderboard_OrdersByROI(t *testing.T) {
	input := []*entities.LeaderboardEntry{
		entry(1, 10, "5.5", "55", at(0)),
		entry(2, 4, "-12", "-48", at(1)),
		entry(3, 8, "22.75", "91", at(2)),
		entry(4, 0, "0", "0", nil),
		entry(5, 1, "100", "10", at(3)),
	}

	got, err := RankLeaderboard(input, DefaultLeaderboardLimit)
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 3, 1, 2}, ids(got))
	for i, e := range got {
		assert.Equal(t, i+1, e.Rank)
		assert.GreaterOrEqual(t, e.Stats.TotalBets, 1)
	}
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Stats.ROI.GreaterThanOrEqual(got[i].Stats.ROI))
	}
}

func TestRankLeaderboard_TieBreaks(t *testing.T) {
	input := []*entities.LeaderboardEntry{
		entry(10, 3, "10", "30", at(5)),
		entry(11, 3, "10", "50", at(9)), // higher net profit wins the roi tie
		entry(12, 3, "10", "30", at(1)), // earlier activity wins the profit tie
		entry(13, 3, "10", "30", at(1)), // same activity, higher discord id
		entry(14, 3, "10", "30", nil),   // no activity sorts last among equals
	}

	got, err := RankLeaderboard(input, 5)
	require.NoError(t, err)

	assert.Equal(t, []int64{11, 12, 13, 10, 14}, ids(got))
}

func TestRankLeaderboard_Limit(t *testing.T) {
	input := make([]*entities.LeaderboardEntry, 0, 150)
	for i := 0; i < 150; i++ {
		input = append(input, entry(int64(i+1), 1, "1", "1", at(i)))
	}

	got, err := RankLeaderboard(input, 100)
	require.NoError(t, err)
	assert.Len(t, got, 100)
	assert.Equal(t, 100, got[99].Rank)

	got, err = RankLeaderboard(input, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestRankLeaderboard_InvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -1, 101} {
		_, err := RankLeaderboard(nil, limit)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "limit %d", limit)
	}
}

func TestRankLeaderboard_DoesNotMutateInput(t *testing.T) {
	input := []*entities.LeaderboardEntry{
		entry(1, 2, "1", "1", at(0)),
		entry(2, 2, "9", "9", at(0)),
	}

	got, err := RankLeaderboard(input, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), input[0].Stats.DiscordID)
	assert.Equal(t, 0, input[0].Rank)
	assert.Equal(t, 0, input[1].Rank)
}

func TestRankLeaderboard_Empty(t *testing.T) {
	got, err := RankLeaderboard([]*entities.LeaderboardEntry{entry(1, 0, "0", "0", nil)}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
