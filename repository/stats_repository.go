package repository

import (
	"context"
	"errors"
	"fmt"

	"bettracker/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// StatsRepository implements storage of derived stats records
type StatsRepository struct {
	q       Queryable
	guildID int64
}

// NewStatsRepositoryScoped creates a new stats repository with a transaction and guild scope
func NewStatsRepositoryScoped(tx Queryable, guildID int64) *StatsRepository {
	return &StatsRepository{
		q:       tx,
		guildID: guildID,
	}
}

const statsColumns = `
	s.discord_id, s.guild_id, s.total_bets, s.wins, s.losses, s.pushes, s.pending,
	s.total_staked, s.total_returned, s.net_profit, s.roi, s.win_rate, s.average_odds,
	s.current_streak, s.best_streak, s.worst_streak,
	s.unit_size, s.units_wagered, s.units_won, s.last_bet_at, s.updated_at`

// GetByDiscordID retrieves the stored stats record, or nil if none exists
func (r *StatsRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.UserStats, error) {
	query := `SELECT ` + statsColumns + ` FROM user_stats s WHERE s.discord_id = $1 AND s.guild_id = $2`

	stats, err := scanStats(r.q.QueryRow(ctx, query, discordID, r.guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for user %d: %w", discordID, err)
	}

	return stats, nil
}

// GetForUpdate returns the stored record, creating an empty one first if
// needed, and holds a row lock on it until the transaction ends
func (r *StatsRepository) GetForUpdate(ctx context.Context, discordID int64, defaultUnitSize decimal.Decimal) (*entities.UserStats, error) {
	insert := `
		INSERT INTO user_stats (discord_id, guild_id, unit_size)
		VALUES ($1, $2, $3)
		ON CONFLICT (discord_id, guild_id) DO NOTHING
	`
	if _, err := r.q.Exec(ctx, insert, discordID, r.guildID, defaultUnitSize); err != nil {
		return nil, fmt.Errorf("failed to initialize stats for user %d: %w", discordID, err)
	}

	query := `
		SELECT ` + statsColumns + `
		FROM user_stats s
		WHERE s.discord_id = $1 AND s.guild_id = $2
		FOR UPDATE
	`

	stats, err := scanStats(r.q.QueryRow(ctx, query, discordID, r.guildID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock stats for user %d: %w", discordID, err)
	}

	return stats, nil
}

// Save replaces every stored field of the record
func (r *StatsRepository) Save(ctx context.Context, stats *entities.UserStats) error {
	query := `
		INSERT INTO user_stats (
			discord_id, guild_id, total_bets, wins, losses, pushes, pending,
			total_staked, total_returned, net_profit, roi, win_rate, average_odds,
			current_streak, best_streak, worst_streak,
			unit_size, units_wagered, units_won, last_bet_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (discord_id, guild_id) DO UPDATE SET
			total_bets = EXCLUDED.total_bets,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			pushes = EXCLUDED.pushes,
			pending = EXCLUDED.pending,
			total_staked = EXCLUDED.total_staked,
			total_returned = EXCLUDED.total_returned,
			net_profit = EXCLUDED.net_profit,
			roi = EXCLUDED.roi,
			win_rate = EXCLUDED.win_rate,
			average_odds = EXCLUDED.average_odds,
			current_streak = EXCLUDED.current_streak,
			best_streak = EXCLUDED.best_streak,
			worst_streak = EXCLUDED.worst_streak,
			unit_size = EXCLUDED.unit_size,
			units_wagered = EXCLUDED.units_wagered,
			units_won = EXCLUDED.units_won,
			last_bet_at = EXCLUDED.last_bet_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.q.Exec(ctx, query,
		stats.DiscordID,
		r.guildID,
		stats.TotalBets,
		stats.Wins,
		stats.Losses,
		stats.Pushes,
		stats.Pending,
		stats.TotalStaked,
		stats.TotalReturned,
		stats.NetProfit,
		stats.ROI,
		stats.WinRate,
		stats.AverageOdds,
		stats.CurrentStreak,
		stats.BestStreak,
		stats.WorstStreak,
		stats.UnitSize,
		stats.UnitsWagered,
		stats.UnitsWon,
		stats.LastBetAt,
		stats.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save stats for user %d: %w", stats.DiscordID, err)
	}

	return nil
}

// GetLeaderboardEntries returns every stats record with at least one settled
// wager, joined with the member's display identity. Ordering is left to the ranker.
func (r *StatsRepository) GetLeaderboardEntries(ctx context.Context) ([]*entities.LeaderboardEntry, error) {
	query := `
		SELECT ` + statsColumns + `,
			u.username, u.display_name, u.avatar_url, u.is_verified
		FROM user_stats s
		JOIN users u ON u.discord_id = s.discord_id AND u.guild_id = s.guild_id
		WHERE s.guild_id = $1 AND s.total_bets > 0
	`

	rows, err := r.q.Query(ctx, query, r.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard entries: %w", err)
	}
	defer rows.Close()

	entries := []*entities.LeaderboardEntry{}
	for rows.Next() {
		var stats entities.UserStats
		var entry entities.LeaderboardEntry
		dest := append(statsDest(&stats),
			&entry.Username,
			&entry.DisplayName,
			&entry.AvatarURL,
			&entry.IsVerified,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entry.Stats = &stats
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}

	return entries, nil
}

// ListDiscordIDs returns the users that have a stats record or a logged wager
func (r *StatsRepository) ListDiscordIDs(ctx context.Context) ([]int64, error) {
	query := `
		SELECT discord_id FROM user_stats WHERE guild_id = $1
		UNION
		SELECT discord_id FROM wagers WHERE guild_id = $1
		ORDER BY discord_id
	`

	rows, err := r.q.Query(ctx, query, r.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats users: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect stats users: %w", err)
	}

	return ids, nil
}

func statsDest(stats *entities.UserStats) []any {
	return []any{
		&stats.DiscordID,
		&stats.GuildID,
		&stats.TotalBets,
		&stats.Wins,
		&stats.Losses,
		&stats.Pushes,
		&stats.Pending,
		&stats.TotalStaked,
		&stats.TotalReturned,
		&stats.NetProfit,
		&stats.ROI,
		&stats.WinRate,
		&stats.AverageOdds,
		&stats.CurrentStreak,
		&stats.BestStreak,
		&stats.WorstStreak,
		&stats.UnitSize,
		&stats.UnitsWagered,
		&stats.UnitsWon,
		&stats.LastBetAt,
		&stats.UpdatedAt,
	}
}

func scanStats(row pgx.Row) (*entities.UserStats, error) {
	var stats entities.UserStats
	if err := row.Scan(statsDest(&stats)...); err != nil {
		return nil, err
	}
	return &stats, nil
}
