package repository

import (
	"context"
	"errors"
	"fmt"

	"bettracker/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WagerRepository implements wager data access
type WagerRepository struct {
	q       Queryable
	guildID int64
}

// NewWagerRepositoryScoped creates a new wager repository with a transaction and guild scope
func NewWagerRepositoryScoped(tx Queryable, guildID int64) *WagerRepository {
	return &WagerRepository{
		q:       tx,
		guildID: guildID,
	}
}

const wagerColumns = `
	id, discord_id, guild_id, sport, league, bet_type, description,
	odds_american, odds_decimal, stake, potential_return, result, actual_return,
	sportsbook, game_date, notes, tags, created_at, settled_at, updated_at`

// Create inserts a pending wager and fills in its ID and timestamps
func (r *WagerRepository) Create(ctx context.Context, wager *entities.Wager) error {
	query := `
		INSERT INTO wagers (
			discord_id, guild_id, sport, league, bet_type, description,
			odds_american, odds_decimal, stake, potential_return, result,
			sportsbook, game_date, notes, tags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending', $11, $12, $13, $14)
		RETURNING id, guild_id, result, created_at, updated_at
	`

	tags := wager.Tags
	if tags == nil {
		tags = []string{}
	}

	err := r.q.QueryRow(ctx, query,
		wager.DiscordID,
		r.guildID, // Use repository's guild scope
		wager.Sport,
		wager.League,
		wager.BetType,
		wager.Description,
		wager.OddsAmerican,
		wager.OddsDecimal,
		wager.Stake,
		wager.PotentialReturn,
		wager.Sportsbook,
		wager.GameDate,
		wager.Notes,
		tags,
	).Scan(&wager.ID, &wager.GuildID, &wager.Result, &wager.CreatedAt, &wager.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create wager: %w", err)
	}

	wager.Tags = tags
	return nil
}

// GetByID retrieves a wager by its ID within the current guild
func (r *WagerRepository) GetByID(ctx context.Context, id int64) (*entities.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE id = $1 AND guild_id = $2`

	wager, err := scanWager(r.q.QueryRow(ctx, query, id, r.guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wager %d: %w", id, err)
	}

	return wager, nil
}

// GetByUser returns a user's full history ordered by creation time, then ID
func (r *WagerRepository) GetByUser(ctx context.Context, discordID int64) ([]*entities.Wager, error) {
	query := `
		SELECT ` + wagerColumns + `
		FROM wagers
		WHERE discord_id = $1 AND guild_id = $2
		ORDER BY created_at, id
	`

	return r.queryWagers(ctx, query, discordID, r.guildID)
}

// GetRecentByUser returns up to limit wagers, newest first
func (r *WagerRepository) GetRecentByUser(ctx context.Context, discordID int64, limit int) ([]*entities.Wager, error) {
	query := `
		SELECT ` + wagerColumns + `
		FROM wagers
		WHERE discord_id = $1 AND guild_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`

	return r.queryWagers(ctx, query, discordID, r.guildID, limit)
}

// Settle moves a pending wager to its terminal result. The update only
// matches while the wager is still pending, so of two concurrent
// settlements exactly one gets the row back.
func (r *WagerRepository) Settle(ctx context.Context, id int64, result entities.WagerResult, actualReturn decimal.Decimal) (*entities.Wager, error) {
	query := `
		UPDATE wagers
		SET result = $1, actual_return = $2, settled_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND guild_id = $4 AND result = 'pending'
		RETURNING ` + wagerColumns

	wager, err := scanWager(r.q.QueryRow(ctx, query, result, actualReturn, id, r.guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to settle wager %d: %w", id, err)
	}

	return wager, nil
}

func (r *WagerRepository) queryWagers(ctx context.Context, query string, args ...any) ([]*entities.Wager, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wagers: %w", err)
	}
	defer rows.Close()

	wagers := []*entities.Wager{}
	for rows.Next() {
		wager, err := scanWager(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wager: %w", err)
		}
		wagers = append(wagers, wager)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wagers: %w", err)
	}

	return wagers, nil
}

func scanWager(row pgx.Row) (*entities.Wager, error) {
	var wager entities.Wager
	var actualReturn decimal.NullDecimal
	err := row.Scan(
		&wager.ID,
		&wager.DiscordID,
		&wager.GuildID,
		&wager.Sport,
		&wager.League,
		&wager.BetType,
		&wager.Description,
		&wager.OddsAmerican,
		&wager.OddsDecimal,
		&wager.Stake,
		&wager.PotentialReturn,
		&wager.Result,
		&actualReturn,
		&wager.Sportsbook,
		&wager.GameDate,
		&wager.Notes,
		&wager.Tags,
		&wager.CreatedAt,
		&wager.SettledAt,
		&wager.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if actualReturn.Valid {
		wager.ActualReturn = &actualReturn.Decimal
	}
	return &wager, nil
}
