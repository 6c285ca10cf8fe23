package repository

import (
	"context"
	"fmt"

	"bettracker/database"

	"github.com/jackc/pgx/v5"
)

// GuildRepository lists guilds across scopes. It is the only repository
// that is not guild scoped.
type GuildRepository struct {
	q Queryable
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db *database.DB) *GuildRepository {
	return &GuildRepository{q: db.Pool}
}

// ListGuildIDs returns every guild with at least one registered user
func (r *GuildRepository) ListGuildIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT guild_id FROM users ORDER BY guild_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect guilds: %w", err)
	}

	return ids, nil
}
