package repository

import (
	"context"
	"errors"
	"fmt"

	"bettracker/domain/entities"

	"github.com/jackc/pgx/v5"
)

// UserRepository implements the UserRepository interface
type UserRepository struct {
	q       Queryable
	guildID int64
}

// NewUserRepositoryScoped creates a new user repository with a transaction and guild scope
func NewUserRepositoryScoped(tx Queryable, guildID int64) *UserRepository {
	return &UserRepository{
		q:       tx,
		guildID: guildID,
	}
}

const userColumns = `discord_id, guild_id, username, display_name, avatar_url, is_verified, created_at, updated_at`

// GetByDiscordID retrieves a user by their Discord ID in the current guild
func (r *UserRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE discord_id = $1 AND guild_id = $2`

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID, r.guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by discord ID %d in guild %d: %w", discordID, r.guildID, err)
	}

	return user, nil
}

// Create registers a member in the current guild
func (r *UserRepository) Create(ctx context.Context, discordID int64, profile entities.UserProfile, verified bool) (*entities.User, error) {
	query := `
		INSERT INTO users (discord_id, guild_id, username, display_name, avatar_url, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	user, err := scanUser(r.q.QueryRow(ctx, query,
		discordID,
		r.guildID,
		profile.Username,
		nullableString(profile.DisplayName),
		nullableString(profile.AvatarURL),
		verified,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create user %d in guild %d: %w", discordID, r.guildID, err)
	}

	return user, nil
}

// UpdateProfile refreshes the stored display identity of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, discordID int64, profile entities.UserProfile, verified bool) error {
	query := `
		UPDATE users
		SET username = $1, display_name = $2, avatar_url = $3, is_verified = $4, updated_at = NOW()
		WHERE discord_id = $5 AND guild_id = $6
	`

	tag, err := r.q.Exec(ctx, query,
		profile.Username,
		nullableString(profile.DisplayName),
		nullableString(profile.AvatarURL),
		verified,
		discordID,
		r.guildID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", discordID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found in guild %d", discordID, r.guildID)
	}

	return nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.DiscordID,
		&user.GuildID,
		&user.Username,
		&user.DisplayName,
		&user.AvatarURL,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
