package entities

import "time"

// User is a Discord member who logs wagers in a guild
type User struct {
	DiscordID   int64     `db:"discord_id"`
	GuildID     int64     `db:"guild_id"`
	Username    string    `db:"username"`
	DisplayName *string   `db:"display_name"`
	AvatarURL   *string   `db:"avatar_url"`
	IsVerified  bool      `db:"is_verified"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// UserProfile is the display identity reported by Discord for a member
type UserProfile struct {
	Username    string
	DisplayName string
	AvatarURL   string
}

// ProfileChanged returns true if the stored identity differs from the reported profile
func (u *User) ProfileChanged(p UserProfile) bool {
	if u.Username != p.Username {
		return true
	}
	if stringValue(u.DisplayName) != p.DisplayName {
		return true
	}
	return stringValue(u.AvatarURL) != p.AvatarURL
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
