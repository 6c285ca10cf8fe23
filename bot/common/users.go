package common

import (
	"fmt"
	"strconv"

	"bettracker/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// ParseUserID converts a Discord snowflake string to int64
func ParseUserID(userID string) (int64, error) {
	return strconv.ParseInt(userID, 10, 64)
}

// FormatUserID converts an int64 user ID to string
func FormatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID int64) string {
	return "<@" + FormatUserID(userID) + ">"
}

// Invoker identifies the member that issued an interaction
type Invoker struct {
	GuildID   int64
	DiscordID int64
	Profile   entities.UserProfile
}

// InvokerFromInteraction extracts guild, member and display identity.
// Interactions outside a guild are rejected.
func InvokerFromInteraction(i *discordgo.InteractionCreate) (*Invoker, error) {
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return nil, NewUserError("Bets are tracked per server. Use this command inside a server.", nil)
	}

	guildID, err := ParseUserID(i.GuildID)
	if err != nil {
		return nil, fmt.Errorf("invalid guild ID %q: %w", i.GuildID, err)
	}
	discordID, err := ParseUserID(i.Member.User.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid member ID %q: %w", i.Member.User.ID, err)
	}

	return &Invoker{
		GuildID:   guildID,
		DiscordID: discordID,
		Profile:   ProfileFromMember(i.Member),
	}, nil
}

// ProfileFromMember builds the stored display identity of a guild member.
// The server nickname wins over the global display name.
func ProfileFromMember(member *discordgo.Member) entities.UserProfile {
	user := member.User
	display := member.Nick
	if display == "" {
		display = user.GlobalName
	}
	return entities.UserProfile{
		Username:    user.Username,
		DisplayName: display,
		AvatarURL:   user.AvatarURL(""),
	}
}
