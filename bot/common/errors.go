package common

import (
	"errors"
	"fmt"
	"strings"

	"bettracker/domain"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to Discord user
	LogMessage  string // Internal message for logging
	Ephemeral   bool
	UserCaused  bool
	Err         error
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (bad odds, someone else's wager, etc)
func NewUserError(userMessage string, err error) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  "rejected command input",
		Ephemeral:   true,
		UserCaused:  true,
		Err:         err,
	}
}

// NewSystemError creates an error for system issues (database, unexpected state, etc)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: "Something went wrong. Please try again later.",
		LogMessage:  logMessage,
		Ephemeral:   true,
		Err:         err,
	}
}

// TranslateError maps a service error onto the message a member should see.
// Anything not recognised as a caller mistake becomes a system error.
func TranslateError(err error, logMessage string) *BotError {
	var botErr *BotError
	if errors.As(err, &botErr) {
		return botErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return NewUserError(strings.TrimSuffix(err.Error(), ": "+domain.ErrInvalidInput.Error()), err)
	case errors.Is(err, domain.ErrWagerNotFound):
		return NewUserError("No wager with that ID exists in this server.", err)
	case errors.Is(err, domain.ErrNotWagerOwner):
		return NewUserError("You can only settle your own wagers.", err)
	case errors.Is(err, domain.ErrAlreadySettled):
		return NewUserError("That wager has already been settled.", err)
	case errors.Is(err, domain.ErrConfiguration):
		return NewUserError("Your unit size is invalid. Set a new one with /stats unitsize.", err)
	default:
		return NewSystemError(err, logMessage)
	}
}

// RespondWithError sends an error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// HandleError logs err and responds with the translated user message
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, logMessage string) {
	botErr := TranslateError(err, logMessage)

	fields := log.Fields{
		"guild_id":     i.GuildID,
		"command":      i.ApplicationCommandData().Name,
		"user_message": botErr.UserMessage,
	}
	if i.Member != nil && i.Member.User != nil {
		fields["user_id"] = i.Member.User.ID
	}

	entry := log.WithFields(fields).WithError(botErr)
	if botErr.UserCaused {
		entry.Debug(botErr.LogMessage)
	} else {
		entry.Error(botErr.LogMessage)
	}

	RespondWithError(s, i, botErr.UserMessage)
}
