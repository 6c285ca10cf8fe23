package services

import (
	"context"
	"fmt"
	"slices"

	"bettracker/domain/entities"
	"bettracker/domain/events"
	"bettracker/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// userService implements the UserService interface
type userService struct {
	userRepo       interfaces.UserRepository
	eventPublisher interfaces.EventPublisher
	verifiedIDs    []int64
}

// NewUserService creates a new user service. Members listed in verifiedIDs
// are flagged as verified cappers.
func NewUserService(userRepo interfaces.UserRepository, eventPublisher interfaces.EventPublisher, verifiedIDs []int64) interfaces.UserService {
	return &userService{
		userRepo:       userRepo,
		eventPublisher: eventPublisher,
		verifiedIDs:    verifiedIDs,
	}
}

// GetOrCreateUser retrieves a user or registers them, keeping their profile current
func (s *userService) GetOrCreateUser(ctx context.Context, discordID int64, profile entities.UserProfile) (*entities.User, error) {
	verified := slices.Contains(s.verifiedIDs, discordID)

	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		user, err = s.userRepo.Create(ctx, discordID, profile, verified)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		if err := s.eventPublisher.Publish(events.UserCreatedEvent{
			DiscordID: user.DiscordID,
			GuildID:   user.GuildID,
			Username:  user.Username,
		}); err != nil {
			return nil, fmt.Errorf("failed to publish user created event: %w", err)
		}

		log.WithFields(log.Fields{
			"discord_id": discordID,
			"username":   profile.Username,
		}).Info("Registered new user")
		return user, nil
	}

	if user.ProfileChanged(profile) || user.IsVerified != verified {
		if err := s.userRepo.UpdateProfile(ctx, discordID, profile, verified); err != nil {
			return nil, fmt.Errorf("failed to update user profile: %w", err)
		}
		user.Username = profile.Username
		user.DisplayName = optionalString(profile.DisplayName)
		user.AvatarURL = optionalString(profile.AvatarURL)
		user.IsVerified = verified
	}

	return user, nil
}
