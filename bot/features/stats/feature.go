package stats

import (
	"bettracker/application"
	"bettracker/bot/common"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the /stats command
type Feature struct {
	uowFactory       application.UnitOfWorkFactory
	defaults         common.ServiceDefaults
	leaderboardLimit int
}

// NewFeature creates a new stats feature instance
func NewFeature(uowFactory application.UnitOfWorkFactory, defaults common.ServiceDefaults, leaderboardLimit int) *Feature {
	return &Feature{
		uowFactory:       uowFactory,
		defaults:         defaults,
		leaderboardLimit: leaderboardLimit,
	}
}

// HandleCommand handles the /stats command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub, opts := common.Subcommand(i)

	switch sub {
	case "me":
		f.handleUserStats(s, i, "")
	case "user":
		f.handleUserStats(s, i, opts.UserID("user"))
	case "leaderboard":
		f.handleLeaderboard(s, i, opts)
	case "unitsize":
		f.handleUnitSize(s, i, opts)
	default:
		common.RespondWithError(s, i, "Please specify a subcommand: me, user, leaderboard or unitsize")
	}
}
