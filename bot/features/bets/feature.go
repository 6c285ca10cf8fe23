package bets

import (
	"bettracker/application"
	"bettracker/bot/common"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the /bet command: logging, settling and listing wagers
type Feature struct {
	uowFactory application.UnitOfWorkFactory
	defaults   common.ServiceDefaults
}

// NewFeature creates a new bets feature instance
func NewFeature(uowFactory application.UnitOfWorkFactory, defaults common.ServiceDefaults) *Feature {
	return &Feature{
		uowFactory: uowFactory,
		defaults:   defaults,
	}
}

// HandleCommand handles the /bet command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub, opts := common.Subcommand(i)

	switch sub {
	case "place":
		f.handlePlace(s, i, opts)
	case "settle":
		f.handleSettle(s, i, opts)
	case "list":
		f.handleList(s, i, opts)
	default:
		common.RespondWithError(s, i, "Please specify a subcommand: place, settle or list")
	}
}
