package bot

import (
	"fmt"

	"bettracker/application"
	"bettracker/bot/common"
	"bettracker/bot/features/bets"
	"bettracker/bot/features/stats"
	"bettracker/domain/events"
	"bettracker/infrastructure"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token            string
	GuildID          string // empty registers commands globally
	StreakChannelID  string // empty disables streak announcements
	LeaderboardLimit int
	Defaults         common.ServiceDefaults
}

// LocalHandlerRegistry accepts in-process event handlers
type LocalHandlerRegistry interface {
	RegisterLocalHandler(eventType events.EventType, handler infrastructure.LocalHandler)
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config     Config
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory

	// Feature modules
	bets  *bets.Feature
	stats *stats.Feature
}

// New creates a new bot instance with all features, connects it and
// registers its slash commands
func New(config Config, uowFactory application.UnitOfWorkFactory, handlers LocalHandlerRegistry) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
	}

	bot.bets = bets.NewFeature(uowFactory, config.Defaults)
	bot.stats = stats.NewFeature(uowFactory, config.Defaults, config.LeaderboardLimit)

	if config.StreakChannelID != "" {
		var guildID int64
		if config.GuildID != "" {
			if guildID, err = common.ParseUserID(config.GuildID); err != nil {
				return nil, fmt.Errorf("invalid guild ID %q: %w", config.GuildID, err)
			}
		}
		announcer := stats.NewStreakAnnouncer(dg, config.StreakChannelID, guildID)
		handlers.RegisterLocalHandler(events.EventTypeStatsUpdated, announcer.HandleStatsUpdated)
	}

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.WithField("guilds", len(r.Guilds)).Infof("Logged in as %s", r.User.Username)
	})

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "bet":
		b.bets.HandleCommand(s, i)
	case "stats":
		b.stats.HandleCommand(s, i)
	}
}
