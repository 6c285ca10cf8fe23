package bot

import (
	"fmt"

	"bettracker/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// slashCommands returns the definitions of every slash command the bot serves
func slashCommands() []*discordgo.ApplicationCommand {
	betTypeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.AllBetTypes))
	for _, bt := range entities.AllBetTypes {
		betTypeChoices = append(betTypeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(bt),
			Value: string(bt),
		})
	}

	resultChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "won", Value: string(entities.WagerResultWon)},
		{Name: "lost", Value: string(entities.WagerResultLost)},
		{Name: "push", Value: string(entities.WagerResultPush)},
		{Name: "void", Value: string(entities.WagerResultVoid)},
	}

	minLimit := 1.0

	return []*discordgo.ApplicationCommand{
		{
			Name:        "bet",
			Description: "Log and settle your sports bets",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "place",
					Description: "Log a new bet",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "sport",
							Description: "Sport, e.g. NFL or NBA",
							Required:    true,
							MaxLength:   50,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "bet_type",
							Description: "Market type",
							Required:    true,
							Choices:     betTypeChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "What you bet on, e.g. Chiefs -3.5",
							Required:    true,
							MaxLength:   500,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "odds",
							Description: "American odds, e.g. -110 or 150",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "stake",
							Description: "Amount risked, e.g. 25 or 12.50",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "league",
							Description: "League or competition",
							MaxLength:   100,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "sportsbook",
							Description: "Where the bet was placed",
							MaxLength:   100,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game_date",
							Description: "Game date as YYYY-MM-DD",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "tags",
							Description: "Comma separated tags",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "notes",
							Description: "Free-form notes",
							MaxLength:   1000,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settle",
					Description: "Record the result of one of your bets",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "id",
							Description: "Bet ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "result",
							Description: "Outcome",
							Required:    true,
							Choices:     resultChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show your most recent bets",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many bets to show (default 10)",
							MinValue:    &minLimit,
							MaxValue:    100,
						},
					},
				},
			},
		},
		{
			Name:        "stats",
			Description: "Betting performance and leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "me",
					Description: "Show your stats",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "user",
					Description: "Show another member's stats",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Member to look up",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the server leaderboard",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many members to show",
							MinValue:    &minLimit,
							MaxValue:    100,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unitsize",
					Description: "Set the dollar value of one unit",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "amount",
							Description: "Unit size, e.g. 50",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	for _, cmd := range slashCommands() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}
	return nil
}
