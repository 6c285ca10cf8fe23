package common

import (
	"github.com/bwmarrin/discordgo"
)

// Options indexes slash command options by name
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// NewOptions indexes a subcommand's options
func NewOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) Options {
	m := make(Options, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// String returns a string option or "" when absent
func (o Options) String(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// Int returns an integer option or def when absent
func (o Options) Int(name string, def int64) int64 {
	if opt, ok := o[name]; ok {
		return opt.IntValue()
	}
	return def
}

// UserID returns the snowflake of a user option or "" when absent
func (o Options) UserID(name string) string {
	if opt, ok := o[name]; ok {
		return opt.UserValue(nil).ID
	}
	return ""
}

// Has reports whether the option was supplied
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Subcommand returns the invoked subcommand name and its options
func Subcommand(i *discordgo.InteractionCreate) (string, Options) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return "", Options{}
	}
	sub := data.Options[0]
	return sub.Name, NewOptions(sub.Options)
}
