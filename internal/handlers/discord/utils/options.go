package utils

import "github.com/bwmarrin/discordgo"

// leaf walks down the subcommand group and subcommand of an interaction and
// returns their names together with the options the user actually filled in
func leaf(i *discordgo.InteractionCreate) ([]string, []*discordgo.ApplicationCommandInteractionDataOption) {
	var path []string
	options := i.ApplicationCommandData().Options
	for len(options) == 1 {
		opt := options[0]
		if opt.Type != discordgo.ApplicationCommandOptionSubCommand &&
			opt.Type != discordgo.ApplicationCommandOptionSubCommandGroup {
			break
		}
		path = append(path, opt.Name)
		options = opt.Options
	}
	return path, options
}

// SubcommandPath returns the invoked group and subcommand names, outermost
// first. "/dnd session create" yields [session create].
func SubcommandPath(i *discordgo.InteractionCreate) []string {
	path, _ := leaf(i)
	return path
}

// GetCommandOption returns the named option of the invoked subcommand, or nil
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	_, options := leaf(i)
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// FocusedOption returns the option being typed during autocomplete, or nil
func FocusedOption(i *discordgo.InteractionCreate) *discordgo.ApplicationCommandInteractionDataOption {
	_, options := leaf(i)
	for _, opt := range options {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

// GetStringOption returns the named string option, empty when it was not given
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	if opt := GetCommandOption(i, name); opt != nil {
		return opt.StringValue()
	}
	return ""
}

// GetBoolOption returns the named boolean option, false when it was not given
func GetBoolOption(i *discordgo.InteractionCreate, name string) bool {
	if opt := GetCommandOption(i, name); opt != nil {
		return opt.BoolValue()
	}
	return false
}
