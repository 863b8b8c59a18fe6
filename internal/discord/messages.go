package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

func mentions(users []*discordgo.User, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// stripMention removes both mention forms of the bot from content.
func stripMention(content, botID string) string {
	content = strings.ReplaceAll(content, "<@"+botID+">", "")
	content = strings.ReplaceAll(content, "<@!"+botID+">", "")
	return strings.TrimSpace(content)
}
