package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Mention renders the <@id> mention of a Discord user.
func Mention(userID string) string {
	return (&discordgo.User{ID: userID}).Mention()
}

// Mentions joins the mentions of userIDs with a space, skipping blanks.
func Mentions(userIDs []string) string {
	parts := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if strings.TrimSpace(id) == "" {
			continue
		}
		parts = append(parts, Mention(id))
	}
	return strings.Join(parts, " ")
}

// ValidSnowflake reports whether id is a well-formed Discord snowflake.
func ValidSnowflake(id string) bool {
	if id == "" || strings.TrimSpace(id) != id {
		return false
	}
	_, err := discordgo.SnowflakeTimestamp(id)
	return err == nil
}
