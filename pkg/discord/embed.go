package discord

import (
	"fmt"
	"strings"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0xF26A1B

var kindTitles = map[domain.EventKind]string{
	domain.KindRaid:      "⚔️ Raid",
	domain.KindIncursion: "🛡️ Incursion",
	domain.KindActivity:  "🎯 Activité",
}

func eventTitle(e *entities.Event) string {
	title := kindTitles[e.Kind]
	label := e.Name
	if label == "" {
		label = e.Zone
	}
	if label != "" {
		title += " : " + label
	}
	return title
}

func formatPlaces(capacity, confirmedCount int) string {
	if capacity <= 0 {
		return fmt.Sprintf("%d", confirmedCount)
	}
	return fmt.Sprintf("%d/%d", confirmedCount, capacity)
}

// BuildReminderEmbed builds the embed the bot posts when an event is about to
// start. Only Confirmed participants are listed.
func BuildReminderEmbed(e *entities.Event, confirmed []entities.Participant) *discordgo.MessageEmbed {
	var b strings.Builder
	if when := FormatEventDateTime(e.LaunchDate); when != "" {
		b.WriteString(fmt.Sprintf("**Lancement :** %s\n", when))
	}
	if e.Zone != "" && e.Name != "" {
		b.WriteString(fmt.Sprintf("**Zone :** %s\n", e.Zone))
	}
	b.WriteString(fmt.Sprintf("**Places :** %s", formatPlaces(e.Capacity(), len(confirmed))))

	fields := make([]*discordgo.MessageEmbedField, 0, 1)
	if len(confirmed) > 0 {
		lines := make([]string, 0, len(confirmed))
		for _, p := range confirmed {
			line := "- " + Mention(p.UserID)
			if p.Role != "" {
				line += " (" + p.Role + ")"
			}
			lines = append(lines, line)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "✅ Confirmés",
			Value: strings.Join(lines, "\n"),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       eventTitle(e),
		Description: b.String(),
		Color:       embedColor,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Départ imminent"},
	}
}
