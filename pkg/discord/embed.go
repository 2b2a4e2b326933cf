package discord

import (
	"fmt"
	"strings"

	"krushi/internal/domain/entities"
	"krushi/pkg/format"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor      = 0x2E7D32
	embedTitle      = "📬 New contact message"
	maxFieldValue   = 1024
	maxDescription  = 4096
	embedFooterText = "Kanhaiya Krushi • website"
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// BuildContactEmbed renders a stored contact submission for the owners'
// channel.
func BuildContactEmbed(c *entities.Contact) *discordgo.MessageEmbed {
	phone := ""
	if c.Phone != "" {
		phone = format.Phone(c.Phone)
	}
	fields := []*discordgo.MessageEmbedField{
		{Name: "Name", Value: truncate(orDash(c.Name), maxFieldValue), Inline: true},
		{Name: "Email", Value: truncate(orDash(c.Email), maxFieldValue), Inline: true},
		{Name: "Phone", Value: orDash(phone), Inline: true},
		{Name: "Language", Value: orDash(c.Language), Inline: true},
	}
	if !c.CreatedAt.IsZero() {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Received", Value: FormatReceivedAt(c.CreatedAt), Inline: true})
	}
	return &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: fmt.Sprintf("**%s**\n\n%s", truncate(c.Subject, 256), truncate(c.Message, maxDescription-300)),
		Color:       embedColor,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: embedFooterText + " • " + c.ID},
	}
}
