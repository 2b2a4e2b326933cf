// Package notify tells the site owners about new contact submissions.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"krushi/internal/domain/entities"
	"krushi/internal/ports/output"
	"krushi/pkg/discord"
)

var (
	_ output.ContactNotifier = (*DiscordNotifier)(nil)
	_ output.ContactNotifier = (*LogNotifier)(nil)
)

// ErrInvalidWebhookURL is returned for URLs not of the form
// https://discord.com/api/webhooks/<id>/<token>.
var ErrInvalidWebhookURL = errors.New("notify: invalid discord webhook url")

// ParseWebhookURL extracts the webhook id and token.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", "", ErrInvalidWebhookURL
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" {
			id, token = parts[i+1], parts[i+2]
			if id != "" && token != "" {
				return id, token, nil
			}
		}
	}
	return "", "", ErrInvalidWebhookURL
}

// DiscordNotifier posts an embed to a channel webhook.
type DiscordNotifier struct {
	session *discordgo.Session
	id      string
	token   string
	logger  *slog.Logger
}

func NewDiscordNotifier(webhookURL string, logger *slog.Logger) (*DiscordNotifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	// Webhook calls authenticate with the token in the URL; no bot token needed.
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	session.ShouldRetryOnRateLimit = false
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscordNotifier{session: session, id: id, token: token, logger: logger}, nil
}

func (n *DiscordNotifier) NotifyContact(ctx context.Context, c *entities.Contact) error {
	_, err := n.session.WebhookExecute(n.id, n.token, false, &discordgo.WebhookParams{
		Username: "Kanhaiya Krushi",
		Embeds:   []*discordgo.MessageEmbed{discord.BuildContactEmbed(c)},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		n.logger.Debug("discord webhook failed", "retryable", discord.IsRetryable(err), "error", err)
		return fmt.Errorf("execute discord webhook: %w", err)
	}
	return nil
}

// LogNotifier only logs submissions. Used when no webhook is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyContact(_ context.Context, c *entities.Contact) error {
	n.logger.Info("📬 new contact message",
		"contact_id", c.ID,
		"name", c.Name,
		"email", c.Email,
		"subject", c.Subject,
		"language", c.Language,
	)
	return nil
}

// New returns a DiscordNotifier when webhookURL is set, else a LogNotifier.
func New(webhookURL string, logger *slog.Logger) (output.ContactNotifier, error) {
	if strings.TrimSpace(webhookURL) == "" {
		return NewLogNotifier(logger), nil
	}
	return NewDiscordNotifier(webhookURL, logger)
}
