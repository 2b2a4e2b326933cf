package discord

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// IsRetryable reports whether a webhook call failed for a transient reason
// (rate limit or Discord-side 5xx).
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var rl *discordgo.RateLimitError
	if errors.As(err, &rl) {
		return true
	}
	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Response != nil {
		return rest.Response.StatusCode == http.StatusTooManyRequests || rest.Response.StatusCode >= 500
	}
	return false
}
