package discord

import (
	"time"

	"krushi/pkg/tz"
)

// FormatReceivedAt renders t in Indian time, e.g. "15/02/2025 at 14:00 IST".
func FormatReceivedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Kolkata).Format("02/01/2006 at 15:04") + " IST"
}
