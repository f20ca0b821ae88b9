package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for plain dates throughout the API.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a YYYY-MM-DD string into a date. A malformed or empty
// value yields nil: optional date fields are stored as absent rather than
// failing the whole write.
func ParseDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		log.Warn().Str("date", dateStr).Msg("Unparseable date, storing as absent")
		return nil
	}
	return &t
}

// ParseClock parses an HH:MM timetable slot time. Returns the zero time and
// false when the value does not parse.
func ParseClock(clock string) (time.Time, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
