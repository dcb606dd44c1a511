package storefront

import (
	"strings"
	"time"

	"storefront-tracker/internal/core/logger"

	"go.uber.org/zap"
)

// Time handles the timestamp formats the storefront API emits. Most
// responses use RFC3339, but some endpoints drop the timezone suffix.
type Time time.Time

// UnmarshalJSON parses the storefront timestamp formats.
func (t *Time) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05", s)
	}
	if err != nil {
		parsed, err = time.Parse("2006-01-02 15:04:05", s)
	}
	if err != nil {
		logger.Get().Warn("Failed to parse date", zap.String("date", s), zap.Error(err))
		return nil // Return zero time
	}
	*t = Time(parsed)
	return nil
}
