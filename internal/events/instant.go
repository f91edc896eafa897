package events

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"eventboard/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// ParseInstant parses the wire forms "2006-01-02" (date-only) and
// "2006-01-02 15:04" (timed) in loc. Malformed input yields a zero
// instant, never an error.
func ParseInstant(s string, loc *time.Location) domain.Instant {
	switch len(s) {
	case len(dateLayout):
		t, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return domain.Instant{}
		}
		return domain.Instant{Time: t, DateOnly: true}
	case len(dateTimeLayout):
		t, err := time.ParseInLocation(dateTimeLayout, s, loc)
		if err != nil {
			return domain.Instant{}
		}
		return domain.Instant{Time: t}
	}
	return domain.Instant{}
}

// instantOf converts a calendar boundary into an Instant in loc. Timed
// boundaries are truncated to minute precision.
func instantOf(dt *calendar.EventDateTime, loc *time.Location) domain.Instant {
	if dt == nil {
		return domain.Instant{}
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return domain.Instant{}
		}
		return domain.Instant{Time: t.In(loc).Truncate(time.Minute)}
	}
	if dt.Date != "" {
		t, err := time.ParseInLocation(dateLayout, dt.Date, loc)
		if err != nil {
			return domain.Instant{}
		}
		return domain.Instant{Time: t, DateOnly: true}
	}
	return domain.Instant{}
}

// DurationBetween decomposes the delta between two instants into whole
// days, hours and minutes. Date-only endpoints count as midnight of their
// date. Negative or invalid ranges yield a zero duration.
func DurationBetween(start, end domain.Instant) domain.Duration {
	if start.IsZero() || end.IsZero() {
		return domain.Duration{}
	}
	delta := end.Time.Sub(start.Time)
	if delta < 0 {
		delta = 0
	}
	days := int(delta / (24 * time.Hour))
	delta -= time.Duration(days) * 24 * time.Hour
	hours := int(delta / time.Hour)
	delta -= time.Duration(hours) * time.Hour
	minutes := int(delta / time.Minute)
	spanDays := days
	if hours > 0 || minutes > 0 {
		spanDays++
	}
	return domain.Duration{Days: days, Hours: hours, Minutes: minutes, SpanDays: spanDays}
}
