package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Instant is a point in time carrying its source granularity. All-day
// calendar entries are date-only; timed entries keep minute precision.
type Instant struct {
	Time     time.Time
	DateOnly bool
}

// IsZero reports whether the instant was never set or failed to parse.
func (i Instant) IsZero() bool {
	return i.Time.IsZero()
}

// Date returns the calendar date portion as "2006-01-02".
func (i Instant) Date() string {
	if i.IsZero() {
		return ""
	}
	return i.Time.Format(dateLayout)
}

// String renders the instant in the wire format used across the system:
// "2006-01-02" for date-only instants, "2006-01-02 15:04" otherwise.
func (i Instant) String() string {
	if i.IsZero() {
		return ""
	}
	if i.DateOnly {
		return i.Time.Format(dateLayout)
	}
	return i.Time.Format(dateTimeLayout)
}

// MarshalJSON encodes the instant as its String form, or null when zero.
func (i Instant) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", i.String())), nil
}

// UnmarshalJSON decodes the wire forms produced by MarshalJSON. The
// location is lost; decoded instants are in UTC.
func (i *Instant) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*i = Instant{}
		return nil
	}
	if len(*s) == len(dateLayout) {
		t, err := time.Parse(dateLayout, *s)
		if err != nil {
			return err
		}
		*i = Instant{Time: t, DateOnly: true}
		return nil
	}
	t, err := time.Parse(dateTimeLayout, *s)
	if err != nil {
		return err
	}
	*i = Instant{Time: t}
	return nil
}

// Duration is the decomposed length of an event. SpanDays counts calendar
// days touched: one more than Days when an hour/minute remainder exists.
type Duration struct {
	Days     int `json:"days"`
	Hours    int `json:"hours"`
	Minutes  int `json:"minutes"`
	SpanDays int `json:"spanDays"`
}

// Attachment is a file linked to an event. All five fields are required;
// parsers drop records missing any of them.
type Attachment struct {
	FileID string `json:"fileId"`
	Name   string `json:"name"`
	Mime   string `json:"mime"`
	URL    string `json:"url"`
	Ref    string `json:"ref"`
}

// Event is the canonical normalized event produced from any source.
type Event struct {
	EventID     string       `json:"eventId"`
	Recurring   bool         `json:"recurring"`
	Start       Instant      `json:"start"`
	End         Instant      `json:"end"`
	Duration    Duration     `json:"duration"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	Attachments []Attachment `json:"attachments"`
	Tags        Tags         `json:"tags"`
}
