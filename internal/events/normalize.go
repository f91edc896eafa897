package events

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"eventboard/internal/domain"
)

// recurrenceSuffix matches the per-instance suffix Google appends to ids
// of recurring-event occurrences ("<seriesId>_20200103T160000Z").
var recurrenceSuffix = regexp.MustCompile(`_\w+$`)

// NormalizeCalendarItem converts one raw calendar item into a canonical
// Event. The recurrence-instance suffix is stripped from the id so every
// occurrence of a series shares one EventID. All-day ends arrive as an
// exclusive date: the duration is computed against the raw end while the
// displayed end moves back one day.
func NormalizeCalendarItem(item *calendar.Event, loc *time.Location) (domain.Event, error) {
	if item == nil {
		return domain.Event{}, domain.ErrNilItem
	}

	start := instantOf(item.Start, loc)
	rawEnd := instantOf(item.End, loc)
	end := rawEnd
	if end.DateOnly && !end.IsZero() {
		end.Time = end.Time.AddDate(0, 0, -1)
	}

	subject, tags := ParseSummary(strings.TrimSpace(item.Summary))

	return domain.Event{
		EventID:     recurrenceSuffix.ReplaceAllString(item.Id, ""),
		Recurring:   item.RecurringEventId != "",
		Start:       start,
		End:         end,
		Duration:    DurationBetween(start, rawEnd),
		Subject:     subject,
		Body:        strings.TrimSpace(item.Description),
		Attachments: parseAttachments(item.Attachments),
		Tags:        tags,
	}, nil
}

// parseAttachments maps raw attachments, dropping any record missing one
// of the five required fields.
func parseAttachments(raw []*calendar.EventAttachment) []domain.Attachment {
	var out []domain.Attachment
	for _, a := range raw {
		if a == nil {
			continue
		}
		att := domain.Attachment{
			FileID: strings.TrimSpace(a.FileId),
			Name:   strings.TrimSpace(a.Title),
			Mime:   strings.TrimSpace(a.MimeType),
			URL:    strings.TrimSpace(a.FileUrl),
			Ref:    strings.TrimSpace(a.IconLink),
		}
		if att.FileID == "" || att.Name == "" || att.Mime == "" || att.URL == "" || att.Ref == "" {
			continue
		}
		out = append(out, att)
	}
	return out
}

// DeduplicateRecurring keeps, per EventID group, the first-seen instance
// plus any later instance tagged important, then re-sorts the result
// ascending by start.
func DeduplicateRecurring(list []domain.Event) []domain.Event {
	var order []string
	groups := make(map[string][]domain.Event)
	for _, ev := range list {
		if _, ok := groups[ev.EventID]; !ok {
			order = append(order, ev.EventID)
		}
		groups[ev.EventID] = append(groups[ev.EventID], ev)
	}

	out := make([]domain.Event, 0, len(order))
	for _, id := range order {
		group := groups[id]
		out = append(out, group[0])
		for _, ev := range group[1:] {
			if ev.Tags.Has("important") {
				out = append(out, ev)
			}
		}
	}
	SortByStart(out)
	return out
}

// SortByStart orders events ascending by start, keeping the relative
// order of events starting at the same instant.
func SortByStart(list []domain.Event) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Start.Time.Before(list[j].Start.Time)
	})
}
