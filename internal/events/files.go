package events

import (
	"regexp"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"

	"eventboard/internal/domain"
)

var (
	extPattern = regexp.MustCompile(`\.[^._]+$`)
	datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// fileEvent is the parse of a single promo-folder filename shaped as
// "start[,end]_subject[#tags]_body_attachmentLabel.ext".
type fileEvent struct {
	startRaw string
	endRaw   string
	subject  string
	body     string
	label    string
	tags     domain.Tags
}

func parseEventFileName(name string) fileEvent {
	sections := strings.Split(extPattern.ReplaceAllString(name, ""), "_")

	section := func(i int) string {
		if i < len(sections) {
			return strings.TrimSpace(sections[i])
		}
		return ""
	}

	startRaw, endRaw := section(0), ""
	if start, end, ok := strings.Cut(startRaw, ","); ok {
		startRaw, endRaw = strings.TrimSpace(start), strings.TrimSpace(end)
	}

	subjectRaw := section(1)
	tags := ParseTags(subjectRaw)
	subject := StripTags(subjectRaw)

	label := section(3)
	if label == "" {
		label = subject
	}

	return fileEvent{
		startRaw: startRaw,
		endRaw:   endRaw,
		subject:  subject,
		body:     section(2),
		label:    label,
		tags:     tags,
	}
}

// GroupFilesToEvents parses a folder listing into events, grouping files
// that share the same start+subject key. Each grouped file contributes
// one attachment; tags union across the group last-wins, and a later
// non-empty body segment overwrites the earlier one.
//
// An end defaults to the start; a date-only end is inclusive, so duration
// math adds one day to it. A timed start paired with a date-only end gets
// a synthesized end of start + 1 hour.
func GroupFilesToEvents(files []*drive.File, loc *time.Location) []domain.Event {
	var order []string
	byKey := make(map[string]*domain.Event)

	for _, file := range files {
		if file == nil || !datePrefix.MatchString(file.Name) {
			continue
		}
		parsed := parseEventFileName(file.Name)
		key := parsed.startRaw + "__" + parsed.subject

		start := ParseInstant(parsed.startRaw, loc)
		end := ParseInstant(parsed.endRaw, loc)
		if end.IsZero() {
			end = start
		}
		if !start.IsZero() && !start.DateOnly && end.DateOnly {
			end = domain.Instant{Time: start.Time.Add(time.Hour)}
		}

		ev, ok := byKey[key]
		if !ok {
			ev = &domain.Event{
				EventID:  key,
				Start:    start,
				End:      end,
				Duration: fileDuration(start, end),
				Subject:  parsed.subject,
				Body:     parsed.body,
				Tags:     parsed.tags.Clone(),
			}
			byKey[key] = ev
			order = append(order, key)
		} else {
			ev.Tags.Merge(parsed.tags)
			if parsed.body != "" {
				ev.Body = parsed.body
			}
		}

		if parsed.label != "" {
			ev.Attachments = append(ev.Attachments, domain.Attachment{
				FileID: file.Id,
				Name:   parsed.label,
				Mime:   file.MimeType,
				URL:    file.WebViewLink,
				Ref:    file.WebContentLink,
			})
		}
	}

	out := make([]domain.Event, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

// fileDuration treats a date-only end as inclusive: the duration runs to
// the midnight after it.
func fileDuration(start, end domain.Instant) domain.Duration {
	if end.DateOnly && !end.IsZero() {
		end.Time = end.Time.AddDate(0, 0, 1)
	}
	return DurationBetween(start, end)
}
