package events

import (
	"sort"
	"strings"
	"time"

	"eventboard/internal/domain"
)

// Week is the scheduling window around a reference instant.
type Week struct {
	SundayBefore time.Time `json:"sundayBefore"`
	Now          time.Time `json:"now"`
	Monday       time.Time `json:"monday"`
	Sunday       time.Time `json:"sunday"`
}

// WeekOf computes the Monday 00:00:00 through Sunday 23:59:59 window of
// the week of now, plus midnight of the Sunday before. The Monday offset
// uses day-of-month arithmetic that normalizes across month boundaries;
// with a Sunday reference the window starts the next day.
func WeekOf(now time.Time) Week {
	monday := now.Day() - int(now.Weekday()) + 1
	loc := now.Location()
	return Week{
		SundayBefore: time.Date(now.Year(), now.Month(), monday-1, 0, 0, 0, 0, loc),
		Now:          now,
		Monday:       time.Date(now.Year(), now.Month(), monday, 0, 0, 0, 0, loc),
		Sunday:       time.Date(now.Year(), now.Month(), monday+6, 23, 59, 59, 0, loc),
	}
}

// Buckets is the output of one scheduling pass.
type Buckets struct {
	Week         Week           `json:"week"`
	SundayBefore []domain.Event `json:"sundayBefore"`
	ThisWeek     []domain.Event `json:"thisWeek"`
	Upcoming     []domain.Event `json:"upcoming"`
	Planned      []domain.Event `json:"planned"`
	Top          []domain.Event `json:"top"`
}

// Schedule buckets events against the given week. Events tagged "hide"
// are dropped entirely. Events tagged "plan" surface only in Planned
// (sorted by start) and in Top when also tagged "top". Upcoming keeps the
// first occurrence per EventID past the week window; the seen set starts
// with the week bucket's ids and grows over the whole scan, with
// "important" occurrences exempt from suppression.
func Schedule(list []domain.Event, week Week) Buckets {
	buckets := Buckets{Week: week}

	visible := make([]domain.Event, 0, len(list))
	for _, ev := range list {
		if ev.Tags.Has("hide") {
			continue
		}
		visible = append(visible, ev)
		if ev.Tags.Has("top") {
			buckets.Top = append(buckets.Top, ev)
		}
	}

	dated := make([]domain.Event, 0, len(visible))
	for _, ev := range visible {
		if ev.Tags.Has("plan") {
			buckets.Planned = append(buckets.Planned, ev)
			continue
		}
		dated = append(dated, ev)
	}
	SortByStart(buckets.Planned)

	for _, ev := range dated {
		start := ev.Start.Time
		if start.After(week.SundayBefore) && start.Before(week.Monday) && start.After(week.Now) {
			buckets.SundayBefore = append(buckets.SundayBefore, ev)
		}
		if !start.Before(week.Monday) && !start.After(week.Sunday) {
			buckets.ThisWeek = append(buckets.ThisWeek, ev)
		}
	}

	seen := make(map[string]bool, len(buckets.ThisWeek))
	for _, ev := range buckets.ThisWeek {
		seen[ev.EventID] = true
	}
	for _, ev := range dated {
		already := seen[ev.EventID]
		seen[ev.EventID] = true
		if ev.Start.Time.After(week.Sunday) && (!already || ev.Tags.Has("important")) {
			buckets.Upcoming = append(buckets.Upcoming, ev)
		}
	}

	return buckets
}

// Slide kinds assigned by GroupForPresentation.
const (
	SlideRegular  = "regular"
	SlideUpcoming = "upcoming"
	SlidePlan     = "plan"
)

// SlideEvent is an event classified for the kiosk presentation.
type SlideEvent struct {
	domain.Event
	Slide string `json:"slide"`
}

// GroupForPresentation selects and classifies events for the slide
// rotation starting at date. Comparison is at date granularity. Regular
// events (any tag prefixed "regular-") show only through the next six
// days; other events show through a 90-day horizon, or beyond it when
// tagged "important", in which case they classify as plan slides.
// Regular slides sort first by start, the rest follow by start.
func GroupForPresentation(list []domain.Event, date time.Time) []SlideEvent {
	day := date.Format(dateLayout)
	weekEnd := date.AddDate(0, 0, 6).Format(dateLayout)
	horizon := date.AddDate(0, 0, 90).Format(dateLayout)

	var out []SlideEvent
	for _, ev := range list {
		start := ev.Start.Date()
		if start < day {
			continue
		}
		switch {
		case isRegular(ev):
			if start > weekEnd {
				continue
			}
			out = append(out, SlideEvent{Event: ev, Slide: SlideRegular})
		case start <= horizon:
			out = append(out, SlideEvent{Event: ev, Slide: SlideUpcoming})
		case ev.Tags.Has("important"):
			out = append(out, SlideEvent{Event: ev, Slide: SlidePlan})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Slide == SlideRegular, out[j].Slide == SlideRegular
		if ri != rj {
			return ri
		}
		return out[i].Start.Time.Before(out[j].Start.Time)
	})
	return out
}

func isRegular(ev domain.Event) bool {
	for _, key := range ev.Tags.Keys() {
		if strings.HasPrefix(key, "regular-") {
			return true
		}
	}
	return false
}
