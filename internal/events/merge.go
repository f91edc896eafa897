package events

import (
	"fmt"

	"eventboard/internal/domain"
)

// MergeServicesIntoEvents joins the service roster onto events tagged
// "svc" by exact start-date match. A matched event gets the roster line
// prepended to its body and the moderator/teacher tags set.
//
// Not idempotent: merging an already-merged event prepends the roster
// line again. Callers run this exactly once per fetched event list.
func MergeServicesIntoEvents(list []domain.Event, services []domain.Service) []domain.Event {
	byDate := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		byDate[svc.Date] = svc
	}
	for i := range list {
		if !list[i].Tags.Has("svc") {
			continue
		}
		svc, ok := byDate[list[i].Start.Date()]
		if !ok {
			continue
		}
		line := fmt.Sprintf("Vedení: %s, Kázání: %s", svc.Moderator, svc.Teacher)
		if list[i].Body != "" {
			list[i].Body = line + "\n" + list[i].Body
		} else {
			list[i].Body = line
		}
		list[i].Tags.Set("moderator", svc.Moderator)
		list[i].Tags.Set("teacher", svc.Teacher)
	}
	return list
}
