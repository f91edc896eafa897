package events

import (
	"fmt"
	"sort"
	"strings"

	"eventboard/internal/domain"
)

// ParseServices maps raw sheet rows onto service records. The first row
// is the header; rows without a date cell are skipped. Output is sorted
// ascending by date.
func ParseServices(rows [][]interface{}) []domain.Service {
	if len(rows) < 2 {
		return nil
	}
	var out []domain.Service
	for _, row := range rows[1:] {
		svc := domain.Service{
			Date:            cell(row, 1),
			Moderator:       cell(row, 2),
			Teacher:         cell(row, 3),
			Subject:         cell(row, 4),
			Body:            cell(row, 5),
			WorshipLeader:   cell(row, 6),
			ChildrenProgram: cell(row, 7),
			Projector:       cell(row, 8),
			SoundMaster:     cell(row, 9),
			Birthdays:       cell(row, 10),
		}
		if svc.Date == "" {
			continue
		}
		out = append(out, svc)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	if s, ok := row[i].(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
