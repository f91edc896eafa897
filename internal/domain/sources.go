package domain

import (
	"context"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"
)

// CalendarSource fetches raw calendar items for a calendar, starting at
// since and covering one year ahead, recurring series expanded.
type CalendarSource interface {
	Events(ctx context.Context, calendarID string, since time.Time) ([]*calendar.Event, error)
}

// FileSource lists Drive files. Files returns non-folder files of one or
// more folders ordered by name descending; Folders returns the subfolders
// of a parent, newest name first.
type FileSource interface {
	Files(ctx context.Context, folderIDs ...string) ([]*drive.File, error)
	Folders(ctx context.Context, parentID string) ([]*drive.File, error)
}

// SheetSource fetches a cell range of a spreadsheet as raw rows.
type SheetSource interface {
	Rows(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)
}
