// Package google implements the calendar, drive and sheet sources over
// the Google APIs.
package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"eventboard/internal/domain"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	fileFields     = "files(id, name, mimeType, webViewLink, webContentLink)"
	folderFields   = "files(id, name)"
	filePageSize   = 100
)

// Client bundles the three Google API services behind the source
// interfaces the board service consumes.
type Client struct {
	calendar *calendar.Service
	drive    *drive.Service
	sheets   *sheets.Service
}

var (
	_ domain.CalendarSource = (*Client)(nil)
	_ domain.FileSource     = (*Client)(nil)
	_ domain.SheetSource    = (*Client)(nil)
)

// NewClient builds the API services with the given client options,
// typically option.WithCredentialsFile.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	calendarSvc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{calendar: calendarSvc, drive: driveSvc, sheets: sheetsSvc}, nil
}

// Events lists the calendar's items from since through one year ahead,
// recurring series expanded and ordered by start time.
func (c *Client) Events(ctx context.Context, calendarID string, since time.Time) ([]*calendar.Event, error) {
	resp, err := c.calendar.Events.List(calendarID).
		TimeMin(since.Format(time.RFC3339)).
		TimeMax(since.AddDate(1, 0, 0).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(365).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list events of %s: %w", calendarID, err)
	}
	return resp.Items, nil
}

// Files lists the non-folder files of the given folders, newest name
// first.
func (c *Client) Files(ctx context.Context, folderIDs ...string) ([]*drive.File, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}
	parents := make([]string, len(folderIDs))
	for i, id := range folderIDs {
		parents[i] = fmt.Sprintf("'%s' in parents", id)
	}
	query := fmt.Sprintf("trashed=false and (%s) and mimeType != '%s'",
		strings.Join(parents, " or "), folderMimeType)

	resp, err := c.drive.Files.List().
		Q(query).
		OrderBy("name desc").
		PageSize(filePageSize).
		Fields(fileFields).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return resp.Files, nil
}

// Folders lists the subfolders of parentID, newest name first.
func (c *Client) Folders(ctx context.Context, parentID string) ([]*drive.File, error) {
	query := fmt.Sprintf("trashed=false and '%s' in parents and mimeType = '%s'",
		parentID, folderMimeType)

	resp, err := c.drive.Files.List().
		Q(query).
		OrderBy("name desc").
		PageSize(filePageSize).
		Fields(folderFields).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list folders of %s: %w", parentID, err)
	}
	return resp.Files, nil
}

// Rows fetches a cell range of a spreadsheet.
func (c *Client) Rows(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s range %s: %w", spreadsheetID, readRange, err)
	}
	return resp.Values, nil
}
