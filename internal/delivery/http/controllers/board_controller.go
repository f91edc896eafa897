package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
	"eventboard/internal/events"
	"eventboard/internal/messages"
)

// BoardProvider serves the cached board state to request handlers.
type BoardProvider interface {
	Snapshot() (*domain.Board, error)
	Archive() ([]messages.Message, error)
}

type BoardController struct {
	Logger *slog.Logger
	Board  BoardProvider
	Now    func() time.Time
}

// NewBoardController builds a controller whose clock runs in loc, the
// same location events are normalized into. Week buckets and the date
// query parameter are computed against that clock.
func NewBoardController(logger *slog.Logger, board BoardProvider, loc *time.Location) *BoardController {
	if loc == nil {
		loc = time.Local
	}
	return &BoardController{
		Logger: logger,
		Board:  board,
		Now:    func() time.Time { return time.Now().In(loc) },
	}
}

// snapshot loads the current board or writes the error response itself.
func (c *BoardController) snapshot(w http.ResponseWriter, r *http.Request) (*domain.Board, bool) {
	board, err := c.Board.Snapshot()
	if err != nil {
		if errors.Is(err, domain.ErrNotReady) {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "board not ready")
			return nil, false
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return nil, false
	}
	return board, true
}

// GetEventsResponse is the data payload for GET /api/events.
type GetEventsResponse struct {
	FetchedAt time.Time        `json:"fetchedAt"`
	Events    []domain.Event   `json:"events"`
	Services  []domain.Service `json:"services"`
}

// GetEvents returns the full normalized event list with the merged
// service plan.
func (c *BoardController) GetEvents(w http.ResponseWriter, r *http.Request) {
	board, ok := c.snapshot(w, r)
	if !ok {
		return
	}
	evs := board.Events
	if evs == nil {
		evs = []domain.Event{}
	}
	svcs := board.Services
	if svcs == nil {
		svcs = []domain.Service{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GetEventsResponse{
		FetchedAt: board.FetchedAt,
		Events:    evs,
		Services:  svcs,
	})
}

// GetSchedule buckets the cached events against the current week.
func (c *BoardController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	board, ok := c.snapshot(w, r)
	if !ok {
		return
	}
	buckets := events.Schedule(board.Events, events.WeekOf(c.Now()))
	helpers.WriteJSONSuccess(w, http.StatusOK, buckets)
}

// GetPresentation classifies the cached events into kiosk slides. An
// optional date query parameter (YYYY-MM-DD) overrides the reference day.
func (c *BoardController) GetPresentation(w http.ResponseWriter, r *http.Request) {
	board, ok := c.snapshot(w, r)
	if !ok {
		return
	}
	date := c.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, date.Location())
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}
	slides := events.GroupForPresentation(board.Events, date)
	if slides == nil {
		slides = []events.SlideEvent{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slides)
}

// GetMessages returns the recent recordings grouped from the message
// folders.
func (c *BoardController) GetMessages(w http.ResponseWriter, r *http.Request) {
	board, ok := c.snapshot(w, r)
	if !ok {
		return
	}
	recs := board.Recordings
	if recs == nil {
		recs = []domain.Recording{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, recs)
}

// GetArchiveResponse is the data payload for GET /api/archive.
type GetArchiveResponse struct {
	Items      []messages.Message     `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// GetArchive returns the full recording archive, newest first, paginated
// with page and page_size query parameters.
func (c *BoardController) GetArchive(w http.ResponseWriter, r *http.Request) {
	archive, err := c.Board.Archive()
	if err != nil {
		if errors.Is(err, domain.ErrNotReady) {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "board not ready")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	params := helpers.ParsePagination(r)
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, len(archive))
	helpers.WriteJSONSuccess(w, http.StatusOK, GetArchiveResponse{
		Items:      helpers.Slice(archive, params),
		Pagination: meta,
	})
}
