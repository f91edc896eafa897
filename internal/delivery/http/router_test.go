package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/domain"
	"eventboard/internal/messages"
)

type staticProvider struct {
	board *domain.Board
}

func (p *staticProvider) Snapshot() (*domain.Board, error) { return p.board, nil }

func (p *staticProvider) Archive() ([]messages.Message, error) { return nil, nil }

func TestRouter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	controller := controllers.NewBoardController(logger, &staticProvider{
		board: &domain.Board{FetchedAt: time.Now()},
	}, time.UTC)
	mux := NewRouter(controller)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/events", http.StatusOK},
		{http.MethodGet, "/api/schedule", http.StatusOK},
		{http.MethodGet, "/api/presentation", http.StatusOK},
		{http.MethodGet, "/api/messages", http.StatusOK},
		{http.MethodGet, "/api/archive", http.StatusOK},
		{http.MethodPost, "/api/events", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		assert.Equal(t, tt.status, rr.Code, "%s %s", tt.method, tt.path)
	}
}
