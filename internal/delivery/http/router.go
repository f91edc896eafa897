package http

import (
	"net/http"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(board *controllers.BoardController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/events", board.GetEvents)
	mux.HandleFunc("GET /api/schedule", board.GetSchedule)
	mux.HandleFunc("GET /api/presentation", board.GetPresentation)
	mux.HandleFunc("GET /api/messages", board.GetMessages)
	mux.HandleFunc("GET /api/archive", board.GetArchive)

	return mux
}
