package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"eventboard/internal/domain"
	"eventboard/internal/messages"
)

// Refresher keeps the latest board snapshot in memory and rebuilds it on
// a cron schedule, so request handling never waits on the Google APIs.
type Refresher struct {
	logger  *slog.Logger
	board   *BoardService
	timeout time.Duration
	cron    *cron.Cron

	mu      sync.RWMutex
	snap    *domain.Board
	archive []messages.Message
}

func NewRefresher(logger *slog.Logger, board *BoardService, timeout time.Duration) *Refresher {
	return &Refresher{
		logger:  logger,
		board:   board,
		timeout: timeout,
		cron:    cron.New(),
	}
}

// Start performs one synchronous refresh, then schedules periodic ones.
// The initial refresh failing is not fatal: the cron keeps retrying and
// Snapshot reports ErrNotReady until one succeeds.
func (r *Refresher) Start(ctx context.Context, schedule string) error {
	if err := r.Refresh(ctx); err != nil {
		r.logger.Error("initial board refresh failed", "err", err)
	}
	if _, err := r.cron.AddFunc(schedule, func() {
		if err := r.Refresh(context.Background()); err != nil {
			r.logger.Error("board refresh failed", "err", err)
		}
	}); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the refresh schedule and waits for a running refresh.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}

// Refresh rebuilds the snapshot once.
func (r *Refresher) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	board, archive, err := r.board.Build(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.snap = board
	r.archive = archive
	r.mu.Unlock()

	r.logger.Info("board refreshed",
		"events", len(board.Events),
		"services", len(board.Services),
		"recordings", len(board.Recordings),
	)
	return nil
}

// Snapshot returns the latest board, or ErrNotReady before the first
// successful refresh.
func (r *Refresher) Snapshot() (*domain.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snap == nil {
		return nil, domain.ErrNotReady
	}
	return r.snap, nil
}

// Archive returns the latest recording archive, or ErrNotReady before
// the first successful refresh.
func (r *Refresher) Archive() ([]messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snap == nil {
		return nil, domain.ErrNotReady
	}
	return r.archive, nil
}
