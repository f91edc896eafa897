package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"

	"eventboard/internal/domain"
	"eventboard/internal/events"
	"eventboard/internal/messages"
)

// messageFolderCount is how many of the newest message subfolders are
// scanned for recordings.
const messageFolderCount = 2

// BoardConfig names the remote sources one board is built from.
type BoardConfig struct {
	CalendarID       string
	PromoFolderID    string
	MessagesFolderID string
	ServicesSheetID  string
	ServicesRange    string
	Location         *time.Location
}

// BoardService fetches the raw payloads of all sources concurrently and
// runs the normalization pipeline over them.
type BoardService struct {
	logger   *slog.Logger
	calendar domain.CalendarSource
	files    domain.FileSource
	sheets   domain.SheetSource
	cfg      BoardConfig
	now      func() time.Time
}

func NewBoardService(logger *slog.Logger, cal domain.CalendarSource, files domain.FileSource, sheets domain.SheetSource, cfg BoardConfig) *BoardService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &BoardService{
		logger:   logger,
		calendar: cal,
		files:    files,
		sheets:   sheets,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Build fetches everything and assembles one board snapshot plus the
// recording archive parsed by the filename codec.
func (s *BoardService) Build(ctx context.Context) (*domain.Board, []messages.Message, error) {
	now := s.now().In(s.cfg.Location)
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.cfg.Location)

	var (
		items        []*calendar.Event
		rows         [][]interface{}
		promoFiles   []*drive.File
		messageFiles []*drive.File
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.calendar.Events(gctx, s.cfg.CalendarID, since)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.sheets.Rows(gctx, s.cfg.ServicesSheetID, s.cfg.ServicesRange)
		return err
	})
	g.Go(func() error {
		var err error
		promoFiles, err = s.files.Files(gctx, s.cfg.PromoFolderID)
		return err
	})
	g.Go(func() error {
		var err error
		messageFiles, err = s.fetchMessageFiles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("fetch board sources: %w", err)
	}

	calendarEvents := s.normalizeAll(items, since)
	services := futureServices(events.ParseServices(rows), since)
	combined := events.MergeServicesIntoEvents(calendarEvents, services)
	combined = append(combined, s.fileEvents(promoFiles, since)...)
	events.SortByStart(combined)

	board := &domain.Board{
		FetchedAt:  now,
		Events:     combined,
		Services:   services,
		Recordings: recordingsOf(messageFiles, s.cfg.Location),
	}
	return board, archiveOf(messageFiles), nil
}

// normalizeAll converts raw calendar items, drops anything starting
// before since, and deduplicates recurring occurrences.
func (s *BoardService) normalizeAll(items []*calendar.Event, since time.Time) []domain.Event {
	list := make([]domain.Event, 0, len(items))
	for _, item := range items {
		ev, err := events.NormalizeCalendarItem(item, s.cfg.Location)
		if err != nil {
			s.logger.Warn("skipping calendar item", "err", err)
			continue
		}
		if ev.Start.IsZero() || ev.Start.Time.Before(since) {
			continue
		}
		list = append(list, ev)
	}
	return events.DeduplicateRecurring(list)
}

// fileEvents groups the promo folder listing and tags every resulting
// event as file-derived.
func (s *BoardService) fileEvents(files []*drive.File, since time.Time) []domain.Event {
	list := events.GroupFilesToEvents(files, s.cfg.Location)
	out := make([]domain.Event, 0, len(list))
	for _, ev := range list {
		if ev.Start.IsZero() || ev.Start.Time.Before(since) {
			continue
		}
		ev.Tags.Set("fileEvent", "")
		out = append(out, ev)
	}
	events.SortByStart(out)
	return out
}

// fetchMessageFiles lists the newest message subfolders and returns
// their files in one listing.
func (s *BoardService) fetchMessageFiles(ctx context.Context) ([]*drive.File, error) {
	if s.cfg.MessagesFolderID == "" {
		return nil, nil
	}
	folders, err := s.files.Folders(ctx, s.cfg.MessagesFolderID)
	if err != nil {
		return nil, err
	}
	if len(folders) > messageFolderCount {
		folders = folders[:messageFolderCount]
	}
	ids := make([]string, 0, len(folders))
	for _, folder := range folders {
		ids = append(ids, folder.Id)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.files.Files(ctx, ids...)
}

func futureServices(list []domain.Service, since time.Time) []domain.Service {
	today := since.Format("2006-01-02")
	out := make([]domain.Service, 0, len(list))
	for _, svc := range list {
		if svc.Date >= today {
			out = append(out, svc)
		}
	}
	return out
}

// recordingsOf views grouped message files as sermon recordings: the
// event subject carries the speaker, the body the title, and the
// attachments split into audio and transcript. Newest first.
func recordingsOf(files []*drive.File, loc *time.Location) []domain.Recording {
	grouped := events.GroupFilesToEvents(files, loc)
	out := make([]domain.Recording, 0, len(grouped))
	for _, ev := range grouped {
		rec := domain.Recording{
			Date:    ev.Start.String(),
			Speaker: ev.Subject,
			Title:   ev.Body,
			Tags:    ev.Tags,
		}
		for i := range ev.Attachments {
			att := ev.Attachments[i]
			switch {
			case rec.Audio == nil && strings.HasPrefix(att.Mime, "audio/"):
				rec.Audio = &att
			case rec.Text == nil && att.Mime == "application/pdf":
				rec.Text = &att
			}
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// archiveOf parses every message filename through the recording codec,
// skipping names outside it. Newest first.
func archiveOf(files []*drive.File) []messages.Message {
	out := make([]messages.Message, 0, len(files))
	for _, file := range files {
		if file == nil {
			continue
		}
		msg, ok := messages.Parse(file.Name)
		if !ok {
			continue
		}
		out = append(out, msg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].File > out[j].File
	})
	return out
}
