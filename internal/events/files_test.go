package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"

	"eventboard/internal/domain"
)

func promoFile(id, name string) *drive.File {
	return &drive.File{
		Id:             id,
		Name:           name,
		MimeType:       "application/pdf",
		WebViewLink:    "https://drive.google.com/file/d/" + id + "/view",
		WebContentLink: "https://drive.google.com/uc?id=" + id,
	}
}

func TestGroupFilesToEvents(t *testing.T) {
	loc := time.UTC

	t.Run("files sharing start and subject group into one event", func(t *testing.T) {
		got := GroupFilesToEvents([]*drive.File{
			promoFile("f1", "2025-04-22_Meeting__a.pdf"),
			promoFile("f2", "2025-04-22_Meeting__b.docx"),
			promoFile("f3", "2025-04-22_Meeting_Program dne_c.pdf"),
		}, loc)

		require.Len(t, got, 1)
		ev := got[0]
		assert.Equal(t, "2025-04-22__Meeting", ev.EventID)
		assert.Equal(t, "Meeting", ev.Subject)
		assert.Equal(t, "Program dne", ev.Body)
		require.Len(t, ev.Attachments, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{
			ev.Attachments[0].Name, ev.Attachments[1].Name, ev.Attachments[2].Name,
		})
		assert.Equal(t, "f1", ev.Attachments[0].FileID)
		assert.Equal(t, "application/pdf", ev.Attachments[0].Mime)
	})

	t.Run("single day event spans one day", func(t *testing.T) {
		got := GroupFilesToEvents([]*drive.File{
			promoFile("f1", "2025-04-22_Koncert__plakát.pdf"),
		}, loc)

		require.Len(t, got, 1)
		assert.Equal(t, "2025-04-22", got[0].Start.String())
		assert.Equal(t, "2025-04-22", got[0].End.String())
		assert.Equal(t, domain.Duration{Days: 1, SpanDays: 1}, got[0].Duration)
	})

	t.Run("explicit date range is inclusive", func(t *testing.T) {
		got := GroupFilesToEvents([]*drive.File{
			promoFile("f1", "2025-07-14,2025-07-18_Tábor__leták.pdf"),
		}, loc)

		require.Len(t, got, 1)
		assert.Equal(t, "2025-07-14", got[0].Start.String())
		assert.Equal(t, "2025-07-18", got[0].End.String())
		assert.Equal(t, domain.Duration{Days: 5, SpanDays: 5}, got[0].Duration)
	})

	t.Run("timed start with date-only end gets one hour", func(t *testing.T) {
		got := GroupFilesToEvents([]*drive.File{
			promoFile("f1", "2025-04-22 18:00,2025-04-23_Koncert__plakát.pdf"),
		}, loc)

		require.Len(t, got, 1)
		assert.Equal(t, "2025-04-22 18:00", got[0].Start.String())
		assert.Equal(t, "2025-04-22 19:00", got[0].End.String())
		assert.Equal(t, domain.Duration{Hours: 1, SpanDays: 1}, got[0].Duration)
	})

	t.Run("timed start without end keeps a point range", func(t *testing.T) {
		got := GroupFilesToEvents([]*drive.File{
			promoFile("f1", "2025-04-22 18:00_Koncert__plakát.pdf"),
		}, loc)

		require.Len(t, got, 1)
		assert.Equal(t, "2025-04-22 18:00", got[0].Start.String())
		assert.Equal(t, "2025-04-22 18:00", got[0].End.String())
		assert.Equal(t, domain.Duration{}, got[0].Duration)
	})

	t.Run("subject tags merge across the group last-wins", func(t *testing.T) {
		got := GroupFilesToEvents([]*drive.File{
			promoFile("f1", "2025-04-22_Meeting #top #lang:cz__a.pdf"),
			promoFile("f2", "2025-04-22_Meeting #lang:en__b.pdf"),
		}, loc)

		require.Len(t, got, 1)
		assert.True(t, got[0].Tags.Has("top"))
		assert.Equal(t, "en", got[0].Tags.Get("lang"))
	})

	t.Run("attachment label falls back to subject", func(t *testing.T) {
		got := GroupFilesToEvents([]*drive.File{
			promoFile("f1", "2025-04-22_Koncert.pdf"),
		}, loc)

		require.Len(t, got, 1)
		require.Len(t, got[0].Attachments, 1)
		assert.Equal(t, "Koncert", got[0].Attachments[0].Name)
	})

	t.Run("names without a leading date are skipped", func(t *testing.T) {
		got := GroupFilesToEvents([]*drive.File{
			promoFile("f1", "poznámky.txt"),
			promoFile("f2", "2025-04-22_Koncert__a.pdf"),
		}, loc)
		require.Len(t, got, 1)
		assert.Equal(t, "Koncert", got[0].Subject)
	})
}
