package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func TestParseServices(t *testing.T) {
	rows := [][]interface{}{
		{"", "Datum", "Vedení", "Kázání"},
		{"", "2024-04-28", "Jan Novák", "Petr Dvořák", "Vzkříšení", "", "Marie", "Ano", "Pavel", "Tomáš", "Anna 30"},
		{"", "", "nikdo", "nikdo"},
		{"", "2024-04-21", "Karel Malý", "Jiří Velký"},
	}

	got := ParseServices(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "2024-04-21", got[0].Date)
	assert.Equal(t, "Karel Malý", got[0].Moderator)
	assert.Equal(t, "2024-04-28", got[1].Date)
	assert.Equal(t, "Petr Dvořák", got[1].Teacher)
	assert.Equal(t, "Vzkříšení", got[1].Subject)
	assert.Equal(t, "Anna 30", got[1].Birthdays)
}

func TestParseServicesEmptySheet(t *testing.T) {
	assert.Empty(t, ParseServices(nil))
	assert.Empty(t, ParseServices([][]interface{}{{"header only"}}))
}

func TestParseServicesNonStringCells(t *testing.T) {
	got := ParseServices([][]interface{}{
		{"header"},
		{"", "2024-04-28", 42, "Petr"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "42", got[0].Moderator)
}

func TestMergeServicesIntoEvents(t *testing.T) {
	services := []domain.Service{
		{Date: "2024-04-28", Moderator: "Jan Novák", Teacher: "Petr Dvořák"},
	}
	svcEvent := func(body string) domain.Event {
		ev := domain.Event{
			EventID: "shromazdeni",
			Start:   ParseInstant("2024-04-28 09:30", time.UTC),
			Subject: "Shromáždění",
			Body:    body,
		}
		ev.Tags.Set("svc", "")
		return ev
	}

	t.Run("matched event gets roster line and tags", func(t *testing.T) {
		got := MergeServicesIntoEvents([]domain.Event{svcEvent("")}, services)
		require.Len(t, got, 1)
		assert.Equal(t, "Vedení: Jan Novák, Kázání: Petr Dvořák", got[0].Body)
		assert.Equal(t, "Jan Novák", got[0].Tags.Get("moderator"))
		assert.Equal(t, "Petr Dvořák", got[0].Tags.Get("teacher"))
	})

	t.Run("existing body moves below the roster line", func(t *testing.T) {
		got := MergeServicesIntoEvents([]domain.Event{svcEvent("Večeře Páně")}, services)
		assert.Equal(t, "Vedení: Jan Novák, Kázání: Petr Dvořák\nVečeře Páně", got[0].Body)
	})

	t.Run("events without svc tag or matching date pass through", func(t *testing.T) {
		plain := domain.Event{Start: ParseInstant("2024-04-28 09:30", time.UTC), Body: "x"}
		otherDay := svcEvent("y")
		otherDay.Start = ParseInstant("2024-05-05 09:30", time.UTC)
		got := MergeServicesIntoEvents([]domain.Event{plain, otherDay}, services)
		assert.Equal(t, "x", got[0].Body)
		assert.Equal(t, "y", got[1].Body)
	})

	t.Run("double merge prepends twice", func(t *testing.T) {
		once := MergeServicesIntoEvents([]domain.Event{svcEvent("")}, services)
		twice := MergeServicesIntoEvents(once, services)
		assert.NotEqual(t, "Vedení: Jan Novák, Kázání: Petr Dvořák", twice[0].Body)
		assert.Equal(t, "Vedení: Jan Novák, Kázání: Petr Dvořák\nVedení: Jan Novák, Kázání: Petr Dvořák", twice[0].Body)
	})
}
