package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveWeekWindow(t *testing.T) {
	loc := time.UTC

	t.Run("Any Day Of A Week Resolves To The Same Monday", func(t *testing.T) {
		// 2026-06-01 is a Monday.
		monday := time.Date(2026, time.June, 1, 0, 0, 0, 0, loc)
		for offset := 0; offset < 7; offset++ {
			window := ResolveWeekWindow(monday.AddDate(0, 0, offset))
			assert.Equal(t, monday, window.Start, "day offset %d should snap to the same Monday", offset)
			assert.Equal(t, monday.AddDate(0, 0, 7), window.End)
		}
	})

	t.Run("Sunday Belongs To The Preceding Monday Week", func(t *testing.T) {
		// 2026-06-07 is a Sunday.
		sunday := time.Date(2026, time.June, 7, 0, 0, 0, 0, loc)
		window := ResolveWeekWindow(sunday)
		assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, loc), window.Start)
	})

	t.Run("Monday Resolves To Itself", func(t *testing.T) {
		monday := time.Date(2026, time.August, 31, 0, 0, 0, 0, loc)
		window := ResolveWeekWindow(monday)
		assert.Equal(t, monday, window.Start)
	})

	t.Run("Window Spans A Month Boundary", func(t *testing.T) {
		// 2026-07-01 is a Wednesday; its week starts on 2026-06-29.
		wednesday := time.Date(2026, time.July, 1, 0, 0, 0, 0, loc)
		window := ResolveWeekWindow(wednesday)
		assert.Equal(t, time.Date(2026, time.June, 29, 0, 0, 0, 0, loc), window.Start)
		assert.Equal(t, time.Date(2026, time.July, 6, 0, 0, 0, 0, loc), window.End)
	})

	t.Run("Time Of Day Is Truncated", func(t *testing.T) {
		late := time.Date(2026, time.June, 3, 23, 59, 59, 0, loc)
		window := ResolveWeekWindow(late)
		assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, loc), window.Start)
		assert.Zero(t, window.Start.Hour())
	})
}

func TestDayIndexOf(t *testing.T) {
	loc := time.UTC

	t.Run("Monday Is Column Zero", func(t *testing.T) {
		monday := time.Date(2026, time.June, 1, 0, 0, 0, 0, loc)
		assert.Equal(t, 0, DayIndexOf(monday))
	})

	t.Run("Sunday Is Column Six", func(t *testing.T) {
		sunday := time.Date(2026, time.June, 7, 0, 0, 0, 0, loc)
		assert.Equal(t, 6, DayIndexOf(sunday))
	})

	t.Run("All Days Map Monday First", func(t *testing.T) {
		monday := time.Date(2026, time.June, 1, 0, 0, 0, 0, loc)
		for offset := 0; offset < 7; offset++ {
			assert.Equal(t, offset, DayIndexOf(monday.AddDate(0, 0, offset)))
		}
	})
}
