package timetable

import (
	"testing"
	"time"

	academicdto "uniacad-portal/internal/pkg/dto/academic"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestBuildGrid(t *testing.T) {
	loc := time.UTC

	t.Run("Session Lands On Its Slot And Day Coordinate", func(t *testing.T) {
		// 2026-06-03 is a Wednesday, 10:00 opens slot 3.
		grid := BuildGrid([]academicdto.SessionRecord{
			{StartTime: "2026-06-03T10:00:00", SubjectName: "Databases", RoomID: "B2-204", AttendStatus: boolPtr(true)},
		}, loc)

		cell := grid[2][2]
		assert.NotNil(t, cell)
		assert.Equal(t, "Databases", cell.SubjectName)
		assert.Equal(t, "B2-204", cell.RoomID)
	})

	t.Run("Attendance Maps To Tri State Labels", func(t *testing.T) {
		grid := BuildGrid([]academicdto.SessionRecord{
			{StartTime: "2026-06-01T07:00:00", SubjectName: "Algebra", AttendStatus: boolPtr(true)},
			{StartTime: "2026-06-02T07:00:00", SubjectName: "Physics", AttendStatus: boolPtr(false)},
			{StartTime: "2026-06-03T07:00:00", SubjectName: "Chemistry", AttendStatus: nil},
		}, loc)

		assert.Equal(t, AttendLabelPresent, grid[0][0].AttendLabel)
		assert.Equal(t, AttendStatePresent, grid[0][0].AttendState)
		assert.Equal(t, AttendLabelAbsent, grid[0][1].AttendLabel)
		assert.Equal(t, AttendStateAbsent, grid[0][1].AttendState)
		assert.Equal(t, AttendLabelNotMarked, grid[0][2].AttendLabel)
		assert.Equal(t, AttendStateNotMarked, grid[0][2].AttendState)
	})

	t.Run("Later Record Wins A Collision", func(t *testing.T) {
		grid := BuildGrid([]academicdto.SessionRecord{
			{StartTime: "2026-06-01T13:00:00", SubjectName: "First"},
			{StartTime: "2026-06-01T13:45:00", SubjectName: "Second"},
		}, loc)

		cell := grid[4][0]
		assert.NotNil(t, cell)
		assert.Equal(t, "Second", cell.SubjectName, "the record appearing later in the payload should overwrite")
	})

	t.Run("Out Of Range Times Are Dropped", func(t *testing.T) {
		grid := BuildGrid([]academicdto.SessionRecord{
			{StartTime: "2026-06-01T06:59:00", SubjectName: "Too Early"},
			{StartTime: "2026-06-01T19:00:00", SubjectName: "Too Late"},
		}, loc)

		for slot := 0; slot < NumSlots; slot++ {
			for day := 0; day < DaysPerWeek; day++ {
				assert.Nil(t, grid[slot][day])
			}
		}
	})

	t.Run("Unparseable Timestamps Are Dropped", func(t *testing.T) {
		grid := BuildGrid([]academicdto.SessionRecord{
			{StartTime: "not-a-timestamp", SubjectName: "Broken"},
			{StartTime: "2026-06-01T08:30:00", SubjectName: "Kept"},
		}, loc)

		assert.Nil(t, grid[0][0])
		assert.NotNil(t, grid[1][0])
		assert.Equal(t, "Kept", grid[1][0].SubjectName)
	})

	t.Run("Empty Input Yields An Empty Grid", func(t *testing.T) {
		grid := BuildGrid(nil, loc)
		for slot := 0; slot < NumSlots; slot++ {
			for day := 0; day < DaysPerWeek; day++ {
				assert.Nil(t, grid[slot][day])
			}
		}
	})

	t.Run("A Session On Each Day Fills One Row", func(t *testing.T) {
		var records []academicdto.SessionRecord
		monday := time.Date(2026, time.June, 1, 0, 0, 0, 0, loc)
		for day := 0; day < DaysPerWeek; day++ {
			records = append(records, academicdto.SessionRecord{
				StartTime:   monday.AddDate(0, 0, day).Format("2006-01-02") + "T11:30:00",
				SubjectName: "Seminar",
			})
		}
		grid := BuildGrid(records, loc)
		for day := 0; day < DaysPerWeek; day++ {
			assert.NotNil(t, grid[3][day], "day column %d should be occupied", day)
		}
	})
}
