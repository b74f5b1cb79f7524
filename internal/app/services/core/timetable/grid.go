package timetable

import (
	"time"

	"uniacad-portal/internal/pkg/constvars"
	academicdto "uniacad-portal/internal/pkg/dto/academic"
)

const (
	AttendLabelPresent   = "Present"
	AttendLabelAbsent    = "Absent"
	AttendLabelNotMarked = "Not marked"

	AttendStatePresent   = "present"
	AttendStateAbsent    = "absent"
	AttendStateNotMarked = "not-marked"
)

// TimetableCell is one occupied grid coordinate. AttendState is the CSS
// token matching AttendLabel.
type TimetableCell struct {
	SubjectName string
	RoomID      string
	AttendLabel string
	AttendState string
}

// Grid is the full week: NumSlots rows by DaysPerWeek columns, nil for
// coordinates with no session. Rebuilt from scratch on every load.
type Grid [NumSlots][DaysPerWeek]*TimetableCell

// BuildGrid classifies each session record onto (slot, day) coordinates.
// Records whose time falls outside every slot range, or whose timestamp does
// not parse, contribute nothing. When two records land on the same
// coordinate the later one in input order wins.
func BuildGrid(records []academicdto.SessionRecord, loc *time.Location) Grid {
	var grid Grid

	for _, record := range records {
		startTime, err := time.ParseInLocation(constvars.DateTimeLayoutAcademic, record.StartTime, loc)
		if err != nil {
			continue
		}

		slot := ClassifySlot(startTime.Hour(), startTime.Minute())
		if slot == SlotNone {
			continue
		}
		day := DayIndexOf(startTime)

		grid[slot][day] = &TimetableCell{
			SubjectName: record.SubjectName,
			RoomID:      record.RoomID,
			AttendLabel: attendLabel(record.AttendStatus),
			AttendState: attendState(record.AttendStatus),
		}
	}

	return grid
}

func attendLabel(status *bool) string {
	switch {
	case status == nil:
		return AttendLabelNotMarked
	case *status:
		return AttendLabelPresent
	default:
		return AttendLabelAbsent
	}
}

func attendState(status *bool) string {
	switch {
	case status == nil:
		return AttendStateNotMarked
	case *status:
		return AttendStatePresent
	default:
		return AttendStateAbsent
	}
}
