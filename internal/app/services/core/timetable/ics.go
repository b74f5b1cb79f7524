package timetable

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

// BuildWeekCalendar serializes the occupied grid cells as an iCalendar
// document, one VEVENT per cell, anchored on the window's dates with the
// slot's fixed clock times.
func BuildWeekCalendar(window WeekWindow, grid Grid) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//UniAcad//Student Portal//EN")

	for slot := 0; slot < NumSlots; slot++ {
		sh, sm, eh, em := SlotClock(slot)
		for day := 0; day < DaysPerWeek; day++ {
			cell := grid[slot][day]
			if cell == nil {
				continue
			}

			date := window.Start.AddDate(0, 0, day)
			start := time.Date(date.Year(), date.Month(), date.Day(), sh, sm, 0, 0, date.Location())
			end := time.Date(date.Year(), date.Month(), date.Day(), eh, em, 0, 0, date.Location())

			event := cal.AddEvent(fmt.Sprintf("%s-s%d-d%d@uniacad-portal", date.Format("20060102"), slot+1, day))
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(cell.SubjectName)
			event.SetLocation(cell.RoomID)
			event.SetDescription(fmt.Sprintf("%s / Room: %s / Status: %s", SlotLabel(slot), cell.RoomID, cell.AttendLabel))
		}
	}

	return []byte(cal.Serialize())
}
