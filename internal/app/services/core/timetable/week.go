package timetable

import "time"

// WeekWindow is the half-open Monday..next-Monday date range used to query
// the academic API. Start and End carry midnight in the portal timezone.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// ResolveWeekWindow returns the window of the Monday-first week containing
// the given date. Time-of-day on the input is ignored. Sunday belongs to the
// week that started six days earlier, not the one starting the next day.
func ResolveWeekWindow(date time.Time) WeekWindow {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	dow := int(day.Weekday())
	offset := 1 - dow
	if dow == 0 {
		offset = -6
	}

	monday := day.AddDate(0, 0, offset)
	return WeekWindow{
		Start: monday,
		End:   monday.AddDate(0, 0, 7),
	}
}

// DayIndexOf maps a timestamp's weekday onto the grid column order,
// Monday=0 .. Sunday=6.
func DayIndexOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
