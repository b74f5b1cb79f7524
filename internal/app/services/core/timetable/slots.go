package timetable

import "fmt"

const (
	// NumSlots is the number of class periods per day in the institutional
	// schedule. The ranges are fixed; there is no configurable calendar.
	NumSlots = 8

	DaysPerWeek = 7

	// SlotNone marks a wall-clock time outside every slot range.
	SlotNone = -1
)

// slotRanges holds the half-open [start,end) minute-of-day window of each
// slot. The table is contiguous from 07:00 to 19:00.
var slotRanges = [NumSlots]struct {
	StartMinute int
	EndMinute   int
}{
	{7 * 60, 8*60 + 30},
	{8*60 + 30, 10 * 60},
	{10 * 60, 11*60 + 30},
	{11*60 + 30, 13 * 60},
	{13 * 60, 14*60 + 30},
	{14*60 + 30, 16 * 60},
	{16 * 60, 17*60 + 30},
	{17*60 + 30, 19 * 60},
}

// ClassifySlot maps a wall-clock hour and minute to a slot index, or
// SlotNone when the time falls outside every range. Total over all inputs;
// out-of-range times are data to be dropped, never an error.
func ClassifySlot(hour, minute int) int {
	timeInMinutes := hour*60 + minute
	for slot, r := range slotRanges {
		if timeInMinutes >= r.StartMinute && timeInMinutes < r.EndMinute {
			return slot
		}
	}
	return SlotNone
}

// SlotClock returns the fixed start and end clock of a slot as
// (startHour, startMinute, endHour, endMinute).
func SlotClock(slot int) (int, int, int, int) {
	r := slotRanges[slot]
	return r.StartMinute / 60, r.StartMinute % 60, r.EndMinute / 60, r.EndMinute % 60
}

// SlotLabel is the user-facing one-based slot name, "Slot 1".."Slot 8".
func SlotLabel(slot int) string {
	return fmt.Sprintf("Slot %d", slot+1)
}
