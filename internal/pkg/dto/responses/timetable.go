package responses

// DayHeader labels one weekday column. Date is the column's calendar date
// formatted dd/mm; IsToday marks the column matching the current weekday.
type DayHeader struct {
	Label   string
	Date    string
	IsToday bool
}

// TimetableCell is one occupied timetable coordinate as rendered.
type TimetableCell struct {
	SubjectName string
	RoomID      string
	AttendLabel string
	AttendState string
}

// GridRow is one slot row. Cells holds one entry per weekday, nil when the
// slot is free that day.
type GridRow struct {
	Label     string
	TimeRange string
	Cells     [7]*TimetableCell
}

// TimetablePage is the timetable view model handed to the renderer.
type TimetablePage struct {
	WeekStart    string
	WeekEnd      string
	PrevWeekDate string
	NextWeekDate string
	Days         [7]DayHeader
	Rows         [8]GridRow
}
