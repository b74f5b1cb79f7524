package responses

// MarkRow is one subject line on the mark report page.
type MarkRow struct {
	SubjectName string
	Mark        string
	Status      string
}

type MarksPage struct {
	StudentName string
	Rows        []MarkRow
}

// AttendanceRow aggregates one subject's attendance counters.
type AttendanceRow struct {
	SubjectName    string
	TotalSlots     int
	AttendedSlots  int
	AbsentSlots    int
	NotMarkedSlots int
	AttendRate     string
}

type AttendancePage struct {
	Rows []AttendanceRow
}

// ProfilePage carries the student profile with upstream codes already
// mapped to display labels.
type ProfilePage struct {
	StudentID   string
	StudentName string
	Email       string
	Phone       string
	DateOfBirth string
	GenderLabel string
	Address     string
	StatusLabel string
	AvatarURL   string
}
