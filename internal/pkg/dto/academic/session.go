package academic

// SessionRecord is one scheduled class occurrence as returned by the
// academic API. AttendStatus is tri-state: true = present, false = absent,
// nil (or the field missing entirely) = not yet marked.
type SessionRecord struct {
	StartTime    string `json:"startTime"`
	SubjectName  string `json:"subjectName"`
	RoomID       string `json:"roomId"`
	AttendStatus *bool  `json:"attendStatus"`
}
