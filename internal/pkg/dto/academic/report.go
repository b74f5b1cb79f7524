package academic

type MarkReportItem struct {
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	SubjectName string  `json:"subjectName"`
	Mark        float64 `json:"mark"`
	Status      string  `json:"status"`
}

type AttendanceSummaryItem struct {
	SubjectName    string `json:"subjectName"`
	TotalSlots     int    `json:"totalSlots"`
	AttendedSlots  int    `json:"attendedSlots"`
	AbsentSlots    int    `json:"absentSlots"`
	NotMarkedSlots int    `json:"notMarkedSlots"`
}
