package constvars

// Paths of the upstream academic API, relative to ACADEMIC_API_BASE_URL.
const (
	AcademicPathTimetable  = "/api/student/timetable"
	AcademicPathMarkReport = "/api/student/markReport"
	AcademicPathAttendance = "/api/student/attendance"
	AcademicPathProfile    = "/api/student/profile"
)

const (
	// The academic API and the payment gateway both wrap payloads in
	// {error, data, message}; zero means success.
	EnvelopeErrorNone = 0
)
