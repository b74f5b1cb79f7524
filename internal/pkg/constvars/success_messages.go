package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetTimetableSuccessMessage  = "weekly timetable fetched successfully"
	GetMarkReportSuccessMessage = "mark report fetched successfully"
	GetAttendanceSuccessMessage = "attendance report fetched successfully"
	GetProfileSuccessMessage    = "profile fetched successfully"
	UploadAvatarSuccessMessage  = "profile photo uploaded successfully"
	CreatePaymentSuccessMessage = "payment link created successfully"
)
