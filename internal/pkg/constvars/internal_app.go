package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_STUDENT_ID_KEY           ContextKey = "student_id"
	CONTEXT_STUDENT_EMAIL_KEY        ContextKey = "student_email"
)

const (
	ResourceTimetable  = "timetable"
	ResourceMarkReport = "mark report"
	ResourceAttendance = "attendance"
	ResourceProfile    = "profile"
	ResourcePayment    = "payment"
	ResourceAvatar     = "avatar"
)

const (
	SessionCookieName = "uniacad_session"

	PaymentLimiterGroup = "payment-checkout"
)
