package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingDurationKey    = "duration"
	LoggingStatusCodeKey  = "status_code"
	LoggingSuccessKey     = "success"
	LoggingOperationKey   = "operation"

	LoggingStudentIDKey    = "student_id"
	LoggingWeekStartKey    = "week_start"
	LoggingRecordCountKey  = "record_count"
	LoggingSubjectCountKey = "subject_count"
	LoggingOrderCodeKey    = "order_code"
	LoggingObjectNameKey   = "object_name"
	LoggingUpstreamURLKey  = "upstream_url"
)
