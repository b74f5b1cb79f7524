package constvars

const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized, please login first"
	ErrClientSessionExpired                = "Your session has expired, please login again"
	ErrClientTooManyRequests               = "Too many requests, please slow down"

	ErrClientFailedLoadTimetable  = "Failed to load schedule."
	ErrClientFailedLoadMarkReport = "Failed to load mark report."
	ErrClientFailedLoadAttendance = "Failed to load attendance report."
	ErrClientFailedLoadProfile    = "Failed to load profile."
	ErrClientFailedCreatePayment  = "Failed to create payment link"
	ErrClientInvalidDate          = "Invalid date, expected YYYY-MM-DD"
	ErrClientInvalidImageFormat   = "Invalid image, only JPEG and PNG are accepted"
)

const (
	ErrDevValidationFailed         = "VALIDATION_FAILED"
	ErrDevInvalidInput             = "INVALID_INPUT"
	ErrDevCannotParseDate          = "CANNOT_PARSE_DATE"
	ErrDevCannotMarshalJSON        = "CANNOT_MARSHAL_JSON"
	ErrDevCannotParseJSON          = "CANNOT_PARSE_JSON"
	ErrDevCreateHTTPRequest        = "CANNOT_CREATE_HTTP_REQUEST"
	ErrDevSendHTTPRequest          = "CANNOT_SEND_HTTP_REQUEST"
	ErrDevDecodeResponse           = "CANNOT_DECODE_RESPONSE"
	ErrDevUpstreamStatus           = "UPSTREAM_RETURNED_NON_2XX"
	ErrDevUpstreamEnvelope         = "UPSTREAM_ENVELOPE_ERROR"
	ErrDevServerDeadlineExceeded   = "SERVER_DEADLINE_EXCEEDED"
	ErrDevSessionTokenMissing      = "SESSION_TOKEN_MISSING"
	ErrDevSessionTokenInvalid      = "SESSION_TOKEN_INVALID"
	ErrDevSessionNotFound          = "SESSION_NOT_FOUND_IN_STORE"
	ErrDevRedisGet                 = "REDIS_CANNOT_GET_KEY"
	ErrDevRedisSet                 = "REDIS_CANNOT_SET_KEY"
	ErrDevRedisDelete              = "REDIS_CANNOT_DELETE_KEY"
	ErrDevRedisIncrement           = "REDIS_CANNOT_INCREMENT_KEY"
	ErrDevMinioCreateObject        = "MINIO_CANNOT_CREATE_OBJECT"
	ErrDevQueuePublish             = "QUEUE_CANNOT_PUBLISH_MESSAGE"
	ErrDevPaymentGatewayRejected   = "PAYMENT_GATEWAY_REJECTED_REQUEST"
	ErrDevCannotParseMultipartForm = "CANNOT_PARSE_MULTIPART_FORM"
	ErrDevCannotRenderTemplate     = "CANNOT_RENDER_TEMPLATE"
	ErrDevCannotBuildWorkbook      = "CANNOT_BUILD_WORKBOOK"
	ErrDevRateLimitExceeded        = "RATE_LIMIT_EXCEEDED"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a valid date in format %s",
	"numeric":  "must be a number",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}
