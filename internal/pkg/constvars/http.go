package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML               = "text/html"
	MIMETextHTMLCharsetUTF8    = "text/html; charset=utf-8"
	MIMETextPlain              = "text/plain"
	MIMEApplicationJSON        = "application/json"
	MIMEApplicationForm        = "application/x-www-form-urlencoded"
	MIMEMultipartForm          = "multipart/form-data"
	MIMEOctetStream            = "application/octet-stream"
	MIMETextCalendar           = "text/calendar"
	MIMEApplicationSpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusSeeOther = 303

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderXRequestID         = "X-Request-ID"
	HeaderLocation           = "Location"
	HeaderRetryAfter         = "Retry-After"
)
