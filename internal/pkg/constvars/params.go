package constvars

const (
	URLQueryParamDate      = "date"
	URLQueryParamStart     = "start"
	URLQueryParamEnd       = "end"
	URLQueryParamOrderCode = "orderCode"
)

const (
	FormFieldDescription = "description"
	FormFieldPhoto       = "photo"
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
	// Layout of the academic API's session timestamps, fixed by the upstream
	// serializer (no zone designator, wall clock in campus time).
	DateTimeLayoutAcademic = "2006-01-02T15:04:05"
)
