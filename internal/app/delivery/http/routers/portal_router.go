package routers

import (
	"time"

	"uniacad-portal/internal/app/delivery/http/middlewares"
	"uniacad-portal/internal/app/services/core/attendance"
	"uniacad-portal/internal/app/services/core/marks"
	"uniacad-portal/internal/app/services/core/payments"
	"uniacad-portal/internal/app/services/core/profile"
	"uniacad-portal/internal/app/services/core/timetable"

	"github.com/go-chi/chi/v5"
)

func attachTimetableRoutes(r chi.Router, controller *timetable.TimetableController) {
	r.Get("/timetable", controller.Page)
	r.Get("/timetable/export.ics", controller.ExportICS)
}

func attachMarkRoutes(r chi.Router, controller *marks.MarkController) {
	r.Get("/marks", controller.Page)
	r.Get("/marks/export.xlsx", controller.ExportXLSX)
}

func attachAttendanceRoutes(r chi.Router, controller *attendance.AttendanceController) {
	r.Get("/attendance", controller.Page)
}

func attachProfileRoutes(r chi.Router, controller *profile.ProfileController) {
	r.Get("/profile", controller.Page)
	r.Post("/profile/photo", controller.UploadPhoto)
}

func attachPaymentRoutes(r chi.Router, controller *payments.PaymentController) {
	// In-memory throttle in front of the per-student redis quota.
	checkoutLimiter := middlewares.NewRateLimiter(5, time.Minute, 5*time.Minute)
	r.With(checkoutLimiter.Limit).Post("/payment/checkout", controller.Checkout)

	r.Get("/payment/success", controller.SuccessPage)
	r.Get("/payment/cancel", controller.CancelPage)
}
