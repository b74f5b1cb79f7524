package routers

import (
	"net/http"
	"time"

	"uniacad-portal/internal/app/config"
	"uniacad-portal/internal/app/delivery/http/middlewares"
	"uniacad-portal/internal/app/services/core/attendance"
	"uniacad-portal/internal/app/services/core/marks"
	"uniacad-portal/internal/app/services/core/payments"
	"uniacad-portal/internal/app/services/core/profile"
	"uniacad-portal/internal/app/services/core/timetable"
	"uniacad-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	accessLogger *logrus.Logger,
	timetableController *timetable.TimetableController,
	markController *marks.MarkController,
	attendanceController *attendance.AttendanceController,
	profileController *profile.ProfileController,
	paymentController *payments.PaymentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.AccessLogger(internalConfig.App, accessLogger))
	router.Use(mw.ErrorHandler)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(constvars.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/portal", func(r chi.Router) {
		r.Use(mw.SessionAuth)

		attachTimetableRoutes(r, timetableController)
		attachMarkRoutes(r, markController)
		attachAttendanceRoutes(r, attendanceController)
		attachProfileRoutes(r, profileController)
		attachPaymentRoutes(r, paymentController)
	})
}
