package middlewares

import (
	"net/http"
	"time"

	"uniacad-portal/internal/app/config"

	"github.com/sirupsen/logrus"
)

// AccessLogger writes one flat access-log line per request, alongside the
// structured zap log.
func (m *Middlewares) AccessLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			tz, err := time.LoadLocation(appConfig.Timezone)
			if err != nil {
				tz = time.UTC
			}

			log.Printf("{%s} | {%s} | {%s} ==> {%s} | {%d} | {%s}",
				time.Now().In(tz).Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, rec.statusCode, time.Since(start))
		})
	}
}
