package middlewares

import (
	"context"
	"net/http"

	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/exceptions"
	"uniacad-portal/internal/pkg/utils"
)

// SessionAuth guards every portal route. The auth service issues a signed
// cookie whose session_id claim must still resolve in the session store;
// requests failing either check get a 401 and never reach a controller.
func (m *Middlewares) SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.InternalConfig.Session.CookieName)
		if err != nil || cookie.Value == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionTokenMissing(err))
			return
		}

		sessionID, err := utils.ParseJWT(cookie.Value, m.InternalConfig.Session.JWTSecret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionRepository.FindBySessionID(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_STUDENT_ID_KEY, session.StudentID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_STUDENT_EMAIL_KEY, session.StudentEmail)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
