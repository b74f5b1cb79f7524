package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uniacad-portal/internal/app/config"
	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type stubSessionRepository struct {
	session *contracts.StudentSession
	err     error
}

func (s *stubSessionRepository) FindBySessionID(_ context.Context, _ string) (*contracts.StudentSession, error) {
	return s.session, s.err
}

func signedSessionToken(t *testing.T, sessionID, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func newSessionMiddlewares(repo contracts.SessionRepository) *Middlewares {
	return NewMiddlewares(zap.NewNop(), repo, &config.InternalConfig{
		Session: config.Session{
			JWTSecret:  testSecret,
			CookieName: constvars.SessionCookieName,
		},
	})
}

func TestSessionAuth(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		studentID, _ := r.Context().Value(constvars.CONTEXT_STUDENT_ID_KEY).(string)
		w.Write([]byte(studentID))
	})

	t.Run("Missing Cookie Is Rejected With 401", func(t *testing.T) {
		mw := newSessionMiddlewares(&stubSessionRepository{})
		rec := httptest.NewRecorder()

		mw.SessionAuth(okHandler).ServeHTTP(rec, httptest.NewRequest("GET", "/portal/timetable", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Tampered Token Is Rejected With 401", func(t *testing.T) {
		mw := newSessionMiddlewares(&stubSessionRepository{})
		req := httptest.NewRequest("GET", "/portal/timetable", nil)
		req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: signedSessionToken(t, "sess-1", "wrong-secret")})
		rec := httptest.NewRecorder()

		mw.SessionAuth(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unknown Session Is Rejected With 401", func(t *testing.T) {
		mw := newSessionMiddlewares(&stubSessionRepository{err: exceptions.ErrSessionNotFound(errors.New("session not present"))})
		req := httptest.NewRequest("GET", "/portal/timetable", nil)
		req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: signedSessionToken(t, "sess-1", testSecret)})
		rec := httptest.NewRecorder()

		mw.SessionAuth(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Session Reaches The Handler With Identity", func(t *testing.T) {
		mw := newSessionMiddlewares(&stubSessionRepository{session: &contracts.StudentSession{
			SessionID:    "sess-1",
			StudentID:    "ST001",
			StudentEmail: "linh@example.edu",
		}})
		req := httptest.NewRequest("GET", "/portal/timetable", nil)
		req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: signedSessionToken(t, "sess-1", testSecret)})
		rec := httptest.NewRecorder()

		mw.SessionAuth(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ST001", rec.Body.String())
	})
}
