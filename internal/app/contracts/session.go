package contracts

import (
	"context"
)

// StudentSession is the identity loaded from the session store. Session
// issuance happens upstream; the portal only verifies the signed cookie and
// resolves the session id here.
type StudentSession struct {
	SessionID    string `json:"session_id"`
	StudentID    string `json:"student_id"`
	StudentEmail string `json:"student_email"`
}

type SessionRepository interface {
	FindBySessionID(ctx context.Context, sessionID string) (*StudentSession, error)
}
