package utils

import (
	"context"

	"uniacad-portal/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetStudentID(ctx context.Context) string {
	if studentID, ok := ctx.Value(constvars.CONTEXT_STUDENT_ID_KEY).(string); ok {
		return studentID
	}
	return ""
}
