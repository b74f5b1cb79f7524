package contracts

import (
	"context"
	"time"

	"uniacad-portal/internal/pkg/dto/academic"
)

// Clients of the upstream academic API. Each wraps exactly one resource
// endpoint; authentication against the upstream is carried by the student
// identity headers the client attaches per request.

type TimetableClient interface {
	FindWeeklySessions(ctx context.Context, studentID string, start, end time.Time) ([]academic.SessionRecord, error)
}

type MarkReportClient interface {
	FindMarkReport(ctx context.Context, studentID string) ([]academic.MarkReportItem, error)
}

type AttendanceClient interface {
	FindAttendanceSummary(ctx context.Context, studentID string) ([]academic.AttendanceSummaryItem, error)
}

type ProfileClient interface {
	FindProfile(ctx context.Context, studentID string) (*academic.StudentProfile, error)
}
