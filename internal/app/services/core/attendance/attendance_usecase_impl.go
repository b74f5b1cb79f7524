package attendance

import (
	"context"
	"fmt"
	"sync"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type attendanceUsecase struct {
	AttendanceClient contracts.AttendanceClient
	Log              *zap.Logger
}

var (
	attendanceUsecaseInstance contracts.AttendanceUsecase
	onceAttendanceUsecase     sync.Once
)

func NewAttendanceUsecase(
	attendanceClient contracts.AttendanceClient,
	logger *zap.Logger,
) contracts.AttendanceUsecase {
	onceAttendanceUsecase.Do(func() {
		attendanceUsecaseInstance = &attendanceUsecase{
			AttendanceClient: attendanceClient,
			Log:              logger,
		}
	})
	return attendanceUsecaseInstance
}

func (uc *attendanceUsecase) BuildAttendancePage(ctx context.Context, studentID string) (*responses.AttendancePage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.BuildAttendancePage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	items, err := uc.AttendanceClient.FindAttendanceSummary(ctx, studentID)
	if err != nil {
		uc.Log.Error("attendanceUsecase.BuildAttendancePage error fetching summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("attendanceUsecase.BuildAttendancePage fetched summary",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSubjectCountKey, len(items)),
	)

	page := &responses.AttendancePage{}
	for _, item := range items {
		page.Rows = append(page.Rows, responses.AttendanceRow{
			SubjectName:    item.SubjectName,
			TotalSlots:     item.TotalSlots,
			AttendedSlots:  item.AttendedSlots,
			AbsentSlots:    item.AbsentSlots,
			NotMarkedSlots: item.NotMarkedSlots,
			AttendRate:     attendRate(item.AttendedSlots, item.TotalSlots),
		})
	}
	return page, nil
}

// attendRate formats attended over total as a percentage. A subject with no
// slots yet reads as a dash rather than a division by zero.
func attendRate(attended, total int) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(attended)/float64(total)*100)
}
