package contracts

import (
	"context"
	"mime/multipart"

	"uniacad-portal/internal/pkg/dto/requests"
	"uniacad-portal/internal/pkg/dto/responses"
)

type TimetableUsecase interface {
	BuildWeekPage(ctx context.Context, studentID string, request *requests.WeekQuery) (*responses.TimetablePage, error)
	ExportWeekCalendar(ctx context.Context, studentID string, request *requests.WeekQuery) ([]byte, string, error)
}

type MarkReportUsecase interface {
	BuildMarksPage(ctx context.Context, studentID string) (*responses.MarksPage, error)
	ExportWorkbook(ctx context.Context, studentID string) ([]byte, string, error)
}

type AttendanceUsecase interface {
	BuildAttendancePage(ctx context.Context, studentID string) (*responses.AttendancePage, error)
}

type ProfileUsecase interface {
	BuildProfilePage(ctx context.Context, studentID string) (*responses.ProfilePage, error)
	UploadAvatar(ctx context.Context, studentID string, fileHeader *multipart.FileHeader) (*responses.AvatarData, error)
}

type PaymentUsecase interface {
	CreateCheckout(ctx context.Context, studentID, clientIP string, request *requests.CreatePaymentLink) (*responses.CheckoutData, error)
}
