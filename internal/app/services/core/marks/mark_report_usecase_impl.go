package marks

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type markReportUsecase struct {
	MarkReportClient contracts.MarkReportClient
	Log              *zap.Logger
}

var (
	markReportUsecaseInstance contracts.MarkReportUsecase
	onceMarkReportUsecase     sync.Once
)

func NewMarkReportUsecase(
	markReportClient contracts.MarkReportClient,
	logger *zap.Logger,
) contracts.MarkReportUsecase {
	onceMarkReportUsecase.Do(func() {
		markReportUsecaseInstance = &markReportUsecase{
			MarkReportClient: markReportClient,
			Log:              logger,
		}
	})
	return markReportUsecaseInstance
}

func (uc *markReportUsecase) BuildMarksPage(ctx context.Context, studentID string) (*responses.MarksPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("markReportUsecase.BuildMarksPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	items, err := uc.MarkReportClient.FindMarkReport(ctx, studentID)
	if err != nil {
		uc.Log.Error("markReportUsecase.BuildMarksPage error fetching mark report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("markReportUsecase.BuildMarksPage fetched mark report",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSubjectCountKey, len(items)),
	)

	page := &responses.MarksPage{}
	for _, item := range items {
		if page.StudentName == "" {
			page.StudentName = item.StudentName
		}
		page.Rows = append(page.Rows, responses.MarkRow{
			SubjectName: item.SubjectName,
			Mark:        strconv.FormatFloat(item.Mark, 'f', 1, 64),
			Status:      item.Status,
		})
	}
	return page, nil
}

func (uc *markReportUsecase) ExportWorkbook(ctx context.Context, studentID string) ([]byte, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("markReportUsecase.ExportWorkbook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	items, err := uc.MarkReportClient.FindMarkReport(ctx, studentID)
	if err != nil {
		uc.Log.Error("markReportUsecase.ExportWorkbook error fetching mark report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}

	data, err := buildMarkWorkbook(items)
	if err != nil {
		uc.Log.Error("markReportUsecase.ExportWorkbook error building workbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}

	filename := fmt.Sprintf("mark-report-%s.xlsx", studentID)
	return data, filename, nil
}
