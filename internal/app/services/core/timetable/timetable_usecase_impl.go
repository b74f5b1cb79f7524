package timetable

import (
	"context"
	"fmt"
	"sync"
	"time"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/dto/requests"
	"uniacad-portal/internal/pkg/dto/responses"
	"uniacad-portal/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var dayLabels = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type timetableUsecase struct {
	TimetableClient contracts.TimetableClient
	Location        *time.Location
	Log             *zap.Logger
	now             func() time.Time
}

var (
	timetableUsecaseInstance contracts.TimetableUsecase
	onceTimetableUsecase     sync.Once
)

func NewTimetableUsecase(
	timetableClient contracts.TimetableClient,
	location *time.Location,
	logger *zap.Logger,
) contracts.TimetableUsecase {
	onceTimetableUsecase.Do(func() {
		timetableUsecaseInstance = &timetableUsecase{
			TimetableClient: timetableClient,
			Location:        location,
			Log:             logger,
			now:             time.Now,
		}
	})
	return timetableUsecaseInstance
}

func (uc *timetableUsecase) BuildWeekPage(ctx context.Context, studentID string, request *requests.WeekQuery) (*responses.TimetablePage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.BuildWeekPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	window, err := uc.resolveWindow(request)
	if err != nil {
		uc.Log.Error("timetableUsecase.BuildWeekPage error parsing date query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	records, err := uc.TimetableClient.FindWeeklySessions(ctx, studentID, window.Start, window.End)
	if err != nil {
		uc.Log.Error("timetableUsecase.BuildWeekPage error fetching sessions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWeekStartKey, window.Start.Format(constvars.DateLayoutYYYYMMDD)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("timetableUsecase.BuildWeekPage fetched sessions",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(records)),
	)

	grid := BuildGrid(records, uc.Location)
	page := uc.buildPage(window, grid)
	return page, nil
}

func (uc *timetableUsecase) ExportWeekCalendar(ctx context.Context, studentID string, request *requests.WeekQuery) ([]byte, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.ExportWeekCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	window, err := uc.resolveWindow(request)
	if err != nil {
		return nil, "", err
	}

	records, err := uc.TimetableClient.FindWeeklySessions(ctx, studentID, window.Start, window.End)
	if err != nil {
		uc.Log.Error("timetableUsecase.ExportWeekCalendar error fetching sessions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}

	grid := BuildGrid(records, uc.Location)
	data := BuildWeekCalendar(window, grid)
	filename := fmt.Sprintf("timetable-%s.ics", window.Start.Format(constvars.DateLayoutYYYYMMDD))
	return data, filename, nil
}

// resolveWindow picks the reference date from the query, falling back to the
// current date, then snaps it to the Monday-starting week.
func (uc *timetableUsecase) resolveWindow(request *requests.WeekQuery) (WeekWindow, error) {
	reference := uc.now().In(uc.Location)
	if request != nil && request.Date != "" {
		parsed, err := time.ParseInLocation(constvars.DateLayoutYYYYMMDD, request.Date, uc.Location)
		if err != nil {
			return WeekWindow{}, exceptions.ErrCannotParseDate(err)
		}
		reference = parsed
	}
	return ResolveWeekWindow(reference), nil
}

func (uc *timetableUsecase) buildPage(window WeekWindow, grid Grid) *responses.TimetablePage {
	todayIndex := DayIndexOf(uc.now().In(uc.Location))

	page := &responses.TimetablePage{
		WeekStart:    window.Start.Format(constvars.DateLayoutYYYYMMDD),
		WeekEnd:      window.End.AddDate(0, 0, -1).Format(constvars.DateLayoutYYYYMMDD),
		PrevWeekDate: window.Start.AddDate(0, 0, -7).Format(constvars.DateLayoutYYYYMMDD),
		NextWeekDate: window.Start.AddDate(0, 0, 7).Format(constvars.DateLayoutYYYYMMDD),
	}

	for day := 0; day < DaysPerWeek; day++ {
		page.Days[day] = responses.DayHeader{
			Label:   dayLabels[day],
			Date:    window.Start.AddDate(0, 0, day).Format("02/01"),
			IsToday: day == todayIndex,
		}
	}

	for slot := 0; slot < NumSlots; slot++ {
		sh, sm, eh, em := SlotClock(slot)
		row := responses.GridRow{
			Label:     SlotLabel(slot),
			TimeRange: fmt.Sprintf("%02d:%02d - %02d:%02d", sh, sm, eh, em),
		}
		for day := 0; day < DaysPerWeek; day++ {
			if cell := grid[slot][day]; cell != nil {
				row.Cells[day] = &responses.TimetableCell{
					SubjectName: cell.SubjectName,
					RoomID:      cell.RoomID,
					AttendLabel: cell.AttendLabel,
					AttendState: cell.AttendState,
				}
			}
		}
		page.Rows[slot] = row
	}

	return page
}
