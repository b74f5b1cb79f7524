package timetable

import (
	"errors"
	"fmt"
	"net/http"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/app/delivery/http/render"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/dto/requests"
	"uniacad-portal/internal/pkg/exceptions"
	"uniacad-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type TimetableController struct {
	Log              *zap.Logger
	Renderer         *render.Renderer
	TimetableUsecase contracts.TimetableUsecase
}

func NewTimetableController(logger *zap.Logger, renderer *render.Renderer, timetableUsecase contracts.TimetableUsecase) *TimetableController {
	return &TimetableController{
		Log:              logger,
		Renderer:         renderer,
		TimetableUsecase: timetableUsecase,
	}
}

func (ctrl *TimetableController) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID := utils.GetStudentID(ctx)
	request := &requests.WeekQuery{Date: r.URL.Query().Get(constvars.URLQueryParamDate)}

	page, err := ctrl.TimetableUsecase.BuildWeekPage(ctx, studentID, request)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusBadRequest {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		ctrl.Renderer.ErrorPage(w, "timetable", "Timetable", utils.ClientMessageOf(err, constvars.ErrClientFailedLoadTimetable))
		return
	}

	ctrl.Renderer.Page(w, constvars.StatusOK, "timetable", &render.PageData{
		Title:     "Timetable",
		ActiveTab: "timetable",
		Content:   page,
	})
}

func (ctrl *TimetableController) ExportICS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID := utils.GetStudentID(ctx)
	request := &requests.WeekQuery{Date: r.URL.Query().Get(constvars.URLQueryParamDate)}

	data, filename, err := ctrl.TimetableUsecase.ExportWeekCalendar(ctx, studentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCalendar)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(constvars.StatusOK)
	w.Write(data)
}
