package attendance

import (
	"net/http"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/app/delivery/http/render"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type AttendanceController struct {
	Log               *zap.Logger
	Renderer          *render.Renderer
	AttendanceUsecase contracts.AttendanceUsecase
}

func NewAttendanceController(logger *zap.Logger, renderer *render.Renderer, attendanceUsecase contracts.AttendanceUsecase) *AttendanceController {
	return &AttendanceController{
		Log:               logger,
		Renderer:          renderer,
		AttendanceUsecase: attendanceUsecase,
	}
}

func (ctrl *AttendanceController) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID := utils.GetStudentID(ctx)

	page, err := ctrl.AttendanceUsecase.BuildAttendancePage(ctx, studentID)
	if err != nil {
		ctrl.Renderer.ErrorPage(w, "attendance", "Attendance", utils.ClientMessageOf(err, constvars.ErrClientFailedLoadAttendance))
		return
	}

	ctrl.Renderer.Page(w, constvars.StatusOK, "attendance", &render.PageData{
		Title:     "Attendance",
		ActiveTab: "attendance",
		Content:   page,
	})
}
