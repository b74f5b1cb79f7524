package marks

import (
	"fmt"
	"net/http"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/app/delivery/http/render"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type MarkController struct {
	Log               *zap.Logger
	Renderer          *render.Renderer
	MarkReportUsecase contracts.MarkReportUsecase
}

func NewMarkController(logger *zap.Logger, renderer *render.Renderer, markReportUsecase contracts.MarkReportUsecase) *MarkController {
	return &MarkController{
		Log:               logger,
		Renderer:          renderer,
		MarkReportUsecase: markReportUsecase,
	}
}

func (ctrl *MarkController) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID := utils.GetStudentID(ctx)

	page, err := ctrl.MarkReportUsecase.BuildMarksPage(ctx, studentID)
	if err != nil {
		ctrl.Renderer.ErrorPage(w, "marks", "Marks", utils.ClientMessageOf(err, constvars.ErrClientFailedLoadMarkReport))
		return
	}

	ctrl.Renderer.Page(w, constvars.StatusOK, "marks", &render.PageData{
		Title:     "Marks",
		ActiveTab: "marks",
		Content:   page,
	})
}

func (ctrl *MarkController) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID := utils.GetStudentID(ctx)

	data, filename, err := ctrl.MarkReportUsecase.ExportWorkbook(ctx, studentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationSpreadsheet)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(constvars.StatusOK)
	w.Write(data)
}
