package profile

import (
	"net/http"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/app/delivery/http/render"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

const maxPhotoFormSize = 8 << 20

type ProfileController struct {
	Log            *zap.Logger
	Renderer       *render.Renderer
	ProfileUsecase contracts.ProfileUsecase
}

func NewProfileController(logger *zap.Logger, renderer *render.Renderer, profileUsecase contracts.ProfileUsecase) *ProfileController {
	return &ProfileController{
		Log:            logger,
		Renderer:       renderer,
		ProfileUsecase: profileUsecase,
	}
}

func (ctrl *ProfileController) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID := utils.GetStudentID(ctx)

	page, err := ctrl.ProfileUsecase.BuildProfilePage(ctx, studentID)
	if err != nil {
		ctrl.Renderer.ErrorPage(w, "profile", "Profile", utils.ClientMessageOf(err, constvars.ErrClientFailedLoadProfile))
		return
	}

	ctrl.Renderer.Page(w, constvars.StatusOK, "profile", &render.PageData{
		Title:     "Profile",
		ActiveTab: "profile",
		Content:   page,
	})
}

func (ctrl *ProfileController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID := utils.GetStudentID(ctx)

	if err := r.ParseMultipartForm(maxPhotoFormSize); err != nil {
		ctrl.Renderer.ErrorPage(w, "profile", "Profile", constvars.ErrClientInvalidImageFormat)
		return
	}

	_, fileHeader, err := r.FormFile(constvars.FormFieldPhoto)
	if err != nil {
		ctrl.Renderer.ErrorPage(w, "profile", "Profile", constvars.ErrClientInvalidImageFormat)
		return
	}

	if _, err := ctrl.ProfileUsecase.UploadAvatar(ctx, studentID, fileHeader); err != nil {
		ctrl.Renderer.ErrorPage(w, "profile", "Profile", utils.ClientMessageOf(err, constvars.ErrClientInvalidImageFormat))
		return
	}

	http.Redirect(w, r, "/portal/profile", constvars.StatusSeeOther)
}
