package payments

import (
	"net/http"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/app/delivery/http/render"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/dto/requests"
	"uniacad-portal/internal/pkg/dto/responses"
	"uniacad-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	Renderer       *render.Renderer
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, renderer *render.Renderer, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		Renderer:       renderer,
		PaymentUsecase: paymentUsecase,
	}
}

// Checkout hands the student over to the gateway checkout page. Any failure
// keeps them on the portal with a banner instead of redirecting.
func (ctrl *PaymentController) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID := utils.GetStudentID(ctx)

	if err := r.ParseForm(); err != nil {
		ctrl.Renderer.ErrorPage(w, "profile", "Profile", constvars.ErrClientFailedCreatePayment)
		return
	}
	request := &requests.CreatePaymentLink{Description: r.PostFormValue(constvars.FormFieldDescription)}

	data, err := ctrl.PaymentUsecase.CreateCheckout(ctx, studentID, r.RemoteAddr, request)
	if err != nil {
		ctrl.Renderer.ErrorPage(w, "profile", "Profile", utils.ClientMessageOf(err, constvars.ErrClientFailedCreatePayment))
		return
	}

	http.Redirect(w, r, data.CheckoutURL, constvars.StatusSeeOther)
}

func (ctrl *PaymentController) SuccessPage(w http.ResponseWriter, r *http.Request) {
	ctrl.Renderer.Page(w, constvars.StatusOK, "payment_success", &render.PageData{
		Title:     "Payment completed",
		ActiveTab: "profile",
		Content:   &responses.PaymentResultPage{OrderCode: r.URL.Query().Get(constvars.URLQueryParamOrderCode)},
	})
}

func (ctrl *PaymentController) CancelPage(w http.ResponseWriter, r *http.Request) {
	ctrl.Renderer.Page(w, constvars.StatusOK, "payment_cancel", &render.PageData{
		Title:     "Payment cancelled",
		ActiveTab: "profile",
		Content:   &responses.PaymentResultPage{OrderCode: r.URL.Query().Get(constvars.URLQueryParamOrderCode)},
	})
}
