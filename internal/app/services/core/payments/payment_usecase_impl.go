package payments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/app/services/shared/ratelimiter"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/dto/requests"
	"uniacad-portal/internal/pkg/dto/responses"
	"uniacad-portal/internal/pkg/exceptions"
	"uniacad-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

const defaultCheckoutDescription = "Tuition payment"

type paymentUsecase struct {
	Gateway        contracts.PaymentGatewayService
	Publisher      contracts.PaymentEventPublisher
	Limiter        *ratelimiter.ResourceLimiter
	ReturnURL      string
	CancelURL      string
	CheckoutPerMin int
	Log            *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	gateway contracts.PaymentGatewayService,
	publisher contracts.PaymentEventPublisher,
	limiter *ratelimiter.ResourceLimiter,
	returnURL string,
	cancelURL string,
	checkoutPerMin int,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			Gateway:        gateway,
			Publisher:      publisher,
			Limiter:        limiter,
			ReturnURL:      returnURL,
			CancelURL:      cancelURL,
			CheckoutPerMin: checkoutPerMin,
			Log:            logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreateCheckout(ctx context.Context, studentID, clientIP string, request *requests.CreatePaymentLink) (*responses.CheckoutData, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	limit, err := uc.Limiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      studentID,
		LimiterGroupName:  constvars.PaymentLimiterGroup,
		WindowDurationSec: 60,
		MaxQuota:          uc.CheckoutPerMin,
	})
	if err != nil {
		return nil, err
	}
	if !limit.Allowed {
		uc.Log.Warn("paymentUsecase.CreateCheckout quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStudentIDKey, studentID),
			zap.String(constvars.LoggingRemoteAddrKey, clientIP),
		)
		return nil, exceptions.ErrTooManyRequests(fmt.Errorf("checkout quota exceeded, retry after %d seconds", limit.RetryAfterSecs))
	}

	description := request.Description
	if description == "" {
		description = defaultCheckoutDescription
	}

	orderCode := utils.GenerateOrderCode()
	output, err := uc.Gateway.CreatePaymentLink(ctx, &contracts.CreatePaymentLinkInput{
		OrderCode:   orderCode,
		StudentID:   studentID,
		Description: description,
		ReturnURL:   uc.ReturnURL,
		CancelURL:   uc.CancelURL,
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateCheckout gateway rejected the request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderCodeKey, orderCode),
			zap.Error(err),
		)
		return nil, err
	}

	event := &contracts.PaymentEvent{
		ID:          utils.GenerateRequestID(),
		OrderCode:   output.OrderCode,
		StudentID:   studentID,
		Description: description,
		CheckoutURL: output.CheckoutURL,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.Publisher.PublishPaymentInitiated(ctx, event); err != nil {
		// The checkout link is already issued. Losing the event is
		// preferable to stranding the student before the gateway.
		uc.Log.Error("paymentUsecase.CreateCheckout error publishing payment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderCodeKey, output.OrderCode),
			zap.Error(err),
		)
	}

	uc.Log.Info("paymentUsecase.CreateCheckout issued checkout link",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderCodeKey, output.OrderCode),
	)
	return &responses.CheckoutData{
		CheckoutURL: output.CheckoutURL,
		OrderCode:   output.OrderCode,
	}, nil
}
