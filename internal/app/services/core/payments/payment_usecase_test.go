package payments

import (
	"context"
	"testing"
	"time"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/app/services/shared/ratelimiter"
	"uniacad-portal/internal/pkg/dto/requests"
	"uniacad-portal/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubGateway struct {
	gotInput *contracts.CreatePaymentLinkInput
	output   *contracts.CreatePaymentLinkOutput
	err      error
}

func (s *stubGateway) CreatePaymentLink(_ context.Context, input *contracts.CreatePaymentLinkInput) (*contracts.CreatePaymentLinkOutput, error) {
	s.gotInput = input
	if s.err != nil {
		return nil, s.err
	}
	if s.output != nil {
		return s.output, nil
	}
	return &contracts.CreatePaymentLinkOutput{CheckoutURL: "https://pay.example/" + input.OrderCode, OrderCode: input.OrderCode}, nil
}

type stubPublisher struct {
	gotEvent *contracts.PaymentEvent
	err      error
}

func (s *stubPublisher) PublishPaymentInitiated(_ context.Context, event *contracts.PaymentEvent) error {
	s.gotEvent = event
	return s.err
}

// fakeCounterRedis backs the fixed-window limiter with an in-memory counter.
type fakeCounterRedis struct {
	counts map[string]int64
}

func (f *fakeCounterRedis) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeCounterRedis) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}
func (f *fakeCounterRedis) Get(_ context.Context, _ string) (string, error) { return "", nil }
func (f *fakeCounterRedis) Increment(_ context.Context, key string) (int64, error) {
	if f.counts == nil {
		f.counts = make(map[string]int64)
	}
	f.counts[key]++
	return f.counts[key], nil
}
func (f *fakeCounterRedis) Expire(_ context.Context, _ string, _ time.Duration) error { return nil }

func newTestPaymentUsecase(gateway *stubGateway, publisher *stubPublisher, quota int) *paymentUsecase {
	return &paymentUsecase{
		Gateway:        gateway,
		Publisher:      publisher,
		Limiter:        ratelimiter.NewResourceLimiter(&fakeCounterRedis{}, zap.NewNop()),
		ReturnURL:      "https://portal.example/portal/payment/success",
		CancelURL:      "https://portal.example/portal/payment/cancel",
		CheckoutPerMin: quota,
		Log:            zap.NewNop(),
	}
}

func TestCreateCheckout(t *testing.T) {
	t.Run("Issues A Checkout Link And Publishes An Event", func(t *testing.T) {
		gateway := &stubGateway{}
		publisher := &stubPublisher{}
		uc := newTestPaymentUsecase(gateway, publisher, 3)

		data, err := uc.CreateCheckout(context.Background(), "ST001", "10.0.0.1", &requests.CreatePaymentLink{Description: "Dorm fee"})
		assert.NoError(t, err)
		assert.NotEmpty(t, data.CheckoutURL)
		assert.NotEmpty(t, data.OrderCode)

		assert.Equal(t, "Dorm fee", gateway.gotInput.Description)
		assert.Equal(t, "https://portal.example/portal/payment/success", gateway.gotInput.ReturnURL)

		assert.NotNil(t, publisher.gotEvent)
		assert.Equal(t, data.OrderCode, publisher.gotEvent.OrderCode)
		assert.Equal(t, "ST001", publisher.gotEvent.StudentID)
	})

	t.Run("Empty Description Falls Back To The Default", func(t *testing.T) {
		gateway := &stubGateway{}
		uc := newTestPaymentUsecase(gateway, &stubPublisher{}, 3)

		_, err := uc.CreateCheckout(context.Background(), "ST001", "10.0.0.1", &requests.CreatePaymentLink{})
		assert.NoError(t, err)
		assert.Equal(t, defaultCheckoutDescription, gateway.gotInput.Description)
	})

	t.Run("Quota Exhaustion Returns Too Many Requests", func(t *testing.T) {
		uc := newTestPaymentUsecase(&stubGateway{}, &stubPublisher{}, 3)

		for i := 0; i < 3; i++ {
			_, err := uc.CreateCheckout(context.Background(), "ST002", "10.0.0.1", &requests.CreatePaymentLink{})
			assert.NoError(t, err)
		}

		_, err := uc.CreateCheckout(context.Background(), "ST002", "10.0.0.1", &requests.CreatePaymentLink{})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 429, customErr.StatusCode)
	})

	t.Run("Gateway Rejection Propagates Without An Event", func(t *testing.T) {
		publisher := &stubPublisher{}
		gateway := &stubGateway{err: exceptions.ErrPaymentGatewayRejected(assert.AnError, "order already paid")}
		uc := newTestPaymentUsecase(gateway, publisher, 3)

		data, err := uc.CreateCheckout(context.Background(), "ST003", "10.0.0.1", &requests.CreatePaymentLink{})
		assert.Error(t, err)
		assert.Nil(t, data)
		assert.Nil(t, publisher.gotEvent, "no event should be published for a failed checkout")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, "order already paid", customErr.ClientMessage)
	})

	t.Run("Publish Failure Does Not Lose The Checkout Link", func(t *testing.T) {
		uc := newTestPaymentUsecase(&stubGateway{}, &stubPublisher{err: assert.AnError}, 3)

		data, err := uc.CreateCheckout(context.Background(), "ST004", "10.0.0.1", &requests.CreatePaymentLink{})
		assert.NoError(t, err)
		assert.NotEmpty(t, data.CheckoutURL)
	})
}
