package contracts

import "context"

// PaymentEvent is published to the payment events queue whenever the portal
// hands a student over to the gateway checkout page.
type PaymentEvent struct {
	ID          string `json:"id"`
	OrderCode   string `json:"order_code"`
	StudentID   string `json:"student_id"`
	Description string `json:"description"`
	CheckoutURL string `json:"checkout_url"`
	CreatedAt   string `json:"created_at"`
}

type PaymentEventPublisher interface {
	PublishPaymentInitiated(ctx context.Context, event *PaymentEvent) error
}
