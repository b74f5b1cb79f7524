package contracts

import (
	"context"
)

type CreatePaymentLinkInput struct {
	OrderCode   string
	StudentID   string
	Description string
	ReturnURL   string
	CancelURL   string
}

type CreatePaymentLinkOutput struct {
	CheckoutURL string
	OrderCode   string
}

type PaymentGatewayService interface {
	CreatePaymentLink(ctx context.Context, input *CreatePaymentLinkInput) (*CreatePaymentLinkOutput, error)
}
