package requests

type CreatePaymentLink struct {
	Description string `json:"description" validate:"omitempty,max=255"`
}
