package responses

// CheckoutData mirrors the gateway's data payload on successful
// payment-link creation.
type CheckoutData struct {
	CheckoutURL string `json:"checkoutUrl"`
	OrderCode   string `json:"orderCode,omitempty"`
}

type AvatarData struct {
	ObjectName string `json:"objectName"`
}

// PaymentResultPage feeds the success and cancel landing pages. OrderCode
// comes back from the gateway redirect query when present.
type PaymentResultPage struct {
	OrderCode string
}
