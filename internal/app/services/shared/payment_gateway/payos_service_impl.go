package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"uniacad-portal/internal/app/config"
	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/dto/academic"
	"uniacad-portal/internal/pkg/exceptions"
)

type payosService struct {
	BaseUrl  string
	ClientID string
	ApiKey   string
}

func NewPayosService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &payosService{
		BaseUrl:  internalConfig.PaymentGateway.BaseUrl,
		ClientID: internalConfig.PaymentGateway.ClientID,
		ApiKey:   internalConfig.PaymentGateway.ApiKey,
	}
}

type createPaymentLinkRequest struct {
	OrderCode   string `json:"orderCode"`
	StudentID   string `json:"studentId"`
	Description string `json:"description"`
	ReturnURL   string `json:"returnUrl"`
	CancelURL   string `json:"cancelUrl"`
}

type checkoutData struct {
	CheckoutURL string `json:"checkoutUrl"`
}

func (s *payosService) CreatePaymentLink(ctx context.Context, input *contracts.CreatePaymentLinkInput) (*contracts.CreatePaymentLinkOutput, error) {
	requestJSON, err := json.Marshal(createPaymentLinkRequest{
		OrderCode:   input.OrderCode,
		StudentID:   input.StudentID,
		Description: input.Description,
		ReturnURL:   input.ReturnURL,
		CancelURL:   input.CancelURL,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+"/v2/payment-requests", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set("x-client-id", s.ClientID)
	req.Header.Set("x-api-key", s.ApiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	var envelope academic.Envelope
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePayment)
	}

	if resp.StatusCode != constvars.StatusOK || envelope.Error != constvars.EnvelopeErrorNone {
		gatewayErr := fmt.Errorf("gateway error %d: %s", envelope.Error, envelope.Message)
		return nil, exceptions.ErrPaymentGatewayRejected(gatewayErr, envelope.Message)
	}

	var data checkoutData
	err = json.Unmarshal(envelope.Data, &data)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if data.CheckoutURL == "" {
		gatewayErr := fmt.Errorf("gateway returned empty checkoutUrl for order %s", input.OrderCode)
		return nil, exceptions.ErrPaymentGatewayRejected(gatewayErr, envelope.Message)
	}

	return &contracts.CreatePaymentLinkOutput{
		CheckoutURL: data.CheckoutURL,
		OrderCode:   input.OrderCode,
	}, nil
}
