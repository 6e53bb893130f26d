package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/booking-service/domain"
)

var _ domain.PaymentGateway = (*PaymentClient)(nil)

// PaymentClient calls the payment service over HTTP
type PaymentClient struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

// NewPaymentClient creates a new PaymentClient. serviceToken authenticates
// the reconciliation sweep, which runs without a user request to forward.
func NewPaymentClient(baseURL, serviceToken string) *PaymentClient {
	return &PaymentClient{
		baseURL:      baseURL,
		serviceToken: serviceToken,
		httpClient:   &http.Client{Timeout: gatewayTimeout},
	}
}

// CreateIntent registers a payment intent for a booking
func (c *PaymentClient) CreateIntent(ctx context.Context, intent *domain.PaymentIntentRequest, token string) error {
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL+"/payment/intent", token, intent, nil); err != nil {
		return errors.Wrap(err, "failed to create payment intent")
	}
	return nil
}

// Refund asks the payment service to return the money for a booking
func (c *PaymentClient) Refund(ctx context.Context, bookingID, token string) error {
	body := map[string]string{"bookingId": bookingID}
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL+"/payment/refund", token, body, nil); err != nil {
		return errors.Wrap(err, "failed to request refund")
	}
	return nil
}

// CancelIntent voids a pending payment intent
func (c *PaymentClient) CancelIntent(ctx context.Context, bookingID, token string) error {
	body := map[string]string{"bookingId": bookingID}
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL+"/payment/cancel", token, body, nil); err != nil {
		return errors.Wrap(err, "failed to cancel payment intent")
	}
	return nil
}

// ListEvents fetches the settlement log for the given window
func (c *PaymentClient) ListEvents(ctx context.Context, start, end time.Time) ([]domain.PaymentEvent, error) {
	query := url.Values{}
	query.Set("start", start.UTC().Format(time.RFC3339))
	query.Set("end", end.UTC().Format(time.RFC3339))
	endpoint := fmt.Sprintf("%s/payment/events?%s", c.baseURL, query.Encode())

	var settlements []domain.PaymentEvent
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, c.serviceToken, nil, &settlements); err != nil {
		return nil, errors.Wrap(err, "failed to list payment events")
	}

	return settlements, nil
}
