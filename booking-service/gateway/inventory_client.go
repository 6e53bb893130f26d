package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/apperrors"
)

const gatewayTimeout = 10 * time.Second

var _ domain.InventoryGateway = (*InventoryClient)(nil)

// InventoryClient calls the performance/inventory service over HTTP
type InventoryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewInventoryClient creates a new InventoryClient
func NewInventoryClient(baseURL string) *InventoryClient {
	return &InventoryClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: gatewayTimeout},
	}
}

// GetPerformance fetches one performance record
func (c *InventoryClient) GetPerformance(ctx context.Context, performanceID int64, token string) (*domain.Performance, error) {
	url := fmt.Sprintf("%s/performances/%d", c.baseURL, performanceID)

	var performance domain.Performance
	if err := doJSON(ctx, c.httpClient, http.MethodGet, url, token, nil, &performance); err != nil {
		return nil, errors.Wrap(err, "failed to get performance")
	}

	return &performance, nil
}

// Reserve asks the inventory service to hold seatCount seats
func (c *InventoryClient) Reserve(ctx context.Context, performanceID int64, seatCount int, token string) (*domain.Reservation, error) {
	url := fmt.Sprintf("%s/reservations/%d", c.baseURL, performanceID)
	body := map[string]int{"seatCount": seatCount}

	var reservation domain.Reservation
	if err := doJSON(ctx, c.httpClient, http.MethodPost, url, token, body, &reservation); err != nil {
		return nil, errors.Wrap(err, "failed to reserve seats")
	}

	return &reservation, nil
}

// Confirm marks a reservation as sold
func (c *InventoryClient) Confirm(ctx context.Context, performanceID, reservationID int64, token string) error {
	return c.patchReservation(ctx, performanceID, reservationID, "confirm", token)
}

// Cancel releases a reservation's seats
func (c *InventoryClient) Cancel(ctx context.Context, performanceID, reservationID int64, token string) error {
	return c.patchReservation(ctx, performanceID, reservationID, "cancel", token)
}

// Refund returns a confirmed reservation's seats to the pool
func (c *InventoryClient) Refund(ctx context.Context, performanceID, reservationID int64, token string) error {
	return c.patchReservation(ctx, performanceID, reservationID, "refund", token)
}

func (c *InventoryClient) patchReservation(ctx context.Context, performanceID, reservationID int64, action, token string) error {
	url := fmt.Sprintf("%s/reservations/%d/%d/%s", c.baseURL, performanceID, reservationID, action)

	if err := doJSON(ctx, c.httpClient, http.MethodPatch, url, token, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to %s reservation", action)
	}

	return nil
}

// doJSON performs one JSON round trip, forwarding the caller's bearer token
// and mapping upstream status codes to application errors.
func doJSON(ctx context.Context, client *http.Client, method, url, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		message := readErrorMessage(resp.Body)
		switch resp.StatusCode {
		case http.StatusNotFound:
			return apperrors.NewNotFound(message)
		case http.StatusBadRequest:
			return apperrors.NewBadRequest(message)
		case http.StatusUnauthorized:
			return apperrors.NewUnauthorized(message)
		default:
			return errors.Errorf("upstream returned %d: %s", resp.StatusCode, message)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

func readErrorMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "upstream error"
}
