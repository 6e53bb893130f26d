package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/application"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/apperrors"
	"github.com/stagepass/booking-system/shared/events"
)

// BookingHTTPHandlers exposes the booking API
type BookingHTTPHandlers struct {
	createBooking  *application.CreateBooking
	getMyBookings  *application.GetMyBookings
	cancelBooking  *application.CancelBooking
	eventPublisher events.Publisher
	logger         *logrus.Logger
}

// NewBookingHTTPHandlers creates the booking HTTP handlers
func NewBookingHTTPHandlers(
	createBooking *application.CreateBooking,
	getMyBookings *application.GetMyBookings,
	cancelBooking *application.CancelBooking,
	eventPublisher events.Publisher,
	logger *logrus.Logger,
) *BookingHTTPHandlers {
	return &BookingHTTPHandlers{
		createBooking:  createBooking,
		getMyBookings:  getMyBookings,
		cancelBooking:  cancelBooking,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// RegisterRoutes registers the booking routes. The webhook route carries
// its own bearer check instead of the user auth middleware.
func (h *BookingHTTPHandlers) RegisterRoutes(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Route("/booking", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", h.CreateBooking)
			r.Get("/my", h.GetMyBookings)
			r.Delete("/my", h.CancelBooking)
		})
		r.Post("/webhook/payment", h.PaymentWebhook)
	})
}

type createBookingRequest struct {
	PerformanceID int64  `json:"performanceId"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"paymentMethod"`
}

// CreateBooking handles POST /booking
func (h *BookingHTTPHandlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.NewBadRequest("Invalid request body."))
		return
	}

	response, err := h.createBooking.Execute(r.Context(), &application.CreateBookingCommand{
		UserID:        UserIDFromContext(r.Context()),
		PerformanceID: req.PerformanceID,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
		Token:         TokenFromContext(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{
		"bookingId": response.BookingID,
		"message":   "Booking and payment intent created. Please proceed to payment execution.",
	})
}

// GetMyBookings handles GET /booking/my
func (h *BookingHTTPHandlers) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.getMyBookings.Execute(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, bookings)
}

type cancelBookingRequest struct {
	BookingID string `json:"bookingId"`
}

// CancelBooking handles DELETE /booking/my
func (h *BookingHTTPHandlers) CancelBooking(w http.ResponseWriter, r *http.Request) {
	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BookingID == "" {
		h.writeError(w, apperrors.NewBadRequest("bookingId is required."))
		return
	}

	response, err := h.cancelBooking.Execute(r.Context(), &application.CancelBookingCommand{
		UserID:    UserIDFromContext(r.Context()),
		BookingID: req.BookingID,
		Token:     TokenFromContext(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}

type paymentWebhookRequest struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// PaymentWebhook handles POST /booking/webhook/payment. The payment outcome
// is acknowledged immediately; processing happens on the bus.
func (h *BookingHTTPHandlers) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token == "" {
		h.writeError(w, apperrors.NewUnauthorized("Authorization header is required."))
		return
	}

	var req paymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.NewBadRequest("Invalid request body."))
		return
	}
	if req.BookingID == "" || req.Status == "" {
		h.writeError(w, apperrors.NewBadRequest("bookingId and status are required."))
		return
	}

	event := events.NewEvent(events.PaymentWebhookReceivedEvent, &domain.PaymentWebhookReceivedPayload{
		BookingID: req.BookingID,
		Status:    domain.WebhookStatus(req.Status),
		Token:     token,
	})
	if err := h.eventPublisher.Publish(r.Context(), event); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Acknowledged"})
}

// Health handles GET /health
func (h *BookingHTTPHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BookingHTTPHandlers) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Error("failed to write response")
	}
}

func (h *BookingHTTPHandlers) writeError(w http.ResponseWriter, err error) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.WithError(err).Error("request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
