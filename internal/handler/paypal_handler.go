package handler

import (
	"errors"
	"net/http"

	"extremefit-api/internal/payment"
	"extremefit-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PaypalHandler struct {
	paypalService service.PaypalService
}

func NewPaypalHandler(paypalService service.PaypalService) *PaypalHandler {
	return &PaypalHandler{paypalService: paypalService}
}

type payRequest struct {
	OrderID uuid.UUID `json:"order_id"`
}

// Pay starts payment for a placed order
// POST /api/paypal/pay
func (h *PaypalHandler) Pay(c *fiber.Ctx) error {
	var req payRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}
	if req.OrderID == uuid.Nil {
		return respondError(c, 400, "order_id is required")
	}

	res, err := h.paypalService.Pay(c.Context(), req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return respondError(c, 404, err.Error())
		case errors.Is(err, service.ErrOrderAlreadyPaid):
			return respondError(c, 409, err.Error())
		default:
			return respondError(c, 502, err.Error())
		}
	}
	return respondOK(c, res)
}

// HandleSuccess is PayPal's return URL after buyer approval
// GET /api/paypal/success?token=<paypal order id>
func (h *PaypalHandler) HandleSuccess(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return respondError(c, 400, "Missing token")
	}

	order, err := h.paypalService.Capture(c.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondError(c, 502, err.Error())
	}
	return respondOK(c, order)
}

// HandleWebhook records capture notifications. The delivery is verified
// against PayPal before any order state changes.
// POST /api/paypal/webhook
func (h *PaypalHandler) HandleWebhook(c *fiber.Ctx) error {
	headers := make(http.Header)
	c.Request().Header.VisitAll(func(key, value []byte) {
		headers.Add(string(key), string(value))
	})

	err := h.paypalService.ProcessWebhookEvent(c.Context(), headers, c.Body())
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrWebhookVerification):
			return respondError(c, 400, "Webhook verification failed")
		case errors.Is(err, service.ErrBadWebhookPayload),
			errors.Is(err, service.ErrMissingEventID):
			return respondError(c, 400, err.Error())
		default:
			return respondError(c, 500, err.Error())
		}
	}
	return respondOK(c, fiber.Map{"received": true})
}
