package handler

import (
	"extremefit-api/internal/service"
	"extremefit-api/pkg/webhooksig"

	"github.com/gofiber/fiber/v2"
)

type WebhookHandler struct {
	webhookService service.WebhookService
	verifier       *webhooksig.Verifier
}

// NewWebhookHandler wires the Clerk sync endpoint. A nil verifier disables
// signature checking (tests, local development without a secret).
func NewWebhookHandler(webhookService service.WebhookService, verifier *webhooksig.Verifier) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		verifier:       verifier,
	}
}

// HandleClerk processes signed user sync events
// POST /api/webhooks/clerk
func (h *WebhookHandler) HandleClerk(c *fiber.Ctx) error {
	payload := c.Body()

	msgID := c.Get("svix-id")
	if h.verifier != nil {
		err := h.verifier.Verify(payload, msgID, c.Get("svix-timestamp"), c.Get("svix-signature"))
		if err != nil {
			return respondError(c, 400, "Invalid signature")
		}
	}

	if err := h.webhookService.ProcessClerkEvent(msgID, payload); err != nil {
		return respondError(c, 500, err.Error())
	}

	return respondOK(c, fiber.Map{"received": true})
}
