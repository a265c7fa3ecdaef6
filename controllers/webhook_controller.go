package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/services"
)

type WebhookHandler interface {
	Handle(ctx context.Context, payload []byte, headers http.Header) (bool, error)
}

// WebhookController answers in plain text; the sender does not read envelopes.
type WebhookController struct {
	hooks WebhookHandler
}

func NewWebhookController(hooks WebhookHandler) *WebhookController {
	return &WebhookController{hooks: hooks}
}

// ----------------------------------------------------
// POST /api/webhooks/clerk
// ----------------------------------------------------

func (ctl *WebhookController) Session(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid payload")
		return
	}

	handled, err := ctl.hooks.Handle(c.Request.Context(), payload, c.Request.Header)
	switch {
	case errors.Is(err, services.ErrMissingSignatureHeaders):
		c.String(http.StatusBadRequest, "Missing svix headers")
	case errors.Is(err, services.ErrInvalidSignature):
		log.Printf("❌ webhook signature rejected: %v", err)
		c.String(http.StatusBadRequest, "Invalid signature")
	case errors.Is(err, services.ErrInvalidPayload):
		c.String(http.StatusBadRequest, "Invalid payload")
	case errors.Is(err, services.ErrWebhookNotConfigured):
		log.Println("❌ WEBHOOK_SECRET is not set")
		c.String(http.StatusInternalServerError, "Webhook secret not configured")
	case err != nil:
		log.Printf("❌ webhook processing failed: %v", err)
		c.String(http.StatusInternalServerError, "Error processing webhook")
	case !handled:
		c.String(http.StatusOK, "Event ignored")
	default:
		c.String(http.StatusOK, "Webhook processed")
	}
}
