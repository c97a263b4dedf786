package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"

	"inkwell/internal/config"
)

// WebhookController receives profile-lifecycle notifications from the
// identity provider. Envelopes are verified against the shared signing
// secret before anything is read out of them.
type WebhookController struct {
	verifier *svix.Webhook
	uc       ProfileUseCase
}

func NewWebhookController(verifier *svix.Webhook, uc ProfileUseCase) *WebhookController {
	return &WebhookController{verifier: verifier, uc: uc}
}

type webhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type userCreatedData struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ImageURL       string `json:"image_url"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// Handle verifies the envelope and applies "user.created" events. Every
// other verified event kind is acknowledged without action. A failed insert
// is reported as a server error; whether and when to redeliver is the
// provider's decision, not ours.
func (ctl *WebhookController) Handle(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Error reading webhook body")
		return
	}

	if err := ctl.verifier.Verify(payload, c.Request.Header); err != nil {
		config.Logger.Warn("webhook verification failed", zap.Error(err))
		c.String(http.StatusBadRequest, "Error verifying webhook")
		return
	}

	var evt webhookEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		c.String(http.StatusBadRequest, "Error parsing webhook event")
		return
	}

	if evt.Type != "user.created" {
		c.String(http.StatusOK, "Webhook received")
		return
	}

	var data userCreatedData
	if err := json.Unmarshal(evt.Data, &data); err != nil || data.ID == "" || len(data.EmailAddresses) == 0 {
		c.String(http.StatusBadRequest, "Error parsing user payload")
		return
	}

	var profileImage *string
	if data.ImageURL != "" {
		profileImage = &data.ImageURL
	}

	created, err := ctl.uc.SyncCreated(
		c.Request.Context(),
		data.ID,
		data.EmailAddresses[0].EmailAddress,
		data.FirstName,
		data.LastName,
		profileImage,
	)
	if err != nil {
		config.Logger.Error("failed to store user from webhook", zap.String("userID", data.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Error: Failed to store event in the database")
		return
	}

	c.JSON(http.StatusCreated, created)
}
