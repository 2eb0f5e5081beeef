package payments

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"github.com/stripe/stripe-go/v80/webhook"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
)

type cardDonationRequest struct {
	Amount      int64  `json:"amount"` // minor units
	Currency    string `json:"currency"`
	PaymentType string `json:"payment_type"`
	DonorName   string `json:"donor_name"`
	DonorEmail  string `json:"donor_email"`
}

// CreateCardDonationIntent creates a Stripe PaymentIntent for donors who
// prefer a card over mobile money, and records a pending card payment
// under the same reference scheme as the M-Pesa flow.
func (h *Handler) CreateCardDonationIntent(c *gin.Context) {
	var req cardDonationRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Invalid request payload"})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "A positive amount is required"})
		return
	}

	if h.cfg.StripeSecretKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Card payments are not configured"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "kes"
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = "tithe"
	}

	reference := newReference()

	stripe.Key = h.cfg.StripeSecretKey

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	if req.DonorEmail != "" {
		params.ReceiptEmail = stripe.String(req.DonorEmail)
	}

	params.Metadata = map[string]string{
		"reference":    reference,
		"payment_type": paymentType,
		"donor_name":   req.DonorName,
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	payment := models.Payment{
		ExternalReference: reference,
		Amount:            float64(req.Amount) / 100,
		Status:            models.PaymentStatusPending,
		PaymentType:       paymentType,
		DonorName:         req.DonorName,
		Method:            models.PaymentMethodCard,
	}
	if err := h.db.Create(&payment).Error; err != nil {
		log.Printf("Failed to record card payment %s: %v", reference, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"reference":    reference,
		"clientSecret": pi.ClientSecret,
	})
}

// StripeWebhook finalizes card donations. The same pending-only update
// rule applies as for the M-Pesa callback.
func (h *Handler) StripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	event, err := webhook.ConstructEvent(payload, c.Request.Header.Get("Stripe-Signature"), h.cfg.StripeWebhookSecret)
	if err != nil {
		log.Printf("Stripe webhook signature verification failed: %v", err)
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		h.finalizeCardPayment(event.Data.Raw, models.PaymentStatusSuccess)
	case "payment_intent.payment_failed":
		h.finalizeCardPayment(event.Data.Raw, models.PaymentStatusFailed)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) finalizeCardPayment(raw json.RawMessage, status string) {
	var paymentIntent stripe.PaymentIntent
	if err := json.Unmarshal(raw, &paymentIntent); err != nil {
		log.Printf("Error parsing Stripe webhook JSON: %v", err)
		return
	}

	reference := paymentIntent.Metadata["reference"]
	if reference == "" {
		log.Printf("PaymentIntent %s has no donation reference in metadata", paymentIntent.ID)
		return
	}

	result := h.db.Model(&models.Payment{}).
		Where("external_reference = ? AND status = ?", reference, models.PaymentStatusPending).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		log.Printf("Failed to update card payment %s: %v", reference, result.Error)
	} else if result.RowsAffected == 0 {
		log.Printf("Stripe webhook for reference %s matched no pending payment", reference)
	}
}
