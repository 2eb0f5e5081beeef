package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"
)

// Handler serves the donation endpoints. The gateway configuration is
// injected once at construction instead of being read from the
// environment per request.
type Handler struct {
	db      *gorm.DB
	cfg     Config
	gateway *gatewayClient
}

func NewHandler(db *gorm.DB, cfg Config) *Handler {
	return &Handler{
		db:      db,
		cfg:     cfg,
		gateway: newGatewayClient(cfg),
	}
}

type initiateRequest struct {
	Phone       string  `json:"phone"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	DonorName   string  `json:"donor_name"`
}

// newReference builds a donation reference from a millisecond timestamp
// and a 4-digit random suffix, e.g. TXN-1714570000123-0042.
func newReference() string {
	return fmt.Sprintf("TXN-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}

// InitiateDonation starts an M-Pesa charge for a donation and records a
// pending payment keyed by the generated reference.
func (h *Handler) InitiateDonation(c *gin.Context) {
	var req initiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Invalid request payload"})
		return
	}

	if req.Phone == "" || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Phone number and a positive amount are required"})
		return
	}

	if !h.cfg.HasGatewayCredentials() {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Payment gateway credentials are not configured"})
		return
	}

	phone := utils.NormalizePhoneNumber(req.Phone)
	reference := newReference()

	customerName := req.DonorName
	if customerName == "" {
		customerName = h.cfg.CustomerName
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = "tithe"
	}

	err := h.gateway.Charge(chargeRequest{
		PhoneNumber:       phone,
		Amount:            req.Amount,
		ChannelID:         h.cfg.ChannelID,
		Provider:          "m-pesa",
		ExternalReference: reference,
		CustomerName:      customerName,
		CallbackURL:       h.cfg.CallbackBaseURL + "/donations/callback",
		Narration:         paymentType,
	})
	if err != nil {
		var gerr *gatewayError
		if errors.As(err, &gerr) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": gerr.Error()})
			return
		}
		log.Printf("Failed to reach payment gateway: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to reach the payment gateway"})
		return
	}

	payment := models.Payment{
		ExternalReference: reference,
		PhoneNumber:       phone,
		Amount:            req.Amount,
		Status:            models.PaymentStatusPending,
		PaymentType:       paymentType,
		DonorName:         req.DonorName,
		Method:            models.PaymentMethodMpesa,
	}
	// The gateway has already accepted the charge, so the local record is
	// best-effort: a failed insert is logged and the donor still gets the
	// reference.
	if err := h.db.Create(&payment).Error; err != nil {
		log.Printf("Failed to record payment %s: %v", reference, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "reference": reference})
}

type callbackResponse struct {
	UserReference     string `json:"User_Reference"`
	ExternalReference string `json:"ExternalReference"`
	Status            string `json:"Status"`
}

type callbackPayload struct {
	Status   *json.RawMessage  `json:"status"`
	Response *callbackResponse `json:"response"`
}

// mapGatewayStatus translates the gateway's free-text status into a
// stored payment status. Unknown values stay pending so a garbled
// callback can never mark a donation terminal.
func mapGatewayStatus(s string) string {
	switch strings.ToLower(s) {
	case "success":
		return models.PaymentStatusSuccess
	case "failed", "cancelled":
		return models.PaymentStatusFailed
	case "pending":
		return models.PaymentStatusPending
	default:
		return models.PaymentStatusPending
	}
}

// GatewayCallback receives the gateway's asynchronous payment result and
// reconciles it against the stored payment.
func (h *Handler) GatewayCallback(c *gin.Context) {
	var payload callbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback payload"})
		return
	}

	if payload.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status field"})
		return
	}
	if payload.Response == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing response body"})
		return
	}

	reference := payload.Response.UserReference
	if reference == "" {
		reference = payload.Response.ExternalReference
	}
	if reference == "" && payload.Response.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment reference and status"})
		return
	}

	status := mapGatewayStatus(payload.Response.Status)

	// Conditional update: a payment that already reached success or failed
	// is never moved again, so late or duplicate callbacks are harmless.
	result := h.db.Model(&models.Payment{}).
		Where("external_reference = ? AND status = ?", reference, models.PaymentStatusPending).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		log.Printf("Failed to update payment %s: %v", reference, result.Error)
	} else if result.RowsAffected == 0 {
		log.Printf("Callback for reference %s matched no pending payment", reference)
	}

	// The gateway retries on non-2xx, so acknowledge regardless of whether
	// a row was updated.
	c.JSON(http.StatusOK, gin.H{"status": true})
}

// DonationStatus lets the client poll for the current payment status.
// Missing rows and lookup failures both read as pending; the callback
// will land the terminal status eventually.
func (h *Handler) DonationStatus(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Reference is required"})
		return
	}

	var payment models.Payment
	if err := h.db.Where("external_reference = ?", reference).First(&payment).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status": models.PaymentStatusPending})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": payment.Status})
}

// ListDonations returns recent donations for the admin panel.
func (h *Handler) ListDonations(c *gin.Context) {
	var donations []models.Payment
	if err := h.db.Order("created_at desc").Limit(200).Find(&donations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}
