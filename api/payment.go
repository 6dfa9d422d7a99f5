package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/nothingdao/solana-discord-paywall/models"
	"github.com/nothingdao/solana-discord-paywall/service"
)

// paymentRequest is the client-submitted payment claim
type paymentRequest struct {
	Signature    string `json:"signature" validate:"required"`
	DiscordID    string `json:"discordId" validate:"required"`
	ReferralCode string `json:"referralCode"`
	GuildID      string `json:"guildId" validate:"required"`
	RoleID       string `json:"roleId" validate:"required"`
}

// paymentResponse is the success shape
type paymentResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// PaymentHandler verifies payment claims and grants roles
type PaymentHandler struct {
	payments service.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		validate: validator.New(),
	}
}

func (h *PaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		// Plain text, matching the original endpoint's contract
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.payments.ProcessPayment(r.Context(), service.PaymentRequest{
		Signature:    req.Signature,
		DiscordID:    req.DiscordID,
		ReferralCode: req.ReferralCode,
		GuildID:      req.GuildID,
		RoleID:       req.RoleID,
	})
	if err != nil {
		h.respondError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, paymentResponse{Success: true, User: user})
}

// respondError maps domain errors to their status codes; everything else
// is a generic 500 with detail kept server-side
func (h *PaymentHandler) respondError(w http.ResponseWriter, req paymentRequest, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTransaction):
		writeError(w, http.StatusBadRequest, "Invalid transaction")
	case errors.Is(err, service.ErrUnknownOffer):
		writeError(w, http.StatusBadRequest, "Invalid guild or role")
	case errors.Is(err, service.ErrDuplicatePayment):
		writeError(w, http.StatusConflict, "Transaction already processed")
	case errors.Is(err, service.ErrRoleGrantFailed):
		log.WithError(err).WithFields(log.Fields{
			"discordID": req.DiscordID,
			"guildID":   req.GuildID,
		}).Error("Payment persisted but role grant failed")
		writeError(w, http.StatusBadGateway, "Role grant failed")
	default:
		writeInternalError(w, err)
	}
}
