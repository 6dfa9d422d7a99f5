package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nothingdao/solana-discord-paywall/models"
	"github.com/nothingdao/solana-discord-paywall/service"
)

// MockPaymentService is a mock implementation of service.PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ProcessPayment(ctx context.Context, req service.PaymentRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const validPaymentBody = `{
	"signature": "sig-abc",
	"discordId": "discord-1",
	"guildId": "guild-1",
	"roleId": "role-1"
}`

func TestPaymentHandler_MethodNotAllowed(t *testing.T) {
	svc := new(MockPaymentService)
	handler := NewPaymentHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/verify-payment", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	// Plain text, not JSON
	assert.Equal(t, "Method Not Allowed\n", rec.Body.String())
	svc.AssertNotCalled(t, "ProcessPayment")
}

func TestPaymentHandler_InvalidBody(t *testing.T) {
	svc := new(MockPaymentService)
	handler := NewPaymentHandler(svc)

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/verify-payment", strings.NewReader("not json"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	})

	t.Run("missing required field", func(t *testing.T) {
		body := `{"signature":"sig-abc","guildId":"guild-1","roleId":"role-1"}`
		req := httptest.NewRequest(http.MethodPost, "/verify-payment", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	})

	svc.AssertNotCalled(t, "ProcessPayment")
}

func TestPaymentHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid transaction",
			err:        service.ErrInvalidTransaction,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid transaction"}`,
		},
		{
			name:       "unknown offer",
			err:        service.ErrUnknownOffer,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid guild or role"}`,
		},
		{
			name:       "duplicate payment",
			err:        fmt.Errorf("failed to record payment: %w", service.ErrDuplicatePayment),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"Transaction already processed"}`,
		},
		{
			name:       "role grant failed",
			err:        fmt.Errorf("%w: unknown member", service.ErrRoleGrantFailed),
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"Role grant failed"}`,
		},
		{
			name:       "unexpected error",
			err:        errors.New("database down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPaymentService)
			svc.On("ProcessPayment", mock.Anything, mock.AnythingOfType("service.PaymentRequest")).Return(nil, tt.err)
			handler := NewPaymentHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/verify-payment", strings.NewReader(validPaymentBody))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestPaymentHandler_Success(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("ProcessPayment", mock.Anything, service.PaymentRequest{
		Signature: "sig-abc",
		DiscordID: "discord-1",
		GuildID:   "guild-1",
		RoleID:    "role-1",
	}).Return(&models.User{ID: 1, DiscordID: "discord-1", ReferralCode: "abc123"}, nil)

	handler := NewPaymentHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/verify-payment", strings.NewReader(validPaymentBody))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"discordId":"discord-1"`)
	assert.Contains(t, rec.Body.String(), `"referralCode":"abc123"`)
	svc.AssertExpectations(t)
}

func TestPaymentHandler_ReferralCodeForwarded(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("ProcessPayment", mock.Anything, mock.MatchedBy(func(req service.PaymentRequest) bool {
		return req.ReferralCode == "friend"
	})).Return(&models.User{ID: 1, DiscordID: "discord-1"}, nil)

	handler := NewPaymentHandler(svc)

	body := `{"signature":"sig-abc","discordId":"discord-1","referralCode":"friend","guildId":"guild-1","roleId":"role-1"}`
	req := httptest.NewRequest(http.MethodPost, "/verify-payment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
