package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/handlers"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/SscSPs/l10n_addons/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ConfirmPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Test Suite ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *MockPaymentService
	userID             string
	token              string
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockPaymentService = new(MockPaymentService)
	suite.userID = uuid.NewString()

	token, err := utils.GenerateJWT(suite.userID, testJWTSecret, time.Hour)
	suite.Require().NoError(err)
	suite.token = token

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterPaymentRoutes(v1, suite.mockPaymentService)
}

func (suite *PaymentHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_Success() {
	req := dto.CreatePaymentRequest{
		PaymentMethodCode: domain.PaymentMethodABACreditTransfer,
		CurrencyCode:      "AUD",
		JournalID:         "j1",
		PartnerBankID:     "pb1",
		Amount:            decimal.NewFromInt(100),
	}
	payment := &domain.Payment{
		PaymentID:         uuid.NewString(),
		PaymentMethodCode: req.PaymentMethodCode,
		CurrencyCode:      req.CurrencyCode,
		JournalID:         req.JournalID,
		PartnerBankID:     req.PartnerBankID,
		Amount:            req.Amount,
		State:             domain.PaymentDraft,
	}
	suite.mockPaymentService.On("CreatePayment", mock.Anything, mock.MatchedBy(func(r dto.CreatePaymentRequest) bool {
		return r.JournalID == "j1" && r.Amount.Equal(decimal.NewFromInt(100))
	}), suite.userID).Return(payment, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(payment.PaymentID, resp.PaymentID)
	suite.Equal("draft", resp.State)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_ConfigurationRequired() {
	redirect := apperrors.NewRedirectError(
		"Journal 'Plain' requires a proper ABA account. Please configure the Account first.",
		"account.journal", "j1", "Configure Journal",
	)
	suite.mockPaymentService.On("CreatePayment", mock.Anything, mock.Anything, suite.userID).Return(nil, redirect).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments", dto.CreatePaymentRequest{
		PaymentMethodCode: domain.PaymentMethodABACreditTransfer,
		CurrencyCode:      "AUD",
		JournalID:         "j1",
		Amount:            decimal.NewFromInt(1),
	})

	suite.Equal(http.StatusConflict, w.Code)
	var resp handlers.RedirectResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(redirect.Message, resp.Error)
	suite.Equal("account.journal", resp.Action.ResModel)
	suite.Equal("j1", resp.Action.ResID)
	suite.Equal("form", resp.Action.ViewMode)
	suite.Equal("new", resp.Action.Target)
	suite.Equal("Configure Journal", resp.ButtonText)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.Validationf("ABA payments must be in AUD"), http.StatusBadRequest},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"not eligible", apperrors.NotEligiblef("only draft payments can be changed"), http.StatusUnprocessableEntity},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockPaymentService.On("CreatePayment", mock.Anything, mock.Anything, suite.userID).Return(nil, tt.err).Once()
			w := suite.do(http.MethodPost, "/api/v1/payments", dto.CreatePaymentRequest{
				PaymentMethodCode: domain.PaymentMethodManual,
				CurrencyCode:      "AUD",
				JournalID:         "j1",
				Amount:            decimal.NewFromInt(1),
			})
			suite.Equal(tt.status, w.Code)
		})
	}
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_BadRequest() {
	w := suite.do(http.MethodPost, "/api/v1/payments", map[string]any{"currencyCode": "AUDX"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment")
}

func (suite *PaymentHandlerTestSuite) TestUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payments/p1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "GetPaymentByID")
}

func (suite *PaymentHandlerTestSuite) TestUpdateAndConfirm() {
	method := domain.PaymentMethodManual
	suite.mockPaymentService.On("UpdatePayment", mock.Anything, "p1", dto.UpdatePaymentRequest{PaymentMethodCode: &method}, suite.userID).
		Return(&domain.Payment{PaymentID: "p1", PaymentMethodCode: method, State: domain.PaymentDraft}, nil).Once()
	suite.mockPaymentService.On("ConfirmPayment", mock.Anything, "p1", suite.userID).
		Return(&domain.Payment{PaymentID: "p1", PaymentMethodCode: method, State: domain.PaymentPosted}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/payments/p1", map[string]any{"paymentMethodCode": method})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/payments/p1/confirm", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("posted", resp.State)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestPaymentHandler(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
