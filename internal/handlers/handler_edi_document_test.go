package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/core/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/handlers"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EDIDocumentService ---
type MockEDIDocumentService struct {
	mock.Mock
}

func (m *MockEDIDocumentService) SignInvoice(ctx context.Context, company *domain.Company, orders []domain.Order, origin string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, company, orders, origin, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockEDIDocumentService) GlobalInvoiceTrySend(ctx context.Context, orderIDs []string, periodicity string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, orderIDs, periodicity, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockEDIDocumentService) CheckGlobalInvoiceEligibility(ctx context.Context, orderIDs []string) error {
	return m.Called(ctx, orderIDs).Error(0)
}
func (m *MockEDIDocumentService) ActionRetry(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockEDIDocumentService) ActionCancel(ctx context.Context, documentID string, reason string, substitutionUUID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, reason, substitutionUUID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockEDIDocumentService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockEDIDocumentService) ListDocumentsByOrder(ctx context.Context, orderID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	args := m.Called(ctx, orderID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDocumentsResponse), args.Error(1)
}
func (m *MockEDIDocumentService) FetchAndUpdateSATStatus(ctx context.Context, documentIDs []string) (*dto.SATSyncResponse, error) {
	args := m.Called(ctx, documentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SATSyncResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.EDIDocumentSvcFacade = (*MockEDIDocumentService)(nil)

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockEDI *MockEDIDocumentService
	apiKey  string
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
	suite.router = gin.New()
	suite.mockEDI = new(MockEDIDocumentService)
	suite.apiKey = "scheduler-key"

	// Same auth stack as the server: api key first, JWT otherwise.
	v1 := suite.router.Group("/api/v1",
		middleware.APIKeyAuth(map[string]string{suite.apiKey: "scheduler"}),
		middleware.AuthMiddleware(testJWTSecret),
	)
	handlers.RegisterDocumentRoutes(v1, suite.mockEDI)
	wizard := services.NewGlobalInvoiceWizardService(suite.mockEDI, services.NewGlobalInvoiceChain(suite.mockEDI))
	handlers.RegisterGlobalInvoiceRoutes(v1, wizard)
}

func (suite *DocumentHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", suite.apiKey)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DocumentHandlerTestSuite) TestRetry() {
	doc := &domain.Document{
		DocumentID:         "d1",
		OrderIDs:           []string{"o1"},
		State:              domain.GlobalInvoiceSent,
		AttachmentUUID:     "uuid-1",
		Attachment:         []byte("<cfdi/>"),
		Datetime:           time.Now(),
		CancelButtonNeeded: true,
	}
	suite.mockEDI.On("ActionRetry", mock.Anything, "d1", "client:scheduler").Return(doc, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/documents/d1/retry", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ginvoice_sent", resp.State)
	suite.True(resp.HasAttachment)
	suite.True(resp.CancelButtonNeeded)
	suite.False(resp.RetryButtonNeeded)
	suite.mockEDI.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestRetry_NotEligible() {
	suite.mockEDI.On("ActionRetry", mock.Anything, "d1", mock.Anything).
		Return(nil, apperrors.NotEligiblef("document d1 is not in a failed state")).Once()

	w := suite.do(http.MethodPost, "/api/v1/documents/d1/retry", nil)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestCancel() {
	suite.mockEDI.On("ActionCancel", mock.Anything, "d1", "02", "", "client:scheduler").
		Return(&domain.Document{DocumentID: "d2", State: domain.GlobalInvoiceCancel}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/documents/d1/cancel", dto.CancelDocumentRequest{Reason: "02"})
	suite.Equal(http.StatusOK, w.Code)

	// Reason 01 needs the substituting uuid; binding rejects it before the service.
	w = suite.do(http.MethodPost, "/api/v1/documents/d1/cancel", dto.CancelDocumentRequest{Reason: "01"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/documents/d1/cancel", dto.CancelDocumentRequest{Reason: "09"})
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockEDI.AssertNumberOfCalls(suite.T(), "ActionCancel", 1)
}

func (suite *DocumentHandlerTestSuite) TestListOrderDocuments() {
	next := "token"
	suite.mockEDI.On("ListDocumentsByOrder", mock.Anything, "o1", mock.MatchedBy(func(p dto.ListDocumentsParams) bool {
		return p.Limit == 1 && p.NextToken == nil
	})).Return(&dto.ListDocumentsResponse{
		Documents: []dto.DocumentResponse{{DocumentID: "d1"}},
		NextToken: &next,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders/o1/documents?limit=1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListDocumentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Documents, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/orders/o1/documents?limit=1000", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestSATSync() {
	suite.mockEDI.On("FetchAndUpdateSATStatus", mock.Anything, []string(nil)).
		Return(&dto.SATSyncResponse{Checked: 3, Updated: 2}, nil).Once()
	suite.mockEDI.On("FetchAndUpdateSATStatus", mock.Anything, []string{"d1"}).
		Return(&dto.SATSyncResponse{Checked: 1, Updated: 0}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/documents/sat-sync", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"checked":3,"updated":2}`, w.Body.String())

	w = suite.do(http.MethodPost, "/api/v1/documents/sat-sync", dto.SATSyncRequest{DocumentIDs: []string{"d1"}})
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"checked":1,"updated":0}`, w.Body.String())
}

func (suite *DocumentHandlerTestSuite) TestInvalidAPIKey() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/documents/d1", nil)
	req.Header.Set("x-api-key", "wrong")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestGlobalInvoiceWizard() {
	suite.mockEDI.On("CheckGlobalInvoiceEligibility", mock.Anything, []string{"o1", "o2"}).Return(nil).Twice()
	suite.mockEDI.On("GlobalInvoiceTrySend", mock.Anything, []string{"o1", "o2"}, domain.DefaultPeriodicity, "client:scheduler").
		Return(&domain.Document{DocumentID: "g1", State: domain.GlobalInvoiceSentFailed, Message: "PAC unavailable", RetryButtonNeeded: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/global-invoices/wizard", dto.GlobalInvoiceWizardRequest{OrderIDs: []string{"o1", "o2", "o1"}})
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"orderIDs":["o1","o2"],"periodicity":"04"}`, w.Body.String())

	// A failed signature is still a processed request.
	w = suite.do(http.MethodPost, "/api/v1/global-invoices", dto.GlobalInvoiceWizardRequest{OrderIDs: []string{"o1", "o2"}})
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ginvoice_sent_failed", resp.State)
	suite.True(resp.RetryButtonNeeded)
	suite.mockEDI.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestGlobalInvoiceWizard_Rejections() {
	suite.mockEDI.On("CheckGlobalInvoiceEligibility", mock.Anything, []string{"o1"}).
		Return(apperrors.NotEligiblef("Some orders are already sent or not eligible for CFDI.")).Once()

	w := suite.do(http.MethodPost, "/api/v1/global-invoices/wizard", dto.GlobalInvoiceWizardRequest{OrderIDs: []string{"o1"}})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/global-invoices/wizard", dto.GlobalInvoiceWizardRequest{OrderIDs: []string{"o1"}, Periodicity: "99"})
	suite.Equal(http.StatusBadRequest, w.Code)

	// Without records the chain falls through to the default handler.
	w = suite.do(http.MethodPost, "/api/v1/global-invoices", dto.GlobalInvoiceWizardRequest{})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEDI.AssertNotCalled(suite.T(), "GlobalInvoiceTrySend")
}

// --- Run Test Suite ---
func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
