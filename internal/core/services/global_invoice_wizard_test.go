package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/core/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
)

// --- Mock EDIDocumentService ---
type MockEDIDocumentService struct {
	mock.Mock
}

var _ portssvc.EDIDocumentSvcFacade = (*MockEDIDocumentService)(nil)

func (m *MockEDIDocumentService) docResult(args mock.Arguments) (*domain.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockEDIDocumentService) SignInvoice(ctx context.Context, company *domain.Company, orders []domain.Order, origin string, userID string) (*domain.Document, error) {
	return m.docResult(m.Called(ctx, company, orders, origin, userID))
}

func (m *MockEDIDocumentService) GlobalInvoiceTrySend(ctx context.Context, orderIDs []string, periodicity string, userID string) (*domain.Document, error) {
	return m.docResult(m.Called(ctx, orderIDs, periodicity, userID))
}

func (m *MockEDIDocumentService) CheckGlobalInvoiceEligibility(ctx context.Context, orderIDs []string) error {
	return m.Called(ctx, orderIDs).Error(0)
}

func (m *MockEDIDocumentService) ActionRetry(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	return m.docResult(m.Called(ctx, documentID, userID))
}

func (m *MockEDIDocumentService) ActionCancel(ctx context.Context, documentID string, reason string, substitutionUUID string, userID string) (*domain.Document, error) {
	return m.docResult(m.Called(ctx, documentID, reason, substitutionUUID, userID))
}

func (m *MockEDIDocumentService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	return m.docResult(m.Called(ctx, documentID))
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

type GlobalInvoiceWizardTestSuite struct {
	suite.Suite
	ctx     context.Context
	mockEDI *MockEDIDocumentService
	chain   *services.GlobalInvoiceChain
	wizard  portssvc.GlobalInvoiceWizardSvc
	userID  string
}

func TestGlobalInvoiceWizardTestSuite(t *testing.T) {
	suite.Run(t, new(GlobalInvoiceWizardTestSuite))
}

func (suite *GlobalInvoiceWizardTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockEDI = new(MockEDIDocumentService)
	suite.chain = services.NewGlobalInvoiceChain(suite.mockEDI)
	suite.wizard = services.NewGlobalInvoiceWizardService(suite.mockEDI, suite.chain)
	suite.userID = uuid.NewString()
}

func (suite *GlobalInvoiceWizardTestSuite) TearDownTest() {
	suite.mockEDI.AssertExpectations(suite.T())
}

func (suite *GlobalInvoiceWizardTestSuite) TestDefaultGet_Defaults() {
	w, err := suite.wizard.DefaultGet(suite.ctx, dto.GlobalInvoiceWizardRequest{})
	suite.Require().NoError(err)
	suite.Equal(domain.PeriodicityMonthly, w.Periodicity)
	suite.Empty(w.OrderIDs)
	suite.mockEDI.AssertNotCalled(suite.T(), "CheckGlobalInvoiceEligibility", mock.Anything, mock.Anything)
}

func (suite *GlobalInvoiceWizardTestSuite) TestDefaultGet_ChecksOrders() {
	suite.mockEDI.On("CheckGlobalInvoiceEligibility", suite.ctx, []string{"o1", "o2"}).Return(nil).Once()

	w, err := suite.wizard.DefaultGet(suite.ctx, dto.GlobalInvoiceWizardRequest{
		OrderIDs:    []string{"o1", "o2", "o1"},
		Periodicity: domain.PeriodicityWeekly,
	})
	suite.Require().NoError(err)
	suite.Equal([]string{"o1", "o2"}, w.OrderIDs)
	suite.Equal(domain.PeriodicityWeekly, w.Periodicity)
}

func (suite *GlobalInvoiceWizardTestSuite) TestDefaultGet_NotEligible() {
	suite.mockEDI.On("CheckGlobalInvoiceEligibility", suite.ctx, []string{"o1"}).
		Return(apperrors.NotEligiblef("A global invoice cannot be made of refunds only.")).Once()

	_, err := suite.wizard.DefaultGet(suite.ctx, dto.GlobalInvoiceWizardRequest{OrderIDs: []string{"o1"}})
	suite.ErrorIs(err, apperrors.ErrNotEligible)
}

func (suite *GlobalInvoiceWizardTestSuite) TestDefaultGet_InvalidPeriodicity() {
	_, err := suite.wizard.DefaultGet(suite.ctx, dto.GlobalInvoiceWizardRequest{Periodicity: "13"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GlobalInvoiceWizardTestSuite) TestCreate_WithOrders() {
	doc := &domain.Document{DocumentID: "d1", State: domain.GlobalInvoiceSent}
	suite.mockEDI.On("GlobalInvoiceTrySend", suite.ctx, []string{"o1"}, domain.PeriodicityDaily, suite.userID).Return(doc, nil).Once()

	got, err := suite.wizard.ActionCreateGlobalInvoice(suite.ctx, domain.GlobalInvoiceWizard{
		OrderIDs:    []string{"o1"},
		Periodicity: domain.PeriodicityDaily,
	}, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(doc, got)
}

func (suite *GlobalInvoiceWizardTestSuite) TestCreate_WithoutRecordsFallsBack() {
	_, err := suite.wizard.ActionCreateGlobalInvoice(suite.ctx, domain.GlobalInvoiceWizard{Periodicity: domain.PeriodicityDaily}, suite.userID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "no records selected")
	suite.mockEDI.AssertNotCalled(suite.T(), "GlobalInvoiceTrySend", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GlobalInvoiceWizardTestSuite) TestCreate_ExtendedChain() {
	invoiceDoc := &domain.Document{DocumentID: "from-invoices"}
	suite.chain.Prepend("account_move", func(ctx context.Context, cmd services.GlobalInvoiceCommand) (*domain.Document, bool, error) {
		if len(cmd.Wizard.OrderIDs) > 0 {
			return nil, false, nil
		}
		return invoiceDoc, true, nil
	})

	got, err := suite.wizard.ActionCreateGlobalInvoice(suite.ctx, domain.GlobalInvoiceWizard{}, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(invoiceDoc, got)

	suite.mockEDI.On("GlobalInvoiceTrySend", suite.ctx, []string{"o1"}, domain.PeriodicityMonthly, suite.userID).
		Return(&domain.Document{DocumentID: "d1"}, nil).Once()
	got, err = suite.wizard.ActionCreateGlobalInvoice(suite.ctx, domain.GlobalInvoiceWizard{
		OrderIDs:    []string{"o1"},
		Periodicity: domain.PeriodicityMonthly,
	}, suite.userID)
	suite.Require().NoError(err)
	suite.Equal("d1", got.DocumentID)
	suite.Equal(services.OperationCreateGlobalInvoice, suite.chain.Operation())
}
