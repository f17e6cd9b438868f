package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
	"github.com/invoxa/invoxa/internal/dto"
	"github.com/invoxa/invoxa/internal/handlers"
	"github.com/invoxa/invoxa/internal/pdf"
	"github.com/invoxa/invoxa/internal/platform/config"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, userID string, filter portsrepo.InvoiceListFilter, page portsrepo.Pagination) ([]portsrepo.InvoiceListRow, int, error) {
	args := m.Called(ctx, userID, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]portsrepo.InvoiceListRow), args.Int(1), args.Error(2)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID string, status domain.InvoiceStatus) error {
	args := m.Called(ctx, userID, invoiceID, status)
	return args.Error(0)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	args := m.Called(ctx, userID, invoiceID)
	return args.Error(0)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) CreateClient(ctx context.Context, userID string, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, userID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, userID, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(ctx context.Context, userID, clientID string) error {
	args := m.Called(ctx, userID, clientID)
	return args.Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompanyByUser(ctx context.Context, userID string) (*domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) UpsertCompany(ctx context.Context, userID string, req dto.UpsertCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Lightweight stubs for facades the invoice routes never touch ---

type stubUserService struct{}

func (stubUserService) GetUserByID(context.Context, string) (*domain.User, error) {
	return nil, apperrors.ErrNotFound
}
func (stubUserService) RegisterUser(context.Context, dto.RegisterUserRequest) (*domain.User, error) {
	return nil, apperrors.ErrValidation
}
func (stubUserService) AuthenticateUser(context.Context, string, string) (*domain.User, error) {
	return nil, apperrors.ErrUnauthorized
}

type stubTokenService struct{}

func (stubTokenService) GenerateSessionToken(_ context.Context, user *domain.User) (string, error) {
	return "", fmt.Errorf("not implemented")
}

type stubRegistry struct{}

func (stubRegistry) GetCurrency(code string) domain.Currency {
	return domain.Currency{Code: "USD", Symbol: "$", DecimalPlaces: 2}
}
func (stubRegistry) FormatCurrency(amount float64, code string) string {
	return fmt.Sprintf("$%.2f", amount)
}
func (stubRegistry) ValidateCurrencyCode(code string) bool { return code == "USD" || code == "EUR" }
func (stubRegistry) CurrencyOptions() []portssvc.CurrencyOption {
	return []portssvc.CurrencyOption{{Value: "USD", Label: "USD - US Dollar ($)"}}
}
func (stubRegistry) SupportedCodes() []string { return []string{"USD", "EUR"} }

type stubConverter struct{}

func (stubConverter) GetExchangeRate(context.Context, string, string) float64 { return 1 }
func (stubConverter) ConvertCurrency(_ context.Context, amount float64, _, _ string) float64 {
	return amount
}
func (stubConverter) ConvertMultipleCurrencies(_ context.Context, amounts []domain.MonetaryAmount, _ string) float64 {
	var sum float64
	for _, a := range amounts {
		sum += a.Amount
	}
	return sum
}
func (stubConverter) ClearCache() {}

type stubDashboardService struct{}

func (stubDashboardService) GetDashboard(context.Context, string) (*domain.DashboardReport, error) {
	return &domain.DashboardReport{ReportingCurrency: "USD"}, nil
}

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
	mockClientService  *MockClientService
	mockCompanyService *MockCompanyService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *InvoiceHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "invoxa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockClientService = new(MockClientService)
	suite.mockCompanyService = new(MockCompanyService)

	cfg := &config.Config{
		IsProduction:      true, // skip swagger route registration
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "invoxa-test",
		AuthCookieName:    "auth_token",
		AuthCookiePath:    "/",
		ConvertRateLimit:  "60-M",
	}

	container := &portssvc.ServiceContainer{
		User:      stubUserService{},
		Token:     stubTokenService{},
		Client:    suite.mockClientService,
		Company:   suite.mockCompanyService,
		Invoice:   suite.mockInvoiceService,
		Currency:  stubRegistry{},
		Converter: stubConverter{},
		Dashboard: stubDashboardService{},
		Renderer:  pdf.NewRenderer(pdf.NewBuiltinRegistry(), stubRegistry{}),
	}

	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *InvoiceHandlerTestSuite) doRequest(method, path, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleInvoice(userID, clientID string) *domain.Invoice {
	now := time.Now()
	inv := &domain.Invoice{
		InvoiceID:  uuid.NewString(),
		UserID:     userID,
		ClientID:   clientID,
		Number:     "INV-000042",
		Status:     domain.InvoiceStatusPending,
		Currency:   "USD",
		TemplateID: "modern-minimalist",
		IssueDate:  now,
		DueDate:    now.AddDate(0, 0, 30),
		Subtotal:   decimal.NewFromInt(1200),
		TaxRate:    decimal.NewFromInt(10),
		TaxAmount:  decimal.NewFromInt(120),
		Total:      decimal.NewFromInt(1320),
		Items: []domain.InvoiceItem{
			{
				ItemID:      uuid.NewString(),
				Description: "Design work",
				Quantity:    decimal.NewFromInt(10),
				UnitPrice:   decimal.NewFromInt(120),
				Amount:      decimal.NewFromInt(1200),
				Position:    0,
			},
		},
	}
	inv.CreatedAt = now
	inv.LastUpdatedAt = now
	return inv
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestListInvoices_Success() {
	userID := uuid.NewString()
	inv := sampleInvoice(userID, uuid.NewString())
	rows := []portsrepo.InvoiceListRow{
		{Invoice: *inv, ClientName: "Acme Corp", ClientEmail: "billing@acme.test"},
	}

	suite.mockInvoiceService.On("ListInvoices", mock.Anything, userID,
		portsrepo.InvoiceListFilter{}, portsrepo.Pagination{Page: 1, Limit: 10}).
		Return(rows, 1, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/invoices", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.InvoiceListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Invoices, 1)
	suite.Equal("INV-000042", resp.Invoices[0].Number)
	suite.Equal("Acme Corp", resp.Invoices[0].ClientName)
	suite.Equal(1, resp.Pagination.Page)
	suite.Equal(10, resp.Pagination.Limit)
	suite.Equal(1, resp.Pagination.Total)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_InvalidStatusFilter() {
	userID := uuid.NewString()

	suite.mockInvoiceService.On("ListInvoices", mock.Anything, userID,
		portsrepo.InvoiceListFilter{Status: "BOGUS"}, portsrepo.Pagination{Page: 1, Limit: 10}).
		Return(nil, 0, fmt.Errorf("unknown status BOGUS: %w", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/invoices?status=BOGUS", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	userID := uuid.NewString()
	invoiceID := uuid.NewString()

	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, userID, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	userID := uuid.NewString()
	clientID := uuid.NewString()
	inv := sampleInvoice(userID, clientID)

	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, userID, mock.AnythingOfType("dto.CreateInvoiceRequest")).
		Return(inv, nil).Once()

	body := gin.H{
		"clientId":  clientID,
		"issueDate": time.Now().Format(time.RFC3339),
		"dueDate":   time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
		"taxRate":   10,
		"items": []gin.H{
			{"description": "Design work", "quantity": 10, "unitPrice": 120},
		},
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/invoices", userID, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INV-000042", resp.Number)
	suite.InDelta(1320, resp.Total, 0.001)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_ValidationError() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, userID, mock.AnythingOfType("dto.CreateInvoiceRequest")).
		Return(nil, fmt.Errorf("due date precedes issue date: %w", apperrors.ErrValidation)).Once()

	body := gin.H{
		"clientId":  clientID,
		"issueDate": time.Now().Format(time.RFC3339),
		"dueDate":   time.Now().AddDate(0, 0, -5).Format(time.RFC3339),
		"items": []gin.H{
			{"description": "Design work", "quantity": 10, "unitPrice": 120},
		},
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/invoices", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingItems() {
	userID := uuid.NewString()

	body := gin.H{
		"clientId":  uuid.NewString(),
		"issueDate": time.Now().Format(time.RFC3339),
		"dueDate":   time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
		"items":     []gin.H{},
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/invoices", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *InvoiceHandlerTestSuite) TestUpdateInvoiceStatus_Success() {
	userID := uuid.NewString()
	invoiceID := uuid.NewString()

	suite.mockInvoiceService.On("UpdateInvoiceStatus", mock.Anything, userID, invoiceID, domain.InvoiceStatusPaid).
		Return(nil).Once()

	w := suite.doRequest(http.MethodPatch, "/api/v1/invoices/"+invoiceID+"/status", userID, gin.H{"status": "PAID"})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice_Success() {
	userID := uuid.NewString()
	invoiceID := uuid.NewString()

	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, userID, invoiceID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/invoices/"+invoiceID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestDownloadInvoicePDF_Success() {
	userID := uuid.NewString()
	clientID := uuid.NewString()
	inv := sampleInvoice(userID, clientID)

	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, userID, inv.InvoiceID).
		Return(inv, nil).Once()
	suite.mockClientService.On("GetClientByID", mock.Anything, userID, clientID).
		Return(&domain.Client{ClientID: clientID, UserID: userID, Name: "Acme Corp"}, nil).Once()
	suite.mockCompanyService.On("GetCompanyByUser", mock.Anything, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/invoices/"+inv.InvoiceID+"/pdf", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "INV-000042.pdf")
	suite.True(bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func (suite *InvoiceHandlerTestSuite) TestRequiresAuthentication() {
	w := suite.doRequest(http.MethodGet, "/api/v1/invoices", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "ListInvoices")
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
