package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"church-treasury/internal/dto"
	apperrors "church-treasury/internal/errors"
	"church-treasury/internal/models"
	"church-treasury/internal/services"
	"church-treasury/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// newTestContext builds an echo context with the ledger validator registered
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func decodeErrorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	return response.Error.Code
}

func sampleTransaction() models.Transaction {
	return models.NewTransaction(
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		models.EntryKindInflow,
		decimal.NewFromInt(250),
		"Dízimos do culto de domingo",
		models.CategoryTithes,
		gofakeit.Name(),
		"",
	)
}

const validTransactionBody = `{"date":"2024-03-10","kind":"inflow","amount":"250.00","description":"Dízimos","category":"Dízimos","responsible":"Tesoureiro"}`

type TransactionHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockLedgerService *service_mocks.MockLedgerServiceInterface
	mockExportService *service_mocks.MockExportServiceInterface
	handler           *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLedgerService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.mockExportService = service_mocks.NewMockExportServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockLedgerService, s.mockExportService)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) TestListTransactions_PassesFiltersAndSort() {
	c, rec := newTestContext(http.MethodGet, "/api/v1/transactions?year=2024&month=3&category=D%C3%ADzimos&q=culto&inflow_only=true&sort=amount&direction=desc", "")

	transaction := sampleTransaction()
	s.mockLedgerService.EXPECT().
		ListTransactions(gomock.Any()).
		DoAndReturn(func(query models.TransactionQuery) (*models.LedgerPage, error) {
			s.Equal(2024, *query.Filters.Year)
			s.Equal(3, *query.Filters.Month)
			s.Equal(models.CategoryTithes, query.Filters.Category)
			s.Equal("culto", query.Filters.TextQuery)
			s.True(query.Filters.InflowOnly)
			s.False(query.AllYears)
			s.Equal(&models.TransactionSort{Key: models.SortKeyAmount, Direction: models.SortDirectionDescending}, query.Sort)
			return &models.LedgerPage{
				Transactions: []models.Transaction{transaction},
				Totals:       models.PeriodTotals{Inflow: transaction.Amount, Outflow: decimal.Zero, Balance: transaction.Amount},
				Count:        1,
			}, nil
		})

	err := s.handler.ListTransactions(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Equal(transaction.ID, response.Transactions[0].ID)
	s.True(decimal.NewFromInt(250).Equal(response.Totals.Balance))
}

func (s *TransactionHandlerTestSuite) TestListTransactions_YearAll() {
	c, rec := newTestContext(http.MethodGet, "/api/v1/transactions?year=all", "")

	s.mockLedgerService.EXPECT().
		ListTransactions(models.TransactionQuery{AllYears: true}).
		Return(&models.LedgerPage{Transactions: []models.Transaction{}}, nil)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidMonth() {
	c, rec := newTestContext(http.MethodGet, "/api/v1/transactions?month=13", "")

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationInvalidFormat), decodeErrorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidSortKey() {
	c, _ := newTestContext(http.MethodGet, "/api/v1/transactions?sort=responsible", "")

	err := s.handler.ListTransactions(c)

	s.Error(err)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	c, rec := newTestContext(http.MethodPost, "/api/v1/transactions", validTransactionBody)

	transaction := sampleTransaction()
	s.mockLedgerService.EXPECT().
		CreateTransaction(gomock.Any()).
		DoAndReturn(func(req *dto.TransactionRequest) (*models.Transaction, error) {
			s.Equal("2024-03-10", req.Date)
			s.Equal("250.00", req.Amount)
			return &transaction, nil
		})

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var created models.Transaction
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Equal(transaction.ID, created.ID)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ValidationError() {
	c, _ := newTestContext(http.MethodPost, "/api/v1/transactions", `{"date":"10/03/2024","kind":"entrada","amount":"-5"}`)

	err := s.handler.CreateTransaction(c)

	s.Error(err)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	c, rec := newTestContext(http.MethodPost, "/api/v1/transactions", `{"date":`)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), decodeErrorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ServiceErrors() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apperrors.ErrorCode
	}{
		{"validation", services.ErrValidationFailed, http.StatusUnprocessableEntity, apperrors.TransactionValidationFailed},
		{"date", services.ErrInvalidDate, http.StatusBadRequest, apperrors.ValidationInvalidDate},
		{"amount", services.ErrInvalidAmount, http.StatusBadRequest, apperrors.TransactionInvalidAmount},
		{"store", errors.New("store unavailable"), http.StatusInternalServerError, apperrors.SystemInternalError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newTestContext(http.MethodPost, "/api/v1/transactions", validTransactionBody)
			s.mockLedgerService.EXPECT().CreateTransaction(gomock.Any()).Return(nil, tc.err)

			s.Require().NoError(s.handler.CreateTransaction(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(string(tc.wantCode), decodeErrorCode(rec))
		})
	}
}

func (s *TransactionHandlerTestSuite) TestGetTransaction() {
	transaction := sampleTransaction()
	c, rec := newTestContext(http.MethodGet, "/", "")
	withID(c, transaction.ID.String())

	s.mockLedgerService.EXPECT().GetTransaction(transaction.ID).Return(&transaction, nil)

	s.Require().NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_InvalidID() {
	c, rec := newTestContext(http.MethodGet, "/", "")
	withID(c, "not-a-uuid")

	s.Require().NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.TransactionInvalidID), decodeErrorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	id := uuid.New()
	c, rec := newTestContext(http.MethodPut, "/", validTransactionBody)
	withID(c, id.String())

	s.mockLedgerService.EXPECT().UpdateTransaction(id, gomock.Any()).Return(nil, services.ErrTransactionNotFound)

	s.Require().NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apperrors.TransactionNotFound), decodeErrorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction() {
	id := uuid.New()
	c, rec := newTestContext(http.MethodDelete, "/", "")
	withID(c, id.String())

	s.mockLedgerService.EXPECT().DeleteTransaction(id).Return(nil)

	s.Require().NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestGetCategories() {
	c, rec := newTestContext(http.MethodGet, "/api/v1/transactions/categories", "")

	s.mockLedgerService.EXPECT().GetCategories().Return([]string{"Dízimos", "Ofertas"}, nil)

	s.Require().NoError(s.handler.GetCategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal([]string{"Dízimos", "Ofertas"}, response.Categories)
	s.Equal(models.SuggestedCategories(), response.Suggested)
}

func (s *TransactionHandlerTestSuite) TestExportTransactions() {
	c, rec := newTestContext(http.MethodGet, "/api/v1/transactions/export?year=2024", "")

	page := &models.LedgerPage{Period: "2024", Transactions: []models.Transaction{sampleTransaction()}}
	s.mockLedgerService.EXPECT().ListTransactions(gomock.Any()).Return(page, nil)
	s.mockExportService.EXPECT().
		ExportTransactions(page.Transactions, page.Totals, "2024", gomock.Any()).
		DoAndReturn(func(_ []models.Transaction, _ models.PeriodTotals, _ string, w io.Writer) error {
			_, err := w.Write([]byte("xlsx"))
			return err
		})
	s.mockExportService.EXPECT().FileName("entradas_saidas", "2024").Return("entradas_saidas_2024.xlsx")

	s.Require().NoError(s.handler.ExportTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="entradas_saidas_2024.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal("xlsx", rec.Body.String())
}

func (s *TransactionHandlerTestSuite) TestExportTransactions_Failure() {
	c, rec := newTestContext(http.MethodGet, "/api/v1/transactions/export", "")

	s.mockLedgerService.EXPECT().ListTransactions(gomock.Any()).Return(&models.LedgerPage{}, nil)
	s.mockExportService.EXPECT().ExportTransactions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	s.Require().NoError(s.handler.ExportTransactions(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apperrors.ReportExportFailed), decodeErrorCode(rec))
}
