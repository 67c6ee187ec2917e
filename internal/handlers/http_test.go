package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/erp-crm/internal/model"
	svcMocks "github.com/umalmyha/erp-crm/internal/service/mocks"
	"github.com/umalmyha/erp-crm/internal/validation"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type handlersTestSuite struct {
	suite.Suite
	e               *echo.Echo
	customerSvcMock *svcMocks.CustomerService
	documentSvcMock *svcMocks.DocumentService
	reportSvcMock   *svcMocks.ReportService
	customerHandler *CustomerHTTPHandler
	documentHandler *DocumentHTTPHandler
	reportHandler   *ReportHTTPHandler
}

func (s *handlersTestSuite) SetupTest() {
	t := s.T()
	s.e = echo.New()
	s.customerSvcMock = svcMocks.NewCustomerService(t)
	s.documentSvcMock = svcMocks.NewDocumentService(t)
	s.reportSvcMock = svcMocks.NewReportService(t)
	s.customerHandler = NewCustomerHTTPHandler(s.customerSvcMock)
	s.documentHandler = NewDocumentHTTPHandler(s.documentSvcMock)
	s.reportHandler = NewReportHTTPHandler(s.reportSvcMock)
}

func (s *handlersTestSuite) balanceRequest(code string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetPath("/api/crm/customer/balance/:customerCode")
	c.SetParamNames("customerCode")
	c.SetParamValues(code)
	return rec, c
}

func (s *handlersTestSuite) jsonRequest(method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, s.e.NewContext(req, rec)
}

func (s *handlersTestSuite) decode(rec *httptest.ResponseRecorder) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func (s *handlersTestSuite) TestBalanceRejectsMalformedCodes() {
	for _, code := range []string{"12345", "1234567", "12a456", "12345x", "      "} {
		rec, c := s.balanceRequest(code)

		s.Require().NoError(s.customerHandler.Balance(c))
		s.Assert().Equal(http.StatusBadRequest, rec.Code)

		env := s.decode(rec)
		s.Assert().Equal(http.StatusBadRequest, env.Status)
		s.Assert().Equal("Invalid customer code", env.Message)
	}

	s.customerSvcMock.AssertNotCalled(s.T(), "Balance", mock.Anything, mock.Anything)
}

func (s *handlersTestSuite) TestBalance() {
	s.customerSvcMock.On("Balance", mock.Anything, "123456").
		Return(decimal.RequireFromString("1250.75"), nil).Once()

	rec, c := s.balanceRequest("123456")

	s.Require().NoError(s.customerHandler.Balance(c))
	s.Assert().Equal(http.StatusOK, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal(http.StatusOK, env.Status)
	s.Assert().Equal("OK", env.Message)
	s.Assert().Equal("1250.75", env.Data)
}

func (s *handlersTestSuite) TestBalanceLookupFailure() {
	s.customerSvcMock.On("Balance", mock.Anything, "123456").
		Return(decimal.Zero, errors.New("connection reset")).Once()

	rec, c := s.balanceRequest("123456")

	s.Require().NoError(s.customerHandler.Balance(c))
	s.Assert().Equal(http.StatusInternalServerError, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal("An error occurred while getting the customer's balance", env.Message)
	s.Assert().Nil(env.Data, "infrastructure error details must not leak on reads")
}

func (s *handlersTestSuite) TestCreate() {
	s.customerSvcMock.On("Create", mock.Anything, model.NewCustomer{
		Name:      "Samir Mammadov oğlu",
		CreatedBy: "crm",
		Manager:   "M01",
		Segment:   "SEG01",
		IsCompany: true,
	}).Return("123456", nil).Once()

	body := `{"name":"Samir Mammadov oğlu","createdBy":"crm","manager":"M01","segment":"SEG01","isCompany":true}`
	rec, c := s.jsonRequest(http.MethodPost, "/api/crm/customer/create", body)

	s.Require().NoError(s.customerHandler.Create(c))
	s.Assert().Equal(http.StatusCreated, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal(http.StatusCreated, env.Status)
	s.Assert().Equal("Customer created successfully", env.Message)
	s.Assert().Equal("123456", env.Data)
}

func (s *handlersTestSuite) TestCreateValidationFailure() {
	pldErr := validation.Run(context.Background(),
		validation.Required("Name", ""),
		validation.Required("CreatedBy", ""),
	)
	s.Require().Error(pldErr)

	s.customerSvcMock.On("Create", mock.Anything, mock.AnythingOfType("model.NewCustomer")).
		Return("", pldErr).Once()

	rec, c := s.jsonRequest(http.MethodPost, "/api/crm/customer/create", `{"name":""}`)

	s.Require().NoError(s.customerHandler.Create(c))
	s.Assert().Equal(http.StatusBadRequest, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal("Validation failed", env.Message)
	s.Assert().Equal([]any{"Name is required", "CreatedBy is required"}, env.Data,
		"the complete violation list must be returned")
}

func (s *handlersTestSuite) TestCreateRepositoryFailure() {
	s.customerSvcMock.On("Create", mock.Anything, mock.AnythingOfType("model.NewCustomer")).
		Return("", errors.New("stored procedure failed")).Once()

	rec, c := s.jsonRequest(http.MethodPost, "/api/crm/customer/create", `{"name":"Samir Mammadov oğlu"}`)

	s.Require().NoError(s.customerHandler.Create(c))
	s.Assert().Equal(http.StatusInternalServerError, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal("An error occurred while creating the customer", env.Message)
	s.Assert().Equal("stored procedure failed", env.Data)
}

func (s *handlersTestSuite) TestUpdate() {
	s.customerSvcMock.On("Update", mock.Anything, model.CustomerChange{
		Code:      "123456",
		Name:      "Samir Mammadov oğlu",
		ChangedBy: "crm",
		Segment:   "SEG01",
	}).Return(nil).Once()

	body := `{"customerCode":"123456","name":"Samir Mammadov oğlu","changedBy":"crm","segment":"SEG01"}`
	rec, c := s.jsonRequest(http.MethodPatch, "/api/crm/customer/update", body)

	s.Require().NoError(s.customerHandler.Update(c))
	s.Assert().Equal(http.StatusOK, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal("Customer updated successfully", env.Message)
	s.Assert().Equal("123456", env.Data, "updated customer code must be echoed back")
}

func (s *handlersTestSuite) TestUpdateFailure() {
	s.customerSvcMock.On("Update", mock.Anything, mock.AnythingOfType("model.CustomerChange")).
		Return(errors.New("no rows affected after updating account 123456")).Once()

	rec, c := s.jsonRequest(http.MethodPatch, "/api/crm/customer/update", `{"customerCode":"123456"}`)

	s.Require().NoError(s.customerHandler.Update(c))
	s.Assert().Equal(http.StatusInternalServerError, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal("An error occurred while updating the customer", env.Message)
	s.Assert().Equal("no rows affected after updating account 123456", env.Data)
}

func (s *handlersTestSuite) TestDocumentDataRequiresKey() {
	rec, c := s.jsonRequest(http.MethodGet, "/api/crm/document/data", "")

	s.Require().NoError(s.documentHandler.Data(c))
	s.Assert().Equal(http.StatusBadRequest, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal("Document type & number is required", env.Message)
	s.documentSvcMock.AssertNotCalled(s.T(), "DocumentData", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlersTestSuite) TestDocumentData() {
	doc := model.Document{
		Header: model.Row{
			{Column: "document_type", Value: "INV"},
			{Column: "document_number", Value: "000123"},
			{Column: "note", Value: nil},
		},
		Items: []model.Row{
			{{Column: "line", Value: 1}},
		},
	}
	s.documentSvcMock.On("DocumentData", mock.Anything, "INV000123", true).Return(doc, nil).Once()

	rec, c := s.jsonRequest(http.MethodGet, "/api/crm/document/data?documentTypeNumber=INV000123&useTestEnvironment=true", "")

	s.Require().NoError(s.documentHandler.Data(c))
	s.Assert().Equal(http.StatusOK, rec.Code)

	env := s.decode(rec)
	data, ok := env.Data.(map[string]any)
	s.Require().True(ok)

	header, ok := data["header"].(map[string]any)
	s.Require().True(ok)
	s.Assert().Equal("INV", header["document_type"])
	s.Assert().Nil(header["note"], "SQL NULL must come through as JSON null")

	s.Assert().Contains(rec.Body.String(), `"document_type":"INV","document_number":"000123"`,
		"column order must be preserved")
}

func (s *handlersTestSuite) TestAging() {
	reports := []model.AgingReport{
		{CustomerCode: "100001", CustomerName: "Samir Mammadov oğlu", Manager: "M01"},
		{CustomerCode: "100002"},
	}
	s.reportSvcMock.On("AgingReports", mock.Anything).Return(reports, nil).Once()

	rec, c := s.jsonRequest(http.MethodGet, "/api/crm/report/aging", "")

	s.Require().NoError(s.reportHandler.Aging(c))
	s.Assert().Equal(http.StatusOK, rec.Code)

	env := s.decode(rec)
	rows, ok := env.Data.([]any)
	s.Require().True(ok)
	s.Require().Len(rows, 2)

	first, ok := rows[0].(map[string]any)
	s.Require().True(ok)
	s.Assert().Equal("100001", first["customerCode"])

	second, ok := rows[1].(map[string]any)
	s.Require().True(ok)
	s.Assert().Equal("", second["customerName"], "unmatched joins yield empty strings")
}

func (s *handlersTestSuite) TestAgingFailure() {
	s.reportSvcMock.On("AgingReports", mock.Anything).Return(nil, errors.New("dwh unavailable")).Once()

	rec, c := s.jsonRequest(http.MethodGet, "/api/crm/report/aging", "")

	s.Require().NoError(s.reportHandler.Aging(c))
	s.Assert().Equal(http.StatusInternalServerError, rec.Code)

	env := s.decode(rec)
	s.Assert().Equal("An error occurred while retrieving aging report", env.Message)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
