package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/erp-crm/internal/model"
	"github.com/umalmyha/erp-crm/internal/service"
	"github.com/umalmyha/erp-crm/internal/validation"
)

const customerCodeLength = 6

type createCustomer struct {
	Name         string `json:"name"`
	CreatedBy    string `json:"createdBy"`
	Manager      string `json:"manager"`
	Segment      string `json:"segment"`
	MobileNumber string `json:"mobileNumber"`
	IsCompany    bool   `json:"isCompany"`
}

type updateCustomer struct {
	CustomerCode string `json:"customerCode"`
	Name         string `json:"name"`
	ChangedBy    string `json:"changedBy"`
	Manager      string `json:"manager"`
	Segment      string `json:"segment"`
	MobileNumber string `json:"mobileNumber"`
}

// CustomerHTTPHandler is http handler for customer endpoints
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Balance gets customer balance
// @Summary     Get customer balance
// @Description Returns signed receivable/payable balance of the customer as of now
// @Tags        customers
// @Produce     json
// @Param       customerCode path     string true "6-digit customer code"
// @Success     200          {object} handlers.APIResponse
// @Failure     400          {object} handlers.APIResponse
// @Failure     500          {object} handlers.APIResponse
// @Router      /api/crm/customer/balance/{customerCode} [get]
func (h *CustomerHTTPHandler) Balance(c echo.Context) error {
	code := c.Param("customerCode")
	if !isCustomerCode(code) {
		return c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, "Invalid customer code", nil))
	}

	balance, err := h.customerSvc.Balance(c.Request().Context(), code)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response(http.StatusInternalServerError, "An error occurred while getting the customer's balance", nil))
	}
	return c.JSON(http.StatusOK, response(http.StatusOK, "OK", balance))
}

// Create creates new ERP customer
// @Summary     Create customer
// @Description Validates the request and creates customer through the ERP stored procedure
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       createCustomer body     createCustomer true "New customer data"
// @Success     201            {object} handlers.APIResponse
// @Failure     400            {object} handlers.APIResponse
// @Failure     500            {object} handlers.APIResponse
// @Router      /api/crm/customer/create [post]
func (h *CustomerHTTPHandler) Create(c echo.Context) error {
	var cc createCustomer
	if err := c.Bind(&cc); err != nil {
		return c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, err.Error(), nil))
	}

	createdCode, err := h.customerSvc.Create(c.Request().Context(), model.NewCustomer{
		Name:         cc.Name,
		CreatedBy:    cc.CreatedBy,
		Manager:      cc.Manager,
		Segment:      cc.Segment,
		MobileNumber: cc.MobileNumber,
		IsCompany:    cc.IsCompany,
	})
	if err != nil {
		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			return c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, "Validation failed", pldErr.Messages()))
		}
		return c.JSON(http.StatusInternalServerError, response(http.StatusInternalServerError, "An error occurred while creating the customer", err.Error()))
	}

	return c.JSON(http.StatusCreated, response(http.StatusCreated, "Customer created successfully", createdCode))
}

// Update updates existing ERP customer
// @Summary     Update customer
// @Description Validates the request and rewrites customer master record and account name
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       updateCustomer body     updateCustomer true "Customer data"
// @Success     200            {object} handlers.APIResponse
// @Failure     400            {object} handlers.APIResponse
// @Failure     500            {object} handlers.APIResponse
// @Router      /api/crm/customer/update [patch]
func (h *CustomerHTTPHandler) Update(c echo.Context) error {
	var uc updateCustomer
	if err := c.Bind(&uc); err != nil {
		return c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, err.Error(), nil))
	}

	err := h.customerSvc.Update(c.Request().Context(), model.CustomerChange{
		Code:         uc.CustomerCode,
		Name:         uc.Name,
		ChangedBy:    uc.ChangedBy,
		Manager:      uc.Manager,
		Segment:      uc.Segment,
		MobileNumber: uc.MobileNumber,
	})
	if err != nil {
		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			return c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, "Validation failed", pldErr.Messages()))
		}
		return c.JSON(http.StatusInternalServerError, response(http.StatusInternalServerError, "An error occurred while updating the customer", err.Error()))
	}

	return c.JSON(http.StatusOK, response(http.StatusOK, "Customer updated successfully", uc.CustomerCode))
}

// DocumentHTTPHandler is http handler for sales document endpoints
type DocumentHTTPHandler struct {
	documentSvc service.DocumentService
}

// NewDocumentHTTPHandler builds new DocumentHTTPHandler
func NewDocumentHTTPHandler(documentSvc service.DocumentService) *DocumentHTTPHandler {
	return &DocumentHTTPHandler{documentSvc: documentSvc}
}

// Data gets sales document data
// @Summary     Get document data
// @Description Returns header and item rows of a sales document, columns projected dynamically
// @Tags        documents
// @Produce     json
// @Param       documentTypeNumber query    string true  "Concatenated document type and number"
// @Param       useTestEnvironment query    bool   false "Read from the test ERP instead of production"
// @Success     200                {object} handlers.APIResponse
// @Failure     400                {object} handlers.APIResponse
// @Failure     500                {object} handlers.APIResponse
// @Router      /api/crm/document/data [get]
func (h *DocumentHTTPHandler) Data(c echo.Context) error {
	documentTypeNumber := c.QueryParam("documentTypeNumber")
	if documentTypeNumber == "" {
		return c.JSON(http.StatusBadRequest, response(http.StatusBadRequest, "Document type & number is required", nil))
	}

	useTestEnvironment, _ := strconv.ParseBool(c.QueryParam("useTestEnvironment"))

	doc, err := h.documentSvc.DocumentData(c.Request().Context(), documentTypeNumber, useTestEnvironment)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response(http.StatusInternalServerError, "An error occurred while retrieving document data", nil))
	}
	return c.JSON(http.StatusOK, response(http.StatusOK, "OK", doc))
}

// ReportHTTPHandler is http handler for report endpoints
type ReportHTTPHandler struct {
	reportSvc service.ReportService
}

// NewReportHTTPHandler builds new ReportHTTPHandler
func NewReportHTTPHandler(reportSvc service.ReportService) *ReportHTTPHandler {
	return &ReportHTTPHandler{reportSvc: reportSvc}
}

// Aging gets receivables aging report
// @Summary     Get aging report
// @Description Returns receivables bucketed by day ranges since due date, ordered by account code
// @Tags        reports
// @Produce     json
// @Success     200 {object} handlers.APIResponse
// @Failure     500 {object} handlers.APIResponse
// @Router      /api/crm/report/aging [get]
func (h *ReportHTTPHandler) Aging(c echo.Context) error {
	reports, err := h.reportSvc.AgingReports(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response(http.StatusInternalServerError, "An error occurred while retrieving aging report", nil))
	}
	return c.JSON(http.StatusOK, response(http.StatusOK, "OK", reports))
}

func isCustomerCode(code string) bool {
	if len(code) != customerCodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
