package infra

import (
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/umalmyha/erp-crm/internal/audit"
	"github.com/umalmyha/erp-crm/internal/handlers"
	"github.com/umalmyha/erp-crm/internal/repository"
	"github.com/umalmyha/erp-crm/internal/service"
)

// Pools groups the named database pools this API talks to
type Pools struct {
	ErpProd *pgxpool.Pool
	ErpTest *pgxpool.Pool
	Dwh     *pgxpool.Pool
	Logs    *pgxpool.Pool
}

// Router wires repositories, services and handlers into the echo application.
// testMode fixes the ERP environment for existence checks and writes; the
// document lookup keeps choosing per request.
func Router(pools Pools, auditLog *audit.Logger, testMode bool) *echo.Echo {
	e := echo.New()

	erp := pools.ErpProd
	if testMode {
		erp = pools.ErpTest
	}

	// Repositories
	customerRps := repository.NewPostgresCustomerRepository(erp, pools.ErpProd, auditLog)
	referenceRps := repository.NewPostgresReferenceRepository(erp, auditLog)
	documentRps := repository.NewPostgresDocumentRepository(pools.ErpProd, pools.ErpTest, auditLog)
	agingRps := repository.NewPostgresAgingReportRepository(pools.Dwh, auditLog)

	// Services
	customerSvc := service.NewCustomerService(customerRps, referenceRps)
	documentSvc := service.NewDocumentService(documentRps)
	reportSvc := service.NewReportService(agingRps)

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)
	documentHandler := handlers.NewDocumentHTTPHandler(documentSvc)
	reportHandler := handlers.NewReportHTTPHandler(reportSvc)

	// API routes
	crm := e.Group("/api/crm")

	crm.GET("/customer/balance/:customerCode", customerHandler.Balance)
	crm.POST("/customer/create", customerHandler.Create)
	crm.PATCH("/customer/update", customerHandler.Update)
	crm.GET("/document/data", documentHandler.Data)
	crm.GET("/report/aging", reportHandler.Aging)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
