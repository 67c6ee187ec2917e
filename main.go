package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/erp-crm/internal/audit"
	"github.com/umalmyha/erp-crm/internal/config"
	"github.com/umalmyha/erp-crm/internal/infra"
	"github.com/umalmyha/erp-crm/internal/repository"

	_ "github.com/umalmyha/erp-crm/docs"
)

const defaultShutdownTimeout = 10 * time.Second
const defaultDatabaseConnectTimeout = 5 * time.Second

// @title       ERP CRM API
// @version     1.0
// @description Thin HTTP facade over the ERP database: customer balances, sales documents, aging reports and customer maintenance
func main() {
	cfg, err := config.Build()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultDatabaseConnectTimeout)
	defer cancel()

	pools, err := connectToDbs(ctx, cfg.ConnectionsCfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		pools.ErpProd.Close()
		pools.ErpTest.Close()
		pools.Dwh.Close()
		pools.Logs.Close()
	}()

	auditLog := audit.New(cfg.AppName, repository.NewPostgresAppLogRepository(pools.Logs))

	start(infra.Router(pools, auditLog, cfg.TestMode), cfg.Port)
}

func connectToDbs(ctx context.Context, cfg config.ConnectionsCfg) (infra.Pools, error) {
	var pools infra.Pools

	connect := func(name, dsn string) (*pgxpool.Pool, error) {
		pool, err := infra.Postgresql(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return pool, nil
	}

	var err error
	if pools.ErpProd, err = connect("erp production", cfg.ErpProdDSN); err != nil {
		return pools, err
	}
	if pools.ErpTest, err = connect("erp test", cfg.ErpTestDSN); err != nil {
		return pools, err
	}
	if pools.Dwh, err = connect("data warehouse", cfg.DwhDSN); err != nil {
		return pools, err
	}
	if pools.Logs, err = connect("logging sink", cfg.LogsDSN); err != nil {
		return pools, err
	}
	return pools, nil
}

func start(app *echo.Echo, port int) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		app.Logger.Infof("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			app.Logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
