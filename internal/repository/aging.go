package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/erp-crm/internal/audit"
	"github.com/umalmyha/erp-crm/internal/model"
)

// AgingReportRepository reads the receivables aging snapshot from DWH
type AgingReportRepository interface {
	ListAll(ctx context.Context) ([]model.AgingReport, error)
}

type postgresAgingReportRepository struct {
	dwh      *pgxpool.Pool
	auditLog *audit.Logger
}

// NewPostgresAgingReportRepository builds AgingReportRepository over the
// data warehouse pool
func NewPostgresAgingReportRepository(dwh *pgxpool.Pool, auditLog *audit.Logger) AgingReportRepository {
	return &postgresAgingReportRepository{dwh: dwh, auditLog: auditLog}
}

// ListAll returns every aging row ordered by account code ascending.
// Accounts without a matching master name or customer manager yield empty
// strings, not errors.
func (r *postgresAgingReportRepository) ListAll(ctx context.Context) ([]model.AgingReport, error) {
	q := `SELECT
				a.account AS customer_code,
				COALESCE(m.definition, '') AS customer_name,
				COALESCE(c.back_manager, '') AS manager,
				a.current_balance,
				a.days_0_30,
				a.days_31_60,
				a.days_61_90,
				a.days_91_120,
				a.days_121_150,
				a.days_151_180,
				a.days_181_210,
				a.days_211_240,
				a.days_241_270,
				a.days_271_300,
				a.days_301_330,
				a.days_331_360,
				a.days_360_plus
			FROM accounts_aging a
			LEFT JOIN master_account m
				ON a.account = m.account
			LEFT JOIN master_customer c
				ON a.account = c.code
			ORDER BY a.account`

	rows, err := r.dwh.Query(ctx, q)
	if err != nil {
		r.auditLog.Error("AgingReportRepository.ListAll", "an error occurred while getting all aging reports", err)
		return nil, err
	}
	defer rows.Close()

	reports := make([]model.AgingReport, 0)
	for rows.Next() {
		var rep model.AgingReport
		err := rows.Scan(
			&rep.CustomerCode,
			&rep.CustomerName,
			&rep.Manager,
			&rep.CurrentBalance,
			&rep.Days0To30,
			&rep.Days31To60,
			&rep.Days61To90,
			&rep.Days91To120,
			&rep.Days121To150,
			&rep.Days151To180,
			&rep.Days181To210,
			&rep.Days211To240,
			&rep.Days241To270,
			&rep.Days271To300,
			&rep.Days301To330,
			&rep.Days331To360,
			&rep.Days360Plus,
		)
		if err != nil {
			r.auditLog.Error("AgingReportRepository.ListAll", "an error occurred while getting all aging reports", err)
			return nil, err
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		r.auditLog.Error("AgingReportRepository.ListAll", "an error occurred while getting all aging reports", err)
		return nil, err
	}
	return reports, nil
}
