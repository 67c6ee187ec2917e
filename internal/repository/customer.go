package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/umalmyha/erp-crm/internal/audit"
	"github.com/umalmyha/erp-crm/internal/model"
	"github.com/umalmyha/erp-crm/pkg/db/transactor"
)

// CustomerRepository reads and mutates ERP customer master data
type CustomerRepository interface {
	Balance(ctx context.Context, customerCode string) (decimal.Decimal, error)
	Exists(ctx context.Context, customerCode string) (bool, error)
	Create(ctx context.Context, c model.NewCustomer, group model.CustomerGroup) (string, error)
	Update(ctx context.Context, c model.CustomerChange) error
}

type postgresCustomerRepository struct {
	// erp is the environment-selected pool (test or production), fixed at
	// construction time. balances always targets production - receivable
	// figures are meaningless against the test copy.
	erp      transactor.PgxExecutorProvider
	balances *pgxpool.Pool
	trx      transactor.Transactor
	auditLog *audit.Logger
}

// NewPostgresCustomerRepository builds CustomerRepository over the
// environment-selected ERP pool and the production pool for balance reads
func NewPostgresCustomerRepository(erp *pgxpool.Pool, prod *pgxpool.Pool, auditLog *audit.Logger) CustomerRepository {
	return &postgresCustomerRepository{
		erp:      transactor.NewPgxExecutorProvider(erp),
		balances: prod,
		trx:      transactor.NewPgxTransactor(erp),
		auditLog: auditLog,
	}
}

// Balance sums signed posted amounts of receivable/payable transactions as of
// now. Direction 0 adds, anything else subtracts. No matching rows is a zero
// balance, not an error.
func (r *postgresCustomerRepository) Balance(ctx context.Context, customerCode string) (decimal.Decimal, error) {
	q := `SELECT COALESCE(SUM(posted_amount * (CASE direction WHEN 0 THEN 1 ELSE -1 END)), 0) AS balance
			FROM finance_transactions
			WHERE client = '00'
				AND company = 'CMP1'
				AND is_deleted = 0
				AND account_type IN ('C', 'V')
				AND gl_account LIKE '211%'
				AND posting_date <= CURRENT_TIMESTAMP
				AND account_code = $1`

	var balance decimal.Decimal
	if err := r.balances.QueryRow(ctx, q, customerCode).Scan(&balance); err != nil {
		r.auditLog.Error("CustomerRepository.Balance", "an error occurred while getting customer balance", err)
		return decimal.Zero, err
	}
	return balance, nil
}

// Exists reports whether a non-deleted customer with the code is present
// under the fixed tenant scope
func (r *postgresCustomerRepository) Exists(ctx context.Context, customerCode string) (bool, error) {
	q, args, err := psql.Select("COUNT(*)").
		From("customer").
		Where(sq.Eq{
			"client":        tenantClient,
			"company":       tenantCompany,
			"customer_code": customerCode,
			"is_deleted":    0,
		}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.erp.Executor(ctx).QueryRow(ctx, q, args...).Scan(&count); err != nil {
		r.auditLog.Error("CustomerRepository.Exists", "an error occurred while checking if customer exists", err)
		return false, err
	}
	return count > 0, nil
}

// Create invokes the ERP stored procedure and returns the code it assigned
// to the new customer
func (r *postgresCustomerRepository) Create(ctx context.Context, c model.NewCustomer, group model.CustomerGroup) (string, error) {
	q := "SELECT create_customer_erp($1, $2, $3, $4, $5, $6)"

	var createdCode string
	err := r.erp.Executor(ctx).
		QueryRow(ctx, q, c.Name, c.CreatedBy, c.Manager, c.Segment, c.MobileNumber, string(group)).
		Scan(&createdCode)
	if err != nil {
		r.auditLog.Error("CustomerRepository.Create", "an error occurred while creating the customer", err)
		return "", err
	}

	r.auditLog.Info("CustomerRepository.Create", fmt.Sprintf("successfully created customer %s", createdCode))
	return createdCode, nil
}

// Update rewrites the customer master record and the denormalized account
// name in one transaction. Either statement affecting zero rows fails the
// whole operation and rolls the first statement back.
func (r *postgresCustomerRepository) Update(ctx context.Context, c model.CustomerChange) error {
	err := r.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		ex := r.erp.Executor(ctx)

		q, args, err := psql.Update("customer").
			Set("customer_name", c.Name).
			Set("sal_dept", c.Manager).
			Set("branch", c.Segment).
			Set("tel_num", c.MobileNumber).
			Set("changed_by", c.ChangedBy).
			Set("changed_at", sq.Expr("CURRENT_TIMESTAMP")).
			Where(sq.Eq{"customer_code": c.Code}).
			ToSql()
		if err != nil {
			return err
		}

		tag, err := ex.Exec(ctx, q, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("no rows affected after updating customer %s", c.Code)
		}

		q, args, err = psql.Update("account_names").
			Set("short_description", c.Name).
			Set("changed_by", c.ChangedBy).
			Set("changed_at", sq.Expr("CURRENT_TIMESTAMP")).
			Where(sq.Eq{"account_code": c.Code}).
			ToSql()
		if err != nil {
			return err
		}

		tag, err = ex.Exec(ctx, q, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("no rows affected after updating account %s", c.Code)
		}
		return nil
	})
	if err != nil {
		r.auditLog.Error("CustomerRepository.Update", "an error occurred while updating the customer", err)
		return err
	}

	r.auditLog.Info("CustomerRepository.Update", fmt.Sprintf("successfully updated customer %s", c.Code))
	return nil
}
