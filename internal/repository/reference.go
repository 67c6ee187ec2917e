package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/erp-crm/internal/audit"
)

// ReferenceRepository checks manager and segment codes against the ERP
// reference tables
type ReferenceRepository interface {
	ManagerExists(ctx context.Context, managerCode string) (bool, error)
	SegmentExists(ctx context.Context, segmentCode string) (bool, error)
}

type postgresReferenceRepository struct {
	erp      *pgxpool.Pool
	auditLog *audit.Logger
}

// NewPostgresReferenceRepository builds ReferenceRepository over the
// environment-selected ERP pool
func NewPostgresReferenceRepository(erp *pgxpool.Pool, auditLog *audit.Logger) ReferenceRepository {
	return &postgresReferenceRepository{erp: erp, auditLog: auditLog}
}

func (r *postgresReferenceRepository) ManagerExists(ctx context.Context, managerCode string) (bool, error) {
	found, err := r.exists(ctx, "manager_list", "manager_code", managerCode)
	if err != nil {
		r.auditLog.Error("ReferenceRepository.ManagerExists", "an error occurred while checking if manager exists", err)
		return false, err
	}
	return found, nil
}

func (r *postgresReferenceRepository) SegmentExists(ctx context.Context, segmentCode string) (bool, error) {
	found, err := r.exists(ctx, "segment_list", "segment_code", segmentCode)
	if err != nil {
		r.auditLog.Error("ReferenceRepository.SegmentExists", "an error occurred while checking if segment exists", err)
		return false, err
	}
	return found, nil
}

func (r *postgresReferenceRepository) exists(ctx context.Context, table, column, code string) (bool, error) {
	q, args, err := psql.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{
			"client":  tenantClient,
			"company": tenantCompany,
			column:    code,
		}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.erp.QueryRow(ctx, q, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
