package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/erp-crm/internal/model"
)

// AppLogRepository appends entries to the application log table. It is the
// only repository without audit logging - the audit logger writes through it.
type AppLogRepository interface {
	Insert(ctx context.Context, entry model.AppLog) error
}

type postgresAppLogRepository struct {
	logs *pgxpool.Pool
}

// NewPostgresAppLogRepository builds AppLogRepository over the logging sink pool
func NewPostgresAppLogRepository(logs *pgxpool.Pool) AppLogRepository {
	return &postgresAppLogRepository{logs: logs}
}

func (r *postgresAppLogRepository) Insert(ctx context.Context, entry model.AppLog) error {
	q := `INSERT INTO app_log (app_name, log_level, logger, message, exception, stack_trace, machine_name, request_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.logs.Exec(ctx, q,
		entry.AppName,
		entry.Level,
		entry.Logger,
		entry.Message,
		entry.Exception,
		entry.StackTrace,
		entry.MachineName,
		entry.RequestID,
		entry.CreatedAt,
	)
	return err
}
