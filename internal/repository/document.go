package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/erp-crm/internal/audit"
	"github.com/umalmyha/erp-crm/internal/model"
)

// DocumentRepository reads sales document data keyed by the concatenated
// document type + number
type DocumentRepository interface {
	DocumentData(ctx context.Context, documentTypeNumber string, useTestEnvironment bool) (model.Document, error)
}

type postgresDocumentRepository struct {
	// document lookups choose the environment per request, unlike every
	// other operation, so the repository holds both pools
	prod     *pgxpool.Pool
	test     *pgxpool.Pool
	auditLog *audit.Logger
}

// NewPostgresDocumentRepository builds DocumentRepository over production and
// test ERP pools
func NewPostgresDocumentRepository(prod, test *pgxpool.Pool, auditLog *audit.Logger) DocumentRepository {
	return &postgresDocumentRepository{prod: prod, test: test, auditLog: auditLog}
}

// DocumentData selects one header row and zero or more item rows. Columns
// are projected dynamically in result order, so schema changes on the ERP
// side surface without code changes here.
func (r *postgresDocumentRepository) DocumentData(ctx context.Context, documentTypeNumber string, useTestEnvironment bool) (model.Document, error) {
	pool := r.prod
	if useTestEnvironment {
		pool = r.test
	}

	doc := model.Document{Items: make([]model.Row, 0)}

	qHead := `SELECT * FROM sales_head
				WHERE client = '00'
					AND company = 'CMP1'
					AND is_deleted = 0
					AND document_type || document_number = $1`

	headRows, err := pool.Query(ctx, qHead, documentTypeNumber)
	if err != nil {
		r.auditLog.Error("DocumentRepository.DocumentData", "an error occurred while retrieving document data", err)
		return doc, err
	}

	header, err := projectRows(headRows)
	if err != nil {
		r.auditLog.Error("DocumentRepository.DocumentData", "an error occurred while retrieving document data", err)
		return doc, err
	}
	if len(header) > 0 {
		doc.Header = header[0]
	} else {
		doc.Header = model.Row{}
	}

	qItem := `SELECT * FROM sales_item
				WHERE client = '00'
					AND company = 'CMP1'
					AND is_deleted = 0
					AND document_type || document_number = $1`

	itemRows, err := pool.Query(ctx, qItem, documentTypeNumber)
	if err != nil {
		r.auditLog.Error("DocumentRepository.DocumentData", "an error occurred while retrieving document data", err)
		return doc, err
	}

	items, err := projectRows(itemRows)
	if err != nil {
		r.auditLog.Error("DocumentRepository.DocumentData", "an error occurred while retrieving document data", err)
		return doc, err
	}
	doc.Items = items

	return doc, nil
}

// projectRows maps every result row to an ordered column name/value
// projection. SQL NULL comes through as nil for any column type.
func projectRows(rows pgx.Rows) ([]model.Row, error) {
	defer rows.Close()

	projected := make([]model.Row, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		row := make(model.Row, 0, len(values))
		for i, fd := range rows.FieldDescriptions() {
			row = append(row, model.Field{Column: string(fd.Name), Value: values[i]})
		}
		projected = append(projected, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projected, nil
}
