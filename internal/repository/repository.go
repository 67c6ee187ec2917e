// Package repository executes parameterized SQL against the ERP, DWH and
// logging databases. Every operation is a single unit of work; parameters are
// always bound, never concatenated.
package repository

import sq "github.com/Masterminds/squirrel"

// Fixed tenant partition this API operates against. The ERP hosts multiple
// clients and companies; this service is scoped to a single one.
const (
	tenantClient  = "00"
	tenantCompany = "CMP1"
)

// psql builds statements with Postgres placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
