package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DefaultSchema is the schema script shipped with the binaries. A deployment
// can point the seeder at an external script instead; either way the script
// is applied verbatim, in one shot, on a fresh store only.
//
//go:embed esquema.sql
var DefaultSchema string

// ExpectedTables lists every table a healthy store must contain.
var ExpectedTables = []string{
	"apartamentos",
	"gastos",
	"cobranzas",
	"cuotas_especiales",
	"reserva",
	"notificaciones_pago",
}

type SchemaStore struct {
	db *sqlx.DB
}

func (ss *SchemaStore) Apply(ctx context.Context, script string) error {
	if _, err := ss.db.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("failed to apply schema script: %w", err)
	}
	return nil
}

// Status reports, per table, whether it exists and how many rows it holds.
// A missing table is not an error here; the caller decides the verdict.
func (ss *SchemaStore) Status(ctx context.Context, tables []string) ([]TableStatus, error) {
	statuses := make([]TableStatus, 0, len(tables))

	for _, table := range tables {
		var name string
		err := ss.db.GetContext(ctx, &name,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if errors.Is(err, sql.ErrNoRows) {
			statuses = append(statuses, TableStatus{Name: table})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
		}

		var rows int64
		if err := ss.db.GetContext(ctx, &rows, `SELECT COUNT(*) FROM `+table); err != nil {
			return nil, fmt.Errorf("failed to count rows of %s: %w", table, err)
		}
		statuses = append(statuses, TableStatus{Name: table, Exists: true, Rows: rows})
	}

	return statuses, nil
}
