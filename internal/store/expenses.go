package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ExpenseStore struct {
	db *sqlx.DB
}

// List returns the line-item expenses of one period, or every period when
// period is empty.
func (es *ExpenseStore) List(ctx context.Context, period string) ([]Expense, error) {
	query := `SELECT id, mes_anio, concepto, monto_usd, monto_bs FROM gastos`
	args := []any{}

	if period != "" {
		query += ` WHERE mes_anio = ?`
		args = append(args, period)
	}
	query += ` ORDER BY mes_anio, id`

	var expenses []Expense
	if err := es.db.SelectContext(ctx, &expenses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}

	return expenses, nil
}
