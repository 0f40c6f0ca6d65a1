package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ReserveStore struct {
	db *sqlx.DB
}

func (rs *ReserveStore) List(ctx context.Context) ([]ReserveMovement, error) {
	query := `SELECT id, descripcion, tipo, monto_usd, monto_bs FROM reserva ORDER BY id`

	var movements []ReserveMovement
	if err := rs.db.SelectContext(ctx, &movements, query); err != nil {
		return nil, fmt.Errorf("failed to query reserve ledger: %w", err)
	}

	return movements, nil
}

// Balance is the ledger sum: inflows minus outflows, per currency.
func (rs *ReserveStore) Balance(ctx context.Context) (ReserveBalance, error) {
	query := `
	SELECT
		COALESCE(SUM(CASE WHEN tipo = 'ENTRADA' THEN monto_usd ELSE -monto_usd END), 0) AS saldo_usd,
		COALESCE(SUM(CASE WHEN tipo = 'ENTRADA' THEN monto_bs ELSE -monto_bs END), 0) AS saldo_bs
	FROM
		reserva;
	`

	var balance ReserveBalance
	if err := rs.db.GetContext(ctx, &balance, query); err != nil {
		return ReserveBalance{}, fmt.Errorf("failed to compute reserve balance: %w", err)
	}

	return balance, nil
}
