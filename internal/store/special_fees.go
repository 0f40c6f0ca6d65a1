package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type SpecialFeeStore struct {
	db *sqlx.DB
}

func (sf *SpecialFeeStore) List(ctx context.Context) ([]SpecialFeeDetail, error) {
	query := `
	SELECT
		ce.id,
		ce.apartamento_id,
		ce.descripcion,
		ce.monto_usd,
		a.codigo
	FROM
		cuotas_especiales ce
	JOIN
		apartamentos a ON a.id = ce.apartamento_id
	ORDER BY
		a.codigo, ce.descripcion;
	`

	var fees []SpecialFeeDetail
	if err := sf.db.SelectContext(ctx, &fees, query); err != nil {
		return nil, fmt.Errorf("failed to query special fees: %w", err)
	}

	return fees, nil
}
