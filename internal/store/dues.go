package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type DueStore struct {
	db *sqlx.DB
}

// List returns every due joined with its apartment, with the outstanding
// balance computed at query time.
func (ds *DueStore) List(ctx context.Context) ([]DueDetail, error) {
	query := `
	SELECT
		c.id,
		c.apartamento_id,
		c.mes_anio,
		c.alicuota_usd,
		c.monto_pagado_usd,
		a.codigo,
		a.propietario,
		(c.alicuota_usd - c.monto_pagado_usd) AS deuda_usd
	FROM
		cobranzas c
	JOIN
		apartamentos a ON a.id = c.apartamento_id
	ORDER BY
		c.mes_anio, a.codigo;
	`

	var dues []DueDetail
	if err := ds.db.SelectContext(ctx, &dues, query); err != nil {
		return nil, fmt.Errorf("failed to query dues: %w", err)
	}

	return dues, nil
}
