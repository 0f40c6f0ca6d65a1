package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNoUnits signals an aliquot request against a store with an empty
// roster: the per-unit share is undefined, not zero.
var ErrNoUnits = errors.New("no apartments registered")

type SummaryStore struct {
	db *sqlx.DB
}

// Aliquot reads vista_alicuotas for one period. The view is never
// materialized, so the result always reflects the current apartments and
// expenses. A period with no expense rows yields zero totals.
func (ss *SummaryStore) Aliquot(ctx context.Context, period string) (MonthlyAliquot, error) {
	count, err := ss.apartmentCount(ctx)
	if err != nil {
		return MonthlyAliquot{}, err
	}
	if count == 0 {
		return MonthlyAliquot{}, ErrNoUnits
	}

	aliquot := MonthlyAliquot{Period: period, ApartmentUnit: count}
	query := `SELECT total_gastos_usd, alicuota_por_apto FROM vista_alicuotas WHERE mes_anio = ?`

	err = ss.db.QueryRowxContext(ctx, query, period).Scan(&aliquot.TotalUSD, &aliquot.PerApartment)
	if errors.Is(err, sql.ErrNoRows) {
		return aliquot, nil
	}
	if err != nil {
		return MonthlyAliquot{}, fmt.Errorf("failed to query aliquot view: %w", err)
	}

	return aliquot, nil
}

// Monthly builds the dashboard summary for one period. An empty period
// resolves to the most recent one with expenses.
func (ss *SummaryStore) Monthly(ctx context.Context, period string) (MonthlySummary, error) {
	if period == "" {
		if err := ss.db.GetContext(ctx, &period,
			`SELECT COALESCE(MAX(mes_anio), '') FROM gastos`); err != nil {
			return MonthlySummary{}, fmt.Errorf("failed to resolve latest period: %w", err)
		}
	}

	query := `
	SELECT
		COALESCE((SELECT SUM(monto_usd) FROM gastos WHERE mes_anio = ?), 0) AS total_gastos_usd,
		COALESCE((SELECT SUM(monto_bs) FROM gastos WHERE mes_anio = ?), 0) AS total_gastos_bs,
		(SELECT COUNT(*) FROM apartamentos) AS num_apartamentos,
		COALESCE((SELECT SUM(alicuota_usd - monto_pagado_usd) FROM cobranzas), 0) AS total_por_cobrar_usd,
		COALESCE((SELECT SUM(CASE WHEN tipo = 'ENTRADA' THEN monto_usd ELSE -monto_usd END) FROM reserva), 0) AS saldo_reserva_usd,
		COALESCE((SELECT SUM(CASE WHEN tipo = 'ENTRADA' THEN monto_bs ELSE -monto_bs END) FROM reserva), 0) AS saldo_reserva_bs;
	`

	summary := MonthlySummary{Period: period}
	err := ss.db.QueryRowxContext(ctx, query, period, period).Scan(
		&summary.TotalUSD,
		&summary.TotalBs,
		&summary.Apartments,
		&summary.ReceivableUSD,
		&summary.ReserveUSD,
		&summary.ReserveBs,
	)
	if err != nil {
		return MonthlySummary{}, fmt.Errorf("failed to query monthly summary: %w", err)
	}

	if summary.Apartments > 0 {
		summary.PerApartment = summary.TotalUSD / float64(summary.Apartments)
	}

	return summary, nil
}

func (ss *SummaryStore) apartmentCount(ctx context.Context) (int, error) {
	var count int
	if err := ss.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM apartamentos`); err != nil {
		return 0, fmt.Errorf("failed to count apartments: %w", err)
	}
	return count, nil
}
