package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/torre9/condominio/internal/condominio/types"
)

// ErrDuplicateUnit aborts the whole run: two roster rows claiming the same
// apartment code mean the source workbook is wrong, not one of the rows.
var ErrDuplicateUnit = errors.New("duplicate apartment code")

type SeedStore struct {
	db *sqlx.DB
}

// Apply loads one SeedPayload inside a single transaction, in the fixed
// order apartments, expenses, dues, special fees, reserve — later steps
// resolve apartment codes against the ids created by the first. Any fatal
// error rolls everything back; dangling references are skipped and counted
// in the report.
func (s *SeedStore) Apply(ctx context.Context, payload *types.SeedPayload, report *types.SeedReport) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	ids, err := insertApartments(ctx, tx, payload.Apartments, report)
	if err != nil {
		return err
	}
	if err := insertExpenses(ctx, tx, payload.Expenses, report); err != nil {
		return err
	}
	if err := insertDues(ctx, tx, payload.Dues, ids, report); err != nil {
		return err
	}
	if err := insertSpecialFees(ctx, tx, payload.SpecialFees, ids, report); err != nil {
		return err
	}
	if err := insertReserve(ctx, tx, payload.Reserve, report); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func insertApartments(ctx context.Context, tx *sqlx.Tx, apartments []types.Apartment, report *types.SeedReport) (map[string]int64, error) {
	ids := make(map[string]int64, len(apartments))

	for _, a := range apartments {
		if _, exists := ids[a.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUnit, a.Code)
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO apartamentos (codigo, propietario) VALUES (?, ?)`, a.Code, a.Owner)
		if err != nil {
			return nil, fmt.Errorf("failed to insert apartment %s: %w", a.Code, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read id of apartment %s: %w", a.Code, err)
		}
		ids[a.Code] = id
		report.Apartments++
	}

	return ids, nil
}

func insertExpenses(ctx context.Context, tx *sqlx.Tx, expenses []types.ExpenseLine, report *types.SeedReport) error {
	query := `INSERT INTO gastos (mes_anio, concepto, monto_usd, monto_bs)
	          VALUES (?, ?, ?, ?)`

	for _, e := range expenses {
		if _, err := tx.ExecContext(ctx, query, e.Period, e.Concept, e.AmountUSD, e.AmountBs); err != nil {
			return fmt.Errorf("failed to insert expense %q: %w", e.Concept, err)
		}
		report.Expenses++
	}
	return nil
}

func insertDues(ctx context.Context, tx *sqlx.Tx, dues []types.DueLine, ids map[string]int64, report *types.SeedReport) error {
	query := `INSERT INTO cobranzas (apartamento_id, mes_anio, alicuota_usd, monto_pagado_usd)
	          VALUES (?, ?, ?, 0)`

	for _, d := range dues {
		id, ok := ids[d.Code]
		if !ok {
			report.AddDangling("cobranzas", d.Code)
			continue
		}
		if _, err := tx.ExecContext(ctx, query, id, d.Period, d.AssessedUSD); err != nil {
			return fmt.Errorf("failed to insert due for %s: %w", d.Code, err)
		}
		report.Dues++
	}
	return nil
}

func insertSpecialFees(ctx context.Context, tx *sqlx.Tx, fees []types.SpecialFeeLine, ids map[string]int64, report *types.SeedReport) error {
	query := `INSERT INTO cuotas_especiales (apartamento_id, descripcion, monto_usd)
	          VALUES (?, ?, ?)`

	for _, f := range fees {
		id, ok := ids[f.Code]
		if !ok {
			report.AddDangling("cuotas_especiales", f.Code)
			continue
		}
		if _, err := tx.ExecContext(ctx, query, id, f.Description, f.AmountUSD); err != nil {
			return fmt.Errorf("failed to insert special fee for %s: %w", f.Code, err)
		}
		report.SpecialFees++
	}
	return nil
}

func insertReserve(ctx context.Context, tx *sqlx.Tx, movements []types.ReserveLine, report *types.SeedReport) error {
	query := `INSERT INTO reserva (descripcion, tipo, monto_usd, monto_bs)
	          VALUES (?, ?, ?, ?)`

	for _, m := range movements {
		if _, err := tx.ExecContext(ctx, query, m.Description, m.Direction, m.AmountUSD, m.AmountBs); err != nil {
			return fmt.Errorf("failed to insert reserve movement %q: %w", m.Description, err)
		}
		report.Reserve++
	}
	return nil
}
