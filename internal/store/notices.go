package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type NoticeStore struct {
	db *sqlx.DB
}

// List returns payment notices, optionally filtered by apartment code.
func (ns *NoticeStore) List(ctx context.Context, code string) ([]PaymentNotice, error) {
	query := `
	SELECT
		id, apartamento_codigo, fecha_pago, monto, monto_bs, tasa_bcv, referencia, estatus
	FROM
		notificaciones_pago`
	args := []any{}

	if code != "" {
		query += ` WHERE apartamento_codigo = ?`
		args = append(args, code)
	}
	query += ` ORDER BY fecha_pago DESC, id DESC`

	var notices []PaymentNotice
	if err := ns.db.SelectContext(ctx, &notices, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query payment notices: %w", err)
	}

	return notices, nil
}

func (ns *NoticeStore) Insert(ctx context.Context, notice *PaymentNotice) error {
	if notice.Status == "" {
		notice.Status = NoticeStatusPending
	}

	query := `INSERT INTO notificaciones_pago (
		apartamento_codigo,
		fecha_pago,
		monto,
		monto_bs,
		tasa_bcv,
		referencia,
		estatus
	) VALUES (
		:apartamento_codigo,
		:fecha_pago,
		:monto,
		:monto_bs,
		:tasa_bcv,
		:referencia,
		:estatus
	)`

	result, err := ns.db.NamedExecContext(ctx, query, notice)
	if err != nil {
		return fmt.Errorf("failed to insert payment notice: %w", err)
	}

	notice.ID, _ = result.LastInsertId()
	return nil
}
