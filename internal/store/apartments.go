package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ApartmentStore struct {
	db *sqlx.DB
}

func (as *ApartmentStore) List(ctx context.Context) ([]Apartment, error) {
	query := `SELECT id, codigo, propietario FROM apartamentos ORDER BY codigo`

	var apartments []Apartment
	if err := as.db.SelectContext(ctx, &apartments, query); err != nil {
		return nil, fmt.Errorf("failed to query apartments: %w", err)
	}

	return apartments, nil
}

func (as *ApartmentStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := as.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM apartamentos`); err != nil {
		return 0, fmt.Errorf("failed to count apartments: %w", err)
	}
	return count, nil
}
