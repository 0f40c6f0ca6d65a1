package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/torre9/condominio/internal/condominio/types"
)

type Storage struct {
	Apartments interface {
		List(ctx context.Context) ([]Apartment, error)
		Count(ctx context.Context) (int, error)
	}

	Expenses interface {
		List(ctx context.Context, period string) ([]Expense, error)
	}

	Dues interface {
		List(ctx context.Context) ([]DueDetail, error)
	}

	SpecialFees interface {
		List(ctx context.Context) ([]SpecialFeeDetail, error)
	}

	Reserve interface {
		List(ctx context.Context) ([]ReserveMovement, error)
		Balance(ctx context.Context) (ReserveBalance, error)
	}

	Notices interface {
		List(ctx context.Context, code string) ([]PaymentNotice, error)
		Insert(ctx context.Context, notice *PaymentNotice) error
	}

	Summary interface {
		Aliquot(ctx context.Context, period string) (MonthlyAliquot, error)
		Monthly(ctx context.Context, period string) (MonthlySummary, error)
	}

	Schema interface {
		Apply(ctx context.Context, script string) error
		Status(ctx context.Context, tables []string) ([]TableStatus, error)
	}

	Seed interface {
		Apply(ctx context.Context, payload *types.SeedPayload, report *types.SeedReport) error
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Apartments:  &ApartmentStore{db: db},
		Expenses:    &ExpenseStore{db: db},
		Dues:        &DueStore{db: db},
		SpecialFees: &SpecialFeeStore{db: db},
		Reserve:     &ReserveStore{db: db},
		Notices:     &NoticeStore{db: db},
		Summary:     &SummaryStore{db: db},
		Schema:      &SchemaStore{db: db},
		Seed:        &SeedStore{db: db},
	}
}
