package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/simulation"
)

const createSimulationsTable = `
CREATE TABLE IF NOT EXISTS simulations (
	id                   BIGSERIAL PRIMARY KEY,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
	age                  INTEGER NOT NULL,
	has_spouse           BOOLEAN NOT NULL,
	own_income           DOUBLE PRECISION NOT NULL,
	spouse_income        DOUBLE PRECISION NOT NULL,
	wish_monthly_payment DOUBLE PRECISION NOT NULL,
	wish_payment_years   INTEGER NOT NULL,
	max_loan_amount      DOUBLE PRECISION NOT NULL,
	wish_loan_amount     DOUBLE PRECISION NOT NULL,
	total_budget         DOUBLE PRECISION NOT NULL,
	building_budget      DOUBLE PRECISION NOT NULL,
	estimated_tsubo      DOUBLE PRECISION NOT NULL,
	exceeds_max_loan     BOOLEAN NOT NULL,
	exceeds_max_term     BOOLEAN NOT NULL
)`

const insertSimulation = `
INSERT INTO simulations (
	age, has_spouse, own_income, spouse_income,
	wish_monthly_payment, wish_payment_years,
	max_loan_amount, wish_loan_amount, total_budget, building_budget,
	estimated_tsubo, exceeds_max_loan, exceeds_max_term
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// PostgresRepository is a SimulationRepository backed by PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository opens a connection pool for the given DSN. The
// connection is verified lazily; call EnsureSchema before first use.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	return &PostgresRepository{db: db}, nil
}

// EnsureSchema creates the simulations table if it does not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSimulationsTable); err != nil {
		return fmt.Errorf("failed to ensure simulations schema: %w", err)
	}
	return nil
}

// Save inserts the selected numeric fields of a completed simulation.
func (r *PostgresRepository) Save(ctx context.Context, input simulation.Input, result simulation.Result) error {
	_, err := r.db.ExecContext(ctx, insertSimulation,
		input.Age,
		input.HasSpouse,
		input.OwnIncome,
		input.SpouseIncome,
		input.WishMonthlyPayment,
		input.WishPaymentYears,
		result.MaxLoanAmount,
		result.WishLoanAmount,
		result.TotalBudget,
		result.BuildingBudget,
		result.EstimatedTsubo,
		result.Warnings.ExceedsMaxLoan,
		result.Warnings.ExceedsMaxTerm,
	)
	if err != nil {
		return fmt.Errorf("failed to save simulation record: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
