package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// Querier is the persistence seam the services depend on. Form getters
// return (nil, nil) when no record exists: every form except income is
// optional and absence is an ordinary state, not an error.
type Querier interface {
	GetIncomeForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.IncomeForm, error)
	UpsertIncomeForm(ctx context.Context, form *business.IncomeForm) (*business.IncomeForm, error)

	GetAdjustableTaxForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.AdjustableTaxForm, error)
	UpsertAdjustableTaxForm(ctx context.Context, form *business.AdjustableTaxForm) (*business.AdjustableTaxForm, error)

	GetCapitalGainForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.CapitalGainForm, error)
	UpsertCapitalGainForm(ctx context.Context, form *business.CapitalGainForm) (*business.CapitalGainForm, error)

	GetReductionsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.ReductionsForm, error)
	UpsertReductionsForm(ctx context.Context, form *business.ReductionsForm) (*business.ReductionsForm, error)

	GetCreditsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.CreditsForm, error)
	UpsertCreditsForm(ctx context.Context, form *business.CreditsForm) (*business.CreditsForm, error)

	GetDeductionsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.DeductionsForm, error)
	UpsertDeductionsForm(ctx context.Context, form *business.DeductionsForm) (*business.DeductionsForm, error)

	GetFinalTaxForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.FinalTaxForm, error)
	UpsertFinalTaxForm(ctx context.Context, form *business.FinalTaxForm) (*business.FinalTaxForm, error)

	GetWealthStatement(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.WealthStatement, error)
	UpsertWealthStatement(ctx context.Context, form *business.WealthStatement) (*business.WealthStatement, error)

	// GetFormBundle reads every form record of the return inside a
	// single read-consistent transaction so callers always see a
	// coherent snapshot.
	GetFormBundle(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.FormBundle, error)

	ListRateRows(ctx context.Context, taxYear string) ([]business.RateRow, error)
	UpdateRateRow(ctx context.Context, arg UpdateRateRowParams) (*business.RateRow, error)
}

// UpdateRateRowParams identifies one rate row and its replacement
// rate. Used by the admin rate-maintenance endpoint.
type UpdateRateRowParams struct {
	TaxYear     string
	FilerStatus string
	RateType    string
	Category    string
	NewRate     float64
}

// DBTX matches the subset of pgx that Queries needs, so the same code
// runs against a pool or an open transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Queries is the pgx-backed implementation of Querier.
type Queries struct {
	db   DBTX
	pool *pgxpool.Pool
}

// New creates a Queries bound to the connection pool. The pool is kept
// so GetFormBundle can open its own read-only snapshot transaction.
func New(pool *pgxpool.Pool) *Queries {
	return &Queries{db: pool, pool: pool}
}

// WithTx returns a Queries bound to an open transaction. Bundle reads
// on the returned value reuse that transaction instead of opening a
// new one.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}
