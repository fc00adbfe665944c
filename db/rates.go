package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

const listRateRows = `
SELECT tax_year, filer_status, rate_type, rate_category,
       tax_rate, fixed_amount, min_amount, max_amount, description
FROM tax_rates_config
WHERE tax_year = $1
ORDER BY filer_status, rate_type, min_amount, rate_category
`

// ListRateRows returns every persisted rate row for a tax year, both
// filer statuses included. An unconfigured year returns an empty
// slice, not an error; the rate service falls back to its embedded
// defaults in that case.
func (q *Queries) ListRateRows(ctx context.Context, taxYear string) ([]business.RateRow, error) {
	rows, err := q.db.Query(ctx, listRateRows, taxYear)
	if err != nil {
		return nil, errors.Wrap(err, "list rate rows")
	}
	defer rows.Close()

	var out []business.RateRow
	for rows.Next() {
		var r business.RateRow
		if err := rows.Scan(
			&r.TaxYear, &r.FilerStatus, &r.RateType, &r.Category,
			&r.Rate, &r.FixedAmount, &r.MinAmount, &r.MaxAmount, &r.Description,
		); err != nil {
			return nil, errors.Wrap(err, "scan rate row")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate rate rows")
	}
	return out, nil
}

const updateRateRow = `
UPDATE tax_rates_config
SET tax_rate = $5, updated_at = CURRENT_TIMESTAMP
WHERE tax_year = $1 AND filer_status = $2 AND rate_type = $3 AND rate_category = $4
RETURNING tax_year, filer_status, rate_type, rate_category,
          tax_rate, fixed_amount, min_amount, max_amount, description
`

// UpdateRateRow replaces the rate of one configured row. A row that
// does not exist returns (nil, nil) so the handler can answer 404
// without inspecting error text.
func (q *Queries) UpdateRateRow(ctx context.Context, arg UpdateRateRowParams) (*business.RateRow, error) {
	var r business.RateRow
	err := q.db.QueryRow(ctx, updateRateRow,
		arg.TaxYear, arg.FilerStatus, arg.RateType, arg.Category, arg.NewRate,
	).Scan(
		&r.TaxYear, &r.FilerStatus, &r.RateType, &r.Category,
		&r.Rate, &r.FixedAmount, &r.MinAmount, &r.MaxAmount, &r.Description,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "update rate row")
	}
	return &r, nil
}
