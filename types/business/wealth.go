package business

import (
	"time"

	"github.com/google/uuid"
)

// WealthStatement is the taxpayer's declared asset and liability
// position at the close of the tax year, with the prior year's net
// worth carried as the opening balance.
type WealthStatement struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	OpeningNetWorth  float64 `json:"opening_net_worth"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`

	PersonalExpenses float64 `json:"personal_expenses"`
	GiftsReceived    float64 `json:"gifts_received"`
	OtherInflows     float64 `json:"other_inflows"`
	OtherOutflows    float64 `json:"other_outflows"`

	UpdatedAt time.Time `json:"updated_at"`
}

// ClosingNetWorth is the declared closing position.
func (w *WealthStatement) ClosingNetWorth() float64 {
	return w.TotalAssets - w.TotalLiabilities
}

// WealthReconciliation is the ledger-style check that the declared
// closing net worth is explained by the year's taxed and exempt
// inflows less outflows. A non-zero Unreconciled figure is surfaced to
// the caller, never silently absorbed.
type WealthReconciliation struct {
	OpeningNetWorth  float64 `json:"opening_net_worth"`
	DeclaredIncome   float64 `json:"declared_income"`
	ExemptInflows    float64 `json:"exempt_inflows"`
	OtherInflows     float64 `json:"other_inflows"`
	PersonalExpenses float64 `json:"personal_expenses"`
	TaxesPaid        float64 `json:"taxes_paid"`
	OtherOutflows    float64 `json:"other_outflows"`
	ComputedNetWorth float64 `json:"computed_net_worth"`
	DeclaredNetWorth float64 `json:"declared_net_worth"`
	Unreconciled     float64 `json:"unreconciled"`
	Reconciled       bool    `json:"reconciled"`
}
