// Package responses holds response envelope shapes returned by the
// HTTP handlers.
package responses

import (
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// TaxComputationSummary is the condensed view of a computation for
// listing and dashboard callers.
type TaxComputationSummary struct {
	ReturnID           string  `json:"return_id"`
	TaxYear            string  `json:"tax_year"`
	TaxableIncome      float64 `json:"taxable_income"`
	NormalTax          float64 `json:"normal_income_tax"`
	Surcharge          float64 `json:"surcharge"`
	CapitalGainsTax    float64 `json:"capital_gains_tax"`
	FinalTax           float64 `json:"final_tax"`
	TotalTaxChargeable float64 `json:"total_tax_chargeable"`
	WithholdingTaxPaid float64 `json:"withholding_tax_paid"`
	TaxDemanded        float64 `json:"tax_demanded"`
	RefundDue          float64 `json:"refund_due"`
	EffectiveTaxRate   float64 `json:"effective_tax_rate"`
	MarginalTaxRate    float64 `json:"marginal_tax_rate"`
}

// NewTaxComputationSummary condenses a full computation result.
func NewTaxComputationSummary(result *business.ComputationResult) TaxComputationSummary {
	return TaxComputationSummary{
		ReturnID:           result.ReturnID,
		TaxYear:            result.TaxYear,
		TaxableIncome:      result.TaxableIncome,
		NormalTax:          result.NormalTax,
		Surcharge:          result.Surcharge,
		CapitalGainsTax:    result.CapitalGainsTax,
		FinalTax:           result.FinalTax,
		TotalTaxChargeable: result.TotalTaxChargeable,
		WithholdingTaxPaid: result.WithholdingTaxPaid,
		TaxDemanded:        result.TaxDemanded,
		RefundDue:          result.RefundDue,
		EffectiveTaxRate:   result.EffectiveTaxRate,
		MarginalTaxRate:    result.MarginalTaxRate,
	}
}

// CompleteTaxSummary bundles every stored form with the condensed
// computation so one call serves the cross-form overview screen.
type CompleteTaxSummary struct {
	Forms       *business.FormBundle  `json:"forms"`
	Computation TaxComputationSummary `json:"computation"`
}

// AdjustableTaxDataResponse returns the adjustable-tax form with links
// applied and the per-category tax collected at source.
type AdjustableTaxDataResponse struct {
	Form    *business.AdjustableTaxForm    `json:"form"`
	Derived *business.AdjustableTaxDerived `json:"derived"`
}

// UpdateLinksResponse reports the links materialized into the stored
// adjustable-tax form.
type UpdateLinksResponse struct {
	AdjustableTax *business.AdjustableTaxForm `json:"adjustable_tax"`
	AppliedLinks  []business.AppliedLink      `json:"applied_links"`
}

// IncomeFormResponse returns the stored income form together with its
// recomputed derived fields.
type IncomeFormResponse struct {
	Form    *business.IncomeForm    `json:"form"`
	Derived *business.IncomeDerived `json:"derived"`
}

// RateTableResponse exposes a resolved rate table.
type RateTableResponse struct {
	RateTable *business.RateTable `json:"rate_table"`
}
