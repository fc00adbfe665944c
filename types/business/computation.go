package business

import "time"

// SlabContribution records how one progressive slab contributed to the
// normal tax figure, for the per-slab breakdown on the computation
// response.
type SlabContribution struct {
	Min          float64 `json:"min_amount"`
	Max          float64 `json:"max_amount"`
	Rate         float64 `json:"tax_rate"`
	IncomeInSlab float64 `json:"income_in_slab"`
	TaxInSlab    float64 `json:"tax_in_slab"`
}

// AppliedLink records one cross-form value flow applied by the
// linker, for the update-links response and the audit log.
type AppliedLink struct {
	Category string  `json:"category"`
	Source   string  `json:"source_field"`
	Value    float64 `json:"value"`
}

// ComputationResult is the ephemeral output of one run of the tax
// computation engine. It is created fresh on every invocation and
// never persisted by the engine; callers may snapshot it. Every money
// field is non-negative except ExemptIncome, which is a subtraction
// term by convention.
type ComputationResult struct {
	ReturnID string `json:"return_id"`
	TaxYear  string `json:"tax_year"`

	// Stage 1: income aggregation
	GrossIncome                       float64 `json:"gross_income"`
	ExemptIncome                      float64 `json:"exempt_income"`
	AllowableDeductions               float64 `json:"allowable_deductions"`
	CapitalGain                       float64 `json:"capital_gain"`
	TotalIncome                       float64 `json:"total_income"`
	TaxableIncome                     float64 `json:"taxable_income"`
	TaxableIncomeExcludingCapitalGain float64 `json:"taxable_income_excluding_capital_gain"`

	// Stages 2-3: progressive tax and surcharge
	NormalTax        float64            `json:"normal_income_tax"`
	Surcharge        float64            `json:"surcharge"`
	EffectiveTaxRate float64            `json:"effective_tax_rate"`
	MarginalTaxRate  float64            `json:"marginal_tax_rate"`
	SlabBreakdown    []SlabContribution `json:"slab_breakdown"`

	// Stage 4: combine and net
	CapitalGainsTax           float64 `json:"capital_gains_tax"`
	FinalTax                  float64 `json:"final_tax"`
	TotalTaxBeforeAdjustments float64 `json:"total_tax_before_adjustments"`
	TaxReductions             float64 `json:"tax_reductions"`
	TaxCredits                float64 `json:"tax_credits"`
	TaxAfterReductions        float64 `json:"tax_after_reductions"`
	TaxAfterCredits           float64 `json:"tax_after_credits"`

	// Stage 5: reconciliation
	TotalTaxChargeable float64 `json:"total_tax_chargeable"`
	WithholdingTaxPaid float64 `json:"withholding_tax_paid"`
	TaxDemanded        float64 `json:"tax_demanded"`
	RefundDue          float64 `json:"refund_due"`

	CalculatedAt time.Time `json:"calculated_at"`
}
