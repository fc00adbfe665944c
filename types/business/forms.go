package business

import (
	"time"

	"github.com/google/uuid"
)

// FilerStatus is the taxpayer's Active Taxpayers List classification.
// It selects the applicable progressive slabs and withholding /
// capital-gains rates for a tax year.
type FilerStatus string

const (
	Filer    FilerStatus = "filer"
	NonFiler FilerStatus = "non_filer"
)

// IncomeForm holds the taxpayer-entered fields of the income form.
// Monthly fields are entered per month; the calculation service derives
// the annualised figures. All amounts are rupees.
type IncomeForm struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	MonthlyBasicSalary         float64 `json:"monthly_basic_salary"`
	MonthlyAllowances          float64 `json:"monthly_allowances"`
	MonthlyHouseRentAllowance  float64 `json:"monthly_house_rent_allowance"`
	MonthlyConveyanceAllowance float64 `json:"monthly_conveyance_allowance"`
	MonthlyMedicalAllowance    float64 `json:"monthly_medical_allowance"`

	DirectorshipFee              float64 `json:"directorship_fee"`
	BonusCommission              float64 `json:"bonus_commission"`
	RetirementFromApprovedFunds  float64 `json:"retirement_from_approved_funds"`
	EmploymentTerminationPayment float64 `json:"employment_termination_payment"`

	NonCashBenefitsGross              float64 `json:"noncash_benefits_gross"`
	EmployerContributionProvidentFund float64 `json:"employer_contribution_provident_fund"`
	Gratuity                          float64 `json:"gratuity"`

	ProfitOnDebt15  float64 `json:"profit_on_debt_15_percent"`
	ProfitOnDebt125 float64 `json:"profit_on_debt_12_5_percent"`

	OtherTaxableIncomeRent   float64 `json:"other_taxable_income_rent"`
	OtherTaxableIncomeOthers float64 `json:"other_taxable_income_others"`

	// Tax withheld by the employer against salary, carried into the
	// reconciliation stage alongside the adjustable-tax collections.
	SalaryTaxDeducted float64 `json:"salary_tax_deducted"`

	UpdatedAt time.Time `json:"updated_at"`
}

// IncomeDerived is the derived-field set of the income form. Every
// field is a pure function of IncomeForm and is recomputed on each
// read, never stored as ground truth. The two exempt fields are the
// only signed values in the model: they are subtraction terms and are
// always <= 0.
type IncomeDerived struct {
	AnnualBasicSalary         float64 `json:"annual_basic_salary"`
	AnnualAllowances          float64 `json:"annual_allowances"`
	AnnualHouseRentAllowance  float64 `json:"annual_house_rent_allowance"`
	AnnualConveyanceAllowance float64 `json:"annual_conveyance_allowance"`
	AnnualMedicalAllowance    float64 `json:"annual_medical_allowance"`
	IncomeExemptFromTax       float64 `json:"income_exempt_from_tax"`
	AnnualSalaryWagesTotal    float64 `json:"annual_salary_wages_total"`
	NonCashBenefitExempt      float64 `json:"non_cash_benefit_exempt"`
	TotalNonCashBenefits      float64 `json:"total_non_cash_benefits"`
	OtherIncomeMinTaxTotal    float64 `json:"other_income_min_tax_total"`
	OtherIncomeNoMinTaxTotal  float64 `json:"other_income_no_min_tax_total"`
	TotalEmploymentIncome     float64 `json:"total_employment_income"`
}

// AdjustableTaxForm holds the per-category gross receipts on which tax
// was collected at source. The five linkable receipts are pointers:
// nil means the taxpayer never entered the field, so the cross-form
// linker may fill it from the income form. An explicit entry, zero
// included, always wins over a linked value.
type AdjustableTaxForm struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	SalaryGrossReceipt       *float64 `json:"salary_employees_149_gross_receipt,omitempty"`
	DirectorshipGrossReceipt *float64 `json:"directorship_fee_149_3_gross_receipt,omitempty"`
	ProfitOnDebtGrossReceipt *float64 `json:"profit_debt_15_percent_gross_receipt,omitempty"`
	SukukGrossReceipt        *float64 `json:"sukook_12_5_percent_gross_receipt,omitempty"`
	RentGrossReceipt         *float64 `json:"rent_section_155_gross_receipt,omitempty"`
	MotorVehicleGrossReceipt float64  `json:"motor_vehicle_transfer_gross_receipt"`
	ElectricityGrossReceipt  float64  `json:"electricity_domestic_gross_receipt"`
	CellphoneGrossReceipt    float64  `json:"cellphone_bill_gross_receipt"`

	UpdatedAt time.Time `json:"updated_at"`
}

// AdjustableTaxDerived carries the per-category tax collected at source
// plus the form totals.
type AdjustableTaxDerived struct {
	TaxCollected      map[string]float64 `json:"tax_collected"`
	GrossReceipts     map[string]float64 `json:"gross_receipts"`
	TotalGrossReceipt float64            `json:"total_gross_receipt"`
	TotalTaxCollected float64            `json:"total_tax_collected"`
}

// CapitalGainEntry is one disposals line of the capital-gain form,
// keyed by asset type, holding-period bucket and acquisition-date
// regime. CarryForward records unrecovered losses for future years and
// is never netted against other categories.
type CapitalGainEntry struct {
	AssetType     string  `json:"asset_type"`
	HoldingBucket string  `json:"holding_bucket"`
	Regime        string  `json:"regime"`
	TaxableGain   float64 `json:"taxable_gain"`
	CarryForward  float64 `json:"carry_forward"`
}

// CapitalGainForm holds the taxpayer-entered capital gain lines.
type CapitalGainForm struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	Entries []CapitalGainEntry `json:"entries"`

	UpdatedAt time.Time `json:"updated_at"`
}

// CapitalGainDerived carries the per-entry tax due and the form totals.
type CapitalGainDerived struct {
	TaxDue              []float64 `json:"tax_due"`
	TotalCapitalGain    float64   `json:"total_capital_gain"`
	TotalCapitalGainTax float64   `json:"total_capital_gain_tax"`
	TotalCarryForward   float64   `json:"total_carry_forward"`
}

// ReductionsForm holds tax reduction claims. Category reduction values
// are taxpayer-entered (the statute prescribes certificate-specific
// figures the preparer transcribes). ComprehensiveTotal and
// LegacyTotal feed the priority fallback used to resolve the form
// total.
type ReductionsForm struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	TeacherResearcherAmount      float64 `json:"teacher_researcher_amount"`
	TeacherResearcherReduction   float64 `json:"teacher_researcher_tax_reduction"`
	BehboodCertificatesAmount    float64 `json:"behbood_certificates_amount"`
	BehboodCertificatesReduction float64 `json:"behbood_certificates_tax_reduction"`
	CapitalGainImmovable50       float64 `json:"capital_gain_immovable_50_reduction"`
	CapitalGainImmovable75       float64 `json:"capital_gain_immovable_75_reduction"`

	ComprehensiveTotal float64 `json:"total_tax_reductions"`
	LegacyTotal        float64 `json:"legacy_total_reductions"`

	UpdatedAt time.Time `json:"updated_at"`
}

// CreditsForm holds tax credit claims. Amounts are taxpayer-entered;
// the per-category credits are derived against taxable income and the
// statutory caps.
type CreditsForm struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	CharitableDonationsAmount float64 `json:"charitable_donations_amount"`
	AssociateDonationsAmount  float64 `json:"charitable_donations_associate_amount"`
	PensionFundAmount         float64 `json:"pension_fund_amount"`
	SurrenderTaxCreditAmount  float64 `json:"surrender_tax_credit_amount"`

	ComprehensiveTotal float64 `json:"total_tax_credits"`
	LegacyTotal        float64 `json:"legacy_total_credits"`

	UpdatedAt time.Time `json:"updated_at"`
}

// CreditsDerived carries the per-category credits computed from the
// claimed amounts, the statutory caps, and the filer's average rate of
// tax.
type CreditsDerived struct {
	CharitableDonationsCredit float64 `json:"charitable_donations_tax_credit"`
	AssociateDonationsCredit  float64 `json:"charitable_donations_associate_tax_credit"`
	PensionFundCredit         float64 `json:"pension_fund_tax_credit"`
	SurrenderCredit           float64 `json:"surrender_tax_credit"`
	TotalCredits              float64 `json:"total_credits"`
}

// DeductionsForm holds deductible allowances that reduce taxable
// income before the progressive computation.
type DeductionsForm struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	EducationalExpensesAmount  float64 `json:"educational_expenses_amount"`
	ZakatPaidAmount            float64 `json:"zakat_paid_amount"`
	ProfessionalExpensesAmount float64 `json:"professional_expenses_amount"`

	ComprehensiveTotal float64 `json:"total_deduction_from_income"`
	LegacyTotal        float64 `json:"legacy_total_deductions"`

	UpdatedAt time.Time `json:"updated_at"`
}

// FinalTaxForm holds income taxed under the final/fixed regime. These
// amounts never enter the progressive computation; their tax is added
// after normal tax and surcharge.
type FinalTaxForm struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	SukukBondsGross     float64 `json:"sukuk_bonds_gross_amount"`
	SukukBondsRate      float64 `json:"sukuk_bonds_tax_rate"`
	DebtSecuritiesGross float64 `json:"debt_securities_gross_amount"`
	DebtSecuritiesRate  float64 `json:"debt_securities_tax_rate"`
	PrizeBondsTaxAmount float64 `json:"prize_bonds_tax_amount"`
	OtherFinalTaxAmount float64 `json:"other_final_tax_tax_amount"`

	ComprehensiveTotal float64 `json:"total_final_tax"`

	UpdatedAt time.Time `json:"updated_at"`
}

// FormBundle is a consistent snapshot of every form record of one
// return for one tax year. Income is mandatory for a computation; the
// rest default to zero contributions when absent. The persistence
// layer assembles the bundle inside a single read-consistent
// transaction so the engine never observes a torn snapshot.
type FormBundle struct {
	ReturnID uuid.UUID `json:"return_id"`
	TaxYear  string    `json:"tax_year"`

	Income        *IncomeForm        `json:"income,omitempty"`
	AdjustableTax *AdjustableTaxForm `json:"adjustable_tax,omitempty"`
	CapitalGain   *CapitalGainForm   `json:"capital_gain,omitempty"`
	Reductions    *ReductionsForm    `json:"reductions,omitempty"`
	Credits       *CreditsForm       `json:"credits,omitempty"`
	Deductions    *DeductionsForm    `json:"deductions,omitempty"`
	FinalTax      *FinalTaxForm      `json:"final_tax,omitempty"`
	Wealth        *WealthStatement   `json:"wealth_statement,omitempty"`
}
