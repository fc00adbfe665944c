package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Filer statuses (ATL = Active Taxpayers List)
	FilerStatusFiler    = "filer"
	FilerStatusNonFiler = "non_filer"

	// Default tax year when the caller does not specify one
	DefaultTaxYear = "2025-26"
)

// Form types owned by a tax return. At most one record per
// (return, form type) pair.
const (
	FormTypeIncome               = "income"
	FormTypeAdjustableTax        = "adjustable_tax"
	FormTypeCapitalGain          = "capital_gain"
	FormTypeReductions           = "reductions"
	FormTypeCredits              = "credits"
	FormTypeDeductions           = "deductions"
	FormTypeFinalTax             = "final_tax"
	FormTypeWealthStatement      = "wealth_statement"
	FormTypeWealthReconciliation = "wealth_reconciliation"
)

// Withholding (adjustable tax) categories. The identifiers carry the
// statutory section numbers from the Income Tax Ordinance so rate rows
// in the database line up with the FBR schedule.
const (
	WithholdingSalary149        = "salary_149"
	WithholdingDirectorship1493 = "directorship_fee_149_3"
	WithholdingProfitOnDebt151  = "profit_debt_15"
	WithholdingSukuk151A        = "sukook_12_5"
	WithholdingRent155          = "rent_section_155"
	WithholdingMotorVehicle231B = "motor_vehicle_transfer"
	WithholdingElectricity235   = "electricity_domestic"
	WithholdingCellphone236     = "cellphone_bill"
)

// Statutory exemption caps, in rupees.
const (
	MedicalAllowanceCap = 120000.0
	ProvidentFundCap    = 150000.0
)

// Statutory caps on credit-eligible amounts, expressed as a fraction of
// taxable income.
const (
	CharitableDonationCapFraction = 0.30
	AssociateDonationCapFraction  = 0.15
	PensionFundCapFraction        = 0.20
)
