package services

import (
	"math"

	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/constants"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/helpers"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// CalculationService derives the calculated fields of each form from
// its stored inputs. Every method is a pure function of its arguments:
// derived fields are recomputed on every read and never treated as
// ground truth.
type CalculationService struct {
	logger *zap.Logger
}

// NewCalculationService creates a new calculation service
func NewCalculationService() *CalculationService {
	return &CalculationService{
		logger: logger.Log,
	}
}

// CalculateIncomeFields derives the annualised income figures. Monthly
// fields annualise at x12, medical allowance is capped at the
// statutory 120,000, and the two exempt fields come out negative so
// the sheet-style running sums subtract them.
func (s *CalculationService) CalculateIncomeFields(form *business.IncomeForm) *business.IncomeDerived {
	d := &business.IncomeDerived{
		AnnualBasicSalary:         helpers.Sanitize(form.MonthlyBasicSalary) * 12,
		AnnualAllowances:          helpers.Sanitize(form.MonthlyAllowances) * 12,
		AnnualHouseRentAllowance:  helpers.Sanitize(form.MonthlyHouseRentAllowance) * 12,
		AnnualConveyanceAllowance: helpers.Sanitize(form.MonthlyConveyanceAllowance) * 12,
	}
	d.AnnualMedicalAllowance = math.Min(
		helpers.Sanitize(form.MonthlyMedicalAllowance)*12,
		constants.MedicalAllowanceCap,
	)

	directorshipFee := helpers.Sanitize(form.DirectorshipFee)
	bonusCommission := helpers.Sanitize(form.BonusCommission)
	retirement := helpers.Sanitize(form.RetirementFromApprovedFunds)
	termination := helpers.Sanitize(form.EmploymentTerminationPayment)

	d.IncomeExemptFromTax = -(d.AnnualMedicalAllowance + termination + retirement)

	d.AnnualSalaryWagesTotal = d.AnnualBasicSalary +
		d.AnnualAllowances +
		d.AnnualHouseRentAllowance +
		d.AnnualConveyanceAllowance +
		d.AnnualMedicalAllowance +
		directorshipFee +
		bonusCommission +
		retirement +
		termination +
		d.IncomeExemptFromTax

	providentFund := helpers.Sanitize(form.EmployerContributionProvidentFund)
	d.NonCashBenefitExempt = -math.Min(providentFund, constants.ProvidentFundCap)
	d.TotalNonCashBenefits = helpers.Sanitize(form.NonCashBenefitsGross) +
		providentFund +
		helpers.Sanitize(form.Gratuity) +
		d.NonCashBenefitExempt

	d.OtherIncomeMinTaxTotal = helpers.Sanitize(form.ProfitOnDebt15) +
		helpers.Sanitize(form.ProfitOnDebt125)
	d.OtherIncomeNoMinTaxTotal = helpers.Sanitize(form.OtherTaxableIncomeRent) +
		helpers.Sanitize(form.OtherTaxableIncomeOthers)

	d.TotalEmploymentIncome = d.AnnualSalaryWagesTotal + d.TotalNonCashBenefits

	s.logger.Debug("Income fields calculated",
		zap.Float64("annual_salary_wages_total", d.AnnualSalaryWagesTotal),
		zap.Float64("total_employment_income", d.TotalEmploymentIncome))

	return d
}

// CalculateAdjustableTaxFields derives the per-category tax collected
// at source from the gross receipts and the year's withholding rates.
// The salary category carries the employer-deducted amount from the
// income form rather than a rate product, since employers withhold
// against the progressive schedule, not a flat rate. A category with
// no configured rate contributes zero.
func (s *CalculationService) CalculateAdjustableTaxFields(
	form *business.AdjustableTaxForm,
	salaryTaxDeducted float64,
	rates *business.RateTable,
) *business.AdjustableTaxDerived {
	gross := map[string]float64{
		constants.WithholdingSalary149:        receiptValue(form.SalaryGrossReceipt),
		constants.WithholdingDirectorship1493: receiptValue(form.DirectorshipGrossReceipt),
		constants.WithholdingProfitOnDebt151:  receiptValue(form.ProfitOnDebtGrossReceipt),
		constants.WithholdingSukuk151A:        receiptValue(form.SukukGrossReceipt),
		constants.WithholdingRent155:          receiptValue(form.RentGrossReceipt),
		constants.WithholdingMotorVehicle231B: helpers.Sanitize(form.MotorVehicleGrossReceipt),
		constants.WithholdingElectricity235:   helpers.Sanitize(form.ElectricityGrossReceipt),
		constants.WithholdingCellphone236:     helpers.Sanitize(form.CellphoneGrossReceipt),
	}

	collected := make(map[string]float64, len(gross))
	for category, amount := range gross {
		if category == constants.WithholdingSalary149 {
			collected[category] = helpers.Sanitize(salaryTaxDeducted)
			continue
		}
		collected[category] = helpers.Round2(amount * rates.WithholdingRate(category))
	}

	d := &business.AdjustableTaxDerived{
		TaxCollected:  collected,
		GrossReceipts: gross,
	}
	for _, amount := range gross {
		d.TotalGrossReceipt += amount
	}
	for _, amount := range collected {
		d.TotalTaxCollected += amount
	}
	d.TotalGrossReceipt = helpers.Round2(d.TotalGrossReceipt)
	d.TotalTaxCollected = helpers.Round2(d.TotalTaxCollected)

	return d
}

// CalculateCapitalGainFields derives the per-entry tax due from each
// entry's (asset type, holding bucket, regime) rate. Carry-forward
// losses accumulate separately and never net against gains.
func (s *CalculationService) CalculateCapitalGainFields(
	form *business.CapitalGainForm,
	rates *business.RateTable,
) *business.CapitalGainDerived {
	d := &business.CapitalGainDerived{
		TaxDue: make([]float64, len(form.Entries)),
	}
	for i, entry := range form.Entries {
		gain := helpers.Sanitize(entry.TaxableGain)
		rate := rates.CapitalGainRate(business.CapitalGainKey{
			AssetType:     entry.AssetType,
			HoldingBucket: entry.HoldingBucket,
			Regime:        entry.Regime,
		})
		d.TaxDue[i] = helpers.Round2(gain * rate)
		d.TotalCapitalGain += gain
		d.TotalCapitalGainTax += d.TaxDue[i]
		d.TotalCarryForward += helpers.Sanitize(entry.CarryForward)
	}
	d.TotalCapitalGain = helpers.Round2(d.TotalCapitalGain)
	d.TotalCapitalGainTax = helpers.Round2(d.TotalCapitalGainTax)
	d.TotalCarryForward = helpers.Round2(d.TotalCarryForward)
	return d
}

// ReductionsTotal resolves the form's total tax reductions. Category
// reduction values are transcribed from certificates, so the generated
// candidate is their plain sum.
func (s *CalculationService) ReductionsTotal(form *business.ReductionsForm) float64 {
	generated := helpers.Sanitize(form.TeacherResearcherReduction) +
		helpers.Sanitize(form.BehboodCertificatesReduction) +
		helpers.Sanitize(form.CapitalGainImmovable50) +
		helpers.Sanitize(form.CapitalGainImmovable75)
	return helpers.ResolveTotal(
		helpers.Sanitize(form.ComprehensiveTotal),
		helpers.Round2(generated),
		helpers.Sanitize(form.LegacyTotal),
	)
}

// CalculateCreditsFields derives the per-category tax credits. Each
// claimed amount is capped at its statutory fraction of taxable
// income, then converted to a credit at the filer's average rate of
// tax (normal tax over taxable income). A zero or negative taxable
// income yields zero credits.
func (s *CalculationService) CalculateCreditsFields(
	form *business.CreditsForm,
	taxableIncome, normalTax float64,
) *business.CreditsDerived {
	d := &business.CreditsDerived{}
	if taxableIncome <= 0 {
		return d
	}
	averageRate := normalTax / taxableIncome

	credit := func(amount, capFraction float64) float64 {
		eligible := math.Min(helpers.Sanitize(amount), capFraction*taxableIncome)
		return helpers.Round2(eligible * averageRate)
	}

	d.CharitableDonationsCredit = credit(form.CharitableDonationsAmount, constants.CharitableDonationCapFraction)
	d.AssociateDonationsCredit = credit(form.AssociateDonationsAmount, constants.AssociateDonationCapFraction)
	d.PensionFundCredit = credit(form.PensionFundAmount, constants.PensionFundCapFraction)
	d.SurrenderCredit = helpers.Sanitize(form.SurrenderTaxCreditAmount)

	generated := d.CharitableDonationsCredit +
		d.AssociateDonationsCredit +
		d.PensionFundCredit +
		d.SurrenderCredit
	d.TotalCredits = helpers.ResolveTotal(
		helpers.Sanitize(form.ComprehensiveTotal),
		helpers.Round2(generated),
		helpers.Sanitize(form.LegacyTotal),
	)
	return d
}

// DeductionsTotal resolves the form's total deduction from income.
func (s *CalculationService) DeductionsTotal(form *business.DeductionsForm) float64 {
	generated := helpers.Sanitize(form.EducationalExpensesAmount) +
		helpers.Sanitize(form.ZakatPaidAmount) +
		helpers.Sanitize(form.ProfessionalExpensesAmount)
	return helpers.ResolveTotal(
		helpers.Sanitize(form.ComprehensiveTotal),
		helpers.Round2(generated),
		helpers.Sanitize(form.LegacyTotal),
	)
}

// FinalTaxTotal resolves the total final/fixed tax. The generated
// candidate applies each instrument's own rate to its gross and adds
// the amounts entered directly as tax.
func (s *CalculationService) FinalTaxTotal(form *business.FinalTaxForm) float64 {
	generated := helpers.Round2(helpers.Sanitize(form.SukukBondsGross)*helpers.SanitizeRate(form.SukukBondsRate)) +
		helpers.Round2(helpers.Sanitize(form.DebtSecuritiesGross)*helpers.SanitizeRate(form.DebtSecuritiesRate)) +
		helpers.Sanitize(form.PrizeBondsTaxAmount) +
		helpers.Sanitize(form.OtherFinalTaxAmount)
	return helpers.ResolveTotal(
		helpers.Sanitize(form.ComprehensiveTotal),
		helpers.Round2(generated),
		0,
	)
}

func receiptValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return helpers.Sanitize(*v)
}
