package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/constants"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/helpers"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// FormService owns form reads and writes: strict field validation on
// the way in, optimistic concurrency against updated_at, and derived
// fields recomputed on the way out.
type FormService struct {
	queries db.Querier
	calc    *CalculationService
	logger  *zap.Logger
}

// NewFormService creates a new form service
func NewFormService(queries db.Querier, calc *CalculationService) *FormService {
	return &FormService{
		queries: queries,
		calc:    calc,
		logger:  logger.Log,
	}
}

// checkConflict enforces optimistic concurrency. A zero incoming
// updated_at is a blind write and always allowed; otherwise it must
// match the stored timestamp.
func checkConflict(form string, stored, incoming time.Time) error {
	if incoming.IsZero() || stored.IsZero() {
		return nil
	}
	if !stored.Equal(incoming) {
		return &ConflictError{Form: form}
	}
	return nil
}

// validateAmounts runs strict sanitization over named fields,
// collecting every failure so the caller sees all of them at once.
// Valid values are written back rounded to 2 decimal places.
func validateAmounts(form string, fields map[string]*float64) error {
	var errs []error
	for name, value := range fields {
		v, err := helpers.SanitizeStrict(name, *value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*value = v
	}
	if len(errs) > 0 {
		return &FormValidationErrors{Form: form, Errors: errs}
	}
	return nil
}

// validateRates runs strict rate sanitization over named fields,
// collecting every failure like validateAmounts. Valid rates are kept
// exactly as entered.
func validateRates(form string, fields map[string]*float64) error {
	var errs []error
	for name, value := range fields {
		v, err := helpers.SanitizeRateStrict(name, *value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*value = v
	}
	if len(errs) > 0 {
		return &FormValidationErrors{Form: form, Errors: errs}
	}
	return nil
}

// SaveIncomeForm validates and persists the income form, returning the
// stored record with its derived fields.
func (s *FormService) SaveIncomeForm(ctx context.Context, form *business.IncomeForm) (*business.IncomeForm, *business.IncomeDerived, error) {
	if err := validateAmounts(constants.FormTypeIncome, map[string]*float64{
		"monthly_basic_salary":                 &form.MonthlyBasicSalary,
		"monthly_allowances":                   &form.MonthlyAllowances,
		"monthly_house_rent_allowance":         &form.MonthlyHouseRentAllowance,
		"monthly_conveyance_allowance":         &form.MonthlyConveyanceAllowance,
		"monthly_medical_allowance":            &form.MonthlyMedicalAllowance,
		"directorship_fee":                     &form.DirectorshipFee,
		"bonus_commission":                     &form.BonusCommission,
		"retirement_from_approved_funds":       &form.RetirementFromApprovedFunds,
		"employment_termination_payment":       &form.EmploymentTerminationPayment,
		"noncash_benefits_gross":               &form.NonCashBenefitsGross,
		"employer_contribution_provident_fund": &form.EmployerContributionProvidentFund,
		"gratuity":                             &form.Gratuity,
		"profit_on_debt_15_percent":            &form.ProfitOnDebt15,
		"profit_on_debt_12_5_percent":          &form.ProfitOnDebt125,
		"other_taxable_income_rent":            &form.OtherTaxableIncomeRent,
		"other_taxable_income_others":          &form.OtherTaxableIncomeOthers,
		"salary_tax_deducted":                  &form.SalaryTaxDeducted,
	}); err != nil {
		return nil, nil, err
	}

	stored, err := s.queries.GetIncomeForm(ctx, form.ReturnID, form.TaxYear)
	if err != nil {
		return nil, nil, err
	}
	if stored != nil {
		if err := checkConflict(constants.FormTypeIncome, stored.UpdatedAt, form.UpdatedAt); err != nil {
			return nil, nil, err
		}
	}

	saved, err := s.queries.UpsertIncomeForm(ctx, form)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Income form saved",
		zap.String("return_id", form.ReturnID.String()),
		zap.String("tax_year", form.TaxYear))

	return saved, s.calc.CalculateIncomeFields(saved), nil
}

// GetIncomeForm returns the stored income form with derived fields, or
// (nil, nil, nil) when none exists.
func (s *FormService) GetIncomeForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.IncomeForm, *business.IncomeDerived, error) {
	form, err := s.queries.GetIncomeForm(ctx, returnID, taxYear)
	if err != nil || form == nil {
		return nil, nil, err
	}
	return form, s.calc.CalculateIncomeFields(form), nil
}

// SaveAdjustableTaxForm validates and persists the adjustable-tax
// form. Nil linkable receipts stay nil so the linker can fill them
// later.
func (s *FormService) SaveAdjustableTaxForm(ctx context.Context, form *business.AdjustableTaxForm) (*business.AdjustableTaxForm, error) {
	fields := map[string]*float64{
		"motor_vehicle_transfer_gross_receipt": &form.MotorVehicleGrossReceipt,
		"electricity_domestic_gross_receipt":   &form.ElectricityGrossReceipt,
		"cellphone_bill_gross_receipt":         &form.CellphoneGrossReceipt,
	}
	optional := map[string]*float64{
		"salary_employees_149_gross_receipt":   form.SalaryGrossReceipt,
		"directorship_fee_149_3_gross_receipt": form.DirectorshipGrossReceipt,
		"profit_debt_15_percent_gross_receipt": form.ProfitOnDebtGrossReceipt,
		"sukook_12_5_percent_gross_receipt":    form.SukukGrossReceipt,
		"rent_section_155_gross_receipt":       form.RentGrossReceipt,
	}
	for name, value := range optional {
		if value != nil {
			fields[name] = value
		}
	}
	if err := validateAmounts(constants.FormTypeAdjustableTax, fields); err != nil {
		return nil, err
	}

	stored, err := s.queries.GetAdjustableTaxForm(ctx, form.ReturnID, form.TaxYear)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if err := checkConflict(constants.FormTypeAdjustableTax, stored.UpdatedAt, form.UpdatedAt); err != nil {
			return nil, err
		}
	}

	saved, err := s.queries.UpsertAdjustableTaxForm(ctx, form)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Adjustable tax form saved",
		zap.String("return_id", form.ReturnID.String()),
		zap.String("tax_year", form.TaxYear))

	return saved, nil
}

// SaveCapitalGainForm validates and persists the capital-gain entries.
func (s *FormService) SaveCapitalGainForm(ctx context.Context, form *business.CapitalGainForm) (*business.CapitalGainForm, error) {
	var errs []error
	for i := range form.Entries {
		entry := &form.Entries[i]
		if v, err := helpers.SanitizeStrict("taxable_gain", entry.TaxableGain); err != nil {
			errs = append(errs, err)
		} else {
			entry.TaxableGain = v
		}
		if v, err := helpers.SanitizeStrict("carry_forward", entry.CarryForward); err != nil {
			errs = append(errs, err)
		} else {
			entry.CarryForward = v
		}
	}
	if len(errs) > 0 {
		return nil, &FormValidationErrors{Form: constants.FormTypeCapitalGain, Errors: errs}
	}

	stored, err := s.queries.GetCapitalGainForm(ctx, form.ReturnID, form.TaxYear)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if err := checkConflict(constants.FormTypeCapitalGain, stored.UpdatedAt, form.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return s.queries.UpsertCapitalGainForm(ctx, form)
}

// SaveReductionsForm validates and persists the reductions form.
func (s *FormService) SaveReductionsForm(ctx context.Context, form *business.ReductionsForm) (*business.ReductionsForm, error) {
	if err := validateAmounts(constants.FormTypeReductions, map[string]*float64{
		"teacher_researcher_amount":           &form.TeacherResearcherAmount,
		"teacher_researcher_tax_reduction":    &form.TeacherResearcherReduction,
		"behbood_certificates_amount":         &form.BehboodCertificatesAmount,
		"behbood_certificates_tax_reduction":  &form.BehboodCertificatesReduction,
		"capital_gain_immovable_50_reduction": &form.CapitalGainImmovable50,
		"capital_gain_immovable_75_reduction": &form.CapitalGainImmovable75,
		"total_tax_reductions":                &form.ComprehensiveTotal,
		"legacy_total_reductions":             &form.LegacyTotal,
	}); err != nil {
		return nil, err
	}

	stored, err := s.queries.GetReductionsForm(ctx, form.ReturnID, form.TaxYear)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if err := checkConflict(constants.FormTypeReductions, stored.UpdatedAt, form.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return s.queries.UpsertReductionsForm(ctx, form)
}

// SaveCreditsForm validates and persists the credits form.
func (s *FormService) SaveCreditsForm(ctx context.Context, form *business.CreditsForm) (*business.CreditsForm, error) {
	if err := validateAmounts(constants.FormTypeCredits, map[string]*float64{
		"charitable_donations_amount":           &form.CharitableDonationsAmount,
		"charitable_donations_associate_amount": &form.AssociateDonationsAmount,
		"pension_fund_amount":                   &form.PensionFundAmount,
		"surrender_tax_credit_amount":           &form.SurrenderTaxCreditAmount,
		"total_tax_credits":                     &form.ComprehensiveTotal,
		"legacy_total_credits":                  &form.LegacyTotal,
	}); err != nil {
		return nil, err
	}

	stored, err := s.queries.GetCreditsForm(ctx, form.ReturnID, form.TaxYear)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if err := checkConflict(constants.FormTypeCredits, stored.UpdatedAt, form.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return s.queries.UpsertCreditsForm(ctx, form)
}

// SaveDeductionsForm validates and persists the deductions form.
func (s *FormService) SaveDeductionsForm(ctx context.Context, form *business.DeductionsForm) (*business.DeductionsForm, error) {
	if err := validateAmounts(constants.FormTypeDeductions, map[string]*float64{
		"educational_expenses_amount":  &form.EducationalExpensesAmount,
		"zakat_paid_amount":            &form.ZakatPaidAmount,
		"professional_expenses_amount": &form.ProfessionalExpensesAmount,
		"total_deduction_from_income":  &form.ComprehensiveTotal,
		"legacy_total_deductions":      &form.LegacyTotal,
	}); err != nil {
		return nil, err
	}

	stored, err := s.queries.GetDeductionsForm(ctx, form.ReturnID, form.TaxYear)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if err := checkConflict(constants.FormTypeDeductions, stored.UpdatedAt, form.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return s.queries.UpsertDeductionsForm(ctx, form)
}

// SaveFinalTaxForm validates and persists the final tax form.
func (s *FormService) SaveFinalTaxForm(ctx context.Context, form *business.FinalTaxForm) (*business.FinalTaxForm, error) {
	if err := validateAmounts(constants.FormTypeFinalTax, map[string]*float64{
		"sukuk_bonds_gross_amount":     &form.SukukBondsGross,
		"debt_securities_gross_amount": &form.DebtSecuritiesGross,
		"prize_bonds_tax_amount":       &form.PrizeBondsTaxAmount,
		"other_final_tax_tax_amount":   &form.OtherFinalTaxAmount,
		"total_final_tax":              &form.ComprehensiveTotal,
	}); err != nil {
		return nil, err
	}
	// Rates are fractions, not amounts: they must not be rounded to
	// 2 decimal places or 0.125 persists as 0.13.
	if err := validateRates(constants.FormTypeFinalTax, map[string]*float64{
		"sukuk_bonds_tax_rate":     &form.SukukBondsRate,
		"debt_securities_tax_rate": &form.DebtSecuritiesRate,
	}); err != nil {
		return nil, err
	}

	stored, err := s.queries.GetFinalTaxForm(ctx, form.ReturnID, form.TaxYear)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if err := checkConflict(constants.FormTypeFinalTax, stored.UpdatedAt, form.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return s.queries.UpsertFinalTaxForm(ctx, form)
}

// SaveWealthStatement validates and persists the wealth statement.
// Net-worth fields stay unsigned; liabilities are entered positive.
func (s *FormService) SaveWealthStatement(ctx context.Context, form *business.WealthStatement) (*business.WealthStatement, error) {
	if err := validateAmounts(constants.FormTypeWealthStatement, map[string]*float64{
		"opening_net_worth": &form.OpeningNetWorth,
		"total_assets":      &form.TotalAssets,
		"total_liabilities": &form.TotalLiabilities,
		"personal_expenses": &form.PersonalExpenses,
		"gifts_received":    &form.GiftsReceived,
		"other_inflows":     &form.OtherInflows,
		"other_outflows":    &form.OtherOutflows,
	}); err != nil {
		return nil, err
	}

	stored, err := s.queries.GetWealthStatement(ctx, form.ReturnID, form.TaxYear)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if err := checkConflict(constants.FormTypeWealthStatement, stored.UpdatedAt, form.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return s.queries.UpsertWealthStatement(ctx, form)
}

// GetFormBundle returns the consistent form snapshot for a return.
func (s *FormService) GetFormBundle(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.FormBundle, error) {
	return s.queries.GetFormBundle(ctx, returnID, taxYear)
}

// Per-form reads. Each returns (nil, nil) when the form was never
// saved; derived fields for these forms come from the computation
// endpoints, which need the full bundle and rate table.

func (s *FormService) GetAdjustableTaxForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.AdjustableTaxForm, error) {
	return s.queries.GetAdjustableTaxForm(ctx, returnID, taxYear)
}

func (s *FormService) GetCapitalGainForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.CapitalGainForm, error) {
	return s.queries.GetCapitalGainForm(ctx, returnID, taxYear)
}

func (s *FormService) GetReductionsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.ReductionsForm, error) {
	return s.queries.GetReductionsForm(ctx, returnID, taxYear)
}

func (s *FormService) GetCreditsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.CreditsForm, error) {
	return s.queries.GetCreditsForm(ctx, returnID, taxYear)
}

func (s *FormService) GetDeductionsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.DeductionsForm, error) {
	return s.queries.GetDeductionsForm(ctx, returnID, taxYear)
}

func (s *FormService) GetFinalTaxForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.FinalTaxForm, error) {
	return s.queries.GetFinalTaxForm(ctx, returnID, taxYear)
}

func (s *FormService) GetWealthStatement(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.WealthStatement, error) {
	return s.queries.GetWealthStatement(ctx, returnID, taxYear)
}
