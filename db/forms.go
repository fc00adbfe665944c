package db

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

const getIncomeForm = `
SELECT return_id, tax_year,
       monthly_basic_salary, monthly_allowances, monthly_house_rent_allowance,
       monthly_conveyance_allowance, monthly_medical_allowance,
       directorship_fee, bonus_commission, retirement_from_approved_funds,
       employment_termination_payment,
       noncash_benefits_gross, employer_contribution_provident_fund, gratuity,
       profit_on_debt_15_percent, profit_on_debt_12_5_percent,
       other_taxable_income_rent, other_taxable_income_others,
       salary_tax_deducted, updated_at
FROM income_forms
WHERE return_id = $1 AND tax_year = $2
`

func (q *Queries) GetIncomeForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.IncomeForm, error) {
	var f business.IncomeForm
	err := q.db.QueryRow(ctx, getIncomeForm, returnID, taxYear).Scan(
		&f.ReturnID, &f.TaxYear,
		&f.MonthlyBasicSalary, &f.MonthlyAllowances, &f.MonthlyHouseRentAllowance,
		&f.MonthlyConveyanceAllowance, &f.MonthlyMedicalAllowance,
		&f.DirectorshipFee, &f.BonusCommission, &f.RetirementFromApprovedFunds,
		&f.EmploymentTerminationPayment,
		&f.NonCashBenefitsGross, &f.EmployerContributionProvidentFund, &f.Gratuity,
		&f.ProfitOnDebt15, &f.ProfitOnDebt125,
		&f.OtherTaxableIncomeRent, &f.OtherTaxableIncomeOthers,
		&f.SalaryTaxDeducted, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get income form")
	}
	return &f, nil
}

const upsertIncomeForm = `
INSERT INTO income_forms (
    return_id, tax_year,
    monthly_basic_salary, monthly_allowances, monthly_house_rent_allowance,
    monthly_conveyance_allowance, monthly_medical_allowance,
    directorship_fee, bonus_commission, retirement_from_approved_funds,
    employment_termination_payment,
    noncash_benefits_gross, employer_contribution_provident_fund, gratuity,
    profit_on_debt_15_percent, profit_on_debt_12_5_percent,
    other_taxable_income_rent, other_taxable_income_others,
    salary_tax_deducted
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
ON CONFLICT (return_id, tax_year) DO UPDATE SET
    monthly_basic_salary = EXCLUDED.monthly_basic_salary,
    monthly_allowances = EXCLUDED.monthly_allowances,
    monthly_house_rent_allowance = EXCLUDED.monthly_house_rent_allowance,
    monthly_conveyance_allowance = EXCLUDED.monthly_conveyance_allowance,
    monthly_medical_allowance = EXCLUDED.monthly_medical_allowance,
    directorship_fee = EXCLUDED.directorship_fee,
    bonus_commission = EXCLUDED.bonus_commission,
    retirement_from_approved_funds = EXCLUDED.retirement_from_approved_funds,
    employment_termination_payment = EXCLUDED.employment_termination_payment,
    noncash_benefits_gross = EXCLUDED.noncash_benefits_gross,
    employer_contribution_provident_fund = EXCLUDED.employer_contribution_provident_fund,
    gratuity = EXCLUDED.gratuity,
    profit_on_debt_15_percent = EXCLUDED.profit_on_debt_15_percent,
    profit_on_debt_12_5_percent = EXCLUDED.profit_on_debt_12_5_percent,
    other_taxable_income_rent = EXCLUDED.other_taxable_income_rent,
    other_taxable_income_others = EXCLUDED.other_taxable_income_others,
    salary_tax_deducted = EXCLUDED.salary_tax_deducted,
    updated_at = CURRENT_TIMESTAMP
RETURNING updated_at
`

func (q *Queries) UpsertIncomeForm(ctx context.Context, form *business.IncomeForm) (*business.IncomeForm, error) {
	err := q.db.QueryRow(ctx, upsertIncomeForm,
		form.ReturnID, form.TaxYear,
		form.MonthlyBasicSalary, form.MonthlyAllowances, form.MonthlyHouseRentAllowance,
		form.MonthlyConveyanceAllowance, form.MonthlyMedicalAllowance,
		form.DirectorshipFee, form.BonusCommission, form.RetirementFromApprovedFunds,
		form.EmploymentTerminationPayment,
		form.NonCashBenefitsGross, form.EmployerContributionProvidentFund, form.Gratuity,
		form.ProfitOnDebt15, form.ProfitOnDebt125,
		form.OtherTaxableIncomeRent, form.OtherTaxableIncomeOthers,
		form.SalaryTaxDeducted,
	).Scan(&form.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert income form")
	}
	return form, nil
}

const getAdjustableTaxForm = `
SELECT return_id, tax_year,
       salary_employees_149_gross_receipt, directorship_fee_149_3_gross_receipt,
       profit_debt_15_percent_gross_receipt, sukook_12_5_percent_gross_receipt,
       rent_section_155_gross_receipt,
       motor_vehicle_transfer_gross_receipt, electricity_domestic_gross_receipt,
       cellphone_bill_gross_receipt, updated_at
FROM adjustable_tax_forms
WHERE return_id = $1 AND tax_year = $2
`

func (q *Queries) GetAdjustableTaxForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.AdjustableTaxForm, error) {
	var f business.AdjustableTaxForm
	err := q.db.QueryRow(ctx, getAdjustableTaxForm, returnID, taxYear).Scan(
		&f.ReturnID, &f.TaxYear,
		&f.SalaryGrossReceipt, &f.DirectorshipGrossReceipt,
		&f.ProfitOnDebtGrossReceipt, &f.SukukGrossReceipt,
		&f.RentGrossReceipt,
		&f.MotorVehicleGrossReceipt, &f.ElectricityGrossReceipt,
		&f.CellphoneGrossReceipt, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get adjustable tax form")
	}
	return &f, nil
}

const upsertAdjustableTaxForm = `
INSERT INTO adjustable_tax_forms (
    return_id, tax_year,
    salary_employees_149_gross_receipt, directorship_fee_149_3_gross_receipt,
    profit_debt_15_percent_gross_receipt, sukook_12_5_percent_gross_receipt,
    rent_section_155_gross_receipt,
    motor_vehicle_transfer_gross_receipt, electricity_domestic_gross_receipt,
    cellphone_bill_gross_receipt
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (return_id, tax_year) DO UPDATE SET
    salary_employees_149_gross_receipt = EXCLUDED.salary_employees_149_gross_receipt,
    directorship_fee_149_3_gross_receipt = EXCLUDED.directorship_fee_149_3_gross_receipt,
    profit_debt_15_percent_gross_receipt = EXCLUDED.profit_debt_15_percent_gross_receipt,
    sukook_12_5_percent_gross_receipt = EXCLUDED.sukook_12_5_percent_gross_receipt,
    rent_section_155_gross_receipt = EXCLUDED.rent_section_155_gross_receipt,
    motor_vehicle_transfer_gross_receipt = EXCLUDED.motor_vehicle_transfer_gross_receipt,
    electricity_domestic_gross_receipt = EXCLUDED.electricity_domestic_gross_receipt,
    cellphone_bill_gross_receipt = EXCLUDED.cellphone_bill_gross_receipt,
    updated_at = CURRENT_TIMESTAMP
RETURNING updated_at
`

func (q *Queries) UpsertAdjustableTaxForm(ctx context.Context, form *business.AdjustableTaxForm) (*business.AdjustableTaxForm, error) {
	err := q.db.QueryRow(ctx, upsertAdjustableTaxForm,
		form.ReturnID, form.TaxYear,
		form.SalaryGrossReceipt, form.DirectorshipGrossReceipt,
		form.ProfitOnDebtGrossReceipt, form.SukukGrossReceipt,
		form.RentGrossReceipt,
		form.MotorVehicleGrossReceipt, form.ElectricityGrossReceipt,
		form.CellphoneGrossReceipt,
	).Scan(&form.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert adjustable tax form")
	}
	return form, nil
}

const getCapitalGainForm = `
SELECT return_id, tax_year, entries, updated_at
FROM capital_gain_forms
WHERE return_id = $1 AND tax_year = $2
`

func (q *Queries) GetCapitalGainForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.CapitalGainForm, error) {
	var f business.CapitalGainForm
	var entries []byte
	err := q.db.QueryRow(ctx, getCapitalGainForm, returnID, taxYear).Scan(
		&f.ReturnID, &f.TaxYear, &entries, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get capital gain form")
	}
	if err := json.Unmarshal(entries, &f.Entries); err != nil {
		return nil, errors.Wrap(err, "decode capital gain entries")
	}
	return &f, nil
}

const upsertCapitalGainForm = `
INSERT INTO capital_gain_forms (return_id, tax_year, entries)
VALUES ($1, $2, $3)
ON CONFLICT (return_id, tax_year) DO UPDATE SET
    entries = EXCLUDED.entries,
    updated_at = CURRENT_TIMESTAMP
RETURNING updated_at
`

func (q *Queries) UpsertCapitalGainForm(ctx context.Context, form *business.CapitalGainForm) (*business.CapitalGainForm, error) {
	entries, err := json.Marshal(form.Entries)
	if err != nil {
		return nil, errors.Wrap(err, "encode capital gain entries")
	}
	err = q.db.QueryRow(ctx, upsertCapitalGainForm, form.ReturnID, form.TaxYear, entries).Scan(&form.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert capital gain form")
	}
	return form, nil
}

const getReductionsForm = `
SELECT return_id, tax_year,
       teacher_researcher_amount, teacher_researcher_tax_reduction,
       behbood_certificates_amount, behbood_certificates_tax_reduction,
       capital_gain_immovable_50_reduction, capital_gain_immovable_75_reduction,
       total_tax_reductions, legacy_total_reductions, updated_at
FROM reductions_forms
WHERE return_id = $1 AND tax_year = $2
`

func (q *Queries) GetReductionsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.ReductionsForm, error) {
	var f business.ReductionsForm
	err := q.db.QueryRow(ctx, getReductionsForm, returnID, taxYear).Scan(
		&f.ReturnID, &f.TaxYear,
		&f.TeacherResearcherAmount, &f.TeacherResearcherReduction,
		&f.BehboodCertificatesAmount, &f.BehboodCertificatesReduction,
		&f.CapitalGainImmovable50, &f.CapitalGainImmovable75,
		&f.ComprehensiveTotal, &f.LegacyTotal, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get reductions form")
	}
	return &f, nil
}

const upsertReductionsForm = `
INSERT INTO reductions_forms (
    return_id, tax_year,
    teacher_researcher_amount, teacher_researcher_tax_reduction,
    behbood_certificates_amount, behbood_certificates_tax_reduction,
    capital_gain_immovable_50_reduction, capital_gain_immovable_75_reduction,
    total_tax_reductions, legacy_total_reductions
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (return_id, tax_year) DO UPDATE SET
    teacher_researcher_amount = EXCLUDED.teacher_researcher_amount,
    teacher_researcher_tax_reduction = EXCLUDED.teacher_researcher_tax_reduction,
    behbood_certificates_amount = EXCLUDED.behbood_certificates_amount,
    behbood_certificates_tax_reduction = EXCLUDED.behbood_certificates_tax_reduction,
    capital_gain_immovable_50_reduction = EXCLUDED.capital_gain_immovable_50_reduction,
    capital_gain_immovable_75_reduction = EXCLUDED.capital_gain_immovable_75_reduction,
    total_tax_reductions = EXCLUDED.total_tax_reductions,
    legacy_total_reductions = EXCLUDED.legacy_total_reductions,
    updated_at = CURRENT_TIMESTAMP
RETURNING updated_at
`

func (q *Queries) UpsertReductionsForm(ctx context.Context, form *business.ReductionsForm) (*business.ReductionsForm, error) {
	err := q.db.QueryRow(ctx, upsertReductionsForm,
		form.ReturnID, form.TaxYear,
		form.TeacherResearcherAmount, form.TeacherResearcherReduction,
		form.BehboodCertificatesAmount, form.BehboodCertificatesReduction,
		form.CapitalGainImmovable50, form.CapitalGainImmovable75,
		form.ComprehensiveTotal, form.LegacyTotal,
	).Scan(&form.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert reductions form")
	}
	return form, nil
}

const getCreditsForm = `
SELECT return_id, tax_year,
       charitable_donations_amount, charitable_donations_associate_amount,
       pension_fund_amount, surrender_tax_credit_amount,
       total_tax_credits, legacy_total_credits, updated_at
FROM credits_forms
WHERE return_id = $1 AND tax_year = $2
`

func (q *Queries) GetCreditsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.CreditsForm, error) {
	var f business.CreditsForm
	err := q.db.QueryRow(ctx, getCreditsForm, returnID, taxYear).Scan(
		&f.ReturnID, &f.TaxYear,
		&f.CharitableDonationsAmount, &f.AssociateDonationsAmount,
		&f.PensionFundAmount, &f.SurrenderTaxCreditAmount,
		&f.ComprehensiveTotal, &f.LegacyTotal, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get credits form")
	}
	return &f, nil
}

const upsertCreditsForm = `
INSERT INTO credits_forms (
    return_id, tax_year,
    charitable_donations_amount, charitable_donations_associate_amount,
    pension_fund_amount, surrender_tax_credit_amount,
    total_tax_credits, legacy_total_credits
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (return_id, tax_year) DO UPDATE SET
    charitable_donations_amount = EXCLUDED.charitable_donations_amount,
    charitable_donations_associate_amount = EXCLUDED.charitable_donations_associate_amount,
    pension_fund_amount = EXCLUDED.pension_fund_amount,
    surrender_tax_credit_amount = EXCLUDED.surrender_tax_credit_amount,
    total_tax_credits = EXCLUDED.total_tax_credits,
    legacy_total_credits = EXCLUDED.legacy_total_credits,
    updated_at = CURRENT_TIMESTAMP
RETURNING updated_at
`

func (q *Queries) UpsertCreditsForm(ctx context.Context, form *business.CreditsForm) (*business.CreditsForm, error) {
	err := q.db.QueryRow(ctx, upsertCreditsForm,
		form.ReturnID, form.TaxYear,
		form.CharitableDonationsAmount, form.AssociateDonationsAmount,
		form.PensionFundAmount, form.SurrenderTaxCreditAmount,
		form.ComprehensiveTotal, form.LegacyTotal,
	).Scan(&form.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert credits form")
	}
	return form, nil
}

const getDeductionsForm = `
SELECT return_id, tax_year,
       educational_expenses_amount, zakat_paid_amount, professional_expenses_amount,
       total_deduction_from_income, legacy_total_deductions, updated_at
FROM deductions_forms
WHERE return_id = $1 AND tax_year = $2
`

func (q *Queries) GetDeductionsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.DeductionsForm, error) {
	var f business.DeductionsForm
	err := q.db.QueryRow(ctx, getDeductionsForm, returnID, taxYear).Scan(
		&f.ReturnID, &f.TaxYear,
		&f.EducationalExpensesAmount, &f.ZakatPaidAmount, &f.ProfessionalExpensesAmount,
		&f.ComprehensiveTotal, &f.LegacyTotal, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get deductions form")
	}
	return &f, nil
}

const upsertDeductionsForm = `
INSERT INTO deductions_forms (
    return_id, tax_year,
    educational_expenses_amount, zakat_paid_amount, professional_expenses_amount,
    total_deduction_from_income, legacy_total_deductions
) VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (return_id, tax_year) DO UPDATE SET
    educational_expenses_amount = EXCLUDED.educational_expenses_amount,
    zakat_paid_amount = EXCLUDED.zakat_paid_amount,
    professional_expenses_amount = EXCLUDED.professional_expenses_amount,
    total_deduction_from_income = EXCLUDED.total_deduction_from_income,
    legacy_total_deductions = EXCLUDED.legacy_total_deductions,
    updated_at = CURRENT_TIMESTAMP
RETURNING updated_at
`

func (q *Queries) UpsertDeductionsForm(ctx context.Context, form *business.DeductionsForm) (*business.DeductionsForm, error) {
	err := q.db.QueryRow(ctx, upsertDeductionsForm,
		form.ReturnID, form.TaxYear,
		form.EducationalExpensesAmount, form.ZakatPaidAmount, form.ProfessionalExpensesAmount,
		form.ComprehensiveTotal, form.LegacyTotal,
	).Scan(&form.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert deductions form")
	}
	return form, nil
}

const getFinalTaxForm = `
SELECT return_id, tax_year,
       sukuk_bonds_gross_amount, sukuk_bonds_tax_rate,
       debt_securities_gross_amount, debt_securities_tax_rate,
       prize_bonds_tax_amount, other_final_tax_tax_amount,
       total_final_tax, updated_at
FROM final_tax_forms
WHERE return_id = $1 AND tax_year = $2
`

func (q *Queries) GetFinalTaxForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.FinalTaxForm, error) {
	var f business.FinalTaxForm
	err := q.db.QueryRow(ctx, getFinalTaxForm, returnID, taxYear).Scan(
		&f.ReturnID, &f.TaxYear,
		&f.SukukBondsGross, &f.SukukBondsRate,
		&f.DebtSecuritiesGross, &f.DebtSecuritiesRate,
		&f.PrizeBondsTaxAmount, &f.OtherFinalTaxAmount,
		&f.ComprehensiveTotal, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get final tax form")
	}
	return &f, nil
}

const upsertFinalTaxForm = `
INSERT INTO final_tax_forms (
    return_id, tax_year,
    sukuk_bonds_gross_amount, sukuk_bonds_tax_rate,
    debt_securities_gross_amount, debt_securities_tax_rate,
    prize_bonds_tax_amount, other_final_tax_tax_amount,
    total_final_tax
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (return_id, tax_year) DO UPDATE SET
    sukuk_bonds_gross_amount = EXCLUDED.sukuk_bonds_gross_amount,
    sukuk_bonds_tax_rate = EXCLUDED.sukuk_bonds_tax_rate,
    debt_securities_gross_amount = EXCLUDED.debt_securities_gross_amount,
    debt_securities_tax_rate = EXCLUDED.debt_securities_tax_rate,
    prize_bonds_tax_amount = EXCLUDED.prize_bonds_tax_amount,
    other_final_tax_tax_amount = EXCLUDED.other_final_tax_tax_amount,
    total_final_tax = EXCLUDED.total_final_tax,
    updated_at = CURRENT_TIMESTAMP
RETURNING updated_at
`

func (q *Queries) UpsertFinalTaxForm(ctx context.Context, form *business.FinalTaxForm) (*business.FinalTaxForm, error) {
	err := q.db.QueryRow(ctx, upsertFinalTaxForm,
		form.ReturnID, form.TaxYear,
		form.SukukBondsGross, form.SukukBondsRate,
		form.DebtSecuritiesGross, form.DebtSecuritiesRate,
		form.PrizeBondsTaxAmount, form.OtherFinalTaxAmount,
		form.ComprehensiveTotal,
	).Scan(&form.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert final tax form")
	}
	return form, nil
}

const getWealthStatement = `
SELECT return_id, tax_year,
       opening_net_worth, total_assets, total_liabilities,
       personal_expenses, gifts_received, other_inflows, other_outflows,
       updated_at
FROM wealth_statements
WHERE return_id = $1 AND tax_year = $2
`

func (q *Queries) GetWealthStatement(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.WealthStatement, error) {
	var f business.WealthStatement
	err := q.db.QueryRow(ctx, getWealthStatement, returnID, taxYear).Scan(
		&f.ReturnID, &f.TaxYear,
		&f.OpeningNetWorth, &f.TotalAssets, &f.TotalLiabilities,
		&f.PersonalExpenses, &f.GiftsReceived, &f.OtherInflows, &f.OtherOutflows,
		&f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get wealth statement")
	}
	return &f, nil
}

const upsertWealthStatement = `
INSERT INTO wealth_statements (
    return_id, tax_year,
    opening_net_worth, total_assets, total_liabilities,
    personal_expenses, gifts_received, other_inflows, other_outflows
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (return_id, tax_year) DO UPDATE SET
    opening_net_worth = EXCLUDED.opening_net_worth,
    total_assets = EXCLUDED.total_assets,
    total_liabilities = EXCLUDED.total_liabilities,
    personal_expenses = EXCLUDED.personal_expenses,
    gifts_received = EXCLUDED.gifts_received,
    other_inflows = EXCLUDED.other_inflows,
    other_outflows = EXCLUDED.other_outflows,
    updated_at = CURRENT_TIMESTAMP
RETURNING updated_at
`

func (q *Queries) UpsertWealthStatement(ctx context.Context, form *business.WealthStatement) (*business.WealthStatement, error) {
	err := q.db.QueryRow(ctx, upsertWealthStatement,
		form.ReturnID, form.TaxYear,
		form.OpeningNetWorth, form.TotalAssets, form.TotalLiabilities,
		form.PersonalExpenses, form.GiftsReceived, form.OtherInflows, form.OtherOutflows,
	).Scan(&form.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert wealth statement")
	}
	return form, nil
}

// GetFormBundle assembles the full form snapshot for one return and
// year. When bound to a pool it opens a repeatable-read read-only
// transaction so concurrent form writes cannot produce a torn bundle;
// when already inside a transaction it reuses it.
func (q *Queries) GetFormBundle(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.FormBundle, error) {
	if q.pool != nil {
		tx, err := q.pool.BeginTx(ctx, pgx.TxOptions{
			IsoLevel:   pgx.RepeatableRead,
			AccessMode: pgx.ReadOnly,
		})
		if err != nil {
			return nil, errors.Wrap(err, "begin bundle snapshot")
		}
		defer tx.Rollback(ctx)

		bundle, err := q.WithTx(tx).GetFormBundle(ctx, returnID, taxYear)
		if err != nil {
			return nil, err
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, errors.Wrap(err, "commit bundle snapshot")
		}
		return bundle, nil
	}

	bundle := &business.FormBundle{ReturnID: returnID, TaxYear: taxYear}
	var err error
	if bundle.Income, err = q.GetIncomeForm(ctx, returnID, taxYear); err != nil {
		return nil, err
	}
	if bundle.AdjustableTax, err = q.GetAdjustableTaxForm(ctx, returnID, taxYear); err != nil {
		return nil, err
	}
	if bundle.CapitalGain, err = q.GetCapitalGainForm(ctx, returnID, taxYear); err != nil {
		return nil, err
	}
	if bundle.Reductions, err = q.GetReductionsForm(ctx, returnID, taxYear); err != nil {
		return nil, err
	}
	if bundle.Credits, err = q.GetCreditsForm(ctx, returnID, taxYear); err != nil {
		return nil, err
	}
	if bundle.Deductions, err = q.GetDeductionsForm(ctx, returnID, taxYear); err != nil {
		return nil, err
	}
	if bundle.FinalTax, err = q.GetFinalTaxForm(ctx, returnID, taxYear); err != nil {
		return nil, err
	}
	if bundle.Wealth, err = q.GetWealthStatement(ctx, returnID, taxYear); err != nil {
		return nil, err
	}
	return bundle, nil
}
