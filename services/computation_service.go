package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/constants"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/helpers"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// ComputationService runs the full tax computation pipeline for a
// return: load a consistent form snapshot, resolve rates, link
// cross-form values in memory, then execute the five-stage engine.
// Compute itself is a pure function of the bundle and the rate table;
// all I/O happens before it runs.
type ComputationService struct {
	queries db.Querier
	calc    *CalculationService
	linker  *LinkerService
	rates   *RateService
	logger  *zap.Logger
}

// NewComputationService creates a new computation service
func NewComputationService(queries db.Querier, calc *CalculationService, linker *LinkerService, rates *RateService) *ComputationService {
	return &ComputationService{
		queries: queries,
		calc:    calc,
		linker:  linker,
		rates:   rates,
		logger:  logger.Log,
	}
}

// ComputeForReturn loads the form bundle and rate table, then runs the
// engine. The bundle read happens in one snapshot transaction so a
// concurrent form edit cannot produce a torn computation.
func (s *ComputationService) ComputeForReturn(
	ctx context.Context,
	returnID uuid.UUID,
	taxYear string,
	filerStatus business.FilerStatus,
) (*business.ComputationResult, error) {
	bundle, err := s.queries.GetFormBundle(ctx, returnID, taxYear)
	if err != nil {
		return nil, err
	}

	rates, err := s.rates.Resolve(ctx, taxYear, filerStatus)
	if err != nil {
		return nil, err
	}

	result, err := s.Compute(bundle, rates)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tax computation completed",
		zap.String("return_id", returnID.String()),
		zap.String("tax_year", taxYear),
		zap.Float64("taxable_income", result.TaxableIncome),
		zap.Float64("total_tax_chargeable", result.TotalTaxChargeable),
		zap.Float64("tax_demanded", result.TaxDemanded),
		zap.Float64("refund_due", result.RefundDue))

	return result, nil
}

// AdjustableTaxData returns the adjustable-tax form as the engine sees
// it: cross-form links applied in memory, plus the per-category tax
// collected under the year's withholding rates.
func (s *ComputationService) AdjustableTaxData(
	ctx context.Context,
	returnID uuid.UUID,
	taxYear string,
	filerStatus business.FilerStatus,
) (*business.AdjustableTaxForm, *business.AdjustableTaxDerived, error) {
	bundle, err := s.queries.GetFormBundle(ctx, returnID, taxYear)
	if err != nil {
		return nil, nil, err
	}
	if bundle.Income == nil {
		return nil, nil, &MissingDataError{Form: constants.FormTypeIncome, TaxYear: taxYear}
	}

	rates, err := s.rates.Resolve(ctx, taxYear, filerStatus)
	if err != nil {
		return nil, nil, err
	}

	linked, _ := s.linker.Link(bundle.Income, bundle.AdjustableTax)
	derived := s.calc.CalculateAdjustableTaxFields(linked, bundle.Income.SalaryTaxDeducted, rates)
	return linked, derived, nil
}

// Compute runs the five-stage engine over an already-loaded bundle.
// Pure: no I/O, no stored state, identical inputs always produce an
// identical result. The income form is mandatory; every other form
// defaults to zero contributions when absent.
func (s *ComputationService) Compute(bundle *business.FormBundle, rates *business.RateTable) (*business.ComputationResult, error) {
	if bundle.Income == nil {
		return nil, &MissingDataError{Form: constants.FormTypeIncome, TaxYear: bundle.TaxYear}
	}

	income := s.calc.CalculateIncomeFields(bundle.Income)

	// Linking runs in memory on every computation so the engine sees
	// linked receipts even when the caller never materialized them.
	linkedAdjustable, _ := s.linker.Link(bundle.Income, bundle.AdjustableTax)
	adjustable := s.calc.CalculateAdjustableTaxFields(linkedAdjustable, bundle.Income.SalaryTaxDeducted, rates)

	capitalGain := &business.CapitalGainDerived{}
	if bundle.CapitalGain != nil {
		capitalGain = s.calc.CalculateCapitalGainFields(bundle.CapitalGain, rates)
	}

	var reductions float64
	if bundle.Reductions != nil {
		reductions = s.calc.ReductionsTotal(bundle.Reductions)
	}
	var deductions float64
	if bundle.Deductions != nil {
		deductions = s.calc.DeductionsTotal(bundle.Deductions)
	}
	var finalTax float64
	if bundle.FinalTax != nil {
		finalTax = s.calc.FinalTaxTotal(bundle.FinalTax)
	}

	result := &business.ComputationResult{
		ReturnID:     bundle.ReturnID.String(),
		TaxYear:      bundle.TaxYear,
		CalculatedAt: time.Now().UTC(),
	}

	// Stage 1: aggregate income.
	otherIncome := income.OtherIncomeMinTaxTotal + income.OtherIncomeNoMinTaxTotal
	result.ExemptIncome = income.IncomeExemptFromTax + income.NonCashBenefitExempt
	result.GrossIncome = helpers.Round2(income.TotalEmploymentIncome + otherIncome - result.ExemptIncome)
	result.CapitalGain = capitalGain.TotalCapitalGain
	result.AllowableDeductions = deductions
	result.TotalIncome = helpers.Round2(income.TotalEmploymentIncome + otherIncome + capitalGain.TotalCapitalGain)
	result.TaxableIncome = math.Max(0, helpers.Round2(result.TotalIncome-deductions))
	result.TaxableIncomeExcludingCapitalGain = math.Max(0, helpers.Round2(result.TaxableIncome-capitalGain.TotalCapitalGain))

	// Stage 2: progressive tax on income excluding capital gains.
	slab, err := matchSlab(rates, result.TaxableIncomeExcludingCapitalGain)
	if err != nil {
		return nil, err
	}
	result.NormalTax = math.Round(slab.FixedAmount + (result.TaxableIncomeExcludingCapitalGain-slab.Min)*slab.Rate)
	result.MarginalTaxRate = slab.Rate
	result.SlabBreakdown = slabBreakdown(rates.Slabs, result.TaxableIncomeExcludingCapitalGain)

	// Stage 3: surcharge.
	if result.TaxableIncomeExcludingCapitalGain > rates.SurchargeThreshold {
		result.Surcharge = math.Round(result.NormalTax * rates.SurchargeRate)
	}
	if result.TaxableIncomeExcludingCapitalGain > 0 {
		result.EffectiveTaxRate = (result.NormalTax + result.Surcharge) / result.TaxableIncomeExcludingCapitalGain
	}

	// Stage 4: combine regimes and net adjustments, flooring at zero
	// after each subtraction.
	result.CapitalGainsTax = capitalGain.TotalCapitalGainTax
	result.FinalTax = finalTax
	result.TotalTaxBeforeAdjustments = helpers.Round2(result.NormalTax + result.Surcharge + result.CapitalGainsTax + result.FinalTax)

	result.TaxReductions = reductions
	result.TaxAfterReductions = math.Max(0, helpers.Round2(result.TotalTaxBeforeAdjustments-reductions))

	var credits float64
	if bundle.Credits != nil {
		creditsDerived := s.calc.CalculateCreditsFields(bundle.Credits, result.TaxableIncome, result.NormalTax)
		credits = creditsDerived.TotalCredits
	}
	result.TaxCredits = credits
	result.TaxAfterCredits = math.Max(0, helpers.Round2(result.TaxAfterReductions-credits))

	// Stage 5: reconcile against tax already collected at source.
	// Exactly one of demanded/refund is non-zero, or both are zero.
	result.TotalTaxChargeable = result.TaxAfterCredits
	result.WithholdingTaxPaid = adjustable.TotalTaxCollected
	balance := helpers.Round2(result.TotalTaxChargeable - result.WithholdingTaxPaid)
	if balance >= 0 {
		result.TaxDemanded = balance
	} else {
		result.RefundDue = -balance
	}

	return result, nil
}

// matchSlab locates the unique slab covering the income. No match
// means the table is malformed despite validation, so it surfaces as a
// ConfigurationError rather than a silent zero.
func matchSlab(rates *business.RateTable, income float64) (business.TaxSlab, error) {
	for _, slab := range rates.Slabs {
		if slab.Contains(income) {
			return slab, nil
		}
	}
	return business.TaxSlab{}, &ConfigurationError{
		TaxYear: rates.TaxYear,
		Detail:  "no progressive slab covers taxable income",
	}
}

// slabBreakdown reports how each slab contributes to the cumulative
// equivalent of the fixed-amount formula, for display.
func slabBreakdown(slabs []business.TaxSlab, income float64) []business.SlabContribution {
	var out []business.SlabContribution
	for _, slab := range slabs {
		if income <= slab.Min {
			break
		}
		upper := math.Min(income, slab.Max)
		inSlab := upper - slab.Min
		out = append(out, business.SlabContribution{
			Min:          slab.Min,
			Max:          slab.Max,
			Rate:         slab.Rate,
			IncomeInSlab: inSlab,
			TaxInSlab:    math.Round(inSlab * slab.Rate),
		})
	}
	return out
}
