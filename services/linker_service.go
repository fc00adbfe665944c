package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/constants"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/helpers"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// LinkerService propagates income-form figures into the adjustable-tax
// form's gross receipts. A receipt the taxpayer entered, zero
// included, is never overwritten; only nil (never-entered) receipts
// are filled. Links are declared data so the flow set is auditable in
// one place.
type LinkerService struct {
	queries db.Querier
	calc    *CalculationService
	logger  *zap.Logger
}

// NewLinkerService creates a new linker service
func NewLinkerService(queries db.Querier, calc *CalculationService) *LinkerService {
	return &LinkerService{
		queries: queries,
		calc:    calc,
		logger:  logger.Log,
	}
}

// incomeLink declares one income-to-adjustable flow: where the value
// comes from and which receipt it lands in.
type incomeLink struct {
	category string
	source   string
	value    func(form *business.IncomeForm, derived *business.IncomeDerived) float64
	target   func(form *business.AdjustableTaxForm) **float64
}

func incomeLinks() []incomeLink {
	return []incomeLink{
		{
			category: constants.WithholdingSalary149,
			source:   "annual_salary_wages_total",
			value: func(_ *business.IncomeForm, d *business.IncomeDerived) float64 {
				return d.AnnualSalaryWagesTotal
			},
			target: func(f *business.AdjustableTaxForm) **float64 { return &f.SalaryGrossReceipt },
		},
		{
			category: constants.WithholdingDirectorship1493,
			source:   "directorship_fee",
			value: func(f *business.IncomeForm, _ *business.IncomeDerived) float64 {
				return helpers.Sanitize(f.DirectorshipFee)
			},
			target: func(f *business.AdjustableTaxForm) **float64 { return &f.DirectorshipGrossReceipt },
		},
		{
			category: constants.WithholdingProfitOnDebt151,
			source:   "profit_on_debt_15_percent",
			value: func(f *business.IncomeForm, _ *business.IncomeDerived) float64 {
				return helpers.Sanitize(f.ProfitOnDebt15)
			},
			target: func(f *business.AdjustableTaxForm) **float64 { return &f.ProfitOnDebtGrossReceipt },
		},
		{
			category: constants.WithholdingSukuk151A,
			source:   "profit_on_debt_12_5_percent",
			value: func(f *business.IncomeForm, _ *business.IncomeDerived) float64 {
				return helpers.Sanitize(f.ProfitOnDebt125)
			},
			target: func(f *business.AdjustableTaxForm) **float64 { return &f.SukukGrossReceipt },
		},
		{
			category: constants.WithholdingRent155,
			source:   "other_taxable_income_rent",
			value: func(f *business.IncomeForm, _ *business.IncomeDerived) float64 {
				return helpers.Sanitize(f.OtherTaxableIncomeRent)
			},
			target: func(f *business.AdjustableTaxForm) **float64 { return &f.RentGrossReceipt },
		},
	}
}

// Link returns a copy of the adjustable-tax form with its unset
// receipts filled from the income form, and reports what it applied.
// The passed form is never modified, and nothing is persisted: callers
// that want the links stored use MaterializeLinks. A nil adjustable
// form gets a fresh one carrying the income form's return and year.
func (s *LinkerService) Link(
	income *business.IncomeForm,
	adjustable *business.AdjustableTaxForm,
) (*business.AdjustableTaxForm, []business.AppliedLink) {
	if adjustable == nil {
		adjustable = &business.AdjustableTaxForm{
			ReturnID: income.ReturnID,
			TaxYear:  income.TaxYear,
		}
	} else {
		// Work on a copy so the caller's form is never mutated. A
		// shallow copy is enough: links only fill nil pointers, they
		// never write through an existing one.
		cp := *adjustable
		adjustable = &cp
	}

	derived := s.calc.CalculateIncomeFields(income)

	var applied []business.AppliedLink
	for _, link := range incomeLinks() {
		target := link.target(adjustable)
		if *target != nil {
			continue
		}
		v := link.value(income, derived)
		*target = &v
		applied = append(applied, business.AppliedLink{
			Category: link.category,
			Source:   link.source,
			Value:    v,
		})
	}
	return adjustable, applied
}

// MaterializeLinks runs the linker against the stored forms and
// persists the adjustable-tax form when any link applied. Absent
// income form is an error: there is nothing to link from.
func (s *LinkerService) MaterializeLinks(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.AdjustableTaxForm, []business.AppliedLink, error) {
	income, err := s.queries.GetIncomeForm(ctx, returnID, taxYear)
	if err != nil {
		return nil, nil, err
	}
	if income == nil {
		return nil, nil, &MissingDataError{Form: constants.FormTypeIncome, TaxYear: taxYear}
	}

	adjustable, err := s.queries.GetAdjustableTaxForm(ctx, returnID, taxYear)
	if err != nil {
		return nil, nil, err
	}

	linked, applied := s.Link(income, adjustable)
	if len(applied) == 0 {
		return linked, applied, nil
	}

	persisted, err := s.queries.UpsertAdjustableTaxForm(ctx, linked)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Cross-form links materialized",
		zap.String("return_id", returnID.String()),
		zap.String("tax_year", taxYear),
		zap.Int("links_applied", len(applied)))

	return persisted, applied, nil
}
