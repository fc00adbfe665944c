// Package interfaces defines service contracts consumed by the HTTP
// handlers, so handlers can be tested against mocks and services can
// be swapped without touching transport code.
package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// ComputationService runs the tax computation pipeline for a return.
type ComputationService interface {
	ComputeForReturn(ctx context.Context, returnID uuid.UUID, taxYear string, filerStatus business.FilerStatus) (*business.ComputationResult, error)
	Compute(bundle *business.FormBundle, rates *business.RateTable) (*business.ComputationResult, error)
	AdjustableTaxData(ctx context.Context, returnID uuid.UUID, taxYear string, filerStatus business.FilerStatus) (*business.AdjustableTaxForm, *business.AdjustableTaxDerived, error)
}

// FormService owns form reads and writes with validation and
// optimistic concurrency.
type FormService interface {
	GetIncomeForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.IncomeForm, *business.IncomeDerived, error)
	SaveIncomeForm(ctx context.Context, form *business.IncomeForm) (*business.IncomeForm, *business.IncomeDerived, error)
	SaveAdjustableTaxForm(ctx context.Context, form *business.AdjustableTaxForm) (*business.AdjustableTaxForm, error)
	SaveCapitalGainForm(ctx context.Context, form *business.CapitalGainForm) (*business.CapitalGainForm, error)
	SaveReductionsForm(ctx context.Context, form *business.ReductionsForm) (*business.ReductionsForm, error)
	SaveCreditsForm(ctx context.Context, form *business.CreditsForm) (*business.CreditsForm, error)
	SaveDeductionsForm(ctx context.Context, form *business.DeductionsForm) (*business.DeductionsForm, error)
	SaveFinalTaxForm(ctx context.Context, form *business.FinalTaxForm) (*business.FinalTaxForm, error)
	SaveWealthStatement(ctx context.Context, form *business.WealthStatement) (*business.WealthStatement, error)
	GetAdjustableTaxForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.AdjustableTaxForm, error)
	GetCapitalGainForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.CapitalGainForm, error)
	GetReductionsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.ReductionsForm, error)
	GetCreditsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.CreditsForm, error)
	GetDeductionsForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.DeductionsForm, error)
	GetFinalTaxForm(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.FinalTaxForm, error)
	GetWealthStatement(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.WealthStatement, error)
	GetFormBundle(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.FormBundle, error)
}

// LinkerService materializes cross-form links into stored forms.
type LinkerService interface {
	MaterializeLinks(ctx context.Context, returnID uuid.UUID, taxYear string) (*business.AdjustableTaxForm, []business.AppliedLink, error)
}

// RateService resolves and maintains tax-year rate tables.
type RateService interface {
	Resolve(ctx context.Context, taxYear string, filerStatus business.FilerStatus) (*business.RateTable, error)
	UpdateRate(ctx context.Context, arg db.UpdateRateRowParams) (*business.RateRow, error)
}

// WealthService reconciles wealth statements against computed income.
type WealthService interface {
	Reconciliation(ctx context.Context, returnID uuid.UUID, taxYear string, filerStatus business.FilerStatus) (*business.WealthReconciliation, error)
}
