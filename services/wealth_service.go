package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/constants"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/helpers"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// reconciliationTolerance is the largest absolute unreconciled amount,
// in rupees, still reported as reconciled. Absorbs rounding drift from
// the rupee-rounded tax figures, nothing more.
const reconciliationTolerance = 1.0

// WealthService reconciles the declared closing net worth against the
// year's computed income and outflows.
type WealthService struct {
	queries     db.Querier
	computation *ComputationService
	logger      *zap.Logger
}

// NewWealthService creates a new wealth service
func NewWealthService(queries db.Querier, computation *ComputationService) *WealthService {
	return &WealthService{
		queries:     queries,
		computation: computation,
		logger:      logger.Log,
	}
}

// Reconcile builds the ledger check from a wealth statement and a
// completed computation. Pure; the service Reconciliation method does
// the loading.
func (s *WealthService) Reconcile(
	statement *business.WealthStatement,
	result *business.ComputationResult,
) *business.WealthReconciliation {
	r := &business.WealthReconciliation{
		OpeningNetWorth:  statement.OpeningNetWorth,
		DeclaredIncome:   result.TotalIncome,
		ExemptInflows:    helpers.Round2(-result.ExemptIncome + helpers.Sanitize(statement.GiftsReceived)),
		OtherInflows:     helpers.Sanitize(statement.OtherInflows),
		PersonalExpenses: helpers.Sanitize(statement.PersonalExpenses),
		TaxesPaid:        result.WithholdingTaxPaid + result.TaxDemanded,
		OtherOutflows:    helpers.Sanitize(statement.OtherOutflows),
		DeclaredNetWorth: statement.ClosingNetWorth(),
	}

	r.ComputedNetWorth = helpers.Round2(
		r.OpeningNetWorth +
			r.DeclaredIncome +
			r.ExemptInflows +
			r.OtherInflows -
			r.PersonalExpenses -
			r.TaxesPaid -
			r.OtherOutflows)

	r.Unreconciled = helpers.Round2(r.DeclaredNetWorth - r.ComputedNetWorth)
	r.Reconciled = math.Abs(r.Unreconciled) <= reconciliationTolerance
	return r
}

// Reconciliation loads the wealth statement, runs the computation and
// reconciles the two. Absent wealth statement is a MissingDataError.
func (s *WealthService) Reconciliation(
	ctx context.Context,
	returnID uuid.UUID,
	taxYear string,
	filerStatus business.FilerStatus,
) (*business.WealthReconciliation, error) {
	statement, err := s.queries.GetWealthStatement(ctx, returnID, taxYear)
	if err != nil {
		return nil, err
	}
	if statement == nil {
		return nil, &MissingDataError{Form: constants.FormTypeWealthStatement, TaxYear: taxYear}
	}

	result, err := s.computation.ComputeForReturn(ctx, returnID, taxYear, filerStatus)
	if err != nil {
		return nil, err
	}

	reconciliation := s.Reconcile(statement, result)

	if !reconciliation.Reconciled {
		s.logger.Warn("Wealth statement does not reconcile",
			zap.String("return_id", returnID.String()),
			zap.String("tax_year", taxYear),
			zap.Float64("unreconciled", reconciliation.Unreconciled))
	}

	return reconciliation, nil
}
