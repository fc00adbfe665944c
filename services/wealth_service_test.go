package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/mocks"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/services"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

func newWealthService(mockQuerier *mocks.MockQuerier) *services.WealthService {
	return services.NewWealthService(mockQuerier, newComputationService(mockQuerier))
}

func TestWealthService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newWealthService(mocks.NewMockQuerier(ctrl))

	result := &business.ComputationResult{
		TotalIncome:        5000000,
		ExemptIncome:       -120000,
		WithholdingTaxPaid: 900000,
		TaxDemanded:        100000,
	}

	t.Run("reconciled statement", func(t *testing.T) {
		statement := &business.WealthStatement{
			OpeningNetWorth:  10000000,
			PersonalExpenses: 2000000,
			TotalAssets:      12300000,
			TotalLiabilities: 180000,
		}
		// 10M + 5M income + 120k exempt - 2M expenses - 1M taxes = 12.12M
		got := service.Reconcile(statement, result)

		assert.InDelta(t, 12120000, got.ComputedNetWorth, 0.01)
		assert.InDelta(t, 12120000, got.DeclaredNetWorth, 0.01)
		assert.Zero(t, got.Unreconciled)
		assert.True(t, got.Reconciled)
	})

	t.Run("unexplained increase is surfaced", func(t *testing.T) {
		statement := &business.WealthStatement{
			OpeningNetWorth:  10000000,
			PersonalExpenses: 2000000,
			TotalAssets:      13000000,
		}
		got := service.Reconcile(statement, result)

		assert.InDelta(t, 880000, got.Unreconciled, 0.01)
		assert.False(t, got.Reconciled)
	})

	t.Run("gifts count as exempt inflows", func(t *testing.T) {
		statement := &business.WealthStatement{
			OpeningNetWorth:  10000000,
			GiftsReceived:    500000,
			PersonalExpenses: 2000000,
			TotalAssets:      12620000,
		}
		got := service.Reconcile(statement, result)

		assert.InDelta(t, 620000, got.ExemptInflows, 0.01)
		assert.True(t, got.Reconciled)
	})
}

func TestWealthService_ReconciliationMissingStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newWealthService(mockQuerier)

	returnID := uuid.New()
	mockQuerier.EXPECT().GetWealthStatement(gomock.Any(), returnID, "2024-25").Return(nil, nil)

	_, err := service.Reconciliation(context.Background(), returnID, "2024-25", business.Filer)
	require.Error(t, err)
	var missing *services.MissingDataError
	assert.ErrorAs(t, err, &missing)
}

func TestWealthService_ReconciliationEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newWealthService(mockQuerier)

	returnID := uuid.New()
	statement := &business.WealthStatement{
		ReturnID:         returnID,
		TaxYear:          "2024-25",
		OpeningNetWorth:  50000000,
		PersonalExpenses: 8000000,
		TotalAssets:      60000000,
	}
	bundle := referenceBundle(returnID)
	bundle.Wealth = statement

	mockQuerier.EXPECT().GetWealthStatement(gomock.Any(), returnID, "2024-25").Return(statement, nil)
	mockQuerier.EXPECT().GetFormBundle(gomock.Any(), returnID, "2024-25").Return(bundle, nil)
	mockQuerier.EXPECT().ListRateRows(gomock.Any(), "2024-25").Return(nil, nil)

	got, err := service.Reconciliation(context.Background(), returnID, "2024-25", business.Filer)
	require.NoError(t, err)

	assert.InDelta(t, 21895000, got.DeclaredIncome, 0.01)
	assert.InDelta(t, 60000000, got.DeclaredNetWorth, 0.01)
	assert.False(t, got.Reconciled)
}
