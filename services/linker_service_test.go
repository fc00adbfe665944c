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

func newLinkerService(mockQuerier *mocks.MockQuerier) *services.LinkerService {
	return services.NewLinkerService(mockQuerier, services.NewCalculationService())
}

func TestLinkerService_FillsUnsetReceipts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	linker := newLinkerService(mocks.NewMockQuerier(ctrl))

	income := &business.IncomeForm{
		ReturnID:               uuid.New(),
		TaxYear:                "2024-25",
		MonthlyBasicSalary:     100000,
		DirectorshipFee:        500000,
		ProfitOnDebt15:         300000,
		ProfitOnDebt125:        150000,
		OtherTaxableIncomeRent: 240000,
	}

	linked, applied := linker.Link(income, nil)

	require.NotNil(t, linked.SalaryGrossReceipt)
	assert.Equal(t, 1700000.0, *linked.SalaryGrossReceipt) // 1.2M salary + fees and other income
	require.NotNil(t, linked.DirectorshipGrossReceipt)
	assert.Equal(t, 500000.0, *linked.DirectorshipGrossReceipt)
	require.NotNil(t, linked.ProfitOnDebtGrossReceipt)
	assert.Equal(t, 300000.0, *linked.ProfitOnDebtGrossReceipt)
	require.NotNil(t, linked.SukukGrossReceipt)
	assert.Equal(t, 150000.0, *linked.SukukGrossReceipt)
	require.NotNil(t, linked.RentGrossReceipt)
	assert.Equal(t, 240000.0, *linked.RentGrossReceipt)

	assert.Len(t, applied, 5)
	assert.Equal(t, income.ReturnID, linked.ReturnID)
	assert.Equal(t, "2024-25", linked.TaxYear)
}

func TestLinkerService_ExplicitEntryWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	linker := newLinkerService(mocks.NewMockQuerier(ctrl))

	income := &business.IncomeForm{
		ReturnID:        uuid.New(),
		TaxYear:         "2024-25",
		DirectorshipFee: 500000,
		ProfitOnDebt15:  300000,
	}
	explicitZero := 0.0
	entered := 123456.0
	adjustable := &business.AdjustableTaxForm{
		ReturnID:                 income.ReturnID,
		TaxYear:                  "2024-25",
		DirectorshipGrossReceipt: &entered,
		// An explicit zero entry also blocks the link.
		ProfitOnDebtGrossReceipt: &explicitZero,
	}

	linked, applied := linker.Link(income, adjustable)

	assert.Equal(t, entered, *linked.DirectorshipGrossReceipt)
	assert.Zero(t, *linked.ProfitOnDebtGrossReceipt)
	// Only the receipts never entered were linked.
	for _, link := range applied {
		assert.NotEqual(t, "directorship_fee", link.Source)
		assert.NotEqual(t, "profit_on_debt_15_percent", link.Source)
	}
}

func TestLinkerService_LinkIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	linker := newLinkerService(mocks.NewMockQuerier(ctrl))

	income := &business.IncomeForm{
		ReturnID:           uuid.New(),
		TaxYear:            "2024-25",
		MonthlyBasicSalary: 100000,
		DirectorshipFee:    500000,
	}

	once, firstApplied := linker.Link(income, nil)
	twice, secondApplied := linker.Link(income, once)

	assert.Equal(t, once, twice)
	assert.NotEmpty(t, firstApplied)
	assert.Empty(t, secondApplied)
}

func TestLinkerService_MaterializeLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	linker := newLinkerService(mockQuerier)
	ctx := context.Background()

	returnID := uuid.New()
	income := &business.IncomeForm{
		ReturnID:           returnID,
		TaxYear:            "2024-25",
		MonthlyBasicSalary: 100000,
	}

	mockQuerier.EXPECT().GetIncomeForm(gomock.Any(), returnID, "2024-25").Return(income, nil)
	mockQuerier.EXPECT().GetAdjustableTaxForm(gomock.Any(), returnID, "2024-25").Return(nil, nil)
	mockQuerier.EXPECT().UpsertAdjustableTaxForm(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, form *business.AdjustableTaxForm) (*business.AdjustableTaxForm, error) {
			return form, nil
		})

	form, applied, err := linker.MaterializeLinks(ctx, returnID, "2024-25")
	require.NoError(t, err)
	require.NotNil(t, form.SalaryGrossReceipt)
	assert.Equal(t, 1200000.0, *form.SalaryGrossReceipt)
	assert.Len(t, applied, 5)
}

func TestLinkerService_MaterializeLinksNoIncome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	linker := newLinkerService(mockQuerier)

	returnID := uuid.New()
	mockQuerier.EXPECT().GetIncomeForm(gomock.Any(), returnID, "2024-25").Return(nil, nil)

	_, _, err := linker.MaterializeLinks(context.Background(), returnID, "2024-25")
	require.Error(t, err)
	var missing *services.MissingDataError
	assert.ErrorAs(t, err, &missing)
}
