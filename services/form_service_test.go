package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/mocks"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/services"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

func newFormService(mockQuerier *mocks.MockQuerier) *services.FormService {
	return services.NewFormService(mockQuerier, services.NewCalculationService())
}

func TestFormService_SaveIncomeForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newFormService(mockQuerier)
	ctx := context.Background()

	returnID := uuid.New()
	form := &business.IncomeForm{
		ReturnID:           returnID,
		TaxYear:            "2024-25",
		MonthlyBasicSalary: 100000,
		DirectorshipFee:    500000,
	}

	mockQuerier.EXPECT().GetIncomeForm(gomock.Any(), returnID, "2024-25").Return(nil, nil)
	mockQuerier.EXPECT().UpsertIncomeForm(gomock.Any(), form).DoAndReturn(
		func(_ context.Context, f *business.IncomeForm) (*business.IncomeForm, error) {
			f.UpdatedAt = time.Now()
			return f, nil
		})

	saved, derived, err := service.SaveIncomeForm(ctx, form)
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())
	assert.Equal(t, 1200000.0, derived.AnnualBasicSalary)
	assert.Equal(t, 1700000.0, derived.AnnualSalaryWagesTotal)
}

func TestFormService_SaveIncomeFormCollectsAllValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newFormService(mocks.NewMockQuerier(ctrl))

	form := &business.IncomeForm{
		ReturnID:           uuid.New(),
		TaxYear:            "2024-25",
		MonthlyBasicSalary: -100000,
		DirectorshipFee:    -1,
	}

	_, _, err := service.SaveIncomeForm(context.Background(), form)
	require.Error(t, err)

	var verrs *services.FormValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.Errors, 2)
}

func TestFormService_SaveIncomeFormStaleUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newFormService(mockQuerier)

	returnID := uuid.New()
	storedAt := time.Now()
	stored := &business.IncomeForm{ReturnID: returnID, TaxYear: "2024-25", UpdatedAt: storedAt}

	form := &business.IncomeForm{
		ReturnID:  returnID,
		TaxYear:   "2024-25",
		UpdatedAt: storedAt.Add(-time.Minute), // read before the last save
	}

	mockQuerier.EXPECT().GetIncomeForm(gomock.Any(), returnID, "2024-25").Return(stored, nil)

	_, _, err := service.SaveIncomeForm(context.Background(), form)
	require.Error(t, err)
	var conflict *services.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestFormService_SaveAdjustableTaxPreservesUnsetReceipts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newFormService(mockQuerier)

	returnID := uuid.New()
	rent := 240000.0
	form := &business.AdjustableTaxForm{
		ReturnID:         returnID,
		TaxYear:          "2024-25",
		RentGrossReceipt: &rent,
	}

	mockQuerier.EXPECT().GetAdjustableTaxForm(gomock.Any(), returnID, "2024-25").Return(nil, nil)
	mockQuerier.EXPECT().UpsertAdjustableTaxForm(gomock.Any(), form).Return(form, nil)

	saved, err := service.SaveAdjustableTaxForm(context.Background(), form)
	require.NoError(t, err)
	assert.Nil(t, saved.SalaryGrossReceipt)
	require.NotNil(t, saved.RentGrossReceipt)
	assert.Equal(t, 240000.0, *saved.RentGrossReceipt)
}

func TestFormService_SaveFinalTaxFormKeepsRatePrecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newFormService(mockQuerier)

	returnID := uuid.New()
	form := &business.FinalTaxForm{
		ReturnID:           returnID,
		TaxYear:            "2024-25",
		SukukBondsGross:    1000000,
		SukukBondsRate:     0.125,
		DebtSecuritiesRate: 0.075,
	}

	mockQuerier.EXPECT().GetFinalTaxForm(gomock.Any(), returnID, "2024-25").Return(nil, nil)
	mockQuerier.EXPECT().UpsertFinalTaxForm(gomock.Any(), form).Return(form, nil)

	saved, err := service.SaveFinalTaxForm(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, 0.125, saved.SukukBondsRate)
	assert.Equal(t, 0.075, saved.DebtSecuritiesRate)
}

func TestFormService_SaveFinalTaxFormRejectsRateAboveOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newFormService(mockQuerier)

	form := &business.FinalTaxForm{
		ReturnID:        uuid.New(),
		TaxYear:         "2024-25",
		SukukBondsGross: 1000000,
		SukukBondsRate:  12.5,
	}

	_, err := service.SaveFinalTaxForm(context.Background(), form)
	var verrs *services.FormValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Contains(t, verrs.Errors[0].Error(), "sukuk_bonds_tax_rate")
}

func TestFormService_SaveCapitalGainFormValidatesEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newFormService(mocks.NewMockQuerier(ctrl))

	form := &business.CapitalGainForm{
		ReturnID: uuid.New(),
		TaxYear:  "2024-25",
		Entries: []business.CapitalGainEntry{
			{AssetType: "securities", HoldingBucket: "any", Regime: "new", TaxableGain: -500},
		},
	}

	_, err := service.SaveCapitalGainForm(context.Background(), form)
	require.Error(t, err)
	var verrs *services.FormValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestFormService_SaveWealthStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newFormService(mockQuerier)

	returnID := uuid.New()
	form := &business.WealthStatement{
		ReturnID:        returnID,
		TaxYear:         "2024-25",
		OpeningNetWorth: 10000000,
		TotalAssets:     12000000,
	}

	mockQuerier.EXPECT().GetWealthStatement(gomock.Any(), returnID, "2024-25").Return(nil, nil)
	mockQuerier.EXPECT().UpsertWealthStatement(gomock.Any(), form).Return(form, nil)

	saved, err := service.SaveWealthStatement(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, 12000000.0, saved.ClosingNetWorth())
}
