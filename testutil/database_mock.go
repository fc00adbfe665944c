package testutil

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/mocks"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// ExpectIncomeForm sets up the income form read; pass nil for a
// return that has no income form.
func (m *MockDatabase) ExpectIncomeForm(returnID uuid.UUID, taxYear string, form *business.IncomeForm) {
	m.Querier.EXPECT().
		GetIncomeForm(gomock.Any(), returnID, taxYear).
		Return(form, nil).
		Times(1)
}

// ExpectAdjustableTaxForm sets up the adjustable-tax form read.
func (m *MockDatabase) ExpectAdjustableTaxForm(returnID uuid.UUID, taxYear string, form *business.AdjustableTaxForm) {
	m.Querier.EXPECT().
		GetAdjustableTaxForm(gomock.Any(), returnID, taxYear).
		Return(form, nil).
		Times(1)
}

// ExpectFormBundle sets up the one-shot bundle read used by the
// computation pipeline.
func (m *MockDatabase) ExpectFormBundle(returnID uuid.UUID, taxYear string, bundle *business.FormBundle) {
	m.Querier.EXPECT().
		GetFormBundle(gomock.Any(), returnID, taxYear).
		Return(bundle, nil).
		Times(1)
}

// ExpectRateRows sets up the stored-rate read for a tax year; an
// empty slice means the year falls back to the embedded defaults.
func (m *MockDatabase) ExpectRateRows(taxYear string, rows []business.RateRow) {
	m.Querier.EXPECT().
		ListRateRows(gomock.Any(), taxYear).
		Return(rows, nil).
		Times(1)
}
