package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

func TestGetIncomeForm_NotStoredReturns404(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.ExpectIncomeForm(returnID, "2025-26", nil)

	url := fmt.Sprintf("/api/v1/forms/2025-26/income?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveIncomeForm_StoresAndReturnsDerivedFields(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.ExpectIncomeForm(returnID, "2025-26", nil)
	mockDB.Querier.EXPECT().
		UpsertIncomeForm(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, form *business.IncomeForm) (*business.IncomeForm, error) {
			form.UpdatedAt = time.Now()
			return form, nil
		}).
		Times(1)

	body, _ := json.Marshal(map[string]any{
		"monthly_basic_salary": 100000,
		"directorship_fee":     500000,
		"salary_tax_deducted":  30000,
	})
	url := fmt.Sprintf("/api/v1/forms/2025-26/income?return_id=%s", returnID)
	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Form    *business.IncomeForm    `json:"form"`
		Derived *business.IncomeDerived `json:"derived"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Derived)
	assert.InDelta(t, 1200000.0, resp.Derived.AnnualBasicSalary, 0.01)
	assert.InDelta(t, 1700000.0, resp.Derived.AnnualSalaryWagesTotal, 0.01)
	assert.Equal(t, returnID, resp.Form.ReturnID)
}

func TestSaveIncomeForm_NegativeAmountsAre400WithFieldList(t *testing.T) {
	router, _ := newTestRouter(t)
	returnID := uuid.New()

	body, _ := json.Marshal(map[string]any{
		"monthly_basic_salary": -5,
		"directorship_fee":     -1,
	})
	url := fmt.Sprintf("/api/v1/forms/2025-26/income?return_id=%s", returnID)
	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "failed validation")
	assert.ElementsMatch(t, []string{"monthly_basic_salary", "directorship_fee"}, resp.Fields)
}

func TestSaveIncomeForm_StaleUpdateIs409(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()
	storedAt := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)

	mockDB.ExpectIncomeForm(returnID, "2025-26", &business.IncomeForm{
		ReturnID:  returnID,
		TaxYear:   "2025-26",
		UpdatedAt: storedAt,
	})

	body, _ := json.Marshal(map[string]any{
		"monthly_basic_salary": 100000,
		"updated_at":           storedAt.Add(-time.Minute).Format(time.RFC3339),
	})
	url := fmt.Sprintf("/api/v1/forms/2025-26/income?return_id=%s", returnID)
	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "modified by another request")
}

func TestSaveAdjustableTaxForm_PreservesUnsetReceipts(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.ExpectAdjustableTaxForm(returnID, "2025-26", nil)
	mockDB.Querier.EXPECT().
		UpsertAdjustableTaxForm(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, form *business.AdjustableTaxForm) (*business.AdjustableTaxForm, error) {
			form.UpdatedAt = time.Now()
			return form, nil
		}).
		Times(1)

	body, _ := json.Marshal(map[string]any{
		"electricity_domestic_gross_receipt": 80000,
	})
	url := fmt.Sprintf("/api/v1/forms/2025-26/adjustable-tax?return_id=%s", returnID)
	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var saved business.AdjustableTaxForm
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Nil(t, saved.SalaryGrossReceipt) // left for the linker
	assert.InDelta(t, 80000.0, saved.ElectricityGrossReceipt, 0.01)
}

func TestGetWealthStatement_ReturnsStoredForm(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.Querier.EXPECT().
		GetWealthStatement(gomock.Any(), returnID, "2025-26").
		Return(&business.WealthStatement{
			ReturnID:    returnID,
			TaxYear:     "2025-26",
			TotalAssets: 5000000,
		}, nil).
		Times(1)

	url := fmt.Sprintf("/api/v1/forms/2025-26/wealth-statement?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, w.Code)

	var statement business.WealthStatement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statement))
	assert.InDelta(t, 5000000.0, statement.TotalAssets, 0.01)
}

func TestGetAdjustableTaxForm_NotStoredReturns404(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.ExpectAdjustableTaxForm(returnID, "2025-26", nil)

	url := fmt.Sprintf("/api/v1/forms/2025-26/adjustable-tax?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "adjustable_tax")
}

func TestSaveIncomeForm_RejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)
	returnID := uuid.New()

	url := fmt.Sprintf("/api/v1/forms/2025-26/income?return_id=%s", returnID)
	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}
