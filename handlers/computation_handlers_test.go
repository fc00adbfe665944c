package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/services"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/testutil"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

func init() {
	// Initialize logger for tests to avoid panic
	logger.Log = zap.NewNop()
}

// newTestRouter wires the real service graph over a mocked database
// and registers the production route tree.
func newTestRouter(t *testing.T) (*gin.Engine, *testutil.MockDatabase) {
	gin.SetMode(gin.TestMode)
	mockDB := testutil.NewMockDatabase(t)

	calc := services.NewCalculationService()
	linker := services.NewLinkerService(mockDB.Querier, calc)
	rates := services.NewRateService(mockDB.Querier)
	computation := services.NewComputationService(mockDB.Querier, calc, linker, rates)
	forms := services.NewFormService(mockDB.Querier, calc)
	wealth := services.NewWealthService(mockDB.Querier, computation)

	common := NewCommonServices(CommonServicesConfig{
		DB:                 mockDB.Querier,
		Logger:             zap.NewNop(),
		ComputationService: computation,
		FormService:        forms,
		LinkerService:      linker,
		RateService:        rates,
		WealthService:      wealth,
	})

	computationHandler := NewComputationHandler(common, computation, linker, wealth)
	formHandler := NewFormHandler(common, forms)
	ratesHandler := NewRatesHandler(common, rates)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.GET("/tax-computation/:taxYear", computationHandler.ComputeTax)
		v1.GET("/tax-computation/:taxYear/summary", computationHandler.ComputeTaxSummary)
		v1.GET("/tax-computation/:taxYear/income-data", computationHandler.IncomeData)
		v1.GET("/tax-computation/:taxYear/adjustable-data", computationHandler.AdjustableData)
		v1.POST("/tax-computation/:taxYear/update-links", computationHandler.UpdateLinks)
		v1.GET("/wealth-reconciliation/:taxYear", computationHandler.WealthReconciliation)
		v1.GET("/forms/:taxYear/income", formHandler.GetIncomeForm)
		v1.PUT("/forms/:taxYear/income", formHandler.SaveIncomeForm)
		v1.GET("/forms/:taxYear/adjustable-tax", formHandler.GetAdjustableTaxForm)
		v1.PUT("/forms/:taxYear/adjustable-tax", formHandler.SaveAdjustableTaxForm)
		v1.GET("/forms/:taxYear/wealth-statement", formHandler.GetWealthStatement)
		v1.GET("/rates/:taxYear", ratesHandler.GetRateTable)
		v1.PATCH("/rates/:taxYear", ratesHandler.UpdateRate)
	}
	return router, mockDB
}

func TestComputeTax_RequiresReturnID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tax-computation/2025-26", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "return_id")
}

func TestComputeTax_RejectsMalformedReturnID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tax-computation/2025-26?return_id=not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid UUID")
}

func TestComputeTax_RejectsUnknownFilerStatus(t *testing.T) {
	router, _ := newTestRouter(t)
	returnID := uuid.New()

	url := fmt.Sprintf("/api/v1/tax-computation/2025-26?return_id=%s&filer_status=late_filer", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "filer_status")
}

func TestComputeTax_MissingIncomeFormReturns404(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.ExpectFormBundle(returnID, "2025-26", &business.FormBundle{
		ReturnID: returnID,
		TaxYear:  "2025-26",
	})
	mockDB.ExpectRateRows("2025-26", nil)

	url := fmt.Sprintf("/api/v1/tax-computation/2025-26?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "income form")
}

func TestComputeTax_ComputesFromStoredForms(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.ExpectFormBundle(returnID, "2025-26", testutil.CreateTestFormBundle(returnID, "2025-26"))
	mockDB.ExpectRateRows("2025-26", nil)

	url := fmt.Sprintf("/api/v1/tax-computation/2025-26?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, w.Code)

	var result business.ComputationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	// 1.2M salary + 60k medical allowance, all exempt under the cap
	assert.Equal(t, returnID.String(), result.ReturnID)
	assert.InDelta(t, 1260000.0, result.TotalIncome+(-result.ExemptIncome), 0.01)
	assert.InDelta(t, 1200000.0, result.TaxableIncome, 0.01)
	assert.Greater(t, result.NormalTax, 0.0)
	assert.Zero(t, result.Surcharge)
}

func TestComputeTaxSummary_BundlesFormsWithComputation(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.ExpectFormBundle(returnID, "2025-26", testutil.CreateTestFormBundle(returnID, "2025-26"))
	mockDB.ExpectRateRows("2025-26", nil)

	url := fmt.Sprintf("/api/v1/tax-computation/2025-26/summary?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Forms       *business.FormBundle `json:"forms"`
		Computation map[string]any       `json:"computation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.NotNil(t, summary.Forms)
	require.NotNil(t, summary.Forms.Income)
	assert.Contains(t, summary.Computation, "taxable_income")
	assert.Contains(t, summary.Computation, "tax_demanded")
	assert.NotContains(t, summary.Computation, "slab_breakdown")
}

func TestAdjustableData_AppliesLinksAndRates(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	bundle := testutil.CreateTestFormBundle(returnID, "2025-26")
	bundle.Income.DirectorshipFee = 500000
	mockDB.ExpectFormBundle(returnID, "2025-26", bundle)
	mockDB.ExpectRateRows("2025-26", nil)

	url := fmt.Sprintf("/api/v1/tax-computation/2025-26/adjustable-data?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Form    *business.AdjustableTaxForm    `json:"form"`
		Derived *business.AdjustableTaxDerived `json:"derived"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Form)
	require.NotNil(t, resp.Form.DirectorshipGrossReceipt)
	assert.InDelta(t, 500000.0, *resp.Form.DirectorshipGrossReceipt, 0.01)
	// directorship withheld at 20 percent
	assert.InDelta(t, 100000.0, resp.Derived.TaxCollected["directorship_fee_149_3"], 0.01)
	// employer-deducted salary tax passes through, never a rate product
	assert.InDelta(t, 30000.0, resp.Derived.TaxCollected["salary_149"], 0.01)
}

func TestUpdateLinks_MaterializesIncomeIntoReceipts(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	income := testutil.CreateTestIncomeForm(returnID, "2025-26")
	mockDB.ExpectIncomeForm(returnID, "2025-26", income)
	mockDB.ExpectAdjustableTaxForm(returnID, "2025-26", nil)
	mockDB.Querier.EXPECT().
		UpsertAdjustableTaxForm(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, form *business.AdjustableTaxForm) (*business.AdjustableTaxForm, error) {
			return form, nil
		}).
		Times(1)

	url := fmt.Sprintf("/api/v1/tax-computation/2025-26/update-links?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AdjustableTax *business.AdjustableTaxForm `json:"adjustable_tax"`
		AppliedLinks  []business.AppliedLink      `json:"applied_links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.AdjustableTax)
	require.NotNil(t, resp.AdjustableTax.SalaryGrossReceipt)
	assert.InDelta(t, 1200000.0, *resp.AdjustableTax.SalaryGrossReceipt, 0.01)
	assert.NotEmpty(t, resp.AppliedLinks)
}

func TestWealthReconciliation_MissingStatementReturns404(t *testing.T) {
	router, mockDB := newTestRouter(t)
	returnID := uuid.New()

	mockDB.Querier.EXPECT().
		GetWealthStatement(gomock.Any(), returnID, "2025-26").
		Return(nil, nil).
		Times(1)

	url := fmt.Sprintf("/api/v1/wealth-reconciliation/2025-26?return_id=%s", returnID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "wealth_statement")
}
