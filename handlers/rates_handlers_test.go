package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

func TestGetRateTable_ServesEmbeddedDefaults(t *testing.T) {
	router, mockDB := newTestRouter(t)

	mockDB.ExpectRateRows("2025-26", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rates/2025-26", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RateTable *business.RateTable `json:"rate_table"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.RateTable)
	assert.Equal(t, "2025-26", resp.RateTable.TaxYear)
	assert.Len(t, resp.RateTable.Slabs, 6)
	assert.Zero(t, resp.RateTable.Slabs[0].Rate)
}

func TestGetRateTable_UnconfiguredYearIs500(t *testing.T) {
	router, mockDB := newTestRouter(t)

	mockDB.ExpectRateRows("1999-00", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rates/1999-00", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "rate configuration")
}

func TestUpdateRate_RejectsOutOfRangeRate(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{
		"filer_status":  "filer",
		"rate_type":     "withholding",
		"rate_category": "rent_section_155",
		"new_rate":      1.5,
	})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/rates/2025-26", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRate_UnknownRowIs404(t *testing.T) {
	router, mockDB := newTestRouter(t)

	mockDB.Querier.EXPECT().
		UpdateRateRow(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	body, _ := json.Marshal(map[string]any{
		"filer_status":  "filer",
		"rate_type":     "withholding",
		"rate_category": "no_such_category",
		"new_rate":      0.1,
	})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/rates/2025-26", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRate_PersistsAndReturnsRow(t *testing.T) {
	router, mockDB := newTestRouter(t)

	mockDB.Querier.EXPECT().
		UpdateRateRow(gomock.Any(), db.UpdateRateRowParams{
			TaxYear:     "2025-26",
			FilerStatus: "filer",
			RateType:    "withholding",
			Category:    "rent_section_155",
			NewRate:     0.12,
		}).
		Return(&business.RateRow{
			TaxYear:     "2025-26",
			FilerStatus: "filer",
			RateType:    "withholding",
			Category:    "rent_section_155",
			Rate:        0.12,
		}, nil).
		Times(1)

	body, _ := json.Marshal(map[string]any{
		"filer_status":  "filer",
		"rate_type":     "withholding",
		"rate_category": "rent_section_155",
		"new_rate":      0.12,
	})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/rates/2025-26", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var row business.RateRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))
	assert.Equal(t, 0.12, row.Rate)
}
