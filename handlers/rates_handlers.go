package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/interfaces"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/api/params"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/api/responses"
)

type RatesHandler struct {
	common      *CommonServices
	rateService interfaces.RateService
}

// NewRatesHandler creates a handler with interface dependencies
func NewRatesHandler(common *CommonServices, rateService interfaces.RateService) *RatesHandler {
	return &RatesHandler{
		common:      common,
		rateService: rateService,
	}
}

// GetRateTable returns the resolved rate table for a tax year
// @Summary Get rate table
// @Description Get the resolved slab, withholding, capital-gains and surcharge rates for a tax year
// @Tags rates
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param filer_status query string false "Filer status (filer or non_filer)" default(filer)
// @Success 200 {object} responses.RateTableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rates/{taxYear} [get]
func (h *RatesHandler) GetRateTable(c *gin.Context) {
	taxYear := taxYearParam(c)
	filerStatus, ok := filerStatusQuery(c)
	if !ok {
		return
	}

	table, err := h.rateService.Resolve(c.Request.Context(), taxYear, filerStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.RateTableResponse{RateTable: table})
}

// UpdateRate updates one stored rate row and invalidates the cache
// @Summary Update a rate row
// @Description Update one stored rate value for a tax year; the cached rate table for that year is rebuilt on next use
// @Tags rates
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param body body params.RateUpdateParams true "Rate row key and new rate"
// @Success 200 {object} business.RateRow
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /rates/{taxYear} [patch]
func (h *RatesHandler) UpdateRate(c *gin.Context) {
	taxYear := taxYearParam(c)

	var req params.RateUpdateParams
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	row, err := h.rateService.UpdateRate(c.Request.Context(), db.UpdateRateRowParams{
		TaxYear:     taxYear,
		FilerStatus: req.FilerStatus,
		RateType:    req.RateType,
		Category:    req.Category,
		NewRate:     req.NewRate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no stored rate row matches the given key"})
		return
	}

	logger.Log.Info("Updated rate row",
		zap.String("tax_year", taxYear),
		zap.String("filer_status", req.FilerStatus),
		zap.String("rate_type", req.RateType),
		zap.String("rate_category", req.Category),
		zap.Float64("new_rate", req.NewRate))

	c.JSON(http.StatusOK, row)
}
