package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/interfaces"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/api/responses"
)

type ComputationHandler struct {
	common             *CommonServices
	computationService interfaces.ComputationService
	linkerService      interfaces.LinkerService
	wealthService      interfaces.WealthService
}

// NewComputationHandler creates a handler with interface dependencies
func NewComputationHandler(
	common *CommonServices,
	computationService interfaces.ComputationService,
	linkerService interfaces.LinkerService,
	wealthService interfaces.WealthService,
) *ComputationHandler {
	return &ComputationHandler{
		common:             common,
		computationService: computationService,
		linkerService:      linkerService,
		wealthService:      wealthService,
	}
}

// ComputeTax runs the full tax computation for a return
// @Summary Compute tax for a return
// @Description Run the full computation pipeline over the stored forms for a return and tax year
// @Tags computation
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param filer_status query string false "Filer status (filer or non_filer)" default(filer)
// @Success 200 {object} business.ComputationResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tax-computation/{taxYear} [get]
func (h *ComputationHandler) ComputeTax(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}
	filerStatus, ok := filerStatusQuery(c)
	if !ok {
		return
	}

	result, err := h.computationService.ComputeForReturn(c.Request.Context(), returnID, taxYear, filerStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ComputeTaxSummary returns the complete cross-form summary
// @Summary Complete tax summary
// @Description Get every stored form together with the condensed computation figures in one response
// @Tags computation
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param filer_status query string false "Filer status (filer or non_filer)" default(filer)
// @Success 200 {object} responses.CompleteTaxSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tax-computation/{taxYear}/summary [get]
func (h *ComputationHandler) ComputeTaxSummary(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}
	filerStatus, ok := filerStatusQuery(c)
	if !ok {
		return
	}

	bundle, err := h.common.FormService.GetFormBundle(c.Request.Context(), returnID, taxYear)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rates, err := h.common.RateService.Resolve(c.Request.Context(), taxYear, filerStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result, err := h.computationService.Compute(bundle, rates)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.CompleteTaxSummary{
		Forms:       bundle,
		Computation: responses.NewTaxComputationSummary(result),
	})
}

// IncomeData returns the income form with derived fields
// @Summary Get computed income data
// @Description Get the stored income form and the annualised derived figures the engine computes from it
// @Tags computation
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} responses.IncomeFormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tax-computation/{taxYear}/income-data [get]
func (h *ComputationHandler) IncomeData(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	form, derived, err := h.common.FormService.GetIncomeForm(c.Request.Context(), returnID, taxYear)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if form == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "income form not found"})
		return
	}

	c.JSON(http.StatusOK, responses.IncomeFormResponse{Form: form, Derived: derived})
}

// AdjustableData returns the adjustable-tax form as the engine sees it
// @Summary Get computed adjustable tax data
// @Description Get the adjustable-tax form with cross-form links applied and per-category tax collected under the year's withholding rates
// @Tags computation
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param filer_status query string false "Filer status (filer or non_filer)" default(filer)
// @Success 200 {object} responses.AdjustableTaxDataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tax-computation/{taxYear}/adjustable-data [get]
func (h *ComputationHandler) AdjustableData(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}
	filerStatus, ok := filerStatusQuery(c)
	if !ok {
		return
	}

	form, derived, err := h.computationService.AdjustableTaxData(c.Request.Context(), returnID, taxYear, filerStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.AdjustableTaxDataResponse{Form: form, Derived: derived})
}

// UpdateLinks materializes cross-form links into the stored forms
// @Summary Materialize cross-form links
// @Description Copy declared income amounts into their matching adjustable-tax receipt fields where the taxpayer has not entered a value
// @Tags computation
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} responses.UpdateLinksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tax-computation/{taxYear}/update-links [post]
func (h *ComputationHandler) UpdateLinks(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	form, applied, err := h.linkerService.MaterializeLinks(c.Request.Context(), returnID, taxYear)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Log.Info("Materialized cross-form links",
		zap.String("return_id", returnID.String()),
		zap.String("tax_year", taxYear),
		zap.Int("applied", len(applied)))

	c.JSON(http.StatusOK, responses.UpdateLinksResponse{
		AdjustableTax: form,
		AppliedLinks:  applied,
	})
}

// WealthReconciliation reconciles the wealth statement against computed income
// @Summary Reconcile wealth statement
// @Description Check the declared net-worth movement against income, taxes and outflows for the year
// @Tags computation
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param filer_status query string false "Filer status (filer or non_filer)" default(filer)
// @Success 200 {object} business.WealthReconciliation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wealth-reconciliation/{taxYear} [get]
func (h *ComputationHandler) WealthReconciliation(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}
	filerStatus, ok := filerStatusQuery(c)
	if !ok {
		return
	}

	reconciliation, err := h.wealthService.Reconciliation(c.Request.Context(), returnID, taxYear, filerStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reconciliation)
}
