package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/interfaces"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/api/responses"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

type FormHandler struct {
	common      *CommonServices
	formService interfaces.FormService
}

// NewFormHandler creates a handler with interface dependencies
func NewFormHandler(common *CommonServices, formService interfaces.FormService) *FormHandler {
	return &FormHandler{
		common:      common,
		formService: formService,
	}
}

// GetIncomeForm returns the stored income form with derived fields
// @Summary Get income form
// @Description Get the stored income form and its recomputed derived fields
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} responses.IncomeFormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /forms/{taxYear}/income [get]
func (h *FormHandler) GetIncomeForm(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	form, derived, err := h.formService.GetIncomeForm(c.Request.Context(), returnID, taxYear)
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

// SaveIncomeForm validates and stores the income form
// @Summary Save income form
// @Description Validate, round and store the income form, returning the recomputed derived fields
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param form body business.IncomeForm true "Income form fields"
// @Success 200 {object} responses.IncomeFormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{taxYear}/income [put]
func (h *FormHandler) SaveIncomeForm(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	var form business.IncomeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	form.ReturnID = returnID
	form.TaxYear = taxYear

	saved, derived, err := h.formService.SaveIncomeForm(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.IncomeFormResponse{Form: saved, Derived: derived})
}

// SaveAdjustableTaxForm validates and stores the adjustable tax form
// @Summary Save adjustable tax form
// @Description Validate, round and store the adjustable-tax gross receipts
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param form body business.AdjustableTaxForm true "Adjustable tax form fields"
// @Success 200 {object} business.AdjustableTaxForm
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{taxYear}/adjustable-tax [put]
func (h *FormHandler) SaveAdjustableTaxForm(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	var form business.AdjustableTaxForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	form.ReturnID = returnID
	form.TaxYear = taxYear

	saved, err := h.formService.SaveAdjustableTaxForm(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SaveCapitalGainForm validates and stores the capital gain form
// @Summary Save capital gain form
// @Description Validate, round and store the per-category capital gain entries
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param form body business.CapitalGainForm true "Capital gain form fields"
// @Success 200 {object} business.CapitalGainForm
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{taxYear}/capital-gain [put]
func (h *FormHandler) SaveCapitalGainForm(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	var form business.CapitalGainForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	form.ReturnID = returnID
	form.TaxYear = taxYear

	saved, err := h.formService.SaveCapitalGainForm(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SaveReductionsForm validates and stores the reductions form
// @Summary Save reductions form
// @Description Validate, round and store the tax reductions form
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param form body business.ReductionsForm true "Reductions form fields"
// @Success 200 {object} business.ReductionsForm
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{taxYear}/reductions [put]
func (h *FormHandler) SaveReductionsForm(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	var form business.ReductionsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	form.ReturnID = returnID
	form.TaxYear = taxYear

	saved, err := h.formService.SaveReductionsForm(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SaveCreditsForm validates and stores the credits form
// @Summary Save credits form
// @Description Validate, round and store the tax credits form
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param form body business.CreditsForm true "Credits form fields"
// @Success 200 {object} business.CreditsForm
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{taxYear}/credits [put]
func (h *FormHandler) SaveCreditsForm(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	var form business.CreditsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	form.ReturnID = returnID
	form.TaxYear = taxYear

	saved, err := h.formService.SaveCreditsForm(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SaveDeductionsForm validates and stores the deductions form
// @Summary Save deductions form
// @Description Validate, round and store the allowable deductions form
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param form body business.DeductionsForm true "Deductions form fields"
// @Success 200 {object} business.DeductionsForm
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{taxYear}/deductions [put]
func (h *FormHandler) SaveDeductionsForm(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	var form business.DeductionsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	form.ReturnID = returnID
	form.TaxYear = taxYear

	saved, err := h.formService.SaveDeductionsForm(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SaveFinalTaxForm validates and stores the final tax form
// @Summary Save final tax form
// @Description Validate, round and store the final/fixed tax form
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param form body business.FinalTaxForm true "Final tax form fields"
// @Success 200 {object} business.FinalTaxForm
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{taxYear}/final-tax [put]
func (h *FormHandler) SaveFinalTaxForm(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	var form business.FinalTaxForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	form.ReturnID = returnID
	form.TaxYear = taxYear

	saved, err := h.formService.SaveFinalTaxForm(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SaveWealthStatement validates and stores the wealth statement
// @Summary Save wealth statement
// @Description Validate, round and store the wealth statement
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Param form body business.WealthStatement true "Wealth statement fields"
// @Success 200 {object} business.WealthStatement
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{taxYear}/wealth-statement [put]
func (h *FormHandler) SaveWealthStatement(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	var form business.WealthStatement
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	form.ReturnID = returnID
	form.TaxYear = taxYear

	saved, err := h.formService.SaveWealthStatement(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// getForm handles the shared read shape of the per-form GET
// endpoints: load, 404 when never saved, otherwise the bare form.
func getForm[T any](c *gin.Context, name string, load func(ctx context.Context, returnID uuid.UUID, taxYear string) (*T, error)) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	form, err := load(c.Request.Context(), returnID, taxYear)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if form == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: name + " form not found"})
		return
	}

	c.JSON(http.StatusOK, form)
}

// GetAdjustableTaxForm returns the stored adjustable tax form
// @Summary Get adjustable tax form
// @Tags forms
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} business.AdjustableTaxForm
// @Failure 404 {object} ErrorResponse
// @Router /forms/{taxYear}/adjustable-tax [get]
func (h *FormHandler) GetAdjustableTaxForm(c *gin.Context) {
	getForm(c, "adjustable_tax", h.formService.GetAdjustableTaxForm)
}

// GetCapitalGainForm returns the stored capital gain form
// @Summary Get capital gain form
// @Tags forms
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} business.CapitalGainForm
// @Failure 404 {object} ErrorResponse
// @Router /forms/{taxYear}/capital-gain [get]
func (h *FormHandler) GetCapitalGainForm(c *gin.Context) {
	getForm(c, "capital_gain", h.formService.GetCapitalGainForm)
}

// GetReductionsForm returns the stored reductions form
// @Summary Get reductions form
// @Tags forms
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} business.ReductionsForm
// @Failure 404 {object} ErrorResponse
// @Router /forms/{taxYear}/reductions [get]
func (h *FormHandler) GetReductionsForm(c *gin.Context) {
	getForm(c, "reductions", h.formService.GetReductionsForm)
}

// GetCreditsForm returns the stored credits form
// @Summary Get credits form
// @Tags forms
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} business.CreditsForm
// @Failure 404 {object} ErrorResponse
// @Router /forms/{taxYear}/credits [get]
func (h *FormHandler) GetCreditsForm(c *gin.Context) {
	getForm(c, "credits", h.formService.GetCreditsForm)
}

// GetDeductionsForm returns the stored deductions form
// @Summary Get deductions form
// @Tags forms
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} business.DeductionsForm
// @Failure 404 {object} ErrorResponse
// @Router /forms/{taxYear}/deductions [get]
func (h *FormHandler) GetDeductionsForm(c *gin.Context) {
	getForm(c, "deductions", h.formService.GetDeductionsForm)
}

// GetFinalTaxForm returns the stored final tax form
// @Summary Get final tax form
// @Tags forms
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} business.FinalTaxForm
// @Failure 404 {object} ErrorResponse
// @Router /forms/{taxYear}/final-tax [get]
func (h *FormHandler) GetFinalTaxForm(c *gin.Context) {
	getForm(c, "final_tax", h.formService.GetFinalTaxForm)
}

// GetWealthStatement returns the stored wealth statement
// @Summary Get wealth statement
// @Tags forms
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} business.WealthStatement
// @Failure 404 {object} ErrorResponse
// @Router /forms/{taxYear}/wealth-statement [get]
func (h *FormHandler) GetWealthStatement(c *gin.Context) {
	getForm(c, "wealth_statement", h.formService.GetWealthStatement)
}

// GetFormBundle returns every stored form for a return and year
// @Summary Get all forms
// @Description Get every stored form for a return and tax year in one response
// @Tags forms
// @Accept json
// @Produce json
// @Param taxYear path string true "Tax year (e.g., 2025-26)"
// @Param return_id query string true "Tax return UUID"
// @Success 200 {object} business.FormBundle
// @Failure 400 {object} ErrorResponse
// @Router /forms/{taxYear} [get]
func (h *FormHandler) GetFormBundle(c *gin.Context) {
	taxYear := taxYearParam(c)
	returnID, ok := returnIDQuery(c)
	if !ok {
		return
	}

	bundle, err := h.formService.GetFormBundle(c.Request.Context(), returnID, taxYear)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}
