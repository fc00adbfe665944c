package testutil

import (
	"github.com/google/uuid"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// CreateTestIncomeForm builds a modest salaried-taxpayer income form:
// annual salary of 1.2M rupees plus a small medical allowance.
func CreateTestIncomeForm(returnID uuid.UUID, taxYear string) *business.IncomeForm {
	return &business.IncomeForm{
		ReturnID:                returnID,
		TaxYear:                 taxYear,
		MonthlyBasicSalary:      100000,
		MonthlyMedicalAllowance: 5000,
		SalaryTaxDeducted:       30000,
	}
}

// CreateTestFormBundle builds the minimal bundle the computation
// pipeline accepts: an income form with every optional form absent.
func CreateTestFormBundle(returnID uuid.UUID, taxYear string) *business.FormBundle {
	return &business.FormBundle{
		ReturnID: returnID,
		TaxYear:  taxYear,
		Income:   CreateTestIncomeForm(returnID, taxYear),
	}
}

// CreateTestWealthStatement builds a wealth statement whose net-worth
// movement is left for the test to tune.
func CreateTestWealthStatement(returnID uuid.UUID, taxYear string) *business.WealthStatement {
	return &business.WealthStatement{
		ReturnID:         returnID,
		TaxYear:          taxYear,
		OpeningNetWorth:  1000000,
		PersonalExpenses: 600000,
		TotalAssets:      1800000,
		TotalLiabilities: 100000,
	}
}
