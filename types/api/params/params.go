// Package params holds request parameter shapes bound by the HTTP
// handlers.
package params

// RateUpdateParams is the body of an admin rate-row update.
type RateUpdateParams struct {
	FilerStatus string  `json:"filer_status" binding:"required,oneof=filer non_filer"`
	RateType    string  `json:"rate_type" binding:"required,oneof=progressive withholding capital_gains surcharge"`
	Category    string  `json:"rate_category" binding:"required"`
	NewRate     float64 `json:"new_rate" binding:"min=0,max=1"`
}
