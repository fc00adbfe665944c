package business

import (
	"fmt"
	"strings"
)

// SlabInfinity is the sentinel upper bound of the last progressive
// slab. Rate tables use it instead of an open interval so the slab
// list always covers [0, inf).
const SlabInfinity = 999999999999.0

// TaxSlab is one progressive bracket. Tax on income I falling in the
// slab is FixedAmount + (I - Min) * Rate.
type TaxSlab struct {
	Min         float64 `json:"min_amount"`
	Max         float64 `json:"max_amount"`
	Rate        float64 `json:"tax_rate"`
	FixedAmount float64 `json:"fixed_amount"`
}

// Contains reports whether income falls in this slab. The lower bound
// is exclusive and the upper bound inclusive, matching the FBR
// schedule; income zero belongs to the first slab.
func (s TaxSlab) Contains(income float64) bool {
	if income <= 0 {
		return s.Min == 0
	}
	return income > s.Min && (income <= s.Max || s.Max >= SlabInfinity)
}

// CapitalGainKey identifies a capital-gains rate by asset type,
// holding-period bucket and acquisition-date regime.
type CapitalGainKey struct {
	AssetType     string `json:"asset_type"`
	HoldingBucket string `json:"holding_bucket"`
	Regime        string `json:"regime"`
}

func (k CapitalGainKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.AssetType, k.HoldingBucket, k.Regime)
}

// MarshalText lets the key serve as a JSON map key.
func (k CapitalGainKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the asset:bucket:regime form.
func (k *CapitalGainKey) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ":")
	if len(parts) != 3 {
		return fmt.Errorf("capital gain key %q: want asset:bucket:regime", text)
	}
	k.AssetType, k.HoldingBucket, k.Regime = parts[0], parts[1], parts[2]
	return nil
}

// RateTable is the immutable rate configuration for one
// (tax year, filer status) pair. It is loaded once, validated, cached
// for the process lifetime and only ever read afterwards.
type RateTable struct {
	TaxYear     string      `json:"tax_year"`
	FilerStatus FilerStatus `json:"filer_status"`

	Slabs        []TaxSlab                  `json:"slabs"`
	Withholding  map[string]float64         `json:"withholding"`
	CapitalGains map[CapitalGainKey]float64 `json:"capital_gains"`

	SurchargeThreshold float64 `json:"surcharge_threshold"`
	SurchargeRate      float64 `json:"surcharge_rate"`
}

// WithholdingRate returns the rate for a statutory withholding
// category. A missing category resolves to 0: categories are added and
// removed year over year, and an absent one simply does not apply.
func (rt *RateTable) WithholdingRate(category string) float64 {
	return rt.Withholding[category]
}

// CapitalGainRate returns the rate for a capital-gains key, 0 when the
// combination is not taxed in this year.
func (rt *RateTable) CapitalGainRate(key CapitalGainKey) float64 {
	return rt.CapitalGains[key]
}

// RateRow is one row of the persisted rate configuration, the storage
// shape the rate service folds into a RateTable.
type RateRow struct {
	TaxYear     string  `json:"tax_year"`
	FilerStatus string  `json:"filer_status"`
	RateType    string  `json:"rate_type"` // progressive, withholding, capital_gains, surcharge
	Category    string  `json:"rate_category"`
	Rate        float64 `json:"tax_rate"`
	FixedAmount float64 `json:"fixed_amount"`
	MinAmount   float64 `json:"min_amount"`
	MaxAmount   float64 `json:"max_amount"`
	Description string  `json:"description"`
}
