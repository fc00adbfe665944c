package services

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/constants"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

//go:embed rate_defaults.yaml
var rateDefaultsYAML []byte

// RateService resolves the immutable rate table for a
// (tax year, filer status) pair. Persisted rate rows win; years with
// no rows fall back to the embedded FBR defaults. Resolved tables are
// validated once and cached for the process lifetime, so a computation
// never observes a half-updated schedule.
type RateService struct {
	queries db.Querier
	logger  *zap.Logger

	mu    sync.RWMutex
	cache map[string]*business.RateTable
}

// NewRateService creates a new rate service
func NewRateService(queries db.Querier) *RateService {
	return &RateService{
		queries: queries,
		logger:  logger.Log,
		cache:   make(map[string]*business.RateTable),
	}
}

// Resolve returns the validated rate table for the year and filer
// status. An unknown year with no embedded default is a
// ConfigurationError, never a silent zero-rate table.
func (s *RateService) Resolve(ctx context.Context, taxYear string, filerStatus business.FilerStatus) (*business.RateTable, error) {
	key := taxYear + "|" + string(filerStatus)

	s.mu.RLock()
	if table, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return table, nil
	}
	s.mu.RUnlock()

	rows, err := s.queries.ListRateRows(ctx, taxYear)
	if err != nil {
		return nil, err
	}

	var table *business.RateTable
	if len(rows) > 0 {
		table, err = foldRateRows(taxYear, filerStatus, rows)
	} else {
		table, err = defaultRateTable(taxYear, filerStatus)
	}
	if err != nil {
		return nil, err
	}
	if err := validateRateTable(table); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another resolver may have raced us here; first write wins so
	// callers holding the earlier pointer stay consistent.
	if cached, ok := s.cache[key]; ok {
		return cached, nil
	}
	s.cache[key] = table

	s.logger.Info("Rate table resolved",
		zap.String("tax_year", taxYear),
		zap.String("filer_status", string(filerStatus)),
		zap.Int("slabs", len(table.Slabs)),
		zap.Bool("from_defaults", len(rows) == 0))

	return table, nil
}

// Invalidate drops any cached tables for a tax year. Called after an
// admin rate update so the next resolve re-reads storage.
func (s *RateService) Invalidate(taxYear string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, taxYear+"|"+constants.FilerStatusFiler)
	delete(s.cache, taxYear+"|"+constants.FilerStatusNonFiler)
}

// foldRateRows builds a RateTable from persisted rows, keeping only
// the rows matching the filer status.
func foldRateRows(taxYear string, filerStatus business.FilerStatus, rows []business.RateRow) (*business.RateTable, error) {
	table := &business.RateTable{
		TaxYear:      taxYear,
		FilerStatus:  filerStatus,
		Withholding:  make(map[string]float64),
		CapitalGains: make(map[business.CapitalGainKey]float64),
	}

	for _, row := range rows {
		if row.FilerStatus != string(filerStatus) {
			continue
		}
		switch row.RateType {
		case "progressive":
			max := row.MaxAmount
			if max <= 0 {
				max = business.SlabInfinity
			}
			table.Slabs = append(table.Slabs, business.TaxSlab{
				Min:         row.MinAmount,
				Max:         max,
				Rate:        row.Rate,
				FixedAmount: row.FixedAmount,
			})
		case "withholding":
			table.Withholding[row.Category] = row.Rate
		case "capital_gains":
			key, err := parseCapitalGainCategory(row.Category)
			if err != nil {
				return nil, &ConfigurationError{TaxYear: taxYear, Detail: err.Error()}
			}
			table.CapitalGains[key] = row.Rate
		case "surcharge":
			table.SurchargeRate = row.Rate
			table.SurchargeThreshold = row.MinAmount
		default:
			return nil, &ConfigurationError{
				TaxYear: taxYear,
				Detail:  fmt.Sprintf("unknown rate type %q", row.RateType),
			}
		}
	}

	sort.Slice(table.Slabs, func(i, j int) bool {
		return table.Slabs[i].Min < table.Slabs[j].Min
	})
	return table, nil
}

// parseCapitalGainCategory splits an "asset:bucket:regime" category.
func parseCapitalGainCategory(category string) (business.CapitalGainKey, error) {
	parts := strings.Split(category, ":")
	if len(parts) != 3 {
		return business.CapitalGainKey{}, fmt.Errorf("malformed capital gains category %q", category)
	}
	return business.CapitalGainKey{
		AssetType:     parts[0],
		HoldingBucket: parts[1],
		Regime:        parts[2],
	}, nil
}

// validateRateTable rejects tables a computation cannot trust: no
// slabs, a first slab not anchored at zero, gaps or overlaps between
// slabs, or a bounded final slab.
func validateRateTable(table *business.RateTable) error {
	if len(table.Slabs) == 0 {
		return &ConfigurationError{TaxYear: table.TaxYear, Detail: "no progressive slabs configured"}
	}
	if table.Slabs[0].Min != 0 {
		return &ConfigurationError{
			TaxYear: table.TaxYear,
			Detail:  fmt.Sprintf("first slab starts at %.0f, not 0", table.Slabs[0].Min),
		}
	}
	for i := 1; i < len(table.Slabs); i++ {
		if table.Slabs[i].Min != table.Slabs[i-1].Max {
			return &ConfigurationError{
				TaxYear: table.TaxYear,
				Detail: fmt.Sprintf("slab gap: %.0f-%.0f followed by %.0f-%.0f",
					table.Slabs[i-1].Min, table.Slabs[i-1].Max, table.Slabs[i].Min, table.Slabs[i].Max),
			}
		}
	}
	if last := table.Slabs[len(table.Slabs)-1]; last.Max < business.SlabInfinity {
		return &ConfigurationError{
			TaxYear: table.TaxYear,
			Detail:  fmt.Sprintf("last slab bounded at %.0f", last.Max),
		}
	}
	return nil
}

// Embedded defaults document shape.
type rateDefaultsDoc struct {
	Years map[string]map[string]rateDefaultsEntry `yaml:"years"`
}

type rateDefaultsEntry struct {
	Slabs []struct {
		Min   float64 `yaml:"min"`
		Max   float64 `yaml:"max"`
		Rate  float64 `yaml:"rate"`
		Fixed float64 `yaml:"fixed"`
	} `yaml:"slabs"`
	Withholding  map[string]float64 `yaml:"withholding"`
	CapitalGains map[string]float64 `yaml:"capital_gains"`
	Surcharge    struct {
		Threshold float64 `yaml:"threshold"`
		Rate      float64 `yaml:"rate"`
	} `yaml:"surcharge"`
}

func defaultRateTable(taxYear string, filerStatus business.FilerStatus) (*business.RateTable, error) {
	var doc rateDefaultsDoc
	if err := yaml.Unmarshal(rateDefaultsYAML, &doc); err != nil {
		return nil, &ConfigurationError{TaxYear: taxYear, Detail: "embedded rate defaults unreadable: " + err.Error()}
	}

	year, ok := doc.Years[taxYear]
	if !ok {
		return nil, &ConfigurationError{TaxYear: taxYear, Detail: "no rate configuration for tax year"}
	}
	entry, ok := year[string(filerStatus)]
	if !ok {
		return nil, &ConfigurationError{
			TaxYear: taxYear,
			Detail:  fmt.Sprintf("no rate configuration for filer status %q", filerStatus),
		}
	}

	table := &business.RateTable{
		TaxYear:            taxYear,
		FilerStatus:        filerStatus,
		Withholding:        make(map[string]float64, len(entry.Withholding)),
		CapitalGains:       make(map[business.CapitalGainKey]float64, len(entry.CapitalGains)),
		SurchargeThreshold: entry.Surcharge.Threshold,
		SurchargeRate:      entry.Surcharge.Rate,
	}
	for _, slab := range entry.Slabs {
		max := slab.Max
		if max <= 0 {
			max = business.SlabInfinity
		}
		table.Slabs = append(table.Slabs, business.TaxSlab{
			Min:         slab.Min,
			Max:         max,
			Rate:        slab.Rate,
			FixedAmount: slab.Fixed,
		})
	}
	for category, rate := range entry.Withholding {
		table.Withholding[category] = rate
	}
	for category, rate := range entry.CapitalGains {
		key, err := parseCapitalGainCategory(category)
		if err != nil {
			return nil, &ConfigurationError{TaxYear: taxYear, Detail: err.Error()}
		}
		table.CapitalGains[key] = rate
	}
	return table, nil
}

// UpdateRate changes one persisted rate row and invalidates the cached
// tables for its year. Returns (nil, nil) when no such row exists.
func (s *RateService) UpdateRate(ctx context.Context, arg db.UpdateRateRowParams) (*business.RateRow, error) {
	row, err := s.queries.UpdateRateRow(ctx, arg)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	s.Invalidate(arg.TaxYear)

	s.logger.Info("Rate row updated",
		zap.String("tax_year", arg.TaxYear),
		zap.String("rate_type", arg.RateType),
		zap.String("category", arg.Category),
		zap.Float64("new_rate", arg.NewRate))

	return row, nil
}
