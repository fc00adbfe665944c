package helpers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/helpers"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want float64
	}{
		{name: "plain number", raw: 1234.5, want: 1234.5},
		{name: "rounds to 2 decimal places", raw: 1234.567, want: 1234.57},
		{name: "integer", raw: 42, want: 42},
		{name: "int64", raw: int64(42), want: 42},
		{name: "numeric string", raw: "1234.56", want: 1234.56},
		{name: "string with thousands separators", raw: "1,234,567.89", want: 1234567.89},
		{name: "string rounds exactly", raw: "1234567.895", want: 1234567.9},
		{name: "empty string", raw: "", want: 0},
		{name: "whitespace string", raw: "   ", want: 0},
		{name: "nil", raw: nil, want: 0},
		{name: "non-numeric string collapses to zero", raw: "abc", want: 0},
		{name: "negative collapses to zero", raw: -500.0, want: 0},
		{name: "negative string collapses to zero", raw: "-500", want: 0},
		{name: "NaN collapses to zero", raw: math.NaN(), want: 0},
		{name: "infinity collapses to zero", raw: math.Inf(1), want: 0},
		{name: "unsupported type collapses to zero", raw: []string{"x"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.Sanitize(tt.raw))
		})
	}
}

func TestSanitizeStrict(t *testing.T) {
	t.Run("valid value passes through", func(t *testing.T) {
		got, err := helpers.SanitizeStrict("monthly_basic_salary", "1,500.255")
		require.NoError(t, err)
		assert.Equal(t, 1500.26, got)
	})

	t.Run("negative is rejected with field name", func(t *testing.T) {
		_, err := helpers.SanitizeStrict("monthly_basic_salary", -1.0)
		require.Error(t, err)
		var verr *helpers.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "monthly_basic_salary", verr.Field)
	})

	t.Run("non-numeric is rejected", func(t *testing.T) {
		_, err := helpers.SanitizeStrict("gratuity", "twelve")
		var verr *helpers.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "gratuity", verr.Field)
	})

	t.Run("zero is allowed", func(t *testing.T) {
		got, err := helpers.SanitizeStrict("gratuity", 0.0)
		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestSanitizeRate(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "sub-percent precision survives", raw: 0.125, want: 0.125},
		{name: "three decimal places survive", raw: 0.075, want: 0.075},
		{name: "zero", raw: 0, want: 0},
		{name: "full rate", raw: 1, want: 1},
		{name: "negative collapses to zero", raw: -0.1, want: 0},
		{name: "above one collapses to zero", raw: 1.5, want: 0},
		{name: "NaN collapses to zero", raw: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.SanitizeRate(tt.raw))
		})
	}
}

func TestSanitizeRateStrict(t *testing.T) {
	t.Run("fraction passes through unrounded", func(t *testing.T) {
		got, err := helpers.SanitizeRateStrict("sukuk_bonds_tax_rate", 0.125)
		require.NoError(t, err)
		assert.Equal(t, 0.125, got)
	})

	t.Run("above one is rejected with field name", func(t *testing.T) {
		_, err := helpers.SanitizeRateStrict("sukuk_bonds_tax_rate", 12.5)
		require.Error(t, err)
		var verr *helpers.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "sukuk_bonds_tax_rate", verr.Field)
	})

	t.Run("negative is rejected", func(t *testing.T) {
		_, err := helpers.SanitizeRateStrict("debt_securities_tax_rate", -0.15)
		require.Error(t, err)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, helpers.Round2(1.234))
	assert.Equal(t, 1.24, helpers.Round2(1.236))
	assert.Equal(t, -1.24, helpers.Round2(-1.236))
	assert.Equal(t, 0.0, helpers.Round2(0))
}
