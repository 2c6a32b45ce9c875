package catalog

import (
	"testing"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricing_GetBasePricing(t *testing.T) {
	p := NewPricing()

	pricing, ok := p.GetBasePricing("rhinoplasty-001")
	require.True(t, ok)
	assert.True(t, pricing.SurgeonFee.Equal(decimal.RequireFromString("5000")))
	assert.True(t, pricing.FacilityFee.Equal(decimal.RequireFromString("2000")))
	assert.True(t, pricing.AnesthesiaFee.Equal(decimal.RequireFromString("1000")))
	assert.True(t, pricing.PostOpCareFee.Equal(decimal.RequireFromString("500")))

	_, ok = p.GetBasePricing("unknown-999")
	assert.False(t, ok)
}

func TestPricing_GetRegionalMultiplier(t *testing.T) {
	p := NewPricing()

	assert.True(t, p.GetRegionalMultiplier(domain.RegionWest).Equal(decimal.RequireFromString("1.30")))
	assert.True(t, p.GetRegionalMultiplier(domain.RegionSouthwest).Equal(decimal.RequireFromString("1.00")))
	// Unknown regions fall back to a neutral multiplier.
	assert.True(t, p.GetRegionalMultiplier(domain.Region("atlantis")).Equal(decimal.NewFromInt(1)))
}

func TestPricing_Procedures_Sorted(t *testing.T) {
	ids := NewPricing().Procedures()

	require.NotEmpty(t, ids)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestPolicies_GetInsuranceRule(t *testing.T) {
	p := NewPolicies()

	rule, ok := p.GetInsuranceRule("Blue Cross Blue Shield")
	require.True(t, ok)
	assert.True(t, rule.CoverageRate.Equal(decimal.RequireFromString("0.80")))
	assert.True(t, rule.Deductible.Equal(decimal.RequireFromString("1500")))
	assert.True(t, rule.OutOfPocketMax.Equal(decimal.RequireFromString("6000")))

	tests := []struct {
		name     string
		provider string
	}{
		{name: "empty", provider: ""},
		{name: "sentinel none", provider: "None"},
		{name: "sentinel none lowercase", provider: "none"},
		{name: "unknown", provider: "Acme Health"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := p.GetInsuranceRule(tc.provider)
			assert.False(t, ok)
		})
	}
}

func TestPolicies_IsCovered(t *testing.T) {
	p := NewPolicies()

	assert.True(t, p.IsCovered("Blue Cross Blue Shield", "cleft-lip-repair-001"))
	assert.False(t, p.IsCovered("Blue Cross Blue Shield", "rhinoplasty-001"))
	assert.False(t, p.IsCovered("None", "cleft-lip-repair-001"))
	assert.False(t, p.IsCovered("Acme Health", "cleft-lip-repair-001"))
}

func TestPolicies_PlanTemplates(t *testing.T) {
	p := NewPolicies()

	t.Run("filters by minimum amount", func(t *testing.T) {
		templates := p.PlanTemplates(decimal.RequireFromString("1000"))
		require.Len(t, templates, 2)
		assert.Equal(t, 6, templates[0].DurationMonths)
		assert.Equal(t, 12, templates[1].DurationMonths)
	})

	t.Run("everything qualifies for a large balance", func(t *testing.T) {
		templates := p.PlanTemplates(decimal.RequireFromString("50000"))
		require.Len(t, templates, 4)
		for i := 1; i < len(templates); i++ {
			assert.Greater(t, templates[i].DurationMonths, templates[i-1].DurationMonths)
		}
	})

	t.Run("nothing below every minimum", func(t *testing.T) {
		assert.Empty(t, p.PlanTemplates(decimal.RequireFromString("499.99")))
	})
}
