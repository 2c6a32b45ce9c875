package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	p, err := NewPricingFromConfig(cfg)
	require.NoError(t, err)

	_, ok := p.GetBasePricing("rhinoplasty-001")
	assert.True(t, ok)
	assert.Nil(t, cfg.ZipRegionTable())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewPricingFromConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
procedures:
  - id: septoplasty-001
    surgeon_fee: "3500"
    facility_fee: "1800"
    anesthesia_fee: "900"
    post_op_care_fee: "400"
multipliers:
  northeast: "1.40"
  southeast: "0.95"
  midwest: "0.90"
  southwest: "1.00"
  west: "1.30"
zip_regions:
  "60601": midwest
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	p, err := NewPricingFromConfig(cfg)
	require.NoError(t, err)

	// Procedure section replaces the built-in table wholesale.
	_, ok := p.GetBasePricing("rhinoplasty-001")
	assert.False(t, ok)

	pricing, ok := p.GetBasePricing("septoplasty-001")
	require.True(t, ok)
	assert.True(t, pricing.SurgeonFee.Equal(decimal.RequireFromString("3500")))

	assert.True(t, p.GetRegionalMultiplier(domain.RegionNortheast).Equal(decimal.RequireFromString("1.40")))

	table := cfg.ZipRegionTable()
	require.NotNil(t, table)
	assert.Equal(t, domain.RegionMidwest, table["60601"])
}

func TestNewPricingFromConfig_RejectsBadAmounts(t *testing.T) {
	cfg := &Config{
		Procedures: []ProcedureConfig{{
			ID:            "bad-001",
			SurgeonFee:    "not-a-number",
			FacilityFee:   "1",
			AnesthesiaFee: "1",
			PostOpCareFee: "1",
		}},
	}
	_, err := NewPricingFromConfig(cfg)
	assert.Error(t, err)

	cfg = &Config{Multipliers: map[string]string{"west": "-1.30"}}
	_, err = NewPricingFromConfig(cfg)
	assert.Error(t, err)
}

func TestNewPoliciesFromConfig_Overrides(t *testing.T) {
	cfg := &Config{
		Providers: []ProviderConfig{{
			Name:              "Kaiser Permanente",
			CoverageRate:      "0.85",
			Deductible:        "1000",
			CopayRate:         "0.15",
			OutOfPocketMax:    "5000",
			CoveredProcedures: []string{"cleft-lip-repair-001"},
		}},
		Plans: []PlanConfig{
			{Name: "18-Month Plan", DurationMonths: 18, InterestRate: "0.06", MinAmount: "750"},
		},
	}

	p, err := NewPoliciesFromConfig(cfg)
	require.NoError(t, err)

	rule, ok := p.GetInsuranceRule("Kaiser Permanente")
	require.True(t, ok)
	assert.True(t, rule.CoverageRate.Equal(decimal.RequireFromString("0.85")))
	assert.True(t, rule.Covers("cleft-lip-repair-001"))

	_, ok = p.GetInsuranceRule("Blue Cross Blue Shield")
	assert.False(t, ok)

	templates := p.PlanTemplates(decimal.RequireFromString("800"))
	require.Len(t, templates, 1)
	assert.Equal(t, 18, templates[0].DurationMonths)
}

func TestNewPoliciesFromConfig_RejectsBadPlans(t *testing.T) {
	cfg := &Config{
		Plans: []PlanConfig{
			{Name: "Broken", DurationMonths: 0, InterestRate: "0.05", MinAmount: "100"},
		},
	}
	_, err := NewPoliciesFromConfig(cfg)
	assert.Error(t, err)
}
