package catalog

import (
	"fmt"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config is the optional catalog override file. Any section present replaces
// the corresponding built-in table wholesale; absent sections keep defaults.
// Monetary values and rates are decimal strings so the file round-trips
// without binary-float drift.
type Config struct {
	Procedures  []ProcedureConfig  `mapstructure:"procedures"`
	Multipliers map[string]string  `mapstructure:"multipliers"`
	Providers   []ProviderConfig   `mapstructure:"providers"`
	Plans       []PlanConfig       `mapstructure:"payment_plans"`
	ZipRegions  map[string]string  `mapstructure:"zip_regions"`
}

type ProcedureConfig struct {
	ID            string `mapstructure:"id"`
	SurgeonFee    string `mapstructure:"surgeon_fee"`
	FacilityFee   string `mapstructure:"facility_fee"`
	AnesthesiaFee string `mapstructure:"anesthesia_fee"`
	PostOpCareFee string `mapstructure:"post_op_care_fee"`
}

type ProviderConfig struct {
	Name              string   `mapstructure:"name"`
	CoverageRate      string   `mapstructure:"coverage_rate"`
	Deductible        string   `mapstructure:"deductible"`
	CopayRate         string   `mapstructure:"copay_rate"`
	OutOfPocketMax    string   `mapstructure:"out_of_pocket_max"`
	CoveredProcedures []string `mapstructure:"covered_procedures"`
}

type PlanConfig struct {
	Name           string `mapstructure:"name"`
	DurationMonths int    `mapstructure:"duration_months"`
	InterestRate   string `mapstructure:"interest_rate"`
	MinAmount      string `mapstructure:"min_amount"`
}

// LoadConfig reads a catalog override file. An empty path yields a zero
// Config, which leaves every built-in table in place.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog config: %w", err)
	}
	return &cfg, nil
}

// NewPricingFromConfig builds a pricing catalog with the config's overrides
// applied on top of the built-in tables.
func NewPricingFromConfig(cfg *Config) (Pricing, error) {
	c := &pricingCatalog{
		basePricing: defaultBasePricing(),
		multipliers: defaultMultipliers(),
	}

	if len(cfg.Procedures) > 0 {
		table := make(map[string]domain.ProcedureBasePricing, len(cfg.Procedures))
		for _, p := range cfg.Procedures {
			fees, err := parseAmounts(p.SurgeonFee, p.FacilityFee, p.AnesthesiaFee, p.PostOpCareFee)
			if err != nil {
				return nil, fmt.Errorf("procedure %q: %w", p.ID, err)
			}
			table[p.ID] = domain.ProcedureBasePricing{
				ProcedureID:   p.ID,
				SurgeonFee:    fees[0],
				FacilityFee:   fees[1],
				AnesthesiaFee: fees[2],
				PostOpCareFee: fees[3],
			}
		}
		c.basePricing = table
	}

	if len(cfg.Multipliers) > 0 {
		table := make(map[domain.Region]decimal.Decimal, len(cfg.Multipliers))
		for region, raw := range cfg.Multipliers {
			m, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("multiplier for region %q: %w", region, err)
			}
			if !m.IsPositive() {
				return nil, fmt.Errorf("multiplier for region %q must be positive, got %s", region, raw)
			}
			table[domain.Region(region)] = m
		}
		c.multipliers = table
	}

	return c, nil
}

// NewPoliciesFromConfig builds a policy catalog with the config's overrides
// applied on top of the built-in tables.
func NewPoliciesFromConfig(cfg *Config) (Policies, error) {
	c := &policyCatalog{
		rules:     defaultProviderRules(),
		templates: defaultPlanTemplates(),
	}

	if len(cfg.Providers) > 0 {
		table := make(map[string]domain.InsuranceProviderRule, len(cfg.Providers))
		for _, p := range cfg.Providers {
			amounts, err := parseAmounts(p.CoverageRate, p.Deductible, p.CopayRate, p.OutOfPocketMax)
			if err != nil {
				return nil, fmt.Errorf("provider %q: %w", p.Name, err)
			}
			table[p.Name] = domain.InsuranceProviderRule{
				Provider:          p.Name,
				CoverageRate:      amounts[0],
				Deductible:        amounts[1],
				CopayRate:         amounts[2],
				OutOfPocketMax:    amounts[3],
				CoveredProcedures: procedureSet(p.CoveredProcedures...),
			}
		}
		c.rules = table
	}

	if len(cfg.Plans) > 0 {
		templates := make([]domain.PaymentPlanTemplate, 0, len(cfg.Plans))
		for _, p := range cfg.Plans {
			amounts, err := parseAmounts(p.InterestRate, p.MinAmount)
			if err != nil {
				return nil, fmt.Errorf("payment plan %q: %w", p.Name, err)
			}
			if p.DurationMonths <= 0 {
				return nil, fmt.Errorf("payment plan %q: duration must be positive", p.Name)
			}
			templates = append(templates, domain.PaymentPlanTemplate{
				Name:               p.Name,
				DurationMonths:     p.DurationMonths,
				AnnualInterestRate: amounts[0],
				MinAmount:          amounts[1],
			})
		}
		c.templates = templates
	}

	return c, nil
}

// ZipRegionTable returns the config's exact ZIP table, if any, typed for the
// region resolver.
func (c *Config) ZipRegionTable() map[string]domain.Region {
	if len(c.ZipRegions) == 0 {
		return nil
	}
	table := make(map[string]domain.Region, len(c.ZipRegions))
	for zip, region := range c.ZipRegions {
		table[zip] = domain.Region(region)
	}
	return table
}

func parseAmounts(values ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", v, err)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("amount %q must not be negative", v)
		}
		out = append(out, d)
	}
	return out, nil
}
