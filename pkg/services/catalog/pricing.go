package catalog

import (
	"sort"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Pricing is the read-only procedure pricing catalog. Implementations are
// built once at process start and safe for concurrent use without locking.
type Pricing interface {
	// GetBasePricing returns the base fee components for a procedure,
	// or false when the procedure is unknown to the catalog.
	GetBasePricing(procedureID string) (domain.ProcedureBasePricing, bool)
	// GetRegionalMultiplier returns the cost multiplier for a region.
	// Unknown regions fall back to 1.00.
	GetRegionalMultiplier(region domain.Region) decimal.Decimal
	// Procedures lists the catalog's procedure ids in lexical order.
	Procedures() []string
}

type pricingCatalog struct {
	basePricing map[string]domain.ProcedureBasePricing
	multipliers map[domain.Region]decimal.Decimal
}

// NewPricing returns the built-in pricing catalog.
func NewPricing() Pricing {
	return &pricingCatalog{
		basePricing: defaultBasePricing(),
		multipliers: defaultMultipliers(),
	}
}

func (p *pricingCatalog) GetBasePricing(procedureID string) (domain.ProcedureBasePricing, bool) {
	pricing, ok := p.basePricing[procedureID]
	return pricing, ok
}

func (p *pricingCatalog) GetRegionalMultiplier(region domain.Region) decimal.Decimal {
	if m, ok := p.multipliers[region]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

func (p *pricingCatalog) Procedures() []string {
	ids := make([]string, 0, len(p.basePricing))
	for id := range p.basePricing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
