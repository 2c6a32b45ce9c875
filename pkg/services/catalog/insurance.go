package catalog

import (
	"sort"
	"strings"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Policies is the read-only insurance policy catalog: provider cost-sharing
// rules plus the payment plan templates offered for financing.
type Policies interface {
	// GetInsuranceRule returns the rule for a named provider. The empty
	// name and the sentinel "none" (any casing) report false, the same as
	// a provider the catalog has never heard of.
	GetInsuranceRule(provider string) (domain.InsuranceProviderRule, bool)
	// IsCovered reports whether the provider's policy covers the procedure.
	IsCovered(provider, procedureID string) bool
	// PlanTemplates returns every template whose minimum financeable
	// amount is at or below the given amount, in ascending duration order.
	PlanTemplates(amount decimal.Decimal) []domain.PaymentPlanTemplate
	// Providers lists the known provider names in lexical order.
	Providers() []string
}

type policyCatalog struct {
	rules     map[string]domain.InsuranceProviderRule
	templates []domain.PaymentPlanTemplate
}

// NewPolicies returns the built-in insurance policy catalog.
func NewPolicies() Policies {
	return &policyCatalog{
		rules:     defaultProviderRules(),
		templates: defaultPlanTemplates(),
	}
}

func (c *policyCatalog) GetInsuranceRule(provider string) (domain.InsuranceProviderRule, bool) {
	if provider == "" || strings.EqualFold(provider, "none") {
		return domain.InsuranceProviderRule{}, false
	}
	rule, ok := c.rules[provider]
	return rule, ok
}

func (c *policyCatalog) IsCovered(provider, procedureID string) bool {
	rule, ok := c.GetInsuranceRule(provider)
	if !ok {
		return false
	}
	return rule.Covers(procedureID)
}

func (c *policyCatalog) PlanTemplates(amount decimal.Decimal) []domain.PaymentPlanTemplate {
	var eligible []domain.PaymentPlanTemplate
	for _, t := range c.templates {
		if t.MinAmount.LessThanOrEqual(amount) {
			eligible = append(eligible, t)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].DurationMonths < eligible[j].DurationMonths
	})
	return eligible
}

func (c *policyCatalog) Providers() []string {
	names := make([]string, 0, len(c.rules))
	for name := range c.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
