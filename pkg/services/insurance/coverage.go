package insurance

import (
	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/de-tools/care-atlas/pkg/services/catalog"
	"github.com/shopspring/decimal"
)

// Calculator splits a total procedure cost between insurer and patient.
type Calculator interface {
	Compute(totalCost decimal.Decimal, provider, procedureID string) domain.InsuranceCoverage
}

type calculator struct {
	policies catalog.Policies
}

func NewCalculator(policies catalog.Policies) Calculator {
	return &calculator{policies: policies}
}

// Compute evaluates the three coverage branches in order: no usable insurance
// rule, rule present but procedure not covered, and fully covered. It never
// fails; an unknown provider degrades to the uninsured branch. Whatever the
// branch, EstimatedCoverage + PatientResponsibility equals totalCost.
func (c *calculator) Compute(totalCost decimal.Decimal, provider, procedureID string) domain.InsuranceCoverage {
	rule, ok := c.policies.GetInsuranceRule(provider)
	if !ok {
		return uninsured(totalCost, provider)
	}

	if !rule.Covers(procedureID) {
		return notCovered(totalCost, rule)
	}

	return covered(totalCost, rule)
}

func uninsured(totalCost decimal.Decimal, provider string) domain.InsuranceCoverage {
	zero := decimal.Zero
	return domain.InsuranceCoverage{
		Status:                domain.CoverageNoInsurance,
		Provider:              provider,
		CoverageRate:          zero,
		EstimatedCoverage:     zero,
		Deductible:            zero,
		Copay:                 zero,
		OutOfPocketMax:        zero,
		PatientResponsibility: totalCost,
	}
}

// notCovered caps the patient at the lesser of the total cost and the
// provider's out-of-pocket maximum; the deductible is still reported from the
// rule for transparency, but no copay applies.
func notCovered(totalCost decimal.Decimal, rule domain.InsuranceProviderRule) domain.InsuranceCoverage {
	responsibility := decimal.Min(totalCost, rule.OutOfPocketMax)
	return domain.InsuranceCoverage{
		Status:                domain.CoverageNotCovered,
		Provider:              rule.Provider,
		CoverageRate:          decimal.Zero,
		EstimatedCoverage:     totalCost.Sub(responsibility),
		Deductible:            rule.Deductible,
		Copay:                 decimal.Zero,
		OutOfPocketMax:        rule.OutOfPocketMax,
		PatientResponsibility: responsibility,
	}
}

func covered(totalCost decimal.Decimal, rule domain.InsuranceProviderRule) domain.InsuranceCoverage {
	afterDeductible := decimal.Max(decimal.Zero, totalCost.Sub(rule.Deductible))

	coverage := domain.RoundCents(afterDeductible.Mul(rule.CoverageRate))
	copay := domain.RoundCents(afterDeductible.Mul(rule.CopayRate))
	responsibility := domain.RoundCents(rule.Deductible.Add(copay))

	// The out-of-pocket maximum is a hard cap; when it bites, coverage is
	// recomputed from the capped responsibility so the split still sums to
	// the total cost.
	if rule.OutOfPocketMax.IsPositive() && responsibility.GreaterThan(rule.OutOfPocketMax) {
		responsibility = rule.OutOfPocketMax
		coverage = totalCost.Sub(responsibility)
	}

	return domain.InsuranceCoverage{
		Status:                domain.CoverageCovered,
		Provider:              rule.Provider,
		CoverageRate:          rule.CoverageRate,
		EstimatedCoverage:     coverage,
		Deductible:            rule.Deductible,
		Copay:                 copay,
		OutOfPocketMax:        rule.OutOfPocketMax,
		PatientResponsibility: responsibility,
	}
}
