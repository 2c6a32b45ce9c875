package financing

import (
	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/de-tools/care-atlas/pkg/services/catalog"
	"github.com/shopspring/decimal"
)

// Balances at or under this are not worth amortizing; they get the single
// pay-in-full option.
var trivialAmount = decimal.RequireFromString("100.00")

var monthsPerYear = decimal.NewFromInt(12)

// Generator produces financing options for a patient responsibility balance.
type Generator interface {
	// Generate returns at least one plan for any non-negative amount.
	Generate(amount decimal.Decimal) []domain.PaymentPlan
}

type generator struct {
	policies catalog.Policies
}

func NewGenerator(policies catalog.Policies) Generator {
	return &generator{policies: policies}
}

func (g *generator) Generate(amount decimal.Decimal) []domain.PaymentPlan {
	if amount.LessThanOrEqual(trivialAmount) {
		return []domain.PaymentPlan{payInFull(amount)}
	}

	templates := g.policies.PlanTemplates(amount)
	if len(templates) == 0 {
		// Above the trivial threshold but under every template's minimum.
		return []domain.PaymentPlan{payInFull(amount)}
	}

	plans := make([]domain.PaymentPlan, 0, len(templates))
	for _, t := range templates {
		plans = append(plans, amortize(amount, t))
	}
	return plans
}

// amortize prices a template against a balance using simple interest over the
// term. Monthly payment and total paid are each rounded to the cent.
func amortize(amount decimal.Decimal, t domain.PaymentPlanTemplate) domain.PaymentPlan {
	months := decimal.NewFromInt(int64(t.DurationMonths))

	totalPaid := amount
	if t.AnnualInterestRate.IsPositive() {
		years := months.Div(monthsPerYear)
		interest := amount.Mul(t.AnnualInterestRate).Mul(years)
		totalPaid = domain.RoundCents(amount.Add(interest))
	}

	return domain.PaymentPlan{
		Name:           t.Name,
		MonthlyPayment: domain.RoundCents(totalPaid.Div(months)),
		DurationMonths: t.DurationMonths,
		InterestRate:   t.AnnualInterestRate,
		TotalPaid:      totalPaid,
	}
}

func payInFull(amount decimal.Decimal) domain.PaymentPlan {
	amount = domain.RoundCents(amount)
	return domain.PaymentPlan{
		Name:           "Pay in Full",
		MonthlyPayment: amount,
		DurationMonths: 1,
		InterestRate:   decimal.Zero,
		TotalPaid:      amount,
	}
}
