package catalog

import (
	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func defaultBasePricing() map[string]domain.ProcedureBasePricing {
	rows := []domain.ProcedureBasePricing{
		{
			ProcedureID:   "rhinoplasty-001",
			SurgeonFee:    money("5000"),
			FacilityFee:   money("2000"),
			AnesthesiaFee: money("1000"),
			PostOpCareFee: money("500"),
		},
		{
			ProcedureID:   "cleft-lip-repair-001",
			SurgeonFee:    money("4000"),
			FacilityFee:   money("2000"),
			AnesthesiaFee: money("800"),
			PostOpCareFee: money("500"),
		},
		{
			ProcedureID:   "breast-augmentation-001",
			SurgeonFee:    money("6000"),
			FacilityFee:   money("2500"),
			AnesthesiaFee: money("1200"),
			PostOpCareFee: money("600"),
		},
		{
			ProcedureID:   "liposuction-001",
			SurgeonFee:    money("4500"),
			FacilityFee:   money("2200"),
			AnesthesiaFee: money("1000"),
			PostOpCareFee: money("450"),
		},
		{
			ProcedureID:   "facelift-001",
			SurgeonFee:    money("7000"),
			FacilityFee:   money("2800"),
			AnesthesiaFee: money("1400"),
			PostOpCareFee: money("700"),
		},
		{
			ProcedureID:   "scar-revision-001",
			SurgeonFee:    money("2500"),
			FacilityFee:   money("1200"),
			AnesthesiaFee: money("600"),
			PostOpCareFee: money("300"),
		},
	}

	table := make(map[string]domain.ProcedureBasePricing, len(rows))
	for _, row := range rows {
		table[row.ProcedureID] = row
	}
	return table
}

func defaultMultipliers() map[domain.Region]decimal.Decimal {
	return map[domain.Region]decimal.Decimal{
		domain.RegionNortheast: money("1.25"),
		domain.RegionSoutheast: money("0.95"),
		domain.RegionMidwest:   money("0.90"),
		domain.RegionSouthwest: money("1.00"),
		domain.RegionWest:      money("1.30"),
	}
}

func defaultProviderRules() map[string]domain.InsuranceProviderRule {
	rules := []domain.InsuranceProviderRule{
		{
			Provider:       "Blue Cross Blue Shield",
			CoverageRate:   money("0.80"),
			Deductible:     money("1500"),
			CopayRate:      money("0.20"),
			OutOfPocketMax: money("6000"),
			CoveredProcedures: procedureSet(
				"cleft-lip-repair-001",
				"scar-revision-001",
			),
		},
		{
			Provider:       "Aetna",
			CoverageRate:   money("0.75"),
			Deductible:     money("2000"),
			CopayRate:      money("0.25"),
			OutOfPocketMax: money("7500"),
			CoveredProcedures: procedureSet(
				"cleft-lip-repair-001",
			),
		},
		{
			Provider:       "UnitedHealthcare",
			CoverageRate:   money("0.70"),
			Deductible:     money("2500"),
			CopayRate:      money("0.30"),
			OutOfPocketMax: money("8000"),
			CoveredProcedures: procedureSet(
				"cleft-lip-repair-001",
				"scar-revision-001",
			),
		},
		{
			Provider:       "Cigna",
			CoverageRate:   money("0.80"),
			Deductible:     money("1750"),
			CopayRate:      money("0.20"),
			OutOfPocketMax: money("6500"),
			CoveredProcedures: procedureSet(
				"cleft-lip-repair-001",
			),
		},
	}

	table := make(map[string]domain.InsuranceProviderRule, len(rules))
	for _, rule := range rules {
		table[rule.Provider] = rule
	}
	return table
}

func defaultPlanTemplates() []domain.PaymentPlanTemplate {
	return []domain.PaymentPlanTemplate{
		{Name: "6-Month Plan", DurationMonths: 6, AnnualInterestRate: money("0"), MinAmount: money("500")},
		{Name: "12-Month Plan", DurationMonths: 12, AnnualInterestRate: money("0.05"), MinAmount: money("1000")},
		{Name: "24-Month Plan", DurationMonths: 24, AnnualInterestRate: money("0.08"), MinAmount: money("2500")},
		{Name: "36-Month Plan", DurationMonths: 36, AnnualInterestRate: money("0.10"), MinAmount: money("5000")},
	}
}

func procedureSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
