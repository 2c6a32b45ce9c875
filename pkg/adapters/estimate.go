package adapters

import (
	"fmt"

	"github.com/de-tools/care-atlas/pkg/models/api"
	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/de-tools/care-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

func MapBreakdownDomainToApi(b domain.CostBreakdown) api.CostBreakdown {
	out := api.CostBreakdown{
		ID:                b.ID,
		ProcedureID:       b.ProcedureID,
		PatientID:         b.PatientID,
		SurgeonFee:        b.Fees.SurgeonFee,
		FacilityFee:       b.Fees.FacilityFee,
		AnesthesiaFee:     b.Fees.AnesthesiaFee,
		PostOpCare:        b.Fees.PostOpCareFee,
		TotalCost:         b.Fees.Total,
		PaymentPlans:      make([]api.PaymentPlan, 0, len(b.PaymentPlans)),
		DataSources:       b.DataSources,
		Region:            string(b.Region),
		InsuranceProvider: b.Provider,
		CalculatedAt:      b.CalculatedAt,
	}

	// A request with no insurance info at all serializes the coverage block
	// as null; a known (or sentinel "none") provider reports computed zeros.
	if b.Provider != "" {
		out.InsuranceCoverage = ptr(b.Insurance.EstimatedCoverage)
		out.PatientResponsibility = ptr(b.Insurance.PatientResponsibility)
		out.Deductible = ptr(b.Insurance.Deductible)
		out.Copay = ptr(b.Insurance.Copay)
		out.OutOfPocketMax = ptr(b.Insurance.OutOfPocketMax)
	}

	for _, p := range b.PaymentPlans {
		out.PaymentPlans = append(out.PaymentPlans, api.PaymentPlan{
			Name:           p.Name,
			MonthlyPayment: p.MonthlyPayment,
			DurationMonths: p.DurationMonths,
			InterestRate:   p.InterestRate,
			TotalPaid:      p.TotalPaid,
		})
	}

	return out
}

func MapBreakdownDomainToStore(b domain.CostBreakdown) store.BreakdownRecord {
	record := store.BreakdownRecord{
		ID:                    b.ID,
		ProcedureID:           b.ProcedureID,
		PatientID:             b.PatientID,
		SurgeonFee:            b.Fees.SurgeonFee.StringFixed(2),
		FacilityFee:           b.Fees.FacilityFee.StringFixed(2),
		AnesthesiaFee:         b.Fees.AnesthesiaFee.StringFixed(2),
		PostOpCare:            b.Fees.PostOpCareFee.StringFixed(2),
		TotalCost:             b.Fees.Total.StringFixed(2),
		CoverageStatus:        string(b.Insurance.Status),
		InsuranceCoverage:     b.Insurance.EstimatedCoverage.StringFixed(2),
		PatientResponsibility: b.Insurance.PatientResponsibility.StringFixed(2),
		Deductible:            b.Insurance.Deductible.StringFixed(2),
		Copay:                 b.Insurance.Copay.StringFixed(2),
		OutOfPocketMax:        b.Insurance.OutOfPocketMax.StringFixed(2),
		PaymentPlans:          make([]store.PlanRecord, 0, len(b.PaymentPlans)),
		DataSources:           b.DataSources,
		Region:                string(b.Region),
		Provider:              b.Provider,
		CalculatedAt:          b.CalculatedAt,
	}

	for _, p := range b.PaymentPlans {
		record.PaymentPlans = append(record.PaymentPlans, store.PlanRecord{
			Name:           p.Name,
			MonthlyPayment: p.MonthlyPayment.StringFixed(2),
			DurationMonths: p.DurationMonths,
			InterestRate:   p.InterestRate.String(),
			TotalPaid:      p.TotalPaid.StringFixed(2),
		})
	}

	return record
}

func MapBreakdownStoreToDomain(record store.BreakdownRecord) (domain.CostBreakdown, error) {
	fees, err := parseAll(
		record.SurgeonFee, record.FacilityFee, record.AnesthesiaFee,
		record.PostOpCare, record.TotalCost,
	)
	if err != nil {
		return domain.CostBreakdown{}, fmt.Errorf("breakdown %s: %w", record.ID, err)
	}

	coverage, err := parseAll(
		record.InsuranceCoverage, record.PatientResponsibility,
		record.Deductible, record.Copay, record.OutOfPocketMax,
	)
	if err != nil {
		return domain.CostBreakdown{}, fmt.Errorf("breakdown %s: %w", record.ID, err)
	}

	b := domain.CostBreakdown{
		ID:          record.ID,
		ProcedureID: record.ProcedureID,
		PatientID:   record.PatientID,
		Fees: domain.FeeBreakdown{
			SurgeonFee:    fees[0],
			FacilityFee:   fees[1],
			AnesthesiaFee: fees[2],
			PostOpCareFee: fees[3],
			Total:         fees[4],
		},
		Insurance: domain.InsuranceCoverage{
			Status:                domain.CoverageStatus(record.CoverageStatus),
			Provider:              record.Provider,
			EstimatedCoverage:     coverage[0],
			PatientResponsibility: coverage[1],
			Deductible:            coverage[2],
			Copay:                 coverage[3],
			OutOfPocketMax:        coverage[4],
		},
		PaymentPlans: make([]domain.PaymentPlan, 0, len(record.PaymentPlans)),
		DataSources:  record.DataSources,
		Region:       domain.Region(record.Region),
		Provider:     record.Provider,
		CalculatedAt: record.CalculatedAt,
	}

	for _, p := range record.PaymentPlans {
		amounts, err := parseAll(p.MonthlyPayment, p.InterestRate, p.TotalPaid)
		if err != nil {
			return domain.CostBreakdown{}, fmt.Errorf("breakdown %s plan %q: %w", record.ID, p.Name, err)
		}
		b.PaymentPlans = append(b.PaymentPlans, domain.PaymentPlan{
			Name:           p.Name,
			MonthlyPayment: amounts[0],
			DurationMonths: p.DurationMonths,
			InterestRate:   amounts[1],
			TotalPaid:      amounts[2],
		})
	}

	return b, nil
}

func MapProfileStoreToDomain(record store.ProfileRecord) domain.PatientProfile {
	return domain.PatientProfile{
		PatientID: record.PatientID,
		Location:  domain.PatientLocation{ZipCode: record.ZipCode},
		Insurance: domain.PatientInsurance{Provider: record.Provider},
	}
}

func MapProfileDomainToStore(profile domain.PatientProfile) store.ProfileRecord {
	return store.ProfileRecord{
		PatientID: profile.PatientID,
		ZipCode:   profile.Location.ZipCode,
		Provider:  profile.Insurance.Provider,
	}
}

func parseAll(values ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", v, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
