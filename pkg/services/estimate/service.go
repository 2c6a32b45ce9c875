package estimate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/care-atlas/pkg/adapters"
	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/de-tools/care-atlas/pkg/services/catalog"
	"github.com/de-tools/care-atlas/pkg/services/financing"
	"github.com/de-tools/care-atlas/pkg/services/insurance"
	"github.com/de-tools/care-atlas/pkg/services/pricing"
	"github.com/de-tools/care-atlas/pkg/services/profile"
	"github.com/de-tools/care-atlas/pkg/services/region"
	breakdownstore "github.com/de-tools/care-atlas/pkg/store/duckdb/breakdown"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrPricingNotFound is the only error the estimator raises on its own; an
// unknown procedure id cannot be defaulted away. Everything else (unknown
// provider, malformed ZIP, tiny balances) is absorbed by the calculators.
var ErrPricingNotFound = errors.New("procedure pricing not found")

// Calculator runs the pure estimation pipeline for a procedure and a patient
// profile: region, adjusted fees, insurance split, financing options. It has
// no collaborators and is safe for unlimited concurrent use.
type Calculator struct {
	pricingCatalog catalog.Pricing
	regions        region.Resolver
	fees           pricing.Calculator
	coverage       insurance.Calculator
	plans          financing.Generator
}

func NewCalculator(pricingCatalog catalog.Pricing, policies catalog.Policies, regions region.Resolver) *Calculator {
	return &Calculator{
		pricingCatalog: pricingCatalog,
		regions:        regions,
		fees:           pricing.NewCalculator(),
		coverage:       insurance.NewCalculator(policies),
		plans:          financing.NewGenerator(policies),
	}
}

// Quote computes a full cost breakdown without persisting it.
func (c *Calculator) Quote(procedureID string, patient domain.PatientProfile) (domain.CostBreakdown, error) {
	base, ok := c.pricingCatalog.GetBasePricing(procedureID)
	if !ok {
		return domain.CostBreakdown{}, fmt.Errorf("%w: %s", ErrPricingNotFound, procedureID)
	}

	resolved := c.regions.Resolve(patient.Location.ZipCode)
	multiplier := c.pricingCatalog.GetRegionalMultiplier(resolved)

	fees := c.fees.Compute(base, multiplier)
	coverage := c.coverage.Compute(fees.Total, patient.Insurance.Provider, procedureID)
	plans := c.plans.Generate(coverage.PatientResponsibility)

	return domain.CostBreakdown{
		ID:           uuid.NewString(),
		ProcedureID:  procedureID,
		PatientID:    patient.PatientID,
		Fees:         fees,
		Insurance:    coverage,
		PaymentPlans: plans,
		DataSources:  citations(procedureID, resolved, multiplier, patient, coverage),
		Region:       resolved,
		Provider:     patient.Insurance.Provider,
		CalculatedAt: time.Now().UTC(),
	}, nil
}

func citations(
	procedureID string,
	resolved domain.Region,
	multiplier decimal.Decimal,
	patient domain.PatientProfile,
	coverage domain.InsuranceCoverage,
) []string {
	sources := []string{
		fmt.Sprintf("Base pricing for %s from the national procedure fee schedule", procedureID),
		fmt.Sprintf("Regional cost adjustment x%s applied for the %s region (ZIP %s)",
			multiplier.String(), resolved, patient.Location.ZipCode),
	}

	switch coverage.Status {
	case domain.CoverageCovered:
		sources = append(sources,
			fmt.Sprintf("Insurance policy for %s covers %s", coverage.Provider, procedureID))
	case domain.CoverageNotCovered:
		sources = append(sources,
			fmt.Sprintf("Insurance policy for %s does not cover %s; out-of-pocket maximum applied",
				coverage.Provider, procedureID))
	}

	return sources
}

// Service is the estimation orchestrator: it resolves the patient profile,
// runs the calculator, and persists the result.
type Service interface {
	CalculateCostBreakdown(ctx context.Context, procedureID, patientID string) (domain.CostBreakdown, error)
	// GetCostBreakdown returns nil with no error when the id is unknown.
	// A pure lookup, no recomputation.
	GetCostBreakdown(ctx context.Context, id string) (*domain.CostBreakdown, error)
}

type service struct {
	calculator *Calculator
	profiles   profile.Explorer
	store      breakdownstore.Store
}

func NewService(calculator *Calculator, profiles profile.Explorer, store breakdownstore.Store) Service {
	return &service{
		calculator: calculator,
		profiles:   profiles,
		store:      store,
	}
}

func (s *service) CalculateCostBreakdown(
	ctx context.Context,
	procedureID, patientID string,
) (domain.CostBreakdown, error) {
	logger := zerolog.Ctx(ctx)

	patient, err := s.profiles.GetProfile(ctx, patientID)
	if err != nil {
		return domain.CostBreakdown{}, err
	}

	breakdown, err := s.calculator.Quote(procedureID, patient)
	if err != nil {
		return domain.CostBreakdown{}, err
	}

	if err := s.store.Add(ctx, adapters.MapBreakdownDomainToStore(breakdown)); err != nil {
		return domain.CostBreakdown{}, fmt.Errorf("store breakdown: %w", err)
	}

	logger.Info().
		Str("breakdown_id", breakdown.ID).
		Str("procedure_id", procedureID).
		Str("patient_id", patientID).
		Str("region", string(breakdown.Region)).
		Str("total_cost", breakdown.Fees.Total.StringFixed(2)).
		Msg("cost breakdown calculated")

	return breakdown, nil
}

func (s *service) GetCostBreakdown(ctx context.Context, id string) (*domain.CostBreakdown, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	breakdown, err := adapters.MapBreakdownStoreToDomain(*record)
	if err != nil {
		return nil, err
	}
	return &breakdown, nil
}
