package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Region identifies one of the five pricing regions.
type Region string

const (
	RegionNortheast Region = "northeast"
	RegionSoutheast Region = "southeast"
	RegionMidwest   Region = "midwest"
	RegionSouthwest Region = "southwest"
	RegionWest      Region = "west"
)

// ProcedureBasePricing holds the four base fee components for a procedure,
// before any regional adjustment. Reference data, never mutated.
type ProcedureBasePricing struct {
	ProcedureID   string
	SurgeonFee    decimal.Decimal
	FacilityFee   decimal.Decimal
	AnesthesiaFee decimal.Decimal
	PostOpCareFee decimal.Decimal
}

// InsuranceProviderRule describes how a provider splits costs with a patient.
type InsuranceProviderRule struct {
	Provider          string
	CoverageRate      decimal.Decimal // 0.0 - 1.0
	Deductible        decimal.Decimal
	CopayRate         decimal.Decimal // 0.0 - 1.0
	OutOfPocketMax    decimal.Decimal
	CoveredProcedures map[string]struct{}
}

func (r InsuranceProviderRule) Covers(procedureID string) bool {
	_, ok := r.CoveredProcedures[procedureID]
	return ok
}

// PaymentPlanTemplate is a financing offer: a term, an annual simple-interest
// rate, and the smallest balance it may be applied to.
type PaymentPlanTemplate struct {
	Name               string
	DurationMonths     int
	AnnualInterestRate decimal.Decimal
	MinAmount          decimal.Decimal
}

// PaymentPlan is a concrete financing option for a specific balance.
type PaymentPlan struct {
	Name           string
	MonthlyPayment decimal.Decimal
	DurationMonths int
	InterestRate   decimal.Decimal
	TotalPaid      decimal.Decimal
}

// CoverageStatus is the outcome of the insurance decision. The three variants
// are mutually exclusive; calculators branch on this rather than on nil fields.
type CoverageStatus string

const (
	CoverageNoInsurance CoverageStatus = "no_insurance"
	CoverageNotCovered  CoverageStatus = "not_covered"
	CoverageCovered     CoverageStatus = "covered"
)

// InsuranceCoverage is the computed split between insurer and patient.
// EstimatedCoverage + PatientResponsibility always equals the total cost the
// split was computed from, within one cent.
type InsuranceCoverage struct {
	Status                CoverageStatus
	Provider              string
	CoverageRate          decimal.Decimal
	EstimatedCoverage     decimal.Decimal
	Deductible            decimal.Decimal
	Copay                 decimal.Decimal
	OutOfPocketMax        decimal.Decimal
	PatientResponsibility decimal.Decimal
}

// FeeBreakdown holds the regionally adjusted fee components. Total is the sum
// of the four components, each already rounded to the cent.
type FeeBreakdown struct {
	SurgeonFee    decimal.Decimal
	FacilityFee   decimal.Decimal
	AnesthesiaFee decimal.Decimal
	PostOpCareFee decimal.Decimal
	Total         decimal.Decimal
}

// CostBreakdown is the full estimate produced for one request. Created once,
// persisted, never mutated afterwards.
type CostBreakdown struct {
	ID           string // uuid
	ProcedureID  string
	PatientID    string
	Fees         FeeBreakdown
	Insurance    InsuranceCoverage
	PaymentPlans []PaymentPlan
	DataSources  []string
	Region       Region
	Provider     string
	CalculatedAt time.Time
}

type PatientLocation struct {
	ZipCode string
}

type PatientInsurance struct {
	Provider string
}

// PatientProfile is the slice of a patient record the estimator needs:
// where they live and who insures them.
type PatientProfile struct {
	PatientID string
	Location  PatientLocation
	Insurance PatientInsurance
}
