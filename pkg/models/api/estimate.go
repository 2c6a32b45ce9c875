package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentPlan struct {
	Name           string          `json:"name"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	DurationMonths int             `json:"duration_months"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
}

// CostBreakdown is the wire form of an estimate. The insurance fields are
// pointers so an estimate computed without a provider serializes them as null
// rather than a misleading zero.
type CostBreakdown struct {
	ID                    string           `json:"id"`
	ProcedureID           string           `json:"procedure_id"`
	PatientID             string           `json:"patient_id"`
	SurgeonFee            decimal.Decimal  `json:"surgeon_fee"`
	FacilityFee           decimal.Decimal  `json:"facility_fee"`
	AnesthesiaFee         decimal.Decimal  `json:"anesthesia_fee"`
	PostOpCare            decimal.Decimal  `json:"post_op_care"`
	TotalCost             decimal.Decimal  `json:"total_cost"`
	InsuranceCoverage     *decimal.Decimal `json:"insurance_coverage"`
	PatientResponsibility *decimal.Decimal `json:"patient_responsibility"`
	Deductible            *decimal.Decimal `json:"deductible"`
	Copay                 *decimal.Decimal `json:"copay"`
	OutOfPocketMax        *decimal.Decimal `json:"out_of_pocket_max"`
	PaymentPlans          []PaymentPlan    `json:"payment_plans"`
	DataSources           []string         `json:"data_sources"`
	Region                string           `json:"region"`
	InsuranceProvider     string           `json:"insurance_provider,omitempty"`
	CalculatedAt          time.Time        `json:"calculated_at"`
}

type EstimateRequest struct {
	ProcedureID string `json:"procedure_id"`
	PatientID   string `json:"patient_id"`
}

type Procedure struct {
	ID string `json:"id"`
}

type InsuranceProvider struct {
	Name string `json:"name"`
}
