package store

import "time"

// PlanRecord is the persisted form of a payment plan. Monetary values are
// decimal strings so the round-trip through storage is exact.
type PlanRecord struct {
	Name           string `json:"name"`
	MonthlyPayment string `json:"monthly_payment"`
	DurationMonths int    `json:"duration_months"`
	InterestRate   string `json:"interest_rate"`
	TotalPaid      string `json:"total_paid"`
}

// BreakdownRecord mirrors the cost_breakdowns table. Plans and data sources
// are stored as JSON columns.
type BreakdownRecord struct {
	ID                    string
	ProcedureID           string
	PatientID             string
	SurgeonFee            string
	FacilityFee           string
	AnesthesiaFee         string
	PostOpCare            string
	TotalCost             string
	CoverageStatus        string
	InsuranceCoverage     string
	PatientResponsibility string
	Deductible            string
	Copay                 string
	OutOfPocketMax        string
	PaymentPlans          []PlanRecord
	DataSources           []string
	Region                string
	Provider              string
	CalculatedAt          time.Time
}

// ProfileRecord mirrors the patient_profiles table.
type ProfileRecord struct {
	PatientID string
	ZipCode   string
	Provider  string
}
