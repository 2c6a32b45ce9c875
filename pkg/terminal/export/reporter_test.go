package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	amount := decimal.RequireFromString
	breakdown := domain.CostBreakdown{
		ID:          "bd-1",
		ProcedureID: "cleft-lip-repair-001",
		Fees: domain.FeeBreakdown{
			SurgeonFee:    amount("4000"),
			FacilityFee:   amount("2000"),
			AnesthesiaFee: amount("800"),
			PostOpCareFee: amount("500"),
			Total:         amount("7300"),
		},
		Insurance: domain.InsuranceCoverage{
			Status:                domain.CoverageCovered,
			Provider:              "Blue Cross Blue Shield",
			EstimatedCoverage:     amount("4640"),
			PatientResponsibility: amount("2660"),
		},
		PaymentPlans: []domain.PaymentPlan{
			{Name: "12-Month Plan", MonthlyPayment: amount("232.75"), DurationMonths: 12, InterestRate: amount("0.05"), TotalPaid: amount("2793.00")},
		},
		DataSources:  []string{"Base pricing from the national procedure fee schedule"},
		Region:       domain.RegionSouthwest,
		Provider:     "Blue Cross Blue Shield",
		CalculatedAt: time.Now(),
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(breakdown))

	out := buf.String()
	assert.Contains(t, out, "Cost Estimate bd-1")
	assert.Contains(t, out, "Insurance: Blue Cross Blue Shield (covered)")
	assert.Contains(t, out, "$7300.00")
	assert.Contains(t, out, "12 x $232.75 at 5.0% (total $2793.00)")
	assert.Contains(t, out, "Base pricing from the national procedure fee schedule")
}
