package pricing

import (
	"testing"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePricing(surgeon, facility, anesthesia, postOp string) domain.ProcedureBasePricing {
	return domain.ProcedureBasePricing{
		ProcedureID:   "rhinoplasty-001",
		SurgeonFee:    decimal.RequireFromString(surgeon),
		FacilityFee:   decimal.RequireFromString(facility),
		AnesthesiaFee: decimal.RequireFromString(anesthesia),
		PostOpCareFee: decimal.RequireFromString(postOp),
	}
}

func TestCalculator_Compute_WestMultiplier(t *testing.T) {
	c := NewCalculator()

	fees := c.Compute(basePricing("5000", "2000", "1000", "500"), decimal.RequireFromString("1.30"))

	assert.True(t, fees.SurgeonFee.Equal(decimal.RequireFromString("6500")), "surgeon fee %s", fees.SurgeonFee)
	assert.True(t, fees.FacilityFee.Equal(decimal.RequireFromString("2600")), "facility fee %s", fees.FacilityFee)
	assert.True(t, fees.AnesthesiaFee.Equal(decimal.RequireFromString("1300")), "anesthesia fee %s", fees.AnesthesiaFee)
	assert.True(t, fees.PostOpCareFee.Equal(decimal.RequireFromString("650")), "post-op fee %s", fees.PostOpCareFee)
	assert.True(t, fees.Total.Equal(decimal.RequireFromString("11050")), "total %s", fees.Total)
}

func TestCalculator_Compute_TotalEqualsComponentSum(t *testing.T) {
	c := NewCalculator()

	// A multiplier that forces sub-cent products on every component. The
	// total must be the sum of the independently rounded components, not a
	// rounding of the unrounded sum.
	base := basePricing("1000.33", "2000.99", "800.17", "500.01")
	multiplier := decimal.RequireFromString("1.115")

	fees := c.Compute(base, multiplier)

	sum := fees.SurgeonFee.Add(fees.FacilityFee).Add(fees.AnesthesiaFee).Add(fees.PostOpCareFee)
	require.True(t, fees.Total.Equal(sum), "total %s != component sum %s", fees.Total, sum)

	for _, fee := range []decimal.Decimal{fees.SurgeonFee, fees.FacilityFee, fees.AnesthesiaFee, fees.PostOpCareFee} {
		assert.True(t, fee.Equal(fee.Round(2)), "component %s not rounded to the cent", fee)
	}
}

func TestCalculator_Compute_RoundsHalfUp(t *testing.T) {
	c := NewCalculator()

	// 8.10 * 1.25 = 10.125: an exact half cent, which must round up to
	// 10.13 rather than to even.
	fees := c.Compute(basePricing("8.10", "1", "1", "1"), decimal.RequireFromString("1.25"))
	assert.True(t, fees.SurgeonFee.Equal(decimal.RequireFromString("10.13")), "got %s", fees.SurgeonFee)
}

func TestCalculator_Compute_GeographicVariation(t *testing.T) {
	c := NewCalculator()
	base := basePricing("5000", "2000", "1000", "500")

	west := c.Compute(base, decimal.RequireFromString("1.30"))
	midwest := c.Compute(base, decimal.RequireFromString("0.90"))

	assert.False(t, west.Total.Equal(midwest.Total))

	// Component-exact bases: the totals relate exactly as the multipliers do.
	ratio := west.Total.Div(midwest.Total)
	expected := decimal.RequireFromString("1.30").Div(decimal.RequireFromString("0.90"))
	assert.True(t, ratio.Sub(expected).Abs().LessThan(decimal.RequireFromString("0.0001")),
		"ratio %s, expected %s", ratio, expected)
}
