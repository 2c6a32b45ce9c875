package pricing

import (
	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Calculator applies a regional multiplier to base procedure fees.
type Calculator interface {
	Compute(base domain.ProcedureBasePricing, multiplier decimal.Decimal) domain.FeeBreakdown
}

type calculator struct{}

func NewCalculator() Calculator {
	return &calculator{}
}

// Compute multiplies each fee component by the regional multiplier, rounding
// each product to the cent independently, then sums the rounded components.
// The total is never rounded on its own, so it equals the component sum
// exactly rather than approximately.
func (c *calculator) Compute(base domain.ProcedureBasePricing, multiplier decimal.Decimal) domain.FeeBreakdown {
	fees := domain.FeeBreakdown{
		SurgeonFee:    domain.RoundCents(base.SurgeonFee.Mul(multiplier)),
		FacilityFee:   domain.RoundCents(base.FacilityFee.Mul(multiplier)),
		AnesthesiaFee: domain.RoundCents(base.AnesthesiaFee.Mul(multiplier)),
		PostOpCareFee: domain.RoundCents(base.PostOpCareFee.Mul(multiplier)),
	}
	fees.Total = fees.SurgeonFee.
		Add(fees.FacilityFee).
		Add(fees.AnesthesiaFee).
		Add(fees.PostOpCareFee)
	return fees
}
