package domain

import "github.com/shopspring/decimal"

// RoundCents rounds a monetary amount to the nearest cent, half up.
// Every intermediate product in the calculators goes through this before
// being combined further, so component sums match reported totals exactly.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
