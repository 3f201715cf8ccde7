package collateral

import "github.com/shopspring/decimal"

// Risk buckets derived from the loan-to-value ratio.
const (
	RiskUnknown = "Unknown"
	RiskLow     = "Low Risk"
	RiskMedium  = "Medium Risk"
	RiskHigh    = "High Risk"
)

var (
	hundred       = decimal.NewFromInt(100)
	lowThreshold  = decimal.NewFromInt(60)
	highThreshold = decimal.NewFromInt(80)
)

// LTVRatio computes loan_amount / market_value as a percentage rounded to two
// decimal places. A non-positive market value has no defined ratio and yields
// nil. Always recomputed from current values, never persisted.
func LTVRatio(loanAmount, marketValue decimal.Decimal) *decimal.Decimal {
	if marketValue.Sign() <= 0 {
		return nil
	}
	r := loanAmount.Div(marketValue).Mul(hundred).Round(2)
	return &r
}

// LTVRisk buckets a ratio: nil → Unknown, ≤60 → Low, ≤80 → Medium, else High.
// Both thresholds are inclusive on the lower bucket.
func LTVRisk(ratio *decimal.Decimal) string {
	switch {
	case ratio == nil:
		return RiskUnknown
	case ratio.LessThanOrEqual(lowThreshold):
		return RiskLow
	case ratio.LessThanOrEqual(highThreshold):
		return RiskMedium
	default:
		return RiskHigh
	}
}
