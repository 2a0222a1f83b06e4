package stats

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Ratio returns n/d, or zero when d is zero
func Ratio(n, d int) decimal.Decimal {
	if d == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n)).Div(decimal.NewFromInt(int64(d)))
}

// Percent returns n/d as a percentage rounded to places
func Percent(n, d int, places int32) decimal.Decimal {
	return Ratio(n, d).Mul(hundred).Round(places)
}
