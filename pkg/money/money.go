// Package money holds the fixed-point helpers used for balances and prices.
// Every amount is a decimal with two fraction digits; binary floats never
// take part in ledger arithmetic.
package money

import "github.com/shopspring/decimal"

const Places = 2

// DepositCeilingPercent is the share of unpaid work a client may pre-fund.
var DepositCeilingPercent = decimal.NewFromInt(25)

var hundred = decimal.NewFromInt(100)

// Round rounds half away from zero to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Percent returns pct percent of d truncated to cents.
func Percent(d, pct decimal.Decimal) decimal.Decimal {
	return d.Mul(pct).Div(hundred).Truncate(Places)
}

// DepositCeiling is the largest deposit allowed against the given unpaid total.
// Truncation keeps amount <= ceiling equivalent to amount <= 25% * unpaid
// for any amount expressed in cents.
func DepositCeiling(unpaid decimal.Decimal) decimal.Decimal {
	if !unpaid.IsPositive() {
		return decimal.Zero
	}
	return Percent(unpaid, DepositCeilingPercent)
}

// DepositHeadroom is how much more a client holding balance may deposit while
// keeping the pre-funded balance within the ceiling of its unpaid work.
func DepositHeadroom(unpaid, balance decimal.Decimal) decimal.Decimal {
	headroom := DepositCeiling(unpaid).Sub(balance)
	if !headroom.IsPositive() {
		return decimal.Zero
	}
	return headroom
}

func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
