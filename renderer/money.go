package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode selects the display currency for monetary columns. It only
// affects rendering; ledger amounts are stored as bare numbers.
var CurrencyCode = money.INR

// Amount formats a monetary value with the display currency's symbol and
// grouping, e.g. "₹37,950.00".
func Amount(d decimal.Decimal) string {
	cur := *money.New(0, CurrencyCode).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedAmount formats a monetary value with an explicit sign, or "-" for
// zero. Used in profit columns where the direction matters.
func SignedAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	if d.IsPositive() {
		return "+" + Amount(d)
	}
	return Amount(d)
}
