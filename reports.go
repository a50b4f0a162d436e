package stockbook

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value, e.g. a profit margin.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// ProductSummary aggregates a single product's ledger records.
type ProductSummary struct {
	Product          string
	Transactions     int
	QuantityReceived decimal.Decimal
	QuantitySold     decimal.Decimal
	CurrentStock     decimal.Decimal
	TotalPurchase    decimal.Decimal
	TotalSales       decimal.Decimal
	Profit           decimal.Decimal
}

// Margin returns the profit margin as a percentage of sales, or 0 when the
// product has no sales.
func (s ProductSummary) Margin() Percent {
	return margin(s.Profit, s.TotalSales)
}

func margin(profit, sales decimal.Decimal) Percent {
	if sales.IsZero() {
		return 0
	}
	m, _ := profit.Div(sales).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(m)
}

// Overview aggregates the whole ledger.
type Overview struct {
	Products      int // products with at least one transaction
	Transactions  int
	TotalPurchase decimal.Decimal
	TotalSales    decimal.Decimal
	Profit        decimal.Decimal
}

// Margin returns the overall profit margin, or 0 when there are no sales.
func (o Overview) Margin() Percent {
	return margin(o.Profit, o.TotalSales)
}

// Summarize groups the ledger per product, in order of each product's first
// appearance in store order. Reading only; safe to run concurrently with
// other reads.
func Summarize(l *Ledger) []ProductSummary {
	var sums []ProductSummary
	index := make(map[string]int)

	for _, tx := range l.Transactions() {
		i, ok := index[tx.Product]
		if !ok {
			i = len(sums)
			index[tx.Product] = i
			sums = append(sums, ProductSummary{Product: tx.Product})
		}
		s := &sums[i]
		s.Transactions++
		s.QuantityReceived = s.QuantityReceived.Add(tx.QuantityReceived)
		s.QuantitySold = s.QuantitySold.Add(tx.QuantitySold)
		s.TotalPurchase = s.TotalPurchase.Add(tx.TotalPurchase)
		s.TotalSales = s.TotalSales.Add(tx.TotalSales)
		s.Profit = s.Profit.Add(tx.Profit)
		s.CurrentStock = tx.StockLeft // last record in store order wins
	}
	return sums
}

// SummarizeProduct aggregates a single product, or false if it has no
// records.
func SummarizeProduct(l *Ledger, product string) (ProductSummary, bool) {
	for _, s := range Summarize(l) {
		if s.Product == product {
			return s, true
		}
	}
	return ProductSummary{}, false
}

// NewOverview aggregates the whole ledger into an Overview.
func NewOverview(l *Ledger) Overview {
	var o Overview
	for _, s := range Summarize(l) {
		o.Products++
		o.Transactions += s.Transactions
		o.TotalPurchase = o.TotalPurchase.Add(s.TotalPurchase)
		o.TotalSales = o.TotalSales.Add(s.TotalSales)
		o.Profit = o.Profit.Add(s.Profit)
	}
	return o
}

// Metric selects the ranking criterion for TopBy.
type Metric int

const (
	// ByRevenue ranks products by their total sales.
	ByRevenue Metric = iota
	// ByProfit ranks products by their total profit.
	ByProfit
	// ByMargin ranks products by their profit margin.
	ByMargin
)

func (m Metric) String() string {
	switch m {
	case ByRevenue:
		return "revenue"
	case ByProfit:
		return "profit"
	case ByMargin:
		return "margin"
	default:
		return "unknown"
	}
}

// ParseMetric parses a string into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "revenue":
		return ByRevenue, nil
	case "profit":
		return ByProfit, nil
	case "margin":
		return ByMargin, nil
	default:
		return 0, fmt.Errorf("unknown ranking metric: %q", s)
	}
}

// TopBy returns the n best summaries by the given metric, descending. The
// sort is stable: ties keep the order of first appearance in the grouped
// aggregate. n <= 0 or n greater than the number of products returns all of
// them.
func TopBy(sums []ProductSummary, m Metric, n int) []ProductSummary {
	ranked := make([]ProductSummary, len(sums))
	copy(ranked, sums)

	sort.SliceStable(ranked, func(i, j int) bool {
		switch m {
		case ByProfit:
			return ranked[i].Profit.GreaterThan(ranked[j].Profit)
		case ByMargin:
			return ranked[i].Margin() > ranked[j].Margin()
		default:
			return ranked[i].TotalSales.GreaterThan(ranked[j].TotalSales)
		}
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
