package stockbook

import (
	"testing"

	"github.com/agridesk/stockbook/date"
)

func reportLedger() *Ledger {
	l := NewLedger()
	l.Append(date.MustParse("01/10/2025"), "Wheat", dec(100), dec(20), dec(1400), dec(1600), "")
	l.Append(date.MustParse("02/10/2025"), "Urea", dec(50), dec(10), dec(2000), dec(2200), "")
	l.Append(date.MustParse("03/10/2025"), "Wheat", dec(0), dec(30), dec(1400), dec(1600), "")
	l.Append(date.MustParse("04/10/2025"), "DAP", dec(10), dec(0), dec(1350), dec(1500), "")
	return l
}

func TestSummarize(t *testing.T) {
	sums := Summarize(reportLedger())

	if len(sums) != 3 {
		t.Fatalf("got %d summaries, want 3", len(sums))
	}
	// First-appearance order.
	for i, want := range []string{"Wheat", "Urea", "DAP"} {
		if sums[i].Product != want {
			t.Errorf("sums[%d] = %q, want %q", i, sums[i].Product, want)
		}
	}

	wheat := sums[0]
	if got, want := wheat.Transactions, 2; got != want {
		t.Errorf("Wheat Transactions = %d, want %d", got, want)
	}
	if got, want := wheat.QuantitySold, dec(50); !got.Equal(want) {
		t.Errorf("Wheat QuantitySold = %s, want %s", got, want)
	}
	if got, want := wheat.CurrentStock, dec(50); !got.Equal(want) {
		t.Errorf("Wheat CurrentStock = %s, want %s", got, want)
	}
	if got, want := wheat.TotalSales, dec(80000); !got.Equal(want) {
		t.Errorf("Wheat TotalSales = %s, want %s", got, want)
	}
	if got, want := wheat.Profit, dec(10000); !got.Equal(want) {
		t.Errorf("Wheat Profit = %s, want %s", got, want)
	}
}

func TestSummarizeProduct(t *testing.T) {
	l := reportLedger()
	if _, ok := SummarizeProduct(l, "Sarson"); ok {
		t.Error("summary returned for a product with no records")
	}
	s, ok := SummarizeProduct(l, "Urea")
	if !ok {
		t.Fatal("no summary for Urea")
	}
	if got, want := s.Transactions, 1; got != want {
		t.Errorf("Urea Transactions = %d, want %d", got, want)
	}
}

func TestMargin_ZeroSales(t *testing.T) {
	s, ok := SummarizeProduct(reportLedger(), "DAP")
	if !ok {
		t.Fatal("no summary for DAP")
	}
	if !s.TotalSales.IsZero() {
		t.Fatalf("DAP has sales %s, fixture broken", s.TotalSales)
	}
	if got := s.Margin(); got != 0 {
		t.Errorf("Margin with zero sales = %v, want 0", got)
	}
}

func TestMargin(t *testing.T) {
	s, ok := SummarizeProduct(reportLedger(), "Wheat")
	if !ok {
		t.Fatal("no summary for Wheat")
	}
	// 10000 profit on 80000 sales.
	if got, want := s.Margin(), Percent(12.5); got != want {
		t.Errorf("Margin = %v, want %v", got, want)
	}
	if got, want := s.Margin().String(), "12.5%"; got != want {
		t.Errorf("Margin.String = %q, want %q", got, want)
	}
}

func TestNewOverview(t *testing.T) {
	o := NewOverview(reportLedger())
	if got, want := o.Products, 3; got != want {
		t.Errorf("Products = %d, want %d", got, want)
	}
	if got, want := o.Transactions, 4; got != want {
		t.Errorf("Transactions = %d, want %d", got, want)
	}
	if got, want := o.TotalSales, dec(102000); !got.Equal(want) {
		t.Errorf("TotalSales = %s, want %s", got, want)
	}
	if got, want := o.Profit, dec(12000); !got.Equal(want) {
		t.Errorf("Profit = %s, want %s", got, want)
	}
}

func TestTopBy(t *testing.T) {
	sums := []ProductSummary{
		{Product: "Wheat", TotalSales: dec(80000), Profit: dec(10000)},
		{Product: "Urea", TotalSales: dec(22000), Profit: dec(2000)},
		{Product: "DAP", TotalSales: dec(95000), Profit: dec(1000)},
	}

	top := TopBy(sums, ByRevenue, 2)
	if len(top) != 2 || top[0].Product != "DAP" || top[1].Product != "Wheat" {
		t.Errorf("TopBy revenue = %v", productNames(top))
	}

	top = TopBy(sums, ByProfit, 0)
	if len(top) != 3 || top[0].Product != "Wheat" {
		t.Errorf("TopBy profit = %v", productNames(top))
	}

	// The input order is not disturbed.
	if sums[0].Product != "Wheat" || sums[2].Product != "DAP" {
		t.Errorf("TopBy mutated its input: %v", productNames(sums))
	}
}

func TestTopBy_StableTies(t *testing.T) {
	sums := []ProductSummary{
		{Product: "Wheat", TotalSales: dec(1000)},
		{Product: "Urea", TotalSales: dec(1000)},
		{Product: "DAP", TotalSales: dec(1000)},
	}
	top := TopBy(sums, ByRevenue, 3)
	for i, want := range []string{"Wheat", "Urea", "DAP"} {
		if top[i].Product != want {
			t.Errorf("tied ranking reordered: %v", productNames(top))
			break
		}
	}
}

func TestParseMetric(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Metric
		ok   bool
	}{
		{"revenue", ByRevenue, true},
		{"profit", ByProfit, true},
		{"margin", ByMargin, true},
		{"sales", 0, false},
		{"", 0, false},
	} {
		got, err := ParseMetric(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseMetric(%q) err = %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseMetric(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func productNames(sums []ProductSummary) []string {
	names := make([]string, len(sums))
	for i, s := range sums {
		names[i] = s.Product
	}
	return names
}
