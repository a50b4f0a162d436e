package stockbook

import (
	"testing"

	"github.com/agridesk/stockbook/date"
	"github.com/shopspring/decimal"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestLedger_Append(t *testing.T) {
	l := NewLedger()

	first := l.Append(date.MustParse("24/10/2025"), "Wheat", dec(150), dec(23), dec(1488), dec(1650), "")
	if got, want := first.StockLeft, dec(127); !got.Equal(want) {
		t.Errorf("first StockLeft = %s, want %s", got, want)
	}

	second := l.Append(date.MustParse("25/10/2025"), "Wheat", dec(0), dec(19), dec(1488), dec(1650), "")
	if got, want := second.StockLeft, dec(108); !got.Equal(want) {
		t.Errorf("second StockLeft = %s, want %s", got, want)
	}

	// A different product starts from a zero baseline.
	urea := l.Append(date.MustParse("25/10/2025"), "Urea", dec(40), dec(5), dec(2100), dec(2300), "")
	if got, want := urea.StockLeft, dec(35); !got.Equal(want) {
		t.Errorf("urea StockLeft = %s, want %s", got, want)
	}
}

func TestLedger_AppendUsesStoreOrderNotDateOrder(t *testing.T) {
	l := NewLedger()
	// Appended out of date order: the previous balance is the temporally last
	// appended record, not the chronologically last one.
	l.Append(date.MustParse("20/10/2025"), "Wheat", dec(100), dec(0), dec(0), dec(0), "")
	l.Append(date.MustParse("10/10/2025"), "Wheat", dec(0), dec(30), dec(0), dec(0), "")

	if got, want := l.CurrentStock("Wheat"), dec(70); !got.Equal(want) {
		t.Errorf("CurrentStock = %s, want %s", got, want)
	}
}

func TestLedger_PrefixSumInvariant(t *testing.T) {
	l := NewLedger()
	l.Append(date.MustParse("01/10/2025"), "Wheat", dec(100), dec(0), dec(1400), dec(1600), "")
	l.Append(date.MustParse("02/10/2025"), "Urea", dec(50), dec(10), dec(2000), dec(2200), "")
	l.Append(date.MustParse("03/10/2025"), "Wheat", dec(0), dec(10), dec(1400), dec(1600), "")
	l.Append(date.MustParse("03/10/2025"), "Wheat", dec(0), dec(20), dec(1400), dec(1600), "")
	l.Append(date.MustParse("04/10/2025"), "Urea", dec(0), dec(25.5), dec(2000), dec(2200), "")

	for product := range l.Products() {
		stock := decimal.Zero
		for i, tx := range l.Transactions(ByProduct(product)) {
			stock = stock.Add(tx.QuantityReceived).Sub(tx.QuantitySold)
			if !tx.StockLeft.Equal(stock) {
				t.Errorf("%s record %d: StockLeft = %s, want %s", product, i, tx.StockLeft, stock)
			}
		}
	}
}

func TestLedger_DeleteRecomputes(t *testing.T) {
	l := NewLedger()
	l.Append(date.MustParse("01/10/2025"), "Wheat", dec(100), dec(0), dec(0), dec(0), "")
	l.Append(date.MustParse("02/10/2025"), "Wheat", dec(0), dec(10), dec(0), dec(0), "")
	l.Append(date.MustParse("03/10/2025"), "Wheat", dec(0), dec(20), dec(0), dec(0), "")

	removed, found := l.Delete("Wheat", date.MustParse("01/10/2025"))
	if !found {
		t.Fatal("Delete did not find the record")
	}
	if got, want := removed.QuantityReceived, dec(100); !got.Equal(want) {
		t.Errorf("removed QuantityReceived = %s, want %s", got, want)
	}

	// Remaining stocks are re-derived from a zero baseline, not patched.
	want := []decimal.Decimal{dec(-10), dec(-30)}
	txs := l.Slice(ByProduct("Wheat"))
	if len(txs) != len(want) {
		t.Fatalf("got %d records, want %d", len(txs), len(want))
	}
	for i, tx := range txs {
		if !tx.StockLeft.Equal(want[i]) {
			t.Errorf("record %d: StockLeft = %s, want %s", i, tx.StockLeft, want[i])
		}
	}
}

func TestLedger_DeleteNotFound(t *testing.T) {
	l := NewLedger()
	l.Append(date.MustParse("01/10/2025"), "Wheat", dec(100), dec(0), dec(0), dec(0), "")

	if _, found := l.Delete("Wheat", date.MustParse("02/10/2025")); found {
		t.Error("Delete found a record for an absent date")
	}
	if _, found := l.Delete("Urea", date.MustParse("01/10/2025")); found {
		t.Error("Delete found a record for an absent product")
	}
	if got := l.Len(); got != 1 {
		t.Errorf("store changed on a miss: Len = %d, want 1", got)
	}
}

func TestLedger_DeleteDuplicateDateFirstMatchWins(t *testing.T) {
	l := NewLedger()
	day := date.MustParse("01/10/2025")
	l.Append(day, "Wheat", dec(100), dec(0), dec(0), dec(0), "morning")
	l.Append(day, "Wheat", dec(0), dec(40), dec(0), dec(0), "evening")

	removed, found := l.Delete("Wheat", day)
	if !found {
		t.Fatal("Delete did not find the record")
	}
	if removed.Remarks != "morning" {
		t.Errorf("removed %q, want the first record in store order", removed.Remarks)
	}

	txs := l.Slice(ByProduct("Wheat"))
	if len(txs) != 1 {
		t.Fatalf("got %d records, want 1", len(txs))
	}
	if txs[0].Remarks != "evening" {
		t.Errorf("kept %q, want the second record", txs[0].Remarks)
	}
	if got, want := txs[0].StockLeft, dec(-40); !got.Equal(want) {
		t.Errorf("recomputed StockLeft = %s, want %s", got, want)
	}
}

func TestLedger_DeleteByID(t *testing.T) {
	l := NewLedger()
	day := date.MustParse("01/10/2025")
	l.Append(day, "Wheat", dec(100), dec(0), dec(0), dec(0), "first")
	second := l.Append(day, "Wheat", dec(50), dec(0), dec(0), dec(0), "second")

	removed, found := l.DeleteByID(second.ID())
	if !found {
		t.Fatal("DeleteByID did not find the record")
	}
	if removed.Remarks != "second" {
		t.Errorf("removed %q, want the identified record", removed.Remarks)
	}
	if _, found := l.DeleteByID(second.ID()); found {
		t.Error("DeleteByID found an already removed id")
	}
	if got, want := l.CurrentStock("Wheat"), dec(100); !got.Equal(want) {
		t.Errorf("CurrentStock = %s, want %s", got, want)
	}
}

func TestLedger_CurrentStockEmpty(t *testing.T) {
	l := NewLedger()
	if got := l.CurrentStock("Wheat"); !got.IsZero() {
		t.Errorf("CurrentStock of unknown product = %s, want 0", got)
	}
}

func TestLedger_Recompute(t *testing.T) {
	l := NewLedger()
	l.append(Transaction{
		Date: date.MustParse("01/10/2025"), Product: "Wheat",
		QuantityReceived: dec(10), QuantitySold: dec(4),
		CostPrice: dec(100), SellingPrice: dec(120),
		// stale derived values
		StockLeft: dec(999), TotalPurchase: dec(1), TotalSales: dec(2), Profit: dec(3),
	})

	l.Recompute()

	tx := l.Slice()[0]
	if got, want := tx.StockLeft, dec(6); !got.Equal(want) {
		t.Errorf("StockLeft = %s, want %s", got, want)
	}
	if got, want := tx.TotalPurchase, dec(1000); !got.Equal(want) {
		t.Errorf("TotalPurchase = %s, want %s", got, want)
	}
	if got, want := tx.TotalSales, dec(480); !got.Equal(want) {
		t.Errorf("TotalSales = %s, want %s", got, want)
	}
	if got, want := tx.Profit, dec(80); !got.Equal(want) {
		t.Errorf("Profit = %s, want %s", got, want)
	}
}

func TestLedger_ProductsFirstAppearanceOrder(t *testing.T) {
	l := NewLedger()
	day := date.MustParse("01/10/2025")
	l.Append(day, "Urea", dec(1), dec(0), dec(0), dec(0), "")
	l.Append(day, "Wheat", dec(1), dec(0), dec(0), dec(0), "")
	l.Append(day, "Urea", dec(1), dec(0), dec(0), dec(0), "")

	var got []string
	for p := range l.Products() {
		got = append(got, p)
	}
	want := []string{"Urea", "Wheat"}
	if len(got) != len(want) {
		t.Fatalf("Products = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Products[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
