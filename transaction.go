package stockbook

import (
	"encoding/json"

	"github.com/agridesk/stockbook/date"
	"github.com/shopspring/decimal"
)

func init() {
	// Derived fields are persisted as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Date is re-exported for convenience so that callers of the stockbook
// package do not need to import the date package for common cases.
type Date = date.Date

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses a date in the ledger's DD/MM/YYYY format.
func ParseDate(s string) (Date, error) { return date.Parse(s) }

// Transaction is one ledger entry: a stock receipt and/or a sale of a single
// product on a given day. The monetary and stock fields below StockLeft are
// derived; they are recomputed on every write and never treated as ground
// truth once a mutation touches the product's chain.
type Transaction struct {
	id int // session-stable identifier, never persisted

	Date             Date
	Product          string
	QuantityReceived decimal.Decimal
	QuantitySold     decimal.Decimal
	StockLeft        decimal.Decimal
	CostPrice        decimal.Decimal
	SellingPrice     decimal.Decimal
	TotalPurchase    decimal.Decimal
	TotalSales       decimal.Decimal
	Profit           decimal.Decimal
	Remarks          string
}

// ID returns the transaction's synthetic identifier. It is stable within a
// session and makes deletion unambiguous when several transactions share a
// (product, date) pair. It is assigned by the ledger and not persisted.
func (t Transaction) ID() int { return t.id }

// Delta returns the net stock change of this transaction (received - sold).
func (t Transaction) Delta() decimal.Decimal {
	return t.QuantityReceived.Sub(t.QuantitySold)
}

// computeDerived fills the three monetary derived fields from quantities and
// unit prices. StockLeft is owned by the ledger, not computed here.
func (t *Transaction) computeDerived() {
	t.TotalPurchase = t.QuantityReceived.Mul(t.CostPrice)
	t.TotalSales = t.QuantitySold.Mul(t.SellingPrice)
	t.Profit = t.SellingPrice.Sub(t.CostPrice).Mul(t.QuantitySold)
}

// Equal reports whether two transactions carry the same values, ignoring the
// synthetic id.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Product == o.Product &&
		t.QuantityReceived.Equal(o.QuantityReceived) &&
		t.QuantitySold.Equal(o.QuantitySold) &&
		t.StockLeft.Equal(o.StockLeft) &&
		t.CostPrice.Equal(o.CostPrice) &&
		t.SellingPrice.Equal(o.SellingPrice) &&
		t.TotalPurchase.Equal(o.TotalPurchase) &&
		t.TotalSales.Equal(o.TotalSales) &&
		t.Profit.Equal(o.Profit) &&
		t.Remarks == o.Remarks
}

// transactionKeys are the exact keys of a persisted transaction, in document
// order. They double as the header row of delimited exports.
var transactionKeys = []string{
	"Date",
	"Product Name",
	"Quantity Received",
	"Quantity Sold",
	"Stock Left",
	"Cost Price",
	"Selling Price",
	"Total Purchase",
	"Total Sales",
	"Profit",
	"Remarks",
}

// MarshalJSON implements the json.Marshaler interface for Transaction. The
// key order is part of the document contract, so the object is built
// explicitly instead of relying on struct field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("Date", t.Date)
	w.Append("Product Name", t.Product)
	w.Append("Quantity Received", t.QuantityReceived)
	w.Append("Quantity Sold", t.QuantitySold)
	w.Append("Stock Left", t.StockLeft)
	w.Append("Cost Price", t.CostPrice)
	w.Append("Selling Price", t.SellingPrice)
	w.Append("Total Purchase", t.TotalPurchase)
	w.Append("Total Sales", t.TotalSales)
	w.Append("Profit", t.Profit)
	w.Append("Remarks", t.Remarks)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date             Date            `json:"Date"`
		Product          string          `json:"Product Name"`
		QuantityReceived decimal.Decimal `json:"Quantity Received"`
		QuantitySold     decimal.Decimal `json:"Quantity Sold"`
		StockLeft        decimal.Decimal `json:"Stock Left"`
		CostPrice        decimal.Decimal `json:"Cost Price"`
		SellingPrice     decimal.Decimal `json:"Selling Price"`
		TotalPurchase    decimal.Decimal `json:"Total Purchase"`
		TotalSales       decimal.Decimal `json:"Total Sales"`
		Profit           decimal.Decimal `json:"Profit"`
		Remarks          string          `json:"Remarks"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.Date = temp.Date
	t.Product = temp.Product
	t.QuantityReceived = temp.QuantityReceived
	t.QuantitySold = temp.QuantitySold
	t.StockLeft = temp.StockLeft
	t.CostPrice = temp.CostPrice
	t.SellingPrice = temp.SellingPrice
	t.TotalPurchase = temp.TotalPurchase
	t.TotalSales = temp.TotalSales
	t.Profit = temp.Profit
	t.Remarks = temp.Remarks
	return nil
}
