package stockbook

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Ledger holds the full ordered collection of transactions across all
// products.
//
// Transactions are kept in store order: the sequence in which they were
// appended, independent of their date field. The running StockLeft of a
// product is a prefix sum over (received - sold) along that product's
// sub-sequence in store order. The ledger never re-sorts by date; "previous
// stock" always means the last appended record of the product, which can
// diverge from the chronologically last one if callers append out of date
// order.
type Ledger struct {
	transactions []Transaction
	nextID       int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append records a new transaction at the end of the ledger and returns it.
//
// The stock balance is taken from the product's last record in store order
// (zero if the product has none) plus received minus sold. The monetary
// derived fields are recomputed from the quantities and unit prices. The
// caller is responsible for validating inputs and for persisting the book
// afterwards.
func (l *Ledger) Append(day Date, product string, received, sold, cost, selling decimal.Decimal, remarks string) Transaction {
	tx := Transaction{
		Date:             day,
		Product:          product,
		QuantityReceived: received,
		QuantitySold:     sold,
		CostPrice:        cost,
		SellingPrice:     selling,
		Remarks:          remarks,
	}
	tx.StockLeft = l.CurrentStock(product).Add(tx.Delta())
	tx.computeDerived()
	l.append(tx)
	return l.transactions[len(l.transactions)-1]
}

// append adds a transaction verbatim, assigning the next synthetic id.
func (l *Ledger) append(tx Transaction) {
	tx.id = l.nextID
	l.nextID++
	l.transactions = append(l.transactions, tx)
}

// CurrentStock returns the StockLeft of the product's last record in store
// order, or zero if the product has no records.
func (l *Ledger) CurrentStock(product string) decimal.Decimal {
	for i := len(l.transactions) - 1; i >= 0; i-- {
		if l.transactions[i].Product == product {
			return l.transactions[i].StockLeft
		}
	}
	return decimal.Zero
}

// Delete removes the first record in store order matching both product and
// date exactly, then recomputes the product's stock chain from scratch.
// It returns the removed transaction and true, or false if no record matched.
//
// When several records share the same (product, date), only the first one in
// store order is removed; use DeleteByID to target a specific record.
func (l *Ledger) Delete(product string, on Date) (Transaction, bool) {
	for i, tx := range l.transactions {
		if tx.Product == product && tx.Date == on {
			return l.deleteAt(i), true
		}
	}
	return Transaction{}, false
}

// DeleteByID removes the record with the given synthetic id, then recomputes
// the product's stock chain. It returns the removed transaction and true, or
// false if no record carries that id.
func (l *Ledger) DeleteByID(id int) (Transaction, bool) {
	for i, tx := range l.transactions {
		if tx.id == id {
			return l.deleteAt(i), true
		}
	}
	return Transaction{}, false
}

func (l *Ledger) deleteAt(i int) Transaction {
	removed := l.transactions[i]
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	l.recompute(removed.Product)
	return removed
}

// recompute re-derives the StockLeft chain of a product from a zero baseline,
// walking its records in store order. This is the only recalculation path:
// any deletion re-derives all downstream stock values, never patches them
// incrementally. Records of other products are untouched.
func (l *Ledger) recompute(product string) {
	stock := decimal.Zero
	for i := range l.transactions {
		if l.transactions[i].Product != product {
			continue
		}
		stock = stock.Add(l.transactions[i].Delta())
		l.transactions[i].StockLeft = stock
	}
}

// Recompute re-derives every product's stock chain and all monetary derived
// fields from the ground-truth inputs. It is used to bring a document back to
// canonical form when derived values on disk are stale or hand-edited.
func (l *Ledger) Recompute() {
	stocks := make(map[string]decimal.Decimal)
	for i := range l.transactions {
		tx := &l.transactions[i]
		stock := stocks[tx.Product].Add(tx.Delta())
		stocks[tx.Product] = stock
		tx.StockLeft = stock
		tx.computeDerived()
	}
}

// Transactions returns an iterator over transactions in store order, yielding
// the position and the transaction. Filters are OR-ed; with no filter every
// transaction is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !accepts(tx, filters) {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

func accepts(tx Transaction, filters []func(Transaction) bool) bool {
	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		if filter(tx) {
			return true
		}
	}
	return false
}

// ByProduct returns a predicate that filters transactions by product name.
func ByProduct(product string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Product == product }
}

// AcceptAll accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// Products returns an iterator over the distinct product names appearing in
// the ledger, in order of first appearance. This is independent of the
// registry: a product removed from the registry keeps its history here.
func (l *Ledger) Products() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, tx := range l.transactions {
			if _, ok := seen[tx.Product]; ok {
				continue
			}
			seen[tx.Product] = struct{}{}
			if !yield(tx.Product) {
				return
			}
		}
	}
}

// Slice returns a copy of the transactions matching the filters, in store
// order.
func (l *Ledger) Slice(filters ...func(Transaction) bool) []Transaction {
	var txs []Transaction
	for _, tx := range l.Transactions(filters...) {
		txs = append(txs, tx)
	}
	return txs
}
