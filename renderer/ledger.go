package renderer

import (
	"bytes"
	"fmt"

	"github.com/agridesk/stockbook"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders a slice of transactions as a markdown table, in the
// order given (store order when the slice comes straight from the ledger).
func LedgerMarkdown(title string, txs []stockbook.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"#", "Date", "Product", "Received", "Sold", "Stock Left", "Cost Price", "Selling Price", "Profit", "Remarks"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", tx.ID()),
			tx.Date.String(),
			tx.Product,
			tx.QuantityReceived.String(),
			tx.QuantitySold.String(),
			tx.StockLeft.String(),
			Amount(tx.CostPrice),
			Amount(tx.SellingPrice),
			SignedAmount(tx.Profit),
			tx.Remarks,
		})
	}
	doc.Table(table)

	return doc.String()
}
