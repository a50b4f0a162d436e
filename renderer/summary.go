package renderer

import (
	"bytes"
	"fmt"

	"github.com/agridesk/stockbook"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the per-product aggregates and the overall totals.
func SummaryMarkdown(sums []stockbook.ProductSummary, o stockbook.Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Business Summary")

	if len(sums) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	doc.Table(summaryTable(sums))

	doc.H2("Overall")
	doc.PlainText(fmt.Sprintf("%d transactions across %d products.", o.Transactions, o.Products))
	doc.Table(md.TableSet{
		Header: []string{"Total Purchase", "Total Sales", "Profit", "Margin"},
		Rows: [][]string{{
			Amount(o.TotalPurchase),
			Amount(o.TotalSales),
			SignedAmount(o.Profit),
			o.Margin().String(),
		}},
	})

	return doc.String()
}

// ProductSummaryMarkdown renders a single product's aggregate.
func ProductSummaryMarkdown(s stockbook.ProductSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s", s.Product))
	doc.Table(summaryTable([]stockbook.ProductSummary{s}))
	return doc.String()
}

// TopMarkdown renders a ranking of product summaries by the given metric.
func TopMarkdown(m stockbook.Metric, ranked []stockbook.ProductSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Top %d Products by %s", len(ranked), m))

	table := md.TableSet{
		Header: []string{"Rank", "Product", "Revenue", "Profit", "Margin"},
	}
	for i, s := range ranked {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Product,
			Amount(s.TotalSales),
			SignedAmount(s.Profit),
			s.Margin().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func summaryTable(sums []stockbook.ProductSummary) md.TableSet {
	table := md.TableSet{
		Header: []string{"Product", "Txs", "Received", "Sold", "Current Stock", "Total Purchase", "Total Sales", "Profit", "Margin"},
	}
	for _, s := range sums {
		table.Rows = append(table.Rows, []string{
			s.Product,
			fmt.Sprintf("%d", s.Transactions),
			s.QuantityReceived.String(),
			s.QuantitySold.String(),
			s.CurrentStock.String(),
			Amount(s.TotalPurchase),
			Amount(s.TotalSales),
			SignedAmount(s.Profit),
			s.Margin().String(),
		})
	}
	return table
}
