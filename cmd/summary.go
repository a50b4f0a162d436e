package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/agridesk/stockbook"
	"github.com/agridesk/stockbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	product string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "per-product and overall business summary" }
func (*summaryCmd) Usage() string {
	return `sbk summary [-p <product>]

  Aggregates the ledger per product: quantities, current stock, purchase and
  sales totals, profit and margin. With -p, shows a single product.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.product, "p", "", "Summarize only this product.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	if p.product != "" {
		s, ok := stockbook.SummarizeProduct(b.Ledger, p.product)
		if !ok {
			return fail(fmt.Errorf("no transactions for %q: %w", p.product, stockbook.ErrNotFound))
		}
		printMarkdown(renderer.ProductSummaryMarkdown(s))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SummaryMarkdown(stockbook.Summarize(b.Ledger), stockbook.NewOverview(b.Ledger)))
	return subcommands.ExitSuccess
}
