package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/agridesk/stockbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	date     string
	product  string
	received string
	sold     string
	cost     string
	selling  string
	remarks  string
	register bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction in the ledger" }
func (*addCmd) Usage() string {
	return `sbk add -p <product> [-d <date>] [-r <received>] [-s <sold>] [-c <cost>] [-sp <selling>] [-m <remarks>]

  Records a stock receipt and/or a sale for a product. The stock left is
  derived from the product's previous transaction; the purchase, sales and
  profit totals are derived from the quantities and unit prices.

Usage Examples:
# 150 bags of Wheat received, 23 sold the same day.
$ sbk add -p Wheat -d 24/10/2025 -r 150 -s 23 -c 1488 -sp 1650
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Transaction date (DD/MM/YYYY). Defaults to today.")
	f.StringVar(&p.product, "p", "", "Product name. Must be registered unless -new is given.")
	f.StringVar(&p.received, "r", "0", "Quantity received.")
	f.StringVar(&p.sold, "s", "0", "Quantity sold.")
	f.StringVar(&p.cost, "c", "0", "Cost price per unit.")
	f.StringVar(&p.selling, "sp", "0", "Selling price per unit.")
	f.StringVar(&p.remarks, "m", "", "Free-form remarks.")
	f.BoolVar(&p.register, "new", false, "Register the product if it is unknown.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.product == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <product> is required.")
		return subcommands.ExitUsageError
	}

	day := stockbook.Today()
	if p.date != "" {
		var err error
		day, err = stockbook.ParseDate(p.date)
		if err != nil {
			return fail(err)
		}
	}

	var received, sold, cost, selling decimal.Decimal
	for _, v := range []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"-r", p.received, &received},
		{"-s", p.sold, &sold},
		{"-c", p.cost, &cost},
		{"-sp", p.selling, &selling},
	} {
		d, err := decimal.NewFromString(v.value)
		if err != nil {
			return fail(fmt.Errorf("invalid %s value %q: %w", v.name, v.value, err))
		}
		*v.dst = d
	}

	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	if !b.Products.Has(p.product) {
		if !p.register {
			return fail(fmt.Errorf("unknown product %q, use -new to register it", p.product))
		}
		if err := b.Products.Add(p.product); err != nil {
			return fail(err)
		}
	}

	tx := b.Ledger.Append(day, p.product, received, sold, cost, selling, p.remarks)
	if err := saveBook(b); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded %s on %s, stock left %s.\n", tx.Product, tx.Date, tx.StockLeft)
	return subcommands.ExitSuccess
}
