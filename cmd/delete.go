package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/agridesk/stockbook"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id      int
	product string
	date    string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction and recompute the stock chain" }
func (*deleteCmd) Usage() string {
	return `sbk delete -id <id> | -p <product> -d <date>

  Deletes one transaction, then recomputes the product's running stock from
  zero. With -p and -d, the first recorded transaction of the product on that
  date is deleted; use -id (shown by 'sbk ledger') to target a specific one.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.id, "id", -1, "Transaction id to delete.")
	f.StringVar(&p.product, "p", "", "Product name of the transaction to delete.")
	f.StringVar(&p.date, "d", "", "Date (DD/MM/YYYY) of the transaction to delete.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	byID := p.id >= 0
	byMatch := p.product != "" || p.date != ""
	if byID == byMatch {
		fmt.Fprintln(os.Stderr, "Error: use either -id or both -p and -d.")
		return subcommands.ExitUsageError
	}

	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	var removed stockbook.Transaction
	var found bool
	if byID {
		removed, found = b.Ledger.DeleteByID(p.id)
		if !found {
			return fail(fmt.Errorf("transaction %d: %w", p.id, stockbook.ErrNotFound))
		}
	} else {
		if p.product == "" || p.date == "" {
			fmt.Fprintln(os.Stderr, "Error: -p and -d are both required.")
			return subcommands.ExitUsageError
		}
		day, err := stockbook.ParseDate(p.date)
		if err != nil {
			return fail(err)
		}
		removed, found = b.Ledger.Delete(p.product, day)
		if !found {
			return fail(fmt.Errorf("no transaction for %q on %s: %w", p.product, day, stockbook.ErrNotFound))
		}
	}

	if err := saveBook(b); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted %s on %s, current stock %s.\n",
		removed.Product, removed.Date, b.Ledger.CurrentStock(removed.Product))
	return subcommands.ExitSuccess
}
