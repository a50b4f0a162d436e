package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/agridesk/stockbook"
	"github.com/agridesk/stockbook/renderer"
	"github.com/google/subcommands"
)

type ledgerCmd struct {
	product string
	head    int
	tail    int
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "list transactions in the ledger" }
func (*ledgerCmd) Usage() string {
	return `sbk ledger [-p <product>] [-head <n> | -tail <n>]

  Lists transactions in the order they were recorded, with options for
  restricting to one product and limiting the output.
`
}

func (p *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.product, "p", "", "Show only this product's transactions.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	title := "Ledger"
	var txs []stockbook.Transaction
	if p.product != "" {
		title = fmt.Sprintf("Ledger for %s", p.product)
		txs = b.Ledger.Slice(stockbook.ByProduct(p.product))
	} else {
		txs = b.Ledger.Slice()
	}

	if p.head > 0 && len(txs) > p.head {
		txs = txs[:p.head]
	}
	if p.tail > 0 && len(txs) > p.tail {
		txs = txs[len(txs)-p.tail:]
	}

	printMarkdown(renderer.LedgerMarkdown(title, txs))
	return subcommands.ExitSuccess
}
