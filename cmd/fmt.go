package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "recompute derived fields and rewrite the document in canonical form"
}
func (*fmtCmd) Usage() string {
	return `sbk fmt

  Reads the book, re-derives every stock chain and all purchase, sales and
  profit totals from the ground-truth quantities and prices, and writes the
  document back. Use it after editing the document by hand.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	b.Ledger.Recompute()
	if err := saveBook(b); err != nil {
		return fail(err)
	}

	fmt.Fprintf(os.Stderr, "Formatted %d transactions.\n", b.Ledger.Len())
	return subcommands.ExitSuccess
}
