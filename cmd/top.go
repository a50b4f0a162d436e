package cmd

import (
	"context"
	"flag"

	"github.com/agridesk/stockbook"
	"github.com/agridesk/stockbook/renderer"
	"github.com/google/subcommands"
)

type topCmd struct {
	by string
	n  int
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "rank products by revenue, profit or margin" }
func (*topCmd) Usage() string {
	return `sbk top [-by revenue|profit|margin] [-n <count>]

  Ranks products by the chosen metric, best first. Ties keep the products'
  ledger order.
`
}

func (p *topCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.by, "by", "revenue", "Ranking metric: revenue, profit or margin.")
	f.IntVar(&p.n, "n", 3, "Number of products to show. 0 shows all.")
}

func (p *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	metric, err := stockbook.ParseMetric(p.by)
	if err != nil {
		return fail(err)
	}

	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	ranked := stockbook.TopBy(stockbook.Summarize(b.Ledger), metric, p.n)
	printMarkdown(renderer.TopMarkdown(metric, ranked))
	return subcommands.ExitSuccess
}
