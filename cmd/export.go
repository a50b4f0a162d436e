package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agridesk/stockbook"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output  string
	format  string
	product string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as CSV or a spreadsheet" }
func (*exportCmd) Usage() string {
	return `sbk export [-format csv|xlsx|summary] [-p <product>] [-o <file>]

  Exports the ledger. 'csv' writes delimited text with the document's column
  names. 'xlsx' writes a workbook with one sheet per product plus a combined
  sheet. 'summary' writes a workbook with per-product aggregates and the full
  transaction list. Output goes to stdout unless -o is given.

Usage Examples:
# Wheat transactions as CSV.
$ sbk export -p Wheat > wheat.csv

# Full workbook.
$ sbk export -format xlsx -o stock.xlsx
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to stdout.")
	f.StringVar(&p.format, "format", "csv", "Export format: csv, xlsx or summary.")
	f.StringVar(&p.product, "p", "", "Export only this product (csv format only).")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.product != "" && p.format != "csv" {
		fmt.Fprintln(os.Stderr, "Error: -p is only supported with -format csv.")
		return subcommands.ExitUsageError
	}

	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	var w io.Writer = os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		w = file
	}

	switch p.format {
	case "csv":
		filters := []func(stockbook.Transaction) bool{}
		if p.product != "" {
			filters = append(filters, stockbook.ByProduct(p.product))
		}
		err = stockbook.WriteCSV(w, b.Ledger.Slice(filters...))
	case "xlsx":
		err = stockbook.WriteWorkbook(w, b)
	case "summary":
		err = stockbook.WriteSummaryWorkbook(w, b)
	default:
		return fail(fmt.Errorf("unknown export format %q", p.format))
	}
	if err != nil {
		return fail(err)
	}

	if p.output != "" {
		fmt.Printf("Exported to %s.\n", p.output)
	}
	return subcommands.ExitSuccess
}
