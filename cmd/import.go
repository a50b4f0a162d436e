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

type importCmd struct {
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk import transactions from a JSON file" }
func (*importCmd) Usage() string {
	return `sbk import [-path <jsonpath>] [<file>]

  Imports a JSON array of transaction records, from the file or from stdin.
  Malformed records are skipped and reported; the rest is applied and saved in
  one shot. Unknown products are registered automatically. See 'sbk topic
  import' for the record format.

Usage Examples:
# Import records nested in a backup document.
$ sbk import -path '$.data.rows' backup.json
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.path, "path", "", "JSONPath expression selecting the record array inside the document.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var data []byte
	var err error
	switch f.NArg() {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		data, err = os.ReadFile(f.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "Error: at most one input file.")
		return subcommands.ExitUsageError
	}
	if err != nil {
		return fail(err)
	}

	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	res, err := stockbook.ImportRecordsAt(b, data, p.path)
	if err != nil {
		return fail(err)
	}

	if res.Imported > 0 {
		if err := saveBook(b); err != nil {
			return fail(err)
		}
	}

	fmt.Printf("Imported %d transactions.\n", res.Imported)
	for _, product := range res.Registered {
		fmt.Printf("Registered new product %q.\n", product)
	}
	for _, recErr := range res.Errors {
		fmt.Fprintf(os.Stderr, "Skipped %v\n", recErr)
	}
	if len(res.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d malformed records.\n", len(res.Errors))
	}
	return subcommands.ExitSuccess
}
