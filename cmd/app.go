// Package cmd implements the CLI application to manage a stock book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/agridesk/stockbook"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to make the subcommands available, and
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&productsCmd{}, "products")
	c.Register(&addProductCmd{}, "products")
	c.Register(&removeProductCmd{}, "products")
	c.Register(&resetProductsCmd{}, "products")

	c.Register(&ledgerCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&topCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the app-wide flags.

var dataFile = flag.String("data-file", "", "Path to the book document. Defaults to ~/.local/share/stockbook/data.json")

// dataPath resolves the book document location from the flag or the default.
func dataPath() (string, error) {
	if *dataFile != "" {
		return *dataFile, nil
	}
	return stockbook.DefaultPath()
}

// loadBook is the central function to load the book for all subcommands. A
// missing document yields a fresh book.
func loadBook() (*stockbook.Book, error) {
	path, err := dataPath()
	if err != nil {
		return nil, err
	}
	return stockbook.LoadBook(path)
}

// saveBook persists the book after a mutation.
func saveBook(b *stockbook.Book) error {
	path, err := dataPath()
	if err != nil {
		return err
	}
	return stockbook.SaveBook(path, b)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. in a dumb terminal).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure status, to keep Execute
// bodies short.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
