package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/agridesk/stockbook/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list registered products" }
func (*productsCmd) Usage() string {
	return `sbk products

  Lists the registered products, split into products with and without
  transactions.
`
}

func (*productsCmd) SetFlags(*flag.FlagSet) {}

func (*productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ProductsMarkdown(b.Products.Names(), slices.Collect(b.Ledger.Products())))
	return subcommands.ExitSuccess
}

type addProductCmd struct{}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "register a new product" }
func (*addProductCmd) Usage() string {
	return `sbk add-product <name>

  Registers a new product name. Empty and duplicate names are rejected.
`
}

func (*addProductCmd) SetFlags(*flag.FlagSet) {}

func (*addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one product name is required.")
		return subcommands.ExitUsageError
	}

	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := b.Products.Add(f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := saveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Registered product %q.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type removeProductCmd struct{}

func (*removeProductCmd) Name() string     { return "remove-product" }
func (*removeProductCmd) Synopsis() string { return "unregister a product" }
func (*removeProductCmd) Usage() string {
	return `sbk remove-product <name>

  Unregisters a product. Its transactions stay in the ledger and keep
  appearing in reports.
`
}

func (*removeProductCmd) SetFlags(*flag.FlagSet) {}

func (*removeProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one product name is required.")
		return subcommands.ExitUsageError
	}

	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := b.Products.Remove(f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := saveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed product %q from the registry.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type resetProductsCmd struct{}

func (*resetProductsCmd) Name() string     { return "reset-products" }
func (*resetProductsCmd) Synopsis() string { return "restore the default product registry" }
func (*resetProductsCmd) Usage() string {
	return `sbk reset-products

  Replaces the product registry with the built-in default set. The ledger is
  not touched.
`
}

func (*resetProductsCmd) SetFlags(*flag.FlagSet) {}

func (*resetProductsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	b.Products.ResetToDefaults()
	if err := saveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Registry reset to %d default products.\n", b.Products.Len())
	return subcommands.ExitSuccess
}
