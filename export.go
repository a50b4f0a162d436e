package stockbook

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// this file implements the export surface: the ledger (full or per-product)
// as delimited text, and multi-sheet spreadsheet workbooks. Pure projection,
// no new semantics.

// maxSheetName is the spreadsheet format's sheet name limit.
const maxSheetName = 31

// WriteCSV writes transactions as delimited text, one header row followed by
// one row per transaction in store order.
func WriteCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionKeys); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for _, tx := range txs {
		if err := cw.Write(csvRow(tx)); err != nil {
			return fmt.Errorf("could not write transaction: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(tx Transaction) []string {
	return []string{
		tx.Date.String(),
		tx.Product,
		tx.QuantityReceived.String(),
		tx.QuantitySold.String(),
		tx.StockLeft.String(),
		tx.CostPrice.String(),
		tx.SellingPrice.String(),
		tx.TotalPurchase.String(),
		tx.TotalSales.String(),
		tx.Profit.String(),
		tx.Remarks,
	}
}

// WriteWorkbook writes a spreadsheet with one sheet per product holding its
// ledger slice, plus an "All Products" sheet with the full ledger. Registered
// products without transactions get no sheet.
func WriteWorkbook(w io.Writer, b *Book) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, product := range b.Products.Names() {
		txs := b.Ledger.Slice(ByProduct(product))
		if len(txs) == 0 {
			continue
		}
		if err := addLedgerSheet(f, sheetName(product), txs); err != nil {
			return err
		}
	}
	if err := addLedgerSheet(f, "All Products", b.Ledger.Slice()); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("could not finalize workbook: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

// WriteSummaryWorkbook writes a spreadsheet with a per-product "Summary"
// sheet and an "All Transactions" sheet holding the full ledger.
func WriteSummaryWorkbook(w io.Writer, b *Book) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("could not create sheet %q: %w", sheet, err)
	}
	header := []interface{}{
		"Product Name", "Current Stock", "Quantity Received", "Quantity Sold",
		"Total Purchase", "Total Sales", "Profit", "Profit Margin %",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("could not write sheet %q: %w", sheet, err)
	}
	for i, s := range Summarize(b.Ledger) {
		row := []interface{}{
			s.Product,
			s.CurrentStock.InexactFloat64(),
			s.QuantityReceived.InexactFloat64(),
			s.QuantitySold.InexactFloat64(),
			s.TotalPurchase.InexactFloat64(),
			s.TotalSales.InexactFloat64(),
			s.Profit.InexactFloat64(),
			float64(s.Margin()),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("could not write sheet %q: %w", sheet, err)
		}
	}

	if err := addLedgerSheet(f, "All Transactions", b.Ledger.Slice()); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("could not finalize workbook: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

func addLedgerSheet(f *excelize.File, sheet string, txs []Transaction) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("could not create sheet %q: %w", sheet, err)
	}

	header := make([]interface{}, len(transactionKeys))
	for i, k := range transactionKeys {
		header[i] = k
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("could not write sheet %q: %w", sheet, err)
	}

	for i, tx := range txs {
		row := []interface{}{
			tx.Date.String(),
			tx.Product,
			tx.QuantityReceived.InexactFloat64(),
			tx.QuantitySold.InexactFloat64(),
			tx.StockLeft.InexactFloat64(),
			tx.CostPrice.InexactFloat64(),
			tx.SellingPrice.InexactFloat64(),
			tx.TotalPurchase.InexactFloat64(),
			tx.TotalSales.InexactFloat64(),
			tx.Profit.InexactFloat64(),
			tx.Remarks,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("could not write sheet %q: %w", sheet, err)
		}
	}
	return nil
}

func sheetName(product string) string {
	runes := []rune(product)
	if len(runes) > maxSheetName {
		return string(runes[:maxSheetName])
	}
	return product
}
