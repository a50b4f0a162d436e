package stockbook

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file implements the bulk import format: a JSON array of loosely-typed
// records, one per transaction, applied to the book in a single pass.

// importRecord is the wire shape of one bulk-import record. Numeric fields
// accept JSON numbers or numeric strings; missing optional fields default to
// zero / empty.
type importRecord struct {
	Date             string          `json:"date"`
	ProductName      string          `json:"product_name"`
	QuantityReceived decimal.Decimal `json:"quantity_received"`
	QuantitySold     decimal.Decimal `json:"quantity_sold"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	Remarks          string          `json:"remarks"`
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Imported   int      // well-formed records appended to the ledger
	Registered []string // products auto-registered as a side effect
	Errors     []error  // one entry per skipped record
}

// ImportRecords applies a JSON array of transaction records to the book.
//
// A malformed envelope (anything but a valid JSON array of objects) aborts
// before any record is applied. A malformed record (unparsable numeric field
// or date) is skipped and counted; well-formed records before and after it
// still commit. Unknown products are registered as a side effect before the
// append. The caller persists the book once at the end.
func ImportRecords(b *Book, data []byte) (*ImportResult, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("invalid import envelope: %w", err)
	}
	return importRaw(b, raws)
}

// ImportRecordsAt is like ImportRecords for record arrays nested inside a
// larger JSON document: the JSONPath expression selects the array to import,
// e.g. "$.transactions" or "$.data.rows".
func ImportRecordsAt(b *Book, data []byte, path string) (*ImportResult, error) {
	if path == "" {
		return ImportRecords(b, data)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid import envelope: %w", err)
	}
	got, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("import path %q: %w", path, err)
	}
	items, ok := got.([]interface{})
	if !ok {
		return nil, fmt.Errorf("import path %q selected %T, want an array of records", path, got)
	}

	raws := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("import path %q: %w", path, err)
		}
		raws = append(raws, raw)
	}
	return importRaw(b, raws)
}

func importRaw(b *Book, raws []json.RawMessage) (*ImportResult, error) {
	res := &ImportResult{}
	for i, raw := range raws {
		var rec importRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		day, err := ParseDate(rec.Date)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}

		if !b.Products.Has(rec.ProductName) {
			if err := b.Products.Add(rec.ProductName); err != nil {
				res.Errors = append(res.Errors, fmt.Errorf("record %d: %w", i+1, err))
				continue
			}
			res.Registered = append(res.Registered, rec.ProductName)
		}

		b.Ledger.Append(day, rec.ProductName,
			rec.QuantityReceived, rec.QuantitySold,
			rec.CostPrice, rec.SellingPrice, rec.Remarks)
		res.Imported++
	}
	return res, nil
}
