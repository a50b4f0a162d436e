package stockbook

import (
	"testing"
)

func TestImportRecords(t *testing.T) {
	data := []byte(`[
		{"date": "01/10/2025", "product_name": "Wheat", "quantity_received": 100, "quantity_sold": 0, "cost_price": 1400, "selling_price": 1600},
		{"date": "02/10/2025", "product_name": "Wheat", "quantity_received": 0, "quantity_sold": "30", "cost_price": "1400", "selling_price": "1600", "remarks": "quoted numbers"},
		{"date": "2025-10-03", "product_name": "Wheat", "quantity_received": 5, "quantity_sold": 0, "cost_price": 1400, "selling_price": 1600},
		{"date": "03/10/2025", "product_name": "Wheat", "quantity_received": "five", "quantity_sold": 0, "cost_price": 1400, "selling_price": 1600},
		{"date": "04/10/2025", "product_name": "Zinc Sulphate", "quantity_received": 20, "quantity_sold": 2, "cost_price": 300, "selling_price": 340},
		{"date": "05/10/2025", "product_name": "Wheat", "quantity_received": 0, "quantity_sold": 10, "cost_price": 1400, "selling_price": 1600}
	]`)

	b := NewBook()
	res, err := ImportRecords(b, data)
	if err != nil {
		t.Fatal(err)
	}

	// Records 3 (ISO date) and 4 (non-numeric quantity) are skipped; the
	// records after them still commit.
	if got, want := res.Imported, 4; got != want {
		t.Errorf("Imported = %d, want %d", got, want)
	}
	if got, want := len(res.Errors), 2; got != want {
		t.Fatalf("Errors = %v, want %d entries", res.Errors, want)
	}
	if got, want := b.Ledger.Len(), 4; got != want {
		t.Errorf("ledger has %d transactions, want %d", got, want)
	}
	if got, want := b.Ledger.CurrentStock("Wheat"), dec(60); !got.Equal(want) {
		t.Errorf("CurrentStock(Wheat) = %s, want %s", got, want)
	}

	// The unknown product was registered as a side effect.
	if len(res.Registered) != 1 || res.Registered[0] != "Zinc Sulphate" {
		t.Errorf("Registered = %v, want [Zinc Sulphate]", res.Registered)
	}
	if !b.Products.Has("Zinc Sulphate") {
		t.Error("imported product not in the registry")
	}
}

func TestImportRecords_BadEnvelope(t *testing.T) {
	for _, data := range []string{
		`{"date": "01/10/2025"}`,
		`"01/10/2025"`,
		`[{"date": "01/10/2025"`,
		`not json`,
	} {
		b := NewBook()
		if _, err := ImportRecords(b, []byte(data)); err == nil {
			t.Errorf("envelope %s accepted", data)
		}
		if b.Ledger.Len() != 0 {
			t.Errorf("envelope %s applied records before failing", data)
		}
	}
}

func TestImportRecords_Empty(t *testing.T) {
	b := NewBook()
	res, err := ImportRecords(b, []byte(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	if res.Imported != 0 || len(res.Errors) != 0 {
		t.Errorf("empty array imported %d with %d errors", res.Imported, len(res.Errors))
	}
}

func TestImportRecordsAt(t *testing.T) {
	data := []byte(`{
		"exported": "31/08/2026",
		"data": {
			"rows": [
				{"date": "01/10/2025", "product_name": "Wheat", "quantity_received": 10, "quantity_sold": 0, "cost_price": 1400, "selling_price": 1600}
			]
		}
	}`)

	b := NewBook()
	res, err := ImportRecordsAt(b, data, "$.data.rows")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Imported, 1; got != want {
		t.Errorf("Imported = %d, want %d", got, want)
	}

	if _, err := ImportRecordsAt(b, data, "$.exported"); err == nil {
		t.Error("non-array selection accepted")
	}
	if _, err := ImportRecordsAt(b, data, "$.missing"); err == nil {
		t.Error("unresolvable path accepted")
	}
}
