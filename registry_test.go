package stockbook

import (
	"errors"
	"testing"
)

func TestRegistry_Defaults(t *testing.T) {
	r := NewRegistry()
	if got, want := r.Len(), len(DefaultProducts()); got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	if !r.Has("Wheat") || !r.Has("Liv 52") {
		t.Errorf("default registry missing seed products: %v", r.Names())
	}
}

func TestRegistry_Add(t *testing.T) {
	r := NewRegistry()

	if err := r.Add("  Zinc Sulphate "); err != nil {
		t.Fatal(err)
	}
	if !r.Has("Zinc Sulphate") {
		t.Error("trimmed name not registered")
	}

	if err := r.Add("Zinc Sulphate"); err == nil {
		t.Error("duplicate name accepted")
	}
	if err := r.Add("   "); err == nil {
		t.Error("blank name accepted")
	}
	// Case-sensitive exact match: a different casing is a different product.
	if err := r.Add("zinc sulphate"); err != nil {
		t.Errorf("differently cased name rejected: %v", err)
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()

	if err := r.Remove("Urea"); err != nil {
		t.Fatal(err)
	}
	if r.Has("Urea") {
		t.Error("removed product still registered")
	}

	err := r.Remove("Urea")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("removing absent product: err = %v, want ErrNotFound", err)
	}
}

func TestRegistry_ResetToDefaults(t *testing.T) {
	r := NewRegistry()
	if err := r.Add("Zinc Sulphate"); err != nil {
		t.Fatal(err)
	}
	if err := r.Remove("Wheat"); err != nil {
		t.Fatal(err)
	}

	r.ResetToDefaults()

	if r.Has("Zinc Sulphate") {
		t.Error("reset kept an added product")
	}
	if !r.Has("Wheat") {
		t.Error("reset did not restore a default product")
	}
	if got, want := r.Len(), len(DefaultProducts()); got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	names[0] = "mutated"
	if r.Names()[0] == "mutated" {
		t.Error("Names exposed internal storage")
	}
}
