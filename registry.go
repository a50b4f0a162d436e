package stockbook

import (
	"fmt"
	"slices"
	"strings"
)

// defaultProducts is the built-in seed set restored by ResetToDefaults.
var defaultProducts = []string{
	"Wheat", "Urea", "DAP", "Sarson", "Cow Feed", "Gandyal", "Him Cal", "Liv 52",
}

// DefaultProducts returns a copy of the built-in product seed set.
func DefaultProducts() []string {
	return slices.Clone(defaultProducts)
}

// Registry is the ordered set of known product names. Its lifecycle is
// independent of the ledger: removing a product does not delete or hide its
// transaction history.
type Registry struct {
	names []string
}

// NewRegistry creates a registry seeded with the default products.
func NewRegistry() *Registry {
	return &Registry{names: DefaultProducts()}
}

// Add registers a new product name. The name is trimmed of surrounding
// whitespace; empty and duplicate names (case-sensitive exact match) are
// rejected and leave the registry unchanged.
func (r *Registry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("product name cannot be empty")
	}
	if r.Has(name) {
		return fmt.Errorf("product %q already exists", name)
	}
	r.names = append(r.names, name)
	return nil
}

// Remove unregisters a product by exact match. The ledger is not touched:
// there is no cascading delete of the product's transactions.
func (r *Registry) Remove(name string) error {
	i := slices.Index(r.names, name)
	if i < 0 {
		return fmt.Errorf("product %q: %w", name, ErrNotFound)
	}
	r.names = append(r.names[:i], r.names[i+1:]...)
	return nil
}

// ResetToDefaults replaces the registry contents with the built-in seed set.
func (r *Registry) ResetToDefaults() {
	r.names = DefaultProducts()
}

// Has reports whether the exact name is registered.
func (r *Registry) Has(name string) bool {
	return slices.Contains(r.names, name)
}

// Names returns a copy of the registered product names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of registered products.
func (r *Registry) Len() int { return len(r.names) }
