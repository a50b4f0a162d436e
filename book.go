package stockbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound reports that the target of a lookup or a deletion is absent.
// The store is left unchanged.
var ErrNotFound = errors.New("not found")

// Book owns the whole state of a session: the product registry and the
// ledger. It is loaded from a single JSON document at startup and saved back
// after every mutation; there is no other durable state.
type Book struct {
	Products *Registry
	Ledger   *Ledger
}

// NewBook creates an empty book with the default product registry.
func NewBook() *Book {
	return &Book{Products: NewRegistry(), Ledger: NewLedger()}
}

// document is the wire shape of the persisted book.
type document struct {
	Products     []string      `json:"products"`
	Transactions []Transaction `json:"transactions"`
}

// DecodeBook decodes a book from its JSON document. Derived fields are taken
// as stored: loading then saving without mutation reproduces the document.
// Derived values are only re-derived by mutations (or an explicit Recompute).
func DecodeBook(r io.Reader) (*Book, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode book document: %w", err)
	}

	b := &Book{
		Products: &Registry{names: doc.Products},
		Ledger:   NewLedger(),
	}
	if doc.Products == nil {
		b.Products.names = []string{}
	}
	for _, tx := range doc.Transactions {
		b.Ledger.append(tx)
	}
	return b, nil
}

// EncodeBook writes the book as its canonical JSON document: the product
// list first, then every transaction in store order with the fixed key
// order.
func EncodeBook(w io.Writer, b *Book) error {
	doc := document{
		Products:     b.Products.Names(),
		Transactions: b.Ledger.Slice(),
	}
	if doc.Products == nil {
		doc.Products = []string{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []Transaction{}
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("could not encode book document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write book document: %w", err)
	}
	return nil
}

// LoadBook loads the book from the document at path. A missing file is not
// an error: it yields a fresh book with the default registry, matching the
// first run of a session.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book %q: %w", path, err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not load book %q: %w", path, err)
	}
	return b, nil
}

// SaveBook persists the book to the document at path, creating parent
// directories as needed. On failure the in-memory book is left as-is so the
// caller may retry.
func SaveBook(path string, b *Book) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open book %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeBook(f, b)
}

// DefaultPath returns the default location of the book document.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "stockbook", "data.json"), nil
}
