package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// ProductsMarkdown renders the registry split into products that have ledger
// activity and products that do not. A product with history but no longer
// registered is listed under a separate heading so it is not silently lost.
func ProductsMarkdown(registered, active []string) string {
	inLedger := make(map[string]bool, len(active))
	for _, p := range active {
		inLedger[p] = true
	}
	isRegistered := make(map[string]bool, len(registered))
	for _, p := range registered {
		isRegistered[p] = true
	}

	var withTx, withoutTx, unregistered []string
	for _, p := range registered {
		if inLedger[p] {
			withTx = append(withTx, p)
		} else {
			withoutTx = append(withoutTx, p)
		}
	}
	for _, p := range active {
		if !isRegistered[p] {
			unregistered = append(unregistered, p)
		}
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")
	if len(withTx) > 0 {
		doc.H2("With transactions")
		doc.BulletList(withTx...)
	}
	if len(withoutTx) > 0 {
		doc.H2("Without transactions")
		doc.BulletList(withoutTx...)
	}
	if len(unregistered) > 0 {
		doc.H2("Removed from registry but present in the ledger")
		doc.BulletList(unregistered...)
	}

	return doc.String()
}
