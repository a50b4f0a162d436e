// Package stockbook implements a small business ledger: per-product stock
// receipts and sales recorded as transactions, with a running stock balance
// derived per product.
//
// The whole state of a session is a Book: an ordered product registry and a
// ledger of transactions. The book is loaded from a single JSON document at
// startup and saved back after every mutation.
package stockbook
