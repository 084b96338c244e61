// Package database stores completed analyses in SQLite so repeated queries
// can be answered without calling the model again, and so past results can
// be listed with `atomscope history`.
//
// Rows are keyed by a SHA3-256 digest of the normalized query, the model
// name and the output language. The molecule itself is kept as a JSON blob.
//
// modernc.org/sqlite is a pure Go driver; the binary stays CGO-free.
package database
