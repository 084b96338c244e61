// Package pipeline runs an analysis request through a fixed sequence of
// steps: prepare the query, look it up in the store, ask the model,
// sanitize the drawings, fill gaps from the local element table and
// persist the result.
//
// Each step receives the *model.Analysis being built and either updates it
// or leaves it alone. A BatchProcessor runs one pipeline per query with a
// concurrency limit.
package pipeline
