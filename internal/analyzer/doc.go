// Package analyzer asks a generative model for a structured explanation of
// a chemical substance.
//
// The Gemini implementation sends a single request per query with a fixed
// JSON response schema and a low temperature. It never retries. Callers
// treat any returned error as "no data available" for that query.
package analyzer
