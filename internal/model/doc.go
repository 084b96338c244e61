// Package model defines the analysis records shared by the analyzer,
// pipeline, database and report packages.
//
// Molecule mirrors the structured-output schema requested from the
// generative model; Analysis wraps one request together with its outcome.
// Both are plain JSON-serializable structs so they can be stored verbatim.
package model
