// Package periodic holds the static element table and the deterministic
// routines derived from it: shell filling, electron-configuration notation,
// periodic-trend text and the periodic table grid layout.
//
// Every function in this package is pure. The lookup tables are package-level
// values initialized once and never mutated; slices handed to callers are
// always fresh copies.
//
// The shell and configuration models are simplified visualization aids, not
// a quantum-mechanical description. Outside the hardcoded exception lists the
// results are approximate, most notably for atomic numbers without a table
// entry (91, 93-118).
package periodic
