// Package main provides the entry point for the atomscope CLI.
//
// atomscope is an educational chemistry tool. It shows the periodic table,
// per-atom structure (electron shells, electron configuration, periodic
// trends) and asks Google Gemini to explain how a substance bonds.
//
// Usage:
//
//	atomscope table
//	atomscope element Na
//	atomscope analyze "sodium chloride"
//
// See --help for all available options.
package main

// main is the entry point for atomscope.
func main() {
	Execute()
}
