// Package server exposes the periodic table and the analysis pipeline over
// a small JSON HTTP API with Prometheus metrics.
package server
