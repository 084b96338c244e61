package model

import "time"

// Analysis is one analysis request and its outcome.
// A nil Molecule means no data is available; it is never replaced by a
// different answer.
type Analysis struct {
	// ID is the database identifier, zero until persisted.
	ID int64 `json:"id,omitempty"`

	// Query is the text the user typed.
	Query string `json:"query"`

	// NormalizedQuery is the cache key input after Unicode and whitespace
	// normalization.
	NormalizedQuery string `json:"normalizedQuery"`

	// Model is the generative model name used for the request.
	Model string `json:"model"`

	// Language is the BCP 47 tag the explanation was requested in.
	Language string `json:"language"`

	CreatedAt time.Time `json:"createdAt"`

	Molecule *Molecule `json:"molecule"`

	// FromCache is set when the molecule was loaded from the store.
	FromCache bool `json:"fromCache,omitempty"`

	// Sanitized counts SVG elements or attributes removed before display.
	Sanitized int `json:"sanitized,omitempty"`

	// Steps lists the pipeline steps that ran, in order.
	Steps []string `json:"steps,omitempty"`

	Error        error  `json:"-"`
	ErrorMessage string `json:"error,omitempty"`

	TimedOut bool `json:"timedOut,omitempty"`
}

// NewAnalysis creates an Analysis for the given query.
func NewAnalysis(query string) *Analysis {
	return &Analysis{
		Query:     query,
		CreatedAt: time.Now().UTC(),
		Steps:     make([]string, 0),
	}
}

// HasData reports whether a molecule is available.
func (a *Analysis) HasData() bool {
	return a.Molecule != nil
}

// Fail records err and clears any molecule so consumers see "no data".
func (a *Analysis) Fail(err error) {
	a.Molecule = nil
	a.Error = err
	if err != nil {
		a.ErrorMessage = err.Error()
	}
}
