// Package report renders atoms, the periodic table, analyses and analysis
// history in three formats: plain text for the terminal, JSON for tools and
// Markdown for sharing.
//
// Every format implements Writer; New picks one from a Format value.
package report
