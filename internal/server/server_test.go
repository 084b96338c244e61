package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
	"github.com/atomscope/atomscope/internal/pipeline"
	"github.com/atomscope/atomscope/internal/report"
)

type stubAnalyzer struct {
	molecule *model.Molecule
	err      error
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string) (*model.Molecule, error) {
	if s.err != nil {
		return nil, s.err
	}
	clone := *s.molecule
	return &clone, nil
}

func (s *stubAnalyzer) Model() string { return "stub-model" }

func (s *stubAnalyzer) Language() language.Tag { return language.English }

func water() *model.Molecule {
	return &model.Molecule{
		Name:     "Water",
		Formula:  "H2O",
		BondType: model.BondTypeCovalent,
		Atoms: []model.AtomInfo{
			{Symbol: "O", AtomicNumber: 8},
			{Symbol: "H", AtomicNumber: 1},
			{Symbol: "H", AtomicNumber: 1},
		},
		Bonds: []model.BondInfo{
			{FromIndex: 0, ToIndex: 1, Type: model.BondSingle},
			{FromIndex: 0, ToIndex: 2, Type: model.BondSingle},
		},
		HasHydrogenBonds: true,
	}
}

func newTestRouter(t *testing.T, an *stubAnalyzer) (http.Handler, *Metrics) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := NewMetrics()

	opts := Options{Logger: logger, Metrics: metrics}
	if an != nil {
		opts.NewPipeline = func() *pipeline.Pipeline {
			return pipeline.NewAnalysisPipeline(pipeline.Deps{Analyzer: an, Logger: logger})
		}
	}
	return NewRouter(New(opts)), metrics
}

func do(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// TestHealth tests the liveness endpoint.
func TestHealth(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec := do(t, router, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

// TestElements tests the element list and detail endpoints.
func TestElements(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	t.Run("list returns every atom", func(t *testing.T) {
		t.Parallel()
		rec := do(t, router, http.MethodGet, "/elements", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var atoms []periodic.Atom
		if err := json.NewDecoder(rec.Body).Decode(&atoms); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if len(atoms) != periodic.MaxAtomicNumber {
			t.Errorf("expected %d atoms, got %d", periodic.MaxAtomicNumber, len(atoms))
		}
	})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantZ      int
	}{
		{name: "by number", target: "/elements/11", wantStatus: http.StatusOK, wantZ: 11},
		{name: "by symbol", target: "/elements/Cl", wantStatus: http.StatusOK, wantZ: 17},
		{name: "placeholder number", target: "/elements/91", wantStatus: http.StatusOK, wantZ: 91},
		{name: "zero", target: "/elements/0", wantStatus: http.StatusNotFound},
		{name: "too large", target: "/elements/119", wantStatus: http.StatusNotFound},
		{name: "unknown symbol", target: "/elements/Xx", wantStatus: http.StatusNotFound},
		{name: "symbol is case sensitive", target: "/elements/cl", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, router, http.MethodGet, tt.target, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var atom periodic.Atom
			if err := json.NewDecoder(rec.Body).Decode(&atom); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if atom.AtomicNumber != tt.wantZ {
				t.Errorf("expected Z=%d, got %d", tt.wantZ, atom.AtomicNumber)
			}
		})
	}

	t.Run("lang selects the trend language", func(t *testing.T) {
		t.Parallel()
		en := do(t, router, http.MethodGet, "/elements/10", nil).Body.String()
		vi := do(t, router, http.MethodGet, "/elements/10?lang=vi", nil).Body.String()
		if en == vi {
			t.Error("expected Vietnamese text to differ from English")
		}
	})
}

// TestTable tests the periodic table endpoint.
func TestTable(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec := do(t, router, http.MethodGet, "/table", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var cells []report.TableCell
	if err := json.NewDecoder(rec.Body).Decode(&cells); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if want := len(report.TableCells(periodic.Layout())); len(cells) != want {
		t.Errorf("expected %d cells, got %d", want, len(cells))
	}
}

// TestAnalyze tests the analysis endpoint.
func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("returns the molecule", func(t *testing.T) {
		t.Parallel()
		router, _ := newTestRouter(t, &stubAnalyzer{molecule: water()})

		rec := do(t, router, http.MethodPost, "/analyze", []byte(`{"query":"water"}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var a model.Analysis
		if err := json.NewDecoder(rec.Body).Decode(&a); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if a.Molecule == nil || a.Molecule.Formula != "H2O" {
			t.Fatalf("expected H2O molecule, got %+v", a.Molecule)
		}
		if got := a.Molecule.Atoms[0].ValenceElectrons; got != 6 {
			t.Errorf("expected enriched oxygen valence 6, got %d", got)
		}
		if a.Model != "stub-model" {
			t.Errorf("expected model stub-model, got %q", a.Model)
		}
	})

	t.Run("analyzer error yields no data", func(t *testing.T) {
		t.Parallel()
		router, _ := newTestRouter(t, &stubAnalyzer{err: errors.New("quota exceeded")})

		rec := do(t, router, http.MethodPost, "/analyze", []byte(`{"query":"water"}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var a model.Analysis
		if err := json.NewDecoder(rec.Body).Decode(&a); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if a.Molecule != nil {
			t.Error("expected no molecule")
		}
		if a.ErrorMessage == "" {
			t.Error("expected an error message")
		}
	})

	tests := []struct {
		name       string
		analyzer   *stubAnalyzer
		body       []byte
		wantStatus int
	}{
		{name: "not configured", body: []byte(`{"query":"water"}`), wantStatus: http.StatusServiceUnavailable},
		{name: "malformed body", analyzer: &stubAnalyzer{molecule: water()}, body: []byte(`{`), wantStatus: http.StatusBadRequest},
		{name: "blank query", analyzer: &stubAnalyzer{molecule: water()}, body: []byte(`{"query":"  "}`), wantStatus: http.StatusBadRequest},
		{
			name:       "oversized body",
			analyzer:   &stubAnalyzer{molecule: water()},
			body:       []byte(`{"query":"` + strings.Repeat("a", MaxRequestBytes) + `"}`),
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router, _ := newTestRouter(t, tt.analyzer)
			rec := do(t, router, http.MethodPost, "/analyze", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

// TestMetrics tests that requests and analysis outcomes are exported.
func TestMetrics(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, &stubAnalyzer{molecule: water()})
	do(t, router, http.MethodPost, "/analyze", []byte(`{"query":"water"}`))
	do(t, router, http.MethodGet, "/elements/8", nil)

	rec := do(t, router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`atomscope_analyses_total{outcome="data"} 1`,
		"atomscope_analysis_duration_seconds_count 1",
		`route="/elements/{id}"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

// TestOutcomeOf tests analysis outcome classification.
func TestOutcomeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *model.Analysis
		want string
	}{
		{name: "data", a: &model.Analysis{Molecule: water()}, want: OutcomeData},
		{name: "cached", a: &model.Analysis{Molecule: water(), FromCache: true}, want: OutcomeCached},
		{name: "no data", a: &model.Analysis{}, want: OutcomeNoData},
		{name: "timeout", a: &model.Analysis{TimedOut: true}, want: OutcomeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := outcomeOf(tt.a); got != tt.want {
				t.Errorf("outcomeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
