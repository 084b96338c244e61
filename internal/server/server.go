package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
	"github.com/atomscope/atomscope/internal/pipeline"
	"github.com/atomscope/atomscope/internal/report"
)

// MaxRequestBytes caps the POST /analyze body.
const MaxRequestBytes = 4 << 10

// Timeouts applied to every server built by NewHTTPServer.
const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second
)

// PipelineFactory returns a fresh analysis pipeline for one request.
type PipelineFactory func() *pipeline.Pipeline

// Options configure a Handler.
type Options struct {
	Logger  *slog.Logger
	Metrics *Metrics

	// NewPipeline builds the analysis pipeline. Nil disables POST /analyze,
	// which then answers 503.
	NewPipeline PipelineFactory

	// AnalysisTimeout bounds one POST /analyze pipeline run. Zero means the
	// request context alone applies.
	AnalysisTimeout time.Duration
}

// Handler serves the periodic table and analysis endpoints.
type Handler struct {
	logger          *slog.Logger
	metrics         *Metrics
	newPipeline     PipelineFactory
	analysisTimeout time.Duration
}

// New creates a new Handler.
func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Handler{
		logger:          logger,
		metrics:         metrics,
		newPipeline:     opts.NewPipeline,
		analysisTimeout: opts.AnalysisTimeout,
	}
}

// Register registers the API routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	api := chi.NewRouter()
	api.Use(middleware.Recoverer)
	api.Use(h.metrics.countRequests)

	api.Get("/healthz", h.handleHealth)
	api.Get("/elements", h.handleListElements)
	api.Get("/elements/{id}", h.handleGetElement)
	api.Get("/table", h.handleTable)
	api.Post("/analyze", h.handleAnalyze)
	api.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Mount("/", api)
}

// NewRouter returns a chi router with the Handler registered.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// NewHTTPServer builds an HTTP server with the project defaults.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListElements returns all 118 atoms. The optional lang query
// parameter selects the trend and summary language.
func (h *Handler) handleListElements(w http.ResponseWriter, r *http.Request) {
	d := describerFor(r)
	writeJSON(w, http.StatusOK, d.AllAtoms())
}

// handleGetElement accepts an atomic number or a case-sensitive symbol.
func (h *Handler) handleGetElement(w http.ResponseWriter, r *http.Request) {
	z, ok := resolveElement(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown element")
		return
	}
	writeJSON(w, http.StatusOK, describerFor(r).Atom(z))
}

func (h *Handler) handleTable(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, report.TableCells(periodic.Layout()))
}

type analyzeRequest struct {
	Query string `json:"query"`
}

// handleAnalyze runs the analysis pipeline for one query. A failed
// analysis is still a 200 response carrying the error and no molecule.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.newPipeline == nil {
		writeError(w, http.StatusServiceUnavailable, "analysis is not configured")
		return
	}

	var req analyzeRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid analyze request", "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if pipeline.NormalizeQuery(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	if h.analysisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.analysisTimeout)
		defer cancel()
	}

	a := model.NewAnalysis(req.Query)
	start := time.Now()
	if err := h.newPipeline().Execute(ctx, a); err != nil {
		h.logger.WarnContext(ctx, "analysis failed", "query", a.Query, "error", err)
	}
	h.metrics.ObserveAnalysisLatency(time.Since(start))
	h.metrics.IncrementOutcome(outcomeOf(a))

	writeJSON(w, http.StatusOK, a)
}

func outcomeOf(a *model.Analysis) string {
	switch {
	case a.TimedOut:
		return OutcomeTimeout
	case !a.HasData():
		return OutcomeNoData
	case a.FromCache:
		return OutcomeCached
	default:
		return OutcomeData
	}
}

func describerFor(r *http.Request) *periodic.Describer {
	return periodic.NewDescriber(periodic.MatchLanguage(r.URL.Query().Get("lang")))
}

// resolveElement maps "11" or "Na" to an atomic number in 1..118.
func resolveElement(id string) (int, bool) {
	id = strings.TrimSpace(id)
	if z, err := strconv.Atoi(id); err == nil {
		return z, z >= 1 && z <= periodic.MaxAtomicNumber
	}
	if e, ok := periodic.FindBySymbol(id); ok {
		return e.AtomicNumber, true
	}
	return 0, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
