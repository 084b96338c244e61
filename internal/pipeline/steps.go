package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/atomscope/atomscope/internal/analyzer"
	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
	"github.com/atomscope/atomscope/internal/svg"
)

// ErrEmptyQuery is returned when a query is blank after normalization.
var ErrEmptyQuery = errors.New("query is empty")

// Store is the persistence the cache and persist steps need.
// *database.AnalysisDB satisfies it.
type Store interface {
	GetLatestAnalysis(ctx context.Context, key string) (*model.Analysis, error)
	SaveAnalysis(ctx context.Context, a *model.Analysis) (int64, error)
}

// NormalizeQuery applies NFKC and collapses whitespace. Case is preserved;
// "CO" and "Co" are different substances.
func NormalizeQuery(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}

// PrepareStep normalizes the query and stamps the model and language that
// will answer it.
type PrepareStep struct {
	model    string
	language string
}

// NewPrepareStep creates a PrepareStep for the given analyzer.
func NewPrepareStep(an analyzer.Analyzer) *PrepareStep {
	return &PrepareStep{model: an.Model(), language: an.Language().String()}
}

// Name returns the step name.
func (s *PrepareStep) Name() string {
	return "prepare"
}

// Do executes the step.
func (s *PrepareStep) Do(_ context.Context, a *model.Analysis) error {
	a.NormalizedQuery = NormalizeQuery(a.Query)
	if a.NormalizedQuery == "" {
		return ErrEmptyQuery
	}
	a.Model = s.model
	a.Language = s.language
	return nil
}

// CacheLookupStep fills the analysis from the store when an earlier answer
// for the same query, model and language exists. Lookup failures are
// logged and treated as a miss.
type CacheLookupStep struct {
	store  Store
	logger *slog.Logger
}

// NewCacheLookupStep creates a CacheLookupStep.
func NewCacheLookupStep(store Store, logger *slog.Logger) *CacheLookupStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheLookupStep{store: store, logger: logger}
}

// Name returns the step name.
func (s *CacheLookupStep) Name() string {
	return "cache_lookup"
}

// Do executes the step.
func (s *CacheLookupStep) Do(ctx context.Context, a *model.Analysis) error {
	key := database.CacheKey(a.NormalizedQuery, a.Model, a.Language)
	cached, err := s.store.GetLatestAnalysis(ctx, key)
	if err != nil {
		s.logger.Warn("cache lookup failed", "query", a.Query, "error", err)
		return nil
	}
	if cached == nil || cached.Molecule == nil {
		s.logger.Debug("cache miss", "query", a.Query, "cache_key", key)
		return nil
	}

	s.logger.Debug("cache hit", "query", a.Query, "id", cached.ID)
	a.ID = cached.ID
	a.CreatedAt = cached.CreatedAt
	a.Molecule = cached.Molecule
	a.FromCache = true
	return nil
}

// GenerateStep asks the analyzer for the molecule unless the cache already
// supplied one.
type GenerateStep struct {
	analyzer analyzer.Analyzer
}

// NewGenerateStep creates a GenerateStep.
func NewGenerateStep(an analyzer.Analyzer) *GenerateStep {
	return &GenerateStep{analyzer: an}
}

// Name returns the step name.
func (s *GenerateStep) Name() string {
	return "generate"
}

// Do executes the step.
func (s *GenerateStep) Do(ctx context.Context, a *model.Analysis) error {
	if a.HasData() {
		return nil
	}
	m, err := s.analyzer.Analyze(ctx, a.NormalizedQuery)
	if err != nil {
		return err
	}
	a.Molecule = m
	return nil
}

// SanitizeStep cleans the generated SVG drawings. A drawing that cannot be
// cleaned is dropped; the text fallbacks remain.
type SanitizeStep struct {
	logger *slog.Logger
}

// NewSanitizeStep creates a SanitizeStep.
func NewSanitizeStep(logger *slog.Logger) *SanitizeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SanitizeStep{logger: logger}
}

// Name returns the step name.
func (s *SanitizeStep) Name() string {
	return "sanitize_svg"
}

// Do executes the step.
func (s *SanitizeStep) Do(_ context.Context, a *model.Analysis) error {
	if !a.HasData() || a.FromCache {
		return nil
	}

	m := a.Molecule
	for name, field := range map[string]*string{
		"electron_formula":   &m.ElectronFormulaSVG,
		"lewis_structure":    &m.LewisStructureSVG,
		"structural_formula": &m.StructuralFormulaSVG,
	} {
		clean, report, err := svg.SanitizeWithReport(*field)
		if err != nil {
			s.logger.Debug("dropping drawing", "drawing", name, "query", a.Query, "error", err)
			*field = ""
			a.Sanitized++
			continue
		}
		*field = clean
		a.Sanitized += report.Removed()
	}
	return nil
}

// EnrichStep fills atom fields the model left out, using the local element
// table and shell rules.
type EnrichStep struct{}

// NewEnrichStep creates an EnrichStep.
func NewEnrichStep() *EnrichStep {
	return &EnrichStep{}
}

// Name returns the step name.
func (s *EnrichStep) Name() string {
	return "enrich_atoms"
}

// Do executes the step.
func (s *EnrichStep) Do(_ context.Context, a *model.Analysis) error {
	if !a.HasData() {
		return nil
	}
	for i := range a.Molecule.Atoms {
		EnrichAtom(&a.Molecule.Atoms[i])
	}
	return nil
}

// EnrichAtom completes one atom in place. An atom identified neither by
// atomic number nor by a known symbol is left unchanged.
func EnrichAtom(atom *model.AtomInfo) {
	if atom.AtomicNumber <= 0 {
		e, ok := periodic.FindBySymbol(atom.Symbol)
		if !ok {
			return
		}
		atom.AtomicNumber = e.AtomicNumber
	}
	z := atom.AtomicNumber
	if z > periodic.MaxAtomicNumber {
		return
	}

	if periodic.Known(z) {
		e := periodic.Lookup(z)
		if atom.Symbol == "" {
			atom.Symbol = e.Symbol
		}
		if atom.Name == "" {
			atom.Name = e.Name
		}
		if atom.Mass == 0 {
			atom.Mass = e.Mass
		}
		if atom.Color == "" {
			atom.Color = e.Category.Color()
		}
	}

	if len(atom.Shells) == 0 {
		atom.Shells = periodic.ShellsFor(z)
	}
	if atom.ValenceElectrons == 0 && len(atom.Shells) > 0 {
		atom.ValenceElectrons = atom.Shells[len(atom.Shells)-1]
	}
	if atom.Color == "" {
		atom.Color = periodic.CategoryUnknown.Color()
	}
}

// PersistStep saves fresh analyses. Save failures are logged; the answer
// is still returned to the caller.
type PersistStep struct {
	store  Store
	logger *slog.Logger
}

// NewPersistStep creates a PersistStep.
func NewPersistStep(store Store, logger *slog.Logger) *PersistStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &PersistStep{store: store, logger: logger}
}

// Name returns the step name.
func (s *PersistStep) Name() string {
	return "persist"
}

// Do executes the step.
func (s *PersistStep) Do(ctx context.Context, a *model.Analysis) error {
	if !a.HasData() || a.FromCache {
		return nil
	}
	if _, err := s.store.SaveAnalysis(ctx, a); err != nil {
		s.logger.Warn("failed to save analysis", "query", a.Query, "error", err)
	}
	return nil
}

// Deps are the collaborators of a standard analysis pipeline.
type Deps struct {
	Analyzer analyzer.Analyzer

	// Store enables the cache and persist steps. Nil disables both.
	Store Store

	UseCache bool
	Save     bool
	Logger   *slog.Logger
}

// NewAnalysisPipeline assembles the standard step sequence.
func NewAnalysisPipeline(deps Deps, opts ...Option) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := New(append([]Option{WithLogger(logger)}, opts...)...)
	p.AddStep(NewPrepareStep(deps.Analyzer))
	if deps.Store != nil && deps.UseCache {
		p.AddStep(NewCacheLookupStep(deps.Store, logger))
	}
	p.AddSteps(
		NewGenerateStep(deps.Analyzer),
		NewSanitizeStep(logger),
		NewEnrichStep(),
	)
	if deps.Store != nil && deps.Save {
		p.AddStep(NewPersistStep(deps.Store, logger))
	}
	return p
}
