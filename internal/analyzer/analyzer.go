package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"google.golang.org/genai"

	"github.com/atomscope/atomscope/internal/model"
)

var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("analyzer: API key is not set (GEMINI_API_KEY or API_KEY)")

	// ErrEmptyQuery is returned for a blank substance name.
	ErrEmptyQuery = errors.New("analyzer: query is empty")

	// ErrEmptyResponse is returned when the model answers without text.
	ErrEmptyResponse = errors.New("analyzer: model returned an empty response")

	// ErrMalformedResponse wraps JSON decoding and validation failures.
	ErrMalformedResponse = errors.New("analyzer: malformed model response")
)

// Analyzer explains a chemical substance.
type Analyzer interface {
	// Analyze returns the structured explanation for query, a chemical
	// name or formula.
	Analyze(ctx context.Context, query string) (*model.Molecule, error)

	// Model names the backing model. It is part of the cache key.
	Model() string

	// Language is the language of generated text.
	Language() language.Tag
}

// Options configures a GeminiAnalyzer.
type Options struct {
	APIKey       string
	Model        string
	Temperature  float32
	Timeout      time.Duration
	Language     language.Tag
	ProxyAddress string
	Logger       *slog.Logger
}

// GeminiAnalyzer implements Analyzer with the Gemini API.
type GeminiAnalyzer struct {
	models      *genai.Models
	model       string
	temperature float32
	timeout     time.Duration
	lang        language.Tag
	schema      *genai.Schema
	logger      *slog.Logger
}

var _ Analyzer = (*GeminiAnalyzer)(nil)

// NewGeminiAnalyzer creates a client for the Gemini API. No request is made
// until Analyze is called.
func NewGeminiAnalyzer(ctx context.Context, opts Options) (*GeminiAnalyzer, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Language == language.Und {
		opts.Language = language.English
	}

	httpClient, err := newHTTPClient(opts.ProxyAddress)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAnalyzer{
		models:      client.Models,
		model:       opts.Model,
		temperature: opts.Temperature,
		timeout:     opts.Timeout,
		lang:        opts.Language,
		schema:      ResponseSchema(opts.Language),
		logger:      opts.Logger,
	}, nil
}

// Model returns the configured model name.
func (a *GeminiAnalyzer) Model() string {
	return a.model
}

// Language returns the language of generated text.
func (a *GeminiAnalyzer) Language() language.Tag {
	return a.lang
}

// Analyze sends one structured-output request and decodes the answer.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, query string) (*model.Molecule, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	a.logger.Debug("requesting analysis", "query", query, "model", a.model, "language", a.lang.String())

	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(BuildPrompt(query, a.lang)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   a.schema,
		Temperature:      genai.Ptr(a.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request for %q failed: %w", query, err)
	}

	a.logger.Debug("analysis received", "query", query, "duration", time.Since(start))
	return ParseResponse(resp.Text())
}

// newHTTPClient returns the client used for API calls. A non-empty
// proxyAddress routes connections through a SOCKS5 proxy.
func newHTTPClient(proxyAddress string) (*http.Client, error) {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Client{}, nil
	}
	transport = transport.Clone()

	if proxyAddress != "" {
		dial, err := socksDialContext(proxyAddress)
		if err != nil {
			return nil, err
		}
		transport.Proxy = nil
		transport.DialContext = dial
	}
	return &http.Client{Transport: transport}, nil
}
