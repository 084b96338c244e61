package config

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "atomscope"

	// DefaultModel is the Gemini model asked for molecule explanations.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTemperature keeps the structured answers close to deterministic.
	DefaultTemperature float32 = 0.1

	// DefaultTimeout bounds a single model request. Structured answers with
	// three embedded SVG drawings routinely take 20-40 seconds.
	DefaultTimeout = 90 * time.Second

	// DefaultBatchSize is the number of analyses run concurrently when
	// several queries are given at once.
	DefaultBatchSize = 4

	// DefaultLanguage is the BCP 47 tag for generated and canned text.
	DefaultLanguage = "en"

	// DefaultListenAddress is where `atomscope serve` listens.
	DefaultListenAddress = "127.0.0.1:8080"

	// MaxTemperature is the upper bound Gemini accepts.
	MaxTemperature float32 = 2.0
)

// API key environment variables, checked in order.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvAPIKey       = "API_KEY"
)

// Config holds all runtime options.
// It is populated from defaults, the config file, the environment and CLI
// flags, then passed explicitly to the components that need it.
type Config struct {
	// APIKey authenticates against the Gemini API. Empty means analysis is
	// unavailable; the rest of the tool still works.
	APIKey string

	// Model is the Gemini model name.
	Model string

	// Temperature is the sampling temperature, 0 to MaxTemperature.
	Temperature float32

	// Timeout bounds each model request.
	Timeout time.Duration

	// ProxyAddress routes model requests through a SOCKS5 proxy in
	// "host:port" form. Empty means a direct connection.
	ProxyAddress string

	// Language is the BCP 47 tag used for explanations and trend text.
	Language string

	// BatchSize is the number of concurrent analyses.
	BatchSize int

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path, if any.
	ConfigFilePath string

	// JSONReport and MarkdownReport select the output format. At most one
	// may be set; neither means plain text.
	JSONReport     bool
	MarkdownReport bool

	// ReportFile writes the report to a file instead of stdout.
	ReportFile string

	// Queries are the chemical names or formulas to analyze.
	Queries []string

	// DBDir is the directory of the SQLite analysis store.
	DBDir string

	// UseCache returns stored analyses instead of calling the model again.
	UseCache bool

	// SaveToDB persists successful analyses.
	SaveToDB bool

	// ListenAddress is the HTTP listen address for the serve command.
	ListenAddress string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Model:         DefaultModel,
		Temperature:   DefaultTemperature,
		Timeout:       DefaultTimeout,
		Language:      DefaultLanguage,
		BatchSize:     DefaultBatchSize,
		DBDir:         XDGDataDir(),
		UseCache:      true,
		SaveToDB:      true,
		ListenAddress: DefaultListenAddress,
	}
}

// XDGDataDir returns the XDG data directory for atomscope.
// On Linux: ~/.local/share/atomscope
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// ApplyFile overlays non-zero values from a configuration file.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.AI.APIKey != "" {
		c.APIKey = f.AI.APIKey
	}
	if f.AI.Model != "" {
		c.Model = f.AI.Model
	}
	if f.AI.Temperature != nil {
		c.Temperature = *f.AI.Temperature
	}
	if f.AI.Timeout > 0 {
		c.Timeout = f.AI.Timeout
	}
	if f.AI.Proxy != "" {
		c.ProxyAddress = f.AI.Proxy
	}
	if f.Language != "" {
		c.Language = f.Language
	}
	if f.BatchSize > 0 {
		c.BatchSize = f.BatchSize
	}
	if f.DataDir != "" {
		c.DBDir = f.DataDir
	}
	if f.Cache != nil {
		c.UseCache = *f.Cache
	}
	if f.Server.Listen != "" {
		c.ListenAddress = f.Server.Listen
	}
}

// ApplyEnv reads the API key from the environment. The lookup function is
// normally os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	for _, name := range []string{EnvGeminiAPIKey, EnvAPIKey} {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			c.APIKey = v
			return
		}
	}
}

// Validate checks the options shared by every command and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.Temperature < 0 || c.Temperature > MaxTemperature {
		return ErrInvalidTemperature
	}
	if strings.TrimSpace(c.Model) == "" {
		return ErrEmptyModel
	}
	if c.ProxyAddress != "" && !IsValidProxyAddress(c.ProxyAddress) {
		return ErrInvalidProxyAddress
	}
	return nil
}

// IsValidProxyAddress reports whether address is "host:port" with a port in
// 1-65535.
func IsValidProxyAddress(address string) bool {
	host, port, found := strings.Cut(address, ":")
	if !found || host == "" || port == "" || strings.Contains(port, ":") {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil || strings.ContainsAny(port, "+-") {
		return false
	}
	return n >= 1 && n <= 65535
}
