package database

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/atomscope/atomscope/internal/model"
)

// FileName is the database file created inside the data directory.
const FileName = "atomscope.db"

// ErrNoMolecule is returned when saving an analysis without data.
var ErrNoMolecule = errors.New("analysis has no molecule to save")

// AnalysisDB provides SQLite-based storage for analyses.
type AnalysisDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures AnalysisDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the database in dbDir.
// With CreateIfNotExists false, a missing database is an error.
func Open(dbDir string, opts Options) (*AnalysisDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	dsn := dbPath + "?mode=rwc"
	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	} else if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AnalysisDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return adb, nil
}

// Path returns the database file path.
func (adb *AnalysisDB) Path() string {
	return adb.dbPath
}

// Close closes the database connection.
func (adb *AnalysisDB) Close() error {
	return adb.db.Close()
}

func (adb *AnalysisDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cache_key TEXT NOT NULL,
		query TEXT NOT NULL,
		normalized_query TEXT NOT NULL,
		model TEXT NOT NULL,
		language TEXT NOT NULL,
		formula TEXT,
		bond_type TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		molecule_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_key ON analyses(cache_key);
	CREATE INDEX IF NOT EXISTS idx_analyses_query ON analyses(normalized_query);
	CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
	`
	_, err := adb.db.ExecContext(context.Background(), schema)
	return err
}

// CacheKey returns the hex SHA3-256 digest identifying an analysis request.
func CacheKey(normalizedQuery, modelName, language string) string {
	sum := sha3.Sum256([]byte(normalizedQuery + "\x00" + modelName + "\x00" + language))
	return hex.EncodeToString(sum[:])
}

// SaveAnalysis stores a successful analysis and sets its ID.
func (adb *AnalysisDB) SaveAnalysis(ctx context.Context, a *model.Analysis) (int64, error) {
	if a == nil || a.Molecule == nil {
		return 0, ErrNoMolecule
	}

	moleculeJSON, err := json.Marshal(a.Molecule)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize molecule: %w", err)
	}

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
	INSERT INTO analyses (cache_key, query, normalized_query, model, language, formula, bond_type, created_at, molecule_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := adb.db.ExecContext(ctx, query,
		CacheKey(a.NormalizedQuery, a.Model, a.Language),
		a.Query,
		a.NormalizedQuery,
		a.Model,
		a.Language,
		a.Molecule.Formula,
		string(a.Molecule.BondType),
		createdAt.UTC().Format(time.DateTime),
		string(moleculeJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis id: %w", err)
	}
	a.ID = id
	return id, nil
}

const analysisColumns = `id, query, normalized_query, model, language, created_at, molecule_json`

// GetLatestAnalysis returns the newest analysis stored under key, or nil if
// there is none.
func (adb *AnalysisDB) GetLatestAnalysis(ctx context.Context, key string) (*model.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses
	WHERE cache_key = ?
	ORDER BY created_at DESC, id DESC
	LIMIT 1`
	return adb.getOne(ctx, query, key)
}

// GetAnalysisByID retrieves an analysis by its database ID, or nil if it
// does not exist.
func (adb *AnalysisDB) GetAnalysisByID(ctx context.Context, id int64) (*model.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = ?`
	return adb.getOne(ctx, query, id)
}

func (adb *AnalysisDB) getOne(ctx context.Context, query string, arg any) (*model.Analysis, error) {
	var (
		a            model.Analysis
		createdAt    string
		moleculeJSON string
	)
	err := adb.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Query, &a.NormalizedQuery, &a.Model, &a.Language, &createdAt, &moleculeJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var m model.Molecule
	if err := json.Unmarshal([]byte(moleculeJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to parse molecule: %w", err)
	}
	a.Molecule = &m
	a.CreatedAt = parseTimestamp(createdAt)
	return &a, nil
}

// AnalysisMetadata summarizes a stored analysis without its molecule body.
type AnalysisMetadata struct {
	ID              int64     `json:"id"`
	Query           string    `json:"query"`
	NormalizedQuery string    `json:"normalizedQuery"`
	Formula         string    `json:"formula"`
	BondType        string    `json:"bondType"`
	Model           string    `json:"model"`
	Language        string    `json:"language"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GetHistory lists stored analyses, newest first. An empty normalizedQuery
// lists every query. limit <= 0 means no limit.
func (adb *AnalysisDB) GetHistory(ctx context.Context, normalizedQuery string, limit int) ([]AnalysisMetadata, error) {
	query := `
	SELECT id, query, normalized_query, COALESCE(formula, ''), COALESCE(bond_type, ''), model, language, created_at
	FROM analyses
	WHERE (? = '' OR normalized_query = ?)
	ORDER BY created_at DESC, id DESC
	LIMIT ?
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := adb.db.QueryContext(ctx, query, normalizedQuery, normalizedQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var results []AnalysisMetadata
	for rows.Next() {
		var (
			meta      AnalysisMetadata
			createdAt string
		)
		if err := rows.Scan(&meta.ID, &meta.Query, &meta.NormalizedQuery, &meta.Formula,
			&meta.BondType, &meta.Model, &meta.Language, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		meta.CreatedAt = parseTimestamp(createdAt)
		results = append(results, meta)
	}
	return results, rows.Err()
}

// ListQueries returns every distinct normalized query, sorted.
func (adb *AnalysisDB) ListQueries(ctx context.Context) ([]string, error) {
	rows, err := adb.db.QueryContext(ctx, `SELECT DISTINCT normalized_query FROM analyses ORDER BY normalized_query`)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("failed to scan query: %w", err)
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

// DeleteAnalysis removes one analysis. It reports whether a row was deleted.
func (adb *AnalysisDB) DeleteAnalysis(ctx context.Context, id int64) (bool, error) {
	result, err := adb.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return n > 0, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.DateTime,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp tries each known format and returns the zero time if none
// matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
