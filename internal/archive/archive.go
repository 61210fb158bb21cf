package archive

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/joelkehle/contract-intel/internal/contractextract"
)

// ErrNotFound is returned when no analysis exists for a document reference.
var ErrNotFound = errors.New("analysis not found")

// Store persists completed analyses to SQLite. The full response envelope is
// kept as JSON; a few columns are lifted out for filtering and listing so a
// consumer never has to decode envelopes just to browse the archive.
type Store struct {
	db *sqlx.DB
	mu sync.Mutex
}

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	doc_ref            TEXT PRIMARY KEY,
	contract_type      TEXT NOT NULL DEFAULT '',
	overall_confidence REAL NOT NULL DEFAULT 0,
	envelope           TEXT NOT NULL,
	analyzed_at        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_contract_type ON analyses(contract_type);
`

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAnalysis upserts one analysis keyed by document reference. Re-analyzing
// a document replaces the previous record.
func (s *Store) SaveAnalysis(env contractextract.ResponseEnvelope) error {
	if env.DocRef == "" {
		return errors.New("envelope missing doc_ref")
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	analyzedAt := env.PipelineMetadata.CompletedAt
	if analyzedAt.IsZero() {
		analyzedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`INSERT OR REPLACE INTO analyses (doc_ref, contract_type, overall_confidence, envelope, analyzed_at)
		VALUES (?, ?, ?, ?, ?)`,
		env.DocRef,
		string(env.ContractType),
		env.Data.OverallConfidenceScore,
		string(payload),
		analyzedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *Store) GetAnalysis(docRef string) (contractextract.ResponseEnvelope, error) {
	var env contractextract.ResponseEnvelope
	var payload string
	err := s.db.QueryRow(`SELECT envelope FROM analyses WHERE doc_ref = ?`, docRef).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return env, ErrNotFound
	}
	if err != nil {
		return env, err
	}
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return env, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// Summary is one archive listing row.
type Summary struct {
	DocRef            string
	ContractType      contractextract.ContractType
	OverallConfidence float64
	AnalyzedAt        time.Time
}

// ListAnalyses returns summaries, newest first. An empty contractType lists
// everything.
func (s *Store) ListAnalyses(contractType string) ([]Summary, error) {
	query := `SELECT doc_ref, contract_type, overall_confidence, analyzed_at FROM analyses`
	var args []any
	if contractType != "" {
		query += ` WHERE contract_type = ?`
		args = append(args, contractType)
	}
	query += ` ORDER BY analyzed_at DESC, doc_ref`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var ctype, analyzedAt string
		if err := rows.Scan(&sum.DocRef, &ctype, &sum.OverallConfidence, &analyzedAt); err != nil {
			return nil, err
		}
		sum.ContractType = contractextract.ContractType(ctype)
		sum.AnalyzedAt, _ = time.Parse(time.RFC3339Nano, analyzedAt)
		out = append(out, sum)
	}
	return out, rows.Err()
}
