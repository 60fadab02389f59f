// Package history keeps an append-only DuckDB record of analysis runs,
// queryable across runs independently of the report files on disk.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"

	"genomewatch/internal/manifest"
)

// Store manages a DuckDB connection for run history.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		run_id VARCHAR PRIMARY KEY,
		generated TIMESTAMP,
		total_variants INTEGER,
		vcf_path VARCHAR
	)`)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS run_findings (
		run_id VARCHAR,
		rsid VARCHAR,
		category VARCHAR,
		gene VARCHAR,
		chrom VARCHAR,
		pos BIGINT,
		genotype VARCHAR,
		is_het BOOLEAN,
		is_hom BOOLEAN
	)`)
	return err
}

// Run is one recorded analysis run.
type Run struct {
	ID            string
	Generated     time.Time
	TotalVariants int
	VCFPath       string
}

// RecordRun appends one run and its findings. Returns the new run ID.
func (s *Store) RecordRun(m *manifest.Manifest, vcfPath string) (string, error) {
	generated, err := time.Parse(time.RFC3339, m.Generated)
	if err != nil {
		return "", fmt.Errorf("run timestamp: %w", err)
	}

	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (run_id, generated, total_variants, vcf_path) VALUES (?, ?, ?, ?)`,
		runID, generated, m.TotalVariants, vcfPath,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for id, d := range m.VariantDetails {
		if _, err := tx.Exec(
			`INSERT INTO run_findings (run_id, rsid, category, gene, chrom, pos, genotype, is_het, is_hom)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, id, d.Category, d.Gene, d.Chrom, d.Pos, d.Genotype, d.IsHet, d.IsHom,
		); err != nil {
			return "", fmt.Errorf("insert finding %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// Runs returns the most recent runs, newest first. A limit of 0 means
// no limit.
func (s *Store) Runs(limit int) ([]Run, error) {
	query := `SELECT run_id, generated, total_variants, vcf_path FROM runs ORDER BY generated DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Generated, &r.TotalVariants, &r.VCFPath); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Findings returns the recorded findings for a run, one row per rsID.
func (s *Store) Findings(runID string) ([]manifest.Finding, error) {
	rows, err := s.db.Query(
		`SELECT rsid, gene, chrom, pos, genotype, is_het, is_hom
		 FROM run_findings WHERE run_id = ? ORDER BY rsid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query findings: %w", err)
	}
	defer rows.Close()

	var findings []manifest.Finding
	for rows.Next() {
		var f manifest.Finding
		if err := rows.Scan(&f.ID, &f.Gene, &f.Chrom, &f.Pos, &f.Genotype, &f.IsHet, &f.IsHom); err != nil {
			return nil, fmt.Errorf("scan finding: %w", err)
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}
