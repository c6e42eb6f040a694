// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/navcsv/internal/models"
	"github.com/example/navcsv/internal/ports/secondary"
)

// CatalogStore implements secondary.CatalogStore with SQLite.
type CatalogStore struct {
	db       *sql.DB
	location string
}

// NewCatalogStore creates a new SQLite catalog store. location is only used
// in messages (normally the database file path).
func NewCatalogStore(db *sql.DB, location string) *CatalogStore {
	return &CatalogStore{db: db, location: location}
}

// Exists reports whether any technique has been saved.
func (s *CatalogStore) Exists(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM techniques").Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count techniques: %w", err)
	}
	return n > 0, nil
}

// Save replaces the catalog in a single transaction.
func (s *CatalogStore) Save(ctx context.Context, records []models.TechniqueRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM technique_phases"); err != nil {
		return fmt.Errorf("failed to clear phases: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM techniques"); err != nil {
		return fmt.Errorf("failed to clear techniques: %w", err)
	}

	techStmt, err := tx.PrepareContext(ctx, "INSERT INTO techniques (ordinal, id, name) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare technique insert: %w", err)
	}
	defer techStmt.Close()

	phaseStmt, err := tx.PrepareContext(ctx, "INSERT INTO technique_phases (technique_ordinal, position, phase) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare phase insert: %w", err)
	}
	defer phaseStmt.Close()

	for i, r := range records {
		if _, err := techStmt.ExecContext(ctx, i, r.ID, r.Name); err != nil {
			return fmt.Errorf("failed to insert technique %s: %w", r.ID, err)
		}
		for pos, phase := range r.Phases {
			if _, err := phaseStmt.ExecContext(ctx, i, pos, phase); err != nil {
				return fmt.Errorf("failed to insert phase for %s: %w", r.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	return nil
}

// Load returns every technique in saved order.
func (s *CatalogStore) Load(ctx context.Context) ([]models.TechniqueRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.ordinal, t.id, t.name, p.phase
		FROM techniques t
		LEFT JOIN technique_phases p ON p.technique_ordinal = t.ordinal
		ORDER BY t.ordinal, p.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query techniques: %w", err)
	}
	defer rows.Close()

	records := []models.TechniqueRecord{}
	last := -1
	for rows.Next() {
		var (
			ordinal  int
			id, name string
			phase    sql.NullString
		)
		if err := rows.Scan(&ordinal, &id, &name, &phase); err != nil {
			return nil, fmt.Errorf("failed to scan technique: %w", err)
		}
		if ordinal != last {
			records = append(records, models.TechniqueRecord{ID: id, Name: name, Phases: []string{}})
			last = ordinal
		}
		if phase.Valid {
			cur := &records[len(records)-1]
			cur.Phases = append(cur.Phases, phase.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate techniques: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", s.location, secondary.ErrCatalogNotFound)
	}
	return records, nil
}

// Location returns the database description given at construction.
func (s *CatalogStore) Location() string {
	return s.location
}

// Ensure CatalogStore implements the interface.
var _ secondary.CatalogStore = (*CatalogStore)(nil)
