package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"scorecast/internal/models"
)

// sqliteStore keeps the lead log in a local database file. It exists for
// deployments without a Google service account; append-order semantics match
// the sheet (rowid order).
type sqliteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens (and migrates) the lead database at path.
func NewSQLiteStore(path string, logger *zap.Logger) (LeadStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lead database: %w", err)
	}

	store := &sqliteStore{db: db, logger: logger}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate lead database: %w", err)
	}

	logger.Info("sqlite lead store initialized", zap.String("path", path))
	return store, nil
}

func (s *sqliteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS leads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		score TEXT NOT NULL,
		interest TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *sqliteStore) Append(ctx context.Context, lead models.Lead) AppendResult {
	query := `INSERT INTO leads (name, phone, score, interest, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, lead.Name, lead.Phone, lead.Score, lead.Interest, lead.Timestamp)
	if err != nil {
		s.logger.Error("sqlite append failed", zap.String("name", lead.Name), zap.Error(err))
		return AppendResult{Saved: false, Reason: "database error"}
	}
	return AppendResult{Saved: true}
}

func (s *sqliteStore) ListAll(ctx context.Context) []models.Lead {
	rows, err := s.db.QueryContext(ctx, `SELECT name, phone, score, interest, created_at FROM leads ORDER BY id`)
	if err != nil {
		s.logger.Error("sqlite read failed", zap.Error(err))
		return []models.Lead{}
	}
	defer rows.Close()

	leads := []models.Lead{}
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.Name, &l.Phone, &l.Score, &l.Interest, &l.Timestamp); err != nil {
			s.logger.Error("sqlite scan failed", zap.Error(err))
			return []models.Lead{}
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("sqlite iteration failed", zap.Error(err))
		return []models.Lead{}
	}
	return leads
}
