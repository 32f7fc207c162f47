package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tieubaoca/memobox-be/types"
)

type sqliteRecordStore struct {
	db *sql.DB
}

// NewSqliteRecordStore opens (or creates) an embedded SQLite database under
// dataDir and returns a RecordStore backed by it. Documents are stored as
// JSON rows keyed by id, so the semantics match the file store exactly.
func NewSqliteRecordStore(dataDir string) (RecordStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "documents.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			body TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &sqliteRecordStore{db: db}, nil
}

func (s *sqliteRecordStore) Close() error {
	return s.db.Close()
}

func (s *sqliteRecordStore) Put(ctx context.Context, doc *types.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", doc.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, created_at, body) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET created_at = excluded.created_at, body = excluded.body
	`, doc.ID, doc.CreatedAt, string(body))
	if err != nil {
		return fmt.Errorf("failed to write document %s: %w", doc.ID, err)
	}
	return nil
}

func (s *sqliteRecordStore) Get(ctx context.Context, id string) (*types.Document, error) {
	var body string
	err := s.db.QueryRowContext(ctx, "SELECT body FROM documents WHERE id = ?", id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", id, err)
	}
	var doc types.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, ErrNotFound
	}
	return &doc, nil
}

func (s *sqliteRecordStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteRecordStore) ListAll(ctx context.Context) ([]*types.Document, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, body FROM documents ORDER BY created_at DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []*types.Document
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		var doc types.Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			log.Printf("Skipping corrupt record %s: %v", id, err)
			continue
		}
		docs = append(docs, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []*types.Document{}
	}
	return docs, nil
}
