package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tieubaoca/memobox-be/types"
)

// ErrNotFound is returned when no persisted record exists for an id, or
// when the persisted file cannot be decoded.
var ErrNotFound = errors.New("document not found")

// RecordStore is the persistence seam for documents. The file-backed store
// below is the default; a behavior-identical embedded SQLite store lives in
// sqlite_repo.go and can be selected through configuration.
type RecordStore interface {
	Put(ctx context.Context, doc *types.Document) error
	Get(ctx context.Context, id string) (*types.Document, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*types.Document, error)
}

type fileRecordStore struct {
	dataDir string
}

// NewFileRecordStore creates the record directory if needed and returns a
// store that keeps one JSON file per document, named by document id.
func NewFileRecordStore(dataDir string) (RecordStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &fileRecordStore{dataDir: dataDir}, nil
}

func (s *fileRecordStore) recordPath(id string) string {
	return filepath.Join(s.dataDir, id+".json")
}

func (s *fileRecordStore) Put(ctx context.Context, doc *types.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", doc.ID, err)
	}
	if err := os.WriteFile(s.recordPath(doc.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", doc.ID, err)
	}
	return nil
}

func (s *fileRecordStore) Get(ctx context.Context, id string) (*types.Document, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		return nil, ErrNotFound
	}
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrNotFound
	}
	return &doc, nil
}

func (s *fileRecordStore) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.recordPath(id)); err != nil {
		return ErrNotFound
	}
	return nil
}

// ListAll enumerates every record file, newest first. A file that fails to
// read or decode is logged and skipped so one corrupt record cannot take
// down the listing.
func (s *fileRecordStore) ListAll(ctx context.Context) ([]*types.Document, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}
	docs := make([]*types.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dataDir, entry.Name()))
		if err != nil {
			log.Printf("Failed to read record %s: %v", entry.Name(), err)
			continue
		}
		var doc types.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			log.Printf("Skipping corrupt record %s: %v", entry.Name(), err)
			continue
		}
		docs = append(docs, &doc)
	}
	// ReadDir returns entries sorted by name, so equal timestamps stay in a
	// deterministic order under the stable sort.
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt > docs[j].CreatedAt
	})
	return docs, nil
}
