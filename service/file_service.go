package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileService owns the blob directory. Blobs are write-once: the owning
// document id is freshly generated per upload, so keys never collide in
// practice, and deleting a document does not remove its blob.
type FileService struct {
	uploadDir string
}

func NewFileService(uploadDir string) *FileService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		panic(err)
	}
	return &FileService{
		uploadDir: uploadDir,
	}
}

// StoreBlob writes the full payload under "<id>-<filename>" and returns the
// stored path.
func (s *FileService) StoreBlob(id, fileName string, data []byte) (string, error) {
	name := sanitizeFileName(filepath.Base(fileName))
	destPath := filepath.Join(s.uploadDir, fmt.Sprintf("%s-%s", id, name))
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	return destPath, nil
}

func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
