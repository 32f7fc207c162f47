package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tieubaoca/memobox-be/repository"
	"github.com/tieubaoca/memobox-be/types"
)

// timestampLayout keeps every digit, so timestamps compare correctly as
// plain strings.
const timestampLayout = "2006-01-02T15:04:05.000Z"

const noteTitleLength = 50

type DocumentService interface {
	Create(ctx context.Context, req types.CreateDocumentRequest) (*types.Document, error)
	CreateFromUpload(ctx context.Context, fileName string, fileSize int64, mimeType string, data []byte, containerTags []string, metadata map[string]interface{}) (*types.Document, error)
	Get(ctx context.Context, id string) (*types.Document, error)
	Update(ctx context.Context, id string, req types.UpdateDocumentRequest) (*types.Document, error)
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	store  repository.RecordStore
	files  *FileService
	events *EventService
	locks  sync.Map // document id -> *sync.Mutex
}

func NewDocumentService(store repository.RecordStore, files *FileService, events *EventService) DocumentService {
	return &documentService{
		store:  store,
		files:  files,
		events: events,
	}
}

func timestampNow() string {
	return time.Now().UTC().Format(timestampLayout)
}

func (s *documentService) Create(ctx context.Context, req types.CreateDocumentRequest) (*types.Document, error) {
	ts := timestampNow()
	doc := &types.Document{
		ID:            uuid.New().String(),
		Content:       req.Content,
		Type:          types.DocumentTypeNote,
		Title:         noteTitle(req.Content),
		Status:        types.DocumentStatusDone,
		CreatedAt:     ts,
		UpdatedAt:     ts,
		ContainerTags: req.ContainerTags,
		Metadata:      req.Metadata,
		MemoryEntries: []interface{}{},
	}
	if strings.HasPrefix(req.Content, "http") {
		url := req.Content
		doc.Type = types.DocumentTypeLink
		doc.URL = &url
		doc.Title = req.Content
	}
	if doc.ContainerTags == nil {
		doc.ContainerTags = []string{}
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]interface{}{}
	}

	if err := s.store.Put(ctx, doc); err != nil {
		return nil, err
	}
	s.events.Publish(types.EventDocumentCreated, doc.ID)
	return doc, nil
}

func (s *documentService) CreateFromUpload(ctx context.Context, fileName string, fileSize int64, mimeType string, data []byte, containerTags []string, metadata map[string]interface{}) (*types.Document, error) {
	id := uuid.New().String()
	localPath, err := s.files.StoreBlob(id, fileName, data)
	if err != nil {
		return nil, err
	}

	md := map[string]interface{}{}
	for k, v := range metadata {
		md[k] = v
	}
	md["fileName"] = fileName
	md["fileSize"] = fileSize
	md["mimeType"] = mimeType
	md["localPath"] = localPath

	if containerTags == nil {
		containerTags = []string{}
	}

	ts := timestampNow()
	doc := &types.Document{
		ID:            id,
		Content:       "",
		Type:          types.DocumentTypeFile,
		Title:         fileName,
		Status:        types.DocumentStatusDone,
		CreatedAt:     ts,
		UpdatedAt:     ts,
		ContainerTags: containerTags,
		Metadata:      md,
		MemoryEntries: []interface{}{},
	}

	if err := s.store.Put(ctx, doc); err != nil {
		return nil, err
	}
	s.events.Publish(types.EventDocumentCreated, doc.ID)
	return doc, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*types.Document, error) {
	return s.store.Get(ctx, id)
}

// Update performs a read-merge-write cycle under a per-id lock so two
// concurrent updates to the same document cannot lose writes. Supplied
// top-level fields replace the stored values; metadata is merged key by
// key, so keys absent from the request survive.
func (s *documentService) Update(ctx context.Context, id string, req types.UpdateDocumentRequest) (*types.Document, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		doc.Content = *req.Content
	}
	if req.URL != nil {
		doc.URL = req.URL
	}
	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Status != nil {
		doc.Status = *req.Status
	}
	if req.ContainerTags != nil {
		doc.ContainerTags = *req.ContainerTags
	}
	if len(req.Metadata) > 0 {
		if doc.Metadata == nil {
			doc.Metadata = map[string]interface{}{}
		}
		for k, v := range req.Metadata {
			doc.Metadata[k] = v
		}
	}
	doc.UpdatedAt = timestampNow()

	if err := s.store.Put(ctx, doc); err != nil {
		return nil, err
	}
	s.events.Publish(types.EventDocumentUpdated, doc.ID)
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(types.EventDocumentDeleted, id)
	return nil
}

func (s *documentService) lockFor(id string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func noteTitle(content string) string {
	runes := []rune(content)
	if len(runes) > noteTitleLength {
		runes = runes[:noteTitleLength]
	}
	return string(runes)
}
