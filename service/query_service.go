package service

import (
	"context"

	"github.com/tieubaoca/memobox-be/repository"
	"github.com/tieubaoca/memobox-be/types"
)

// QueryService is stateless: every call recomputes from the store's full
// listing, which is already sorted newest first.
type QueryService interface {
	Paginate(ctx context.Context, page, limit int, containerTags []string) ([]*types.Document, types.Pagination, error)
	GetByIDs(ctx context.Context, ids []string) ([]*types.Document, error)
}

type queryService struct {
	store repository.RecordStore
}

func NewQueryService(store repository.RecordStore) QueryService {
	return &queryService{
		store: store,
	}
}

func (s *queryService) Paginate(ctx context.Context, page, limit int, containerTags []string) ([]*types.Document, types.Pagination, error) {
	docs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, types.Pagination{}, err
	}

	if len(containerTags) > 0 {
		filtered := make([]*types.Document, 0, len(docs))
		for _, doc := range docs {
			if hasAnyTag(doc.ContainerTags, containerTags) {
				filtered = append(filtered, doc)
			}
		}
		docs = filtered
	}

	totalItems := len(docs)
	totalPages := (totalItems + limit - 1) / limit
	offset := (page - 1) * limit

	items := []*types.Document{}
	if offset < totalItems {
		end := offset + limit
		if end > totalItems {
			end = totalItems
		}
		items = docs[offset:end]
	}

	pagination := types.Pagination{
		CurrentPage: page,
		Limit:       limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
	return items, pagination, nil
}

// GetByIDs returns the requested documents in listing order, not in the
// order the ids were supplied.
func (s *queryService) GetByIDs(ctx context.Context, ids []string) ([]*types.Document, error) {
	docs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	matched := make([]*types.Document, 0, len(ids))
	for _, doc := range docs {
		if want[doc.ID] {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func hasAnyTag(tags, filter []string) bool {
	for _, tag := range tags {
		for _, f := range filter {
			if tag == f {
				return true
			}
		}
	}
	return false
}
