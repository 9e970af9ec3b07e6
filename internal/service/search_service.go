package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mdhnkumar/faculty-econtent/internal/model"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
)

const catalogIndex = "catalog"

// SearchResult is one catalog hit: a video or a material.
type SearchResult struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Topic       string `json:"topic"`
	Description string `json:"description,omitempty"`
}

type SearchService interface {
	IndexVideo(ctx context.Context, v model.Video) error
	IndexMaterial(ctx context.Context, m model.Material) error
	RemoveVideo(ctx context.Context, id string) error
	RemoveMaterial(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

type searchService struct {
	client    meilisearch.ServiceManager
	store     store.Store
	sanitizer *bluemonday.Policy
}

// NewSearchService builds the catalog search service. With a Meilisearch
// client it indexes on write and searches server-side; without one it falls
// back to a linear scan over the store so the endpoint keeps working.
func NewSearchService(client meilisearch.ServiceManager, st store.Store) SearchService {
	s := &searchService{
		client:    client,
		store:     st,
		sanitizer: bluemonday.StrictPolicy(),
	}
	if client != nil {
		s.initIndex()
	}
	return s
}

func (s *searchService) initIndex() {
	filterable := []any{"kind"}
	if _, err := s.client.Index(catalogIndex).UpdateFilterableAttributes(&filterable); err != nil {
		log.Printf("Failed to update catalog filterable attributes: %v", err)
	}
	log.Println("Meilisearch catalog index initialized")
}

type catalogDoc struct {
	DocID       string `json:"docId"`
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// cleanForIndex strips markup and normalizes whitespace before indexing.
func (s *searchService) cleanForIndex(content string) string {
	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *searchService) addDocument(doc catalogDoc) error {
	if s.client == nil {
		return nil
	}
	primaryKey := "docId"
	_, err := s.client.Index(catalogIndex).AddDocuments([]catalogDoc{doc}, &primaryKey)
	if err != nil {
		return fmt.Errorf("failed to index %s %s: %w", doc.Kind, doc.ID, err)
	}
	return nil
}

func (s *searchService) removeDocument(docID string) error {
	if s.client == nil {
		return nil
	}
	if _, err := s.client.Index(catalogIndex).DeleteDocument(docID); err != nil {
		return fmt.Errorf("failed to remove %s from index: %w", docID, err)
	}
	return nil
}

func (s *searchService) IndexVideo(ctx context.Context, v model.Video) error {
	return s.addDocument(catalogDoc{
		DocID:       "video-" + v.ID,
		ID:          v.ID,
		Kind:        "video",
		Title:       v.Title,
		Topic:       v.Subject,
		Description: s.cleanForIndex(v.Description),
	})
}

func (s *searchService) IndexMaterial(ctx context.Context, m model.Material) error {
	return s.addDocument(catalogDoc{
		DocID: "material-" + m.ID,
		ID:    m.ID,
		Kind:  "material",
		Title: m.Title,
		Topic: m.Category,
	})
}

func (s *searchService) RemoveVideo(ctx context.Context, id string) error {
	return s.removeDocument("video-" + id)
}

func (s *searchService) RemoveMaterial(ctx context.Context, id string) error {
	return s.removeDocument("material-" + id)
}

func (s *searchService) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if s.client == nil {
		return s.scanStore(ctx, query)
	}

	resp, err := s.client.Index(catalogIndex).Search(query, &meilisearch.SearchRequest{Limit: 20})
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, err
	}
	var results []SearchResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// scanStore is the no-Meilisearch fallback: a case-insensitive substring
// match over the whole catalog.
func (s *searchService) scanStore(ctx context.Context, query string) ([]SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	results := []SearchResult{}
	if needle == "" {
		return results, nil
	}

	videoDocs, err := s.store.List(ctx, store.Videos)
	if err != nil {
		return nil, err
	}
	videos, err := store.DecodeAll[model.Video](videoDocs)
	if err != nil {
		return nil, err
	}
	for _, v := range videos {
		if containsFold(needle, v.Title, v.Subject, v.Description) {
			results = append(results, SearchResult{
				ID: v.ID, Kind: "video", Title: v.Title, Topic: v.Subject, Description: v.Description,
			})
		}
	}

	materialDocs, err := s.store.List(ctx, store.Materials)
	if err != nil {
		return nil, err
	}
	materials, err := store.DecodeAll[model.Material](materialDocs)
	if err != nil {
		return nil, err
	}
	for _, m := range materials {
		if containsFold(needle, m.Title, m.Category) {
			results = append(results, SearchResult{
				ID: m.ID, Kind: "material", Title: m.Title, Topic: m.Category,
			})
		}
	}

	return results, nil
}

func containsFold(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
