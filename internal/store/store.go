package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names. The file backend persists them under these exact keys,
// matching the portal's historical data.json layout.
const (
	Users     = "users"
	Videos    = "videos"
	Materials = "materials"
	Contacts  = "contacts"
)

// Singleton document keys.
const (
	SingletonProfile     = "profile"
	SingletonSiteContent = "siteContent"
)

// Document is one persisted record. Field values follow encoding/json
// conventions (numbers are float64 after a round trip).
type Document = map[string]any

// Store is the persistence contract every component depends on. Two
// implementations exist: a whole-file JSON store and a Redis document store.
// They are interchangeable; services never see which one is wired in.
type Store interface {
	// List returns every document in the collection. Callers impose ordering
	// and filtering themselves; backends make no ordering promise.
	List(ctx context.Context, collection string) ([]Document, error)
	// Get returns the document with the given id or apperror.ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Put inserts or replaces the document under id.
	Put(ctx context.Context, collection, id string, doc Document) error
	// Delete removes the document or returns apperror.ErrNotFound.
	Delete(ctx context.Context, collection, id string) error
	// Increment adds delta to a numeric top-level field and returns the new
	// value. The Redis backend performs this server-side (HINCRBY) so
	// concurrent increments on the same document are never lost.
	Increment(ctx context.Context, collection, id, field string, delta int64) (int64, error)
	// GetSingleton returns the singleton document, or an empty document when
	// nothing has been written yet; callers layer defaults on top.
	GetSingleton(ctx context.Context, key string) (Document, error)
	// MergeSingleton shallow-merges partial into the stored singleton and
	// returns the merged result. Declared nested objects merge one level
	// deep instead of being replaced wholesale.
	MergeSingleton(ctx context.Context, key string, partial Document) (Document, error)
}

// Encode converts a typed model into a Document via a JSON round trip.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return doc, nil
}

// Decode fills a typed model from a Document.
func Decode(doc Document, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// DecodeAll decodes a slice of documents into typed models.
func DecodeAll[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := Decode(doc, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
