package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
)

// fileTree is the on-disk layout: one JSON document holding every collection
// and singleton, the same shape the portal has always used for data.json.
type fileTree struct {
	Users       []Document `json:"users"`
	Videos      []Document `json:"videos"`
	Materials   []Document `json:"materials"`
	Contacts    []Document `json:"contacts"`
	Profile     Document   `json:"profile,omitempty"`
	SiteContent Document   `json:"siteContent,omitempty"`
}

// FileStore persists everything in a single JSON file. Every operation reads
// the whole tree, mutates it in memory and writes the whole tree back. A
// mutex serializes operations so concurrent requests cannot overwrite each
// other's changes.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := s.save(&fileTree{
			Users:     []Document{},
			Videos:    []Document{},
			Materials: []Document{},
			Contacts:  []Document{},
		}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	// Fail fast on a corrupt data file instead of at first request.
	if _, err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore) load() (*fileTree, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var tree fileTree
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	return &tree, nil
}

func (s *FileStore) save(tree *fileTree) error {
	raw, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize data file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

func (t *fileTree) collection(name string) (*[]Document, error) {
	switch name {
	case Users:
		return &t.Users, nil
	case Videos:
		return &t.Videos, nil
	case Materials:
		return &t.Materials, nil
	case Contacts:
		return &t.Contacts, nil
	}
	return nil, fmt.Errorf("unknown collection %q", name)
}

func (t *fileTree) singleton(key string) (*Document, error) {
	switch key {
	case SingletonProfile:
		return &t.Profile, nil
	case SingletonSiteContent:
		return &t.SiteContent, nil
	}
	return nil, fmt.Errorf("unknown singleton %q", key)
}

func docID(doc Document) string {
	id, _ := doc["id"].(string)
	return id
}

func (s *FileStore) List(ctx context.Context, collection string) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.load()
	if err != nil {
		return nil, err
	}
	col, err := tree.collection(collection)
	if err != nil {
		return nil, err
	}
	return append([]Document(nil), *col...), nil
}

func (s *FileStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.load()
	if err != nil {
		return nil, err
	}
	col, err := tree.collection(collection)
	if err != nil {
		return nil, err
	}
	for _, doc := range *col {
		if docID(doc) == id {
			return doc, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (s *FileStore) Put(ctx context.Context, collection, id string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.load()
	if err != nil {
		return err
	}
	col, err := tree.collection(collection)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range *col {
		if docID(existing) == id {
			(*col)[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		*col = append(*col, doc)
	}

	return s.save(tree)
}

func (s *FileStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.load()
	if err != nil {
		return err
	}
	col, err := tree.collection(collection)
	if err != nil {
		return err
	}

	for i, doc := range *col {
		if docID(doc) == id {
			*col = append((*col)[:i], (*col)[i+1:]...)
			return s.save(tree)
		}
	}
	return apperror.ErrNotFound
}

func (s *FileStore) Increment(ctx context.Context, collection, id, field string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.load()
	if err != nil {
		return 0, err
	}
	col, err := tree.collection(collection)
	if err != nil {
		return 0, err
	}

	for _, doc := range *col {
		if docID(doc) != id {
			continue
		}
		current := int64(0)
		switch v := doc[field].(type) {
		case float64:
			current = int64(v)
		case int64:
			current = v
		}
		next := current + delta
		doc[field] = next
		if err := s.save(tree); err != nil {
			return 0, err
		}
		return next, nil
	}
	return 0, apperror.ErrNotFound
}

func (s *FileStore) GetSingleton(ctx context.Context, key string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.load()
	if err != nil {
		return nil, err
	}
	single, err := tree.singleton(key)
	if err != nil {
		return nil, err
	}
	if *single == nil {
		return Document{}, nil
	}
	return *single, nil
}

func (s *FileStore) MergeSingleton(ctx context.Context, key string, partial Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.load()
	if err != nil {
		return nil, err
	}
	single, err := tree.singleton(key)
	if err != nil {
		return nil, err
	}

	merged := mergeSingleton(key, *single, partial)
	*single = merged
	if err := s.save(tree); err != nil {
		return nil, err
	}
	return merged, nil
}
