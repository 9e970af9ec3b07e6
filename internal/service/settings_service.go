package service

import (
	"context"

	"github.com/mdhnkumar/faculty-econtent/internal/store"
)

// SettingsService manages the two singleton documents: the faculty profile
// and the public site content. Updates are partial merges; reads fall back to
// documented defaults when nothing has been written yet, so callers can never
// observe an absent singleton.
type SettingsService interface {
	GetProfile(ctx context.Context) (store.Document, error)
	UpdateProfile(ctx context.Context, partial store.Document) (store.Document, error)
	GetContent(ctx context.Context) (store.Document, error)
	UpdateContent(ctx context.Context, partial store.Document) (store.Document, error)
}

type settingsService struct {
	store store.Store
}

func NewSettingsService(st store.Store) SettingsService {
	return &settingsService{store: st}
}

func defaultProfile() store.Document {
	return store.Document{
		"name":       "Madhankumar C",
		"title":      "Assistant Professor",
		"department": "Dept of Computer Science",
		"about":      "Welcome to my e-content portal.",
		"email":      "admin@university.edu",
	}
}

func defaultContent() store.Document {
	return store.Document{
		"branding": map[string]any{
			"title":    "E-Content",
			"subtitle": "Faculty Portal",
		},
		"hero": map[string]any{
			"title":        "Welcome to E-Content Portal",
			"description":  "Access quality educational resources, video lectures, and study materials.",
			"ctaPrimary":   "Explore Videos",
			"ctaSecondary": "Browse Materials",
		},
	}
}

func (s *settingsService) GetProfile(ctx context.Context) (store.Document, error) {
	doc, err := s.store.GetSingleton(ctx, store.SingletonProfile)
	if err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return defaultProfile(), nil
	}
	return doc, nil
}

func (s *settingsService) UpdateProfile(ctx context.Context, partial store.Document) (store.Document, error) {
	return s.store.MergeSingleton(ctx, store.SingletonProfile, partial)
}

func (s *settingsService) GetContent(ctx context.Context) (store.Document, error) {
	doc, err := s.store.GetSingleton(ctx, store.SingletonSiteContent)
	if err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return defaultContent(), nil
	}
	return doc, nil
}

func (s *settingsService) UpdateContent(ctx context.Context, partial store.Document) (store.Document, error) {
	return s.store.MergeSingleton(ctx, store.SingletonSiteContent, partial)
}
