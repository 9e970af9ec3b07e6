package service

import (
	"context"

	"github.com/mdhnkumar/faculty-econtent/internal/model"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
)

// PublicStats is the unauthenticated aggregate shown on the home page.
type PublicStats struct {
	Videos    int   `json:"videos"`
	Materials int   `json:"materials"`
	Views     int64 `json:"views"`
	Downloads int64 `json:"downloads"`
}

// AdminStats is the dashboard aggregate, public stats plus message counts.
type AdminStats struct {
	Counts AdminCounts `json:"counts"`
	Totals AdminTotals `json:"totals"`
}

type AdminCounts struct {
	Videos         int `json:"videos"`
	Materials      int `json:"materials"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unreadMessages"`
}

type AdminTotals struct {
	Views     int64 `json:"views"`
	Downloads int64 `json:"downloads"`
}

// StatService recomputes aggregates from the current store state on every
// call; nothing is cached.
type StatService interface {
	Public(ctx context.Context) (*PublicStats, error)
	Admin(ctx context.Context) (*AdminStats, error)
}

type statService struct {
	store store.Store
}

func NewStatService(st store.Store) StatService {
	return &statService{store: st}
}

func (s *statService) catalogTotals(ctx context.Context) (*PublicStats, error) {
	videoDocs, err := s.store.List(ctx, store.Videos)
	if err != nil {
		return nil, err
	}
	videos, err := store.DecodeAll[model.Video](videoDocs)
	if err != nil {
		return nil, err
	}

	materialDocs, err := s.store.List(ctx, store.Materials)
	if err != nil {
		return nil, err
	}
	materials, err := store.DecodeAll[model.Material](materialDocs)
	if err != nil {
		return nil, err
	}

	stats := &PublicStats{Videos: len(videos), Materials: len(materials)}
	for _, v := range videos {
		stats.Views += v.Views
	}
	for _, m := range materials {
		stats.Downloads += m.Downloads
	}
	return stats, nil
}

func (s *statService) Public(ctx context.Context) (*PublicStats, error) {
	return s.catalogTotals(ctx)
}

func (s *statService) Admin(ctx context.Context) (*AdminStats, error) {
	totals, err := s.catalogTotals(ctx)
	if err != nil {
		return nil, err
	}

	contactDocs, err := s.store.List(ctx, store.Contacts)
	if err != nil {
		return nil, err
	}
	messages, err := store.DecodeAll[model.ContactMessage](contactDocs)
	if err != nil {
		return nil, err
	}

	unread := 0
	for _, m := range messages {
		if !m.IsRead {
			unread++
		}
	}

	return &AdminStats{
		Counts: AdminCounts{
			Videos:         totals.Videos,
			Materials:      totals.Materials,
			Messages:       len(messages),
			UnreadMessages: unread,
		},
		Totals: AdminTotals{
			Views:     totals.Views,
			Downloads: totals.Downloads,
		},
	}, nil
}
