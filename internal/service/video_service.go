package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mdhnkumar/faculty-econtent/internal/model"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
)

// FilterAll is the sentinel filter value meaning "no constraint".
const FilterAll = "All"

type CreateVideoInput struct {
	Title       string `json:"title" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	YoutubeID   string `json:"youtubeId" binding:"required"`
}

type UpdateVideoInput struct {
	Title       *string `json:"title"`
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Duration    *string `json:"duration"`
	YoutubeID   *string `json:"youtubeId"`
}

type VideoService interface {
	List(ctx context.Context, subject string) ([]model.Video, error)
	// GetByID increments the video's view counter on every successful fetch.
	GetByID(ctx context.Context, id string) (*model.Video, error)
	Create(ctx context.Context, input CreateVideoInput) (*model.Video, error)
	Update(ctx context.Context, id string, input UpdateVideoInput) (*model.Video, error)
	Delete(ctx context.Context, id string) error
}

type videoService struct {
	store  store.Store
	search SearchService
}

func NewVideoService(st store.Store, search SearchService) VideoService {
	return &videoService{store: st, search: search}
}

// youtubeThumbnail is the provider-pattern fallback used whenever a video has
// no explicit thumbnail.
func youtubeThumbnail(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", youtubeID)
}

func (s *videoService) List(ctx context.Context, subject string) ([]model.Video, error) {
	docs, err := s.store.List(ctx, store.Videos)
	if err != nil {
		return nil, err
	}
	videos, err := store.DecodeAll[model.Video](docs)
	if err != nil {
		return nil, err
	}

	if subject != "" && subject != FilterAll {
		filtered := videos[:0]
		for _, v := range videos {
			if v.Subject == subject {
				filtered = append(filtered, v)
			}
		}
		videos = filtered
	}

	sortVideos(videos)
	return videos, nil
}

func (s *videoService) GetByID(ctx context.Context, id string) (*model.Video, error) {
	doc, err := s.store.Get(ctx, store.Videos, id)
	if err != nil {
		return nil, err
	}
	var video model.Video
	if err := store.Decode(doc, &video); err != nil {
		return nil, err
	}

	// Unconditional, at-least-once view counting: every successful fetch
	// bumps the counter, repeated fetches included.
	views, err := s.store.Increment(ctx, store.Videos, id, "views", 1)
	if err != nil {
		return nil, err
	}
	video.Views = views

	return &video, nil
}

func (s *videoService) Create(ctx context.Context, input CreateVideoInput) (*model.Video, error) {
	video := model.Video{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Subject:     input.Subject,
		Description: input.Description,
		Thumbnail:   input.Thumbnail,
		Duration:    input.Duration,
		YoutubeID:   input.YoutubeID,
		Views:       0,
		CreatedAt:   time.Now().UTC(),
	}
	if video.Thumbnail == "" {
		video.Thumbnail = youtubeThumbnail(video.YoutubeID)
	}
	if video.Duration == "" {
		video.Duration = "00:00"
	}

	doc, err := store.Encode(video)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, store.Videos, video.ID, doc); err != nil {
		return nil, err
	}

	if err := s.search.IndexVideo(ctx, video); err != nil {
		log.Printf("Failed to index video %s: %v", video.ID, err)
	}

	return &video, nil
}

func (s *videoService) Update(ctx context.Context, id string, input UpdateVideoInput) (*model.Video, error) {
	doc, err := s.store.Get(ctx, store.Videos, id)
	if err != nil {
		return nil, err
	}
	var video model.Video
	if err := store.Decode(doc, &video); err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title != "" {
		video.Title = *input.Title
	}
	if input.Subject != nil && *input.Subject != "" {
		video.Subject = *input.Subject
	}
	if input.Description != nil && *input.Description != "" {
		video.Description = *input.Description
	}
	if input.Thumbnail != nil && *input.Thumbnail != "" {
		video.Thumbnail = *input.Thumbnail
	}
	if input.Duration != nil && *input.Duration != "" {
		video.Duration = *input.Duration
	}
	if input.YoutubeID != nil && *input.YoutubeID != "" {
		video.YoutubeID = *input.YoutubeID
		// A new video id invalidates the old derived thumbnail unless the
		// caller supplied one in the same request.
		if input.Thumbnail == nil || *input.Thumbnail == "" {
			video.Thumbnail = youtubeThumbnail(video.YoutubeID)
		}
	}

	updated, err := store.Encode(video)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, store.Videos, id, updated); err != nil {
		return nil, err
	}

	if err := s.search.IndexVideo(ctx, video); err != nil {
		log.Printf("Failed to index video %s: %v", video.ID, err)
	}

	return &video, nil
}

func (s *videoService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, store.Videos, id); err != nil {
		return err
	}
	if err := s.search.RemoveVideo(ctx, id); err != nil {
		log.Printf("Failed to remove video %s from index: %v", id, err)
	}
	return nil
}

func sortVideos(videos []model.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].CreatedAt.Before(videos[j].CreatedAt)
	})
}
