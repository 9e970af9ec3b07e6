package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mdhnkumar/faculty-econtent/internal/model"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
	"github.com/mdhnkumar/faculty-econtent/pkg/storage"
)

// UploadFile carries the multipart file through to the service.
type UploadFile struct {
	Reader   io.Reader
	FileName string
	Size     int64
}

type UploadMaterialInput struct {
	Title    string
	Category string
	File     *UploadFile
}

type UpdateMaterialInput struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
}

type MaterialService interface {
	List(ctx context.Context, category, fileType string) ([]model.Material, error)
	// Upload stores the file, derives type and size from it, and records the
	// material. A stored file is discarded again when required fields are
	// missing.
	Upload(ctx context.Context, input UploadMaterialInput) (*model.Material, error)
	// Download resolves the backing file and increments the download counter
	// on every successful resolution.
	Download(ctx context.Context, id string) (*model.Material, *storage.Blob, error)
	Update(ctx context.Context, id string, input UpdateMaterialInput) (*model.Material, error)
	Delete(ctx context.Context, id string) error
}

type materialService struct {
	store  store.Store
	files  storage.FileStorage
	search SearchService
}

func NewMaterialService(st store.Store, files storage.FileStorage, search SearchService) MaterialService {
	return &materialService{store: st, files: files, search: search}
}

// fileType classifies an uploaded file by extension, case-insensitively.
func fileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return model.MaterialTypePDF
	case ".ppt", ".pptx":
		return model.MaterialTypePPT
	case ".doc", ".docx":
		return model.MaterialTypeDOC
	default:
		return model.MaterialTypeOther
	}
}

// formatFileSize renders a byte count the way the portal has always shown it:
// whole bytes below 1 KB, otherwise one decimal of KB or MB.
func formatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}

func (s *materialService) List(ctx context.Context, category, fileType string) ([]model.Material, error) {
	docs, err := s.store.List(ctx, store.Materials)
	if err != nil {
		return nil, err
	}
	materials, err := store.DecodeAll[model.Material](docs)
	if err != nil {
		return nil, err
	}

	filtered := materials[:0]
	for _, m := range materials {
		if category != "" && category != FilterAll && m.Category != category {
			continue
		}
		if fileType != "" && fileType != FilterAll && m.Type != fileType {
			continue
		}
		filtered = append(filtered, m)
	}
	materials = filtered

	sort.SliceStable(materials, func(i, j int) bool {
		return materials[i].CreatedAt.Before(materials[j].CreatedAt)
	})
	return materials, nil
}

func (s *materialService) Upload(ctx context.Context, input UploadMaterialInput) (*model.Material, error) {
	if input.File == nil || input.File.Reader == nil {
		return nil, apperror.New(http.StatusBadRequest, "please upload a file", nil)
	}

	ref, err := s.files.Save(ctx, input.File.Reader, input.File.FileName)
	if err != nil {
		return nil, err
	}

	// Validation runs after the file landed, so a rejected request must
	// discard the file it just stored.
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Category) == "" {
		if err := s.files.Delete(ctx, ref); err != nil {
			log.Printf("Failed to discard rejected upload %s: %v", ref, err)
		}
		return nil, apperror.New(http.StatusBadRequest, "missing required fields", nil)
	}

	material := model.Material{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Category:     input.Category,
		Type:         fileType(input.File.FileName),
		Size:         formatFileSize(input.File.Size),
		FilePath:     ref,
		OriginalName: input.File.FileName,
		Downloads:    0,
		CreatedAt:    time.Now().UTC(),
	}

	doc, err := store.Encode(material)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, store.Materials, material.ID, doc); err != nil {
		// Metadata write failed: roll the stored file back.
		if delErr := s.files.Delete(ctx, ref); delErr != nil {
			log.Printf("Failed to roll back upload %s: %v", ref, delErr)
		}
		return nil, err
	}

	if err := s.search.IndexMaterial(ctx, material); err != nil {
		log.Printf("Failed to index material %s: %v", material.ID, err)
	}

	return &material, nil
}

func (s *materialService) Download(ctx context.Context, id string) (*model.Material, *storage.Blob, error) {
	doc, err := s.store.Get(ctx, store.Materials, id)
	if err != nil {
		return nil, nil, err
	}
	var material model.Material
	if err := store.Decode(doc, &material); err != nil {
		return nil, nil, err
	}

	blob, err := s.files.Resolve(ctx, material.FilePath)
	if err != nil {
		return nil, nil, err
	}

	downloads, err := s.store.Increment(ctx, store.Materials, id, "downloads", 1)
	if err != nil {
		return nil, nil, err
	}
	material.Downloads = downloads

	return &material, blob, nil
}

func (s *materialService) Update(ctx context.Context, id string, input UpdateMaterialInput) (*model.Material, error) {
	doc, err := s.store.Get(ctx, store.Materials, id)
	if err != nil {
		return nil, err
	}
	var material model.Material
	if err := store.Decode(doc, &material); err != nil {
		return nil, err
	}

	// Only title and category are mutable; the file itself (and everything
	// derived from it) is immutable without delete and re-upload.
	if input.Title != nil && *input.Title != "" {
		material.Title = *input.Title
	}
	if input.Category != nil && *input.Category != "" {
		material.Category = *input.Category
	}

	updated, err := store.Encode(material)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, store.Materials, id, updated); err != nil {
		return nil, err
	}

	if err := s.search.IndexMaterial(ctx, material); err != nil {
		log.Printf("Failed to index material %s: %v", material.ID, err)
	}

	return &material, nil
}

func (s *materialService) Delete(ctx context.Context, id string) error {
	doc, err := s.store.Get(ctx, store.Materials, id)
	if err != nil {
		return err
	}
	var material model.Material
	if err := store.Decode(doc, &material); err != nil {
		return err
	}

	// A backing file that is already gone (or a storage hiccup) never blocks
	// removal of the metadata.
	if err := s.files.Delete(ctx, material.FilePath); err != nil {
		log.Printf("Failed to delete file for material %s: %v", id, err)
	}

	if err := s.store.Delete(ctx, store.Materials, id); err != nil {
		return err
	}

	if err := s.search.RemoveMaterial(ctx, id); err != nil {
		log.Printf("Failed to remove material %s from index: %v", id, err)
	}
	return nil
}
