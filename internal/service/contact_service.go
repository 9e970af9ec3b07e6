package service

import (
	"context"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mdhnkumar/faculty-econtent/internal/model"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
)

type SubmitContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type ContactService interface {
	// Submit is the only unauthenticated write in the system.
	Submit(ctx context.Context, input SubmitContactInput) (*model.ContactMessage, error)
	// List returns messages newest-first.
	List(ctx context.Context) ([]model.ContactMessage, error)
	// MarkRead is idempotent; marking an already-read message succeeds.
	MarkRead(ctx context.Context, id string) (*model.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	store     store.Store
	sanitizer *bluemonday.Policy
}

func NewContactService(st store.Store) ContactService {
	return &contactService{
		store:     st,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// sanitize strips any markup from visitor-supplied text before it is stored
// and later rendered in the admin dashboard.
func (s *contactService) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(text)))
}

func (s *contactService) Submit(ctx context.Context, input SubmitContactInput) (*model.ContactMessage, error) {
	msg := model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      s.sanitize(input.Name),
		Email:     input.Email,
		Subject:   s.sanitize(input.Subject),
		Message:   s.sanitize(input.Message),
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if msg.Subject == "" {
		msg.Subject = "No Subject"
	}

	doc, err := store.Encode(msg)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, store.Contacts, msg.ID, doc); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	docs, err := s.store.List(ctx, store.Contacts)
	if err != nil {
		return nil, err
	}
	messages, err := store.DecodeAll[model.ContactMessage](docs)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *contactService) MarkRead(ctx context.Context, id string) (*model.ContactMessage, error) {
	doc, err := s.store.Get(ctx, store.Contacts, id)
	if err != nil {
		return nil, err
	}
	var msg model.ContactMessage
	if err := store.Decode(doc, &msg); err != nil {
		return nil, err
	}

	msg.IsRead = true
	updated, err := store.Encode(msg)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, store.Contacts, id, updated); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, store.Contacts, id)
}
