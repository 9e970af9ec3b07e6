package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdhnkumar/faculty-econtent/internal/model"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
)

// SeedAdminUser creates the admin account on first start. Users are only
// ever created here; the portal has no registration endpoint.
func SeedAdminUser(ctx context.Context, st store.Store, email, password, name string) error {
	docs, err := st.List(ctx, store.Users)
	if err != nil {
		return err
	}
	users, err := store.DecodeAll[model.User](docs)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == email {
			log.Println("Admin user already exists, skipping seed")
			return nil
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
	}
	doc, err := store.Encode(admin)
	if err != nil {
		return err
	}
	if err := st.Put(ctx, store.Users, admin.ID, doc); err != nil {
		return err
	}

	log.Printf("Seeded admin user %s", email)
	return nil
}

type seedVideo struct {
	title       string
	subject     string
	description string
	thumbnail   string
	duration    string
}

// SeedDemoContent fills an empty catalog with sample lectures so a fresh
// development install has something to show. Production starts empty.
func SeedDemoContent(ctx context.Context, st store.Store) error {
	docs, err := st.List(ctx, store.Videos)
	if err != nil {
		return err
	}
	if len(docs) > 0 {
		return nil
	}

	seeds := []seedVideo{
		{"Introduction to Data Structures", "Data Structures", "Learn the fundamentals of data structures including arrays, linked lists, and their applications.", "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=225&fit=crop", "45:30"},
		{"Object Oriented Programming Basics", "Programming", "Understanding OOP concepts like classes, objects, inheritance, and polymorphism.", "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=400&h=225&fit=crop", "38:15"},
		{"Database Management Systems", "DBMS", "Comprehensive overview of database concepts, SQL, and normalization techniques.", "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?w=400&h=225&fit=crop", "52:00"},
		{"Algorithm Analysis", "Algorithms", "Learn how to analyze algorithm complexity and optimize your code for better performance.", "https://images.unsplash.com/photo-1509228468518-180dd4864904?w=400&h=225&fit=crop", "41:20"},
		{"Operating Systems Concepts", "Operating Systems", "Understanding process management, memory management, and file systems.", "https://images.unsplash.com/photo-1518770660439-4636190af475?w=400&h=225&fit=crop", "55:45"},
		{"Computer Networks Fundamentals", "Networking", "Learn about OSI model, TCP/IP, routing, and network security basics.", "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400&h=225&fit=crop", "48:30"},
	}

	for _, seed := range seeds {
		video := model.Video{
			ID:          uuid.NewString(),
			Title:       seed.title,
			Subject:     seed.subject,
			Description: seed.description,
			Thumbnail:   seed.thumbnail,
			Duration:    seed.duration,
			YoutubeID:   "dQw4w9WgXcQ",
			Views:       0,
			CreatedAt:   time.Now().UTC(),
		}
		doc, err := store.Encode(video)
		if err != nil {
			return err
		}
		if err := st.Put(ctx, store.Videos, video.ID, doc); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo videos", len(seeds))
	return nil
}
