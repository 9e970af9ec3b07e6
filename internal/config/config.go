package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	JWTSecret string
	TokenTTL  time.Duration

	// DataBackend selects the document store: "file" or "redis".
	DataBackend string
	DataFile    string
	RedisURL    string

	// UploadBackend selects material file storage: "local" or "cloudinary".
	UploadBackend string
	UploadDir     string

	CloudinaryUploadFolder string

	MeiliSearchHost string
	MeiliMasterKey  string

	AdminEmail    string
	AdminPassword string
	AdminName     string

	LoginRateLimit time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),
		TokenTTL:  30 * 24 * time.Hour,

		DataBackend: getEnv("DATA_BACKEND", "file"),
		DataFile:    getEnv("DATA_FILE", "data.json"),
		RedisURL:    os.Getenv("REDIS_URL"),

		UploadBackend: getEnv("UPLOAD_BACKEND", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),

		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "faculty_econtent"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@university.edu"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     getEnv("ADMIN_NAME", "Madhankumar C"),
	}

	var err error
	cfg.LoginRateLimit, err = time.ParseDuration(getEnv("LOGIN_RATE_LIMIT", "3s"))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
