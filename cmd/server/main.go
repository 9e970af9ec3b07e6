package main

import (
	"context"
	"log"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"

	"github.com/mdhnkumar/faculty-econtent/internal/bootstrap"
	"github.com/mdhnkumar/faculty-econtent/internal/config"
	"github.com/mdhnkumar/faculty-econtent/internal/handler"
	"github.com/mdhnkumar/faculty-econtent/internal/middleware"
	"github.com/mdhnkumar/faculty-econtent/internal/server"
	"github.com/mdhnkumar/faculty-econtent/internal/service"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
	"github.com/mdhnkumar/faculty-econtent/pkg/database"
	"github.com/mdhnkumar/faculty-econtent/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var redisClient *redis.Client
	var st store.Store

	switch cfg.DataBackend {
	case "redis":
		redisClient = database.MustConnectRedis(cfg.RedisURL)
		st = store.NewRedisStore(redisClient, "econtent")
		log.Println("Using Redis document store")
	case "file":
		fileStore, err := store.NewFileStore(cfg.DataFile)
		if err != nil {
			log.Fatalf("failed to open data file: %v", err)
		}
		st = fileStore
		// Redis stays optional in file mode; it only adds login rate limiting.
		redisClient = database.ConnectRedis(cfg.RedisURL)
		log.Printf("Using JSON file store at %s", cfg.DataFile)
	default:
		log.Fatalf("unknown DATA_BACKEND %q (want file or redis)", cfg.DataBackend)
	}

	var files storage.FileStorage
	uploadsDir := ""
	switch cfg.UploadBackend {
	case "cloudinary":
		files, err = storage.NewCloudinaryStorage(cfg.CloudinaryUploadFolder)
		if err != nil {
			log.Fatalf("failed to initialize cloudinary storage: %v", err)
		}
		log.Println("Using Cloudinary file storage")
	case "local":
		local, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			log.Fatalf("failed to initialize local storage: %v", err)
		}
		files = local
		uploadsDir = local.Dir()
		log.Printf("Using local file storage at %s", uploadsDir)
	default:
		log.Fatalf("unknown UPLOAD_BACKEND %q (want local or cloudinary)", cfg.UploadBackend)
	}

	var meiliClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		host := cfg.MeiliSearchHost
		if !strings.HasPrefix(host, "http") {
			host = "http://" + host + ":7700"
		}
		meiliClient = meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}

	ctx := context.Background()
	if err := bootstrap.SeedAdminUser(ctx, st, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDemoContent(ctx, st); err != nil {
			log.Fatalf("failed to seed demo content: %v", err)
		}
	}

	searchSvc := service.NewSearchService(meiliClient, st)
	authSvc := service.NewAuthService(st, redisClient, cfg.JWTSecret, cfg.TokenTTL, cfg.LoginRateLimit)
	videoSvc := service.NewVideoService(st, searchSvc)
	materialSvc := service.NewMaterialService(st, files, searchSvc)
	contactSvc := service.NewContactService(st)
	settingsSvc := service.NewSettingsService(st)
	statSvc := service.NewStatService(st)

	handlers := server.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		Video:    handler.NewVideoHandler(videoSvc),
		Material: handler.NewMaterialHandler(materialSvc),
		Contact:  handler.NewContactHandler(contactSvc),
		Settings: handler.NewSettingsHandler(settingsSvc),
		Stat:     handler.NewStatHandler(statSvc),
		Search:   handler.NewSearchHandler(searchSvc),
	}

	authMW := middleware.NewAuthMiddleware(authSvc, cfg.JWTSecret)
	router := server.New(cfg, handlers, authMW, uploadsDir)

	log.Printf("Faculty e-content backend listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
