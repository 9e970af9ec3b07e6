package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mdhnkumar/faculty-econtent/internal/config"
	"github.com/mdhnkumar/faculty-econtent/internal/handler"
	"github.com/mdhnkumar/faculty-econtent/internal/middleware"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Auth     *handler.AuthHandler
	Video    *handler.VideoHandler
	Material *handler.MaterialHandler
	Contact  *handler.ContactHandler
	Settings *handler.SettingsHandler
	Stat     *handler.StatHandler
	Search   *handler.SearchHandler
}

// New assembles the Gin engine: CORS, health check, public routes, and the
// auth-gated admin routes. uploadsDir, when non-empty, is mounted for static
// serving of locally stored material files.
func New(cfg *config.Config, h Handlers, authMW *middleware.AuthMiddleware, uploadsDir string) *gin.Engine {
	router := gin.Default()

	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if uploadsDir != "" {
		router.Static("/uploads", uploadsDir)
	}

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	// Public routes: catalog reads (with their counter side effects), contact
	// submission, settings reads, public stats, search, login.
	api.POST("/auth/login", h.Auth.Login)

	api.GET("/videos", h.Video.List)
	api.GET("/videos/:id", h.Video.GetByID)

	api.GET("/materials", h.Material.List)
	api.GET("/materials/download/:id", h.Material.Download)

	api.POST("/contact", h.Contact.Submit)

	api.GET("/profile", h.Settings.GetProfile)
	api.GET("/content", h.Settings.GetContent)

	api.GET("/stats/public", h.Stat.Public)
	api.GET("/search", h.Search.Search)

	// Protected routes: every mutation plus the admin dashboard reads.
	protected := api.Group("")
	protected.Use(authMW.RequireAuth())
	{
		protected.POST("/videos", h.Video.Create)
		protected.PUT("/videos/:id", h.Video.Update)
		protected.DELETE("/videos/:id", h.Video.Delete)

		protected.POST("/materials", h.Material.Upload)
		protected.PUT("/materials/:id", h.Material.Update)
		protected.DELETE("/materials/:id", h.Material.Delete)

		protected.GET("/contact", h.Contact.List)
		protected.PUT("/contact/:id/read", h.Contact.MarkRead)
		protected.DELETE("/contact/:id", h.Contact.Delete)

		protected.PUT("/profile", h.Settings.UpdateProfile)
		protected.PUT("/content", h.Settings.UpdateContent)

		protected.GET("/stats", h.Stat.Admin)
	}

	return router
}
