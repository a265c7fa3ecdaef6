package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-admin/controllers"
	"hotel-admin/middleware"
)

// Handlers holds every controller the router mounts. Resources is keyed by
// the path segment under /api.
type Handlers struct {
	Resources map[string]controllers.CRUD
	Logs      controllers.ReadOnly
	Upload    *controllers.UploadController
	Webhook   *controllers.WebhookController
}

type Options struct {
	CorsOrigins string
	UploadDir   string
	Session     *middleware.SessionVerifier
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), middleware.Recovery())

	origins := parseCorsOrigins(opts.CorsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	if opts.UploadDir != "" {
		r.Static("/uploads", opts.UploadDir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Signed by the identity provider, so it sits outside the session guard.
	if h.Webhook != nil {
		r.POST("/api/webhooks/clerk", h.Webhook.Session)
	}

	api := r.Group("/api", middleware.RequireSession(opts.Session))
	for path, ctl := range h.Resources {
		group := api.Group("/" + path)
		group.GET("", ctl.List)
		group.POST("", ctl.Create)
		group.GET("/:id", ctl.Get)
		group.PUT("/:id", ctl.Update)
		group.DELETE("/:id", ctl.Delete)
	}
	if h.Logs != nil {
		api.GET("/logs", h.Logs.List)
		api.GET("/logs/:id", h.Logs.Get)
	}
	if h.Upload != nil {
		api.POST("/upload-image", h.Upload.UploadImage)
	}

	return r
}
