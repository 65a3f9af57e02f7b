package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"volunteerhub/config"
	"volunteerhub/handlers"
	"volunteerhub/middleware"
)

func SetupRouter(h *handlers.Handler, auth *middleware.Auth, cfg config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RateLimit(middleware.NewIPRateLimiter(60, time.Minute)))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "VolunteerHub backend is running"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Session
	router.POST("/jwt", h.IssueToken)
	router.GET("/logout", h.Logout)

	// Posts
	router.POST("/add-post", h.CreatePost)
	router.GET("/posts", h.ListPosts)
	router.GET("/total-posts", h.TotalPosts)
	router.GET("/posts-up", h.UpcomingPosts)
	router.GET("/post/:id", h.GetPost)
	router.PUT("/update-post/:id", h.UpdatePost)
	router.DELETE("/delete-post/:id", h.DeletePost)

	// Requests
	router.POST("/add-request", h.CreateRequest)
	router.DELETE("/delete-request/:id", h.DeleteRequest)

	// Per-email views require a valid session cookie.
	router.GET("/posts/:email", auth.RequireToken(), h.MyPosts)
	router.GET("/requests/:email", auth.RequireToken(), h.MyRequests)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
