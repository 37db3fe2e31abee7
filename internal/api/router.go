package api

import (
	"bloglist/internal/middleware" // JWT middleware
	"bloglist/internal/service"    // Core services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Router builds the gin engine with all routes registered. rdb may be
// nil to run without caching. Blog creation and deletion require a
// valid token; reads, updates, and account routes do not.
func Router(db *gorm.DB, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	users := service.NewUserService(db) // User operations
	blogs := service.NewBlogService(db) // Blog operations

	apiGroup := r.Group("/api")

	// Account routes
	apiGroup.POST("/users", CreateUserHandler(users))       // Registration endpoint
	apiGroup.GET("/users", ListUsersHandler(users))         // User listing endpoint
	apiGroup.POST("/login", LoginHandler(users, jwtSecret)) // Login endpoint

	// Open blog routes
	apiGroup.GET("/blogs", ListBlogsHandler(blogs, rdb))      // Blog listing endpoint
	apiGroup.GET("/blogs/stats", BlogStatsHandler(blogs))     // List statistics endpoint
	apiGroup.PUT("/blogs/:id", UpdateBlogHandler(blogs, rdb)) // Update endpoint

	// Blog routes requiring an acting user
	protected := apiGroup.Group("/blogs")
	protected.Use(middleware.JWTAuthMiddleware(db, jwtSecret))
	protected.POST("", CreateBlogHandler(blogs, rdb))       // Create endpoint
	protected.DELETE("/:id", DeleteBlogHandler(blogs, rdb)) // Delete endpoint

	return r
}
