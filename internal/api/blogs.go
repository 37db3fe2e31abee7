package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"bloglist/internal/domain"     // Domain models
	"bloglist/internal/listutil"   // Blog list statistics
	"bloglist/internal/middleware" // Acting user extraction
	"bloglist/internal/service"    // Core services
	"bloglist/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// blogListKey is the cache key for the expanded blog list
const blogListKey = "blogs:all"

// blogListTTL bounds how stale a cached blog list may get
const blogListTTL = 60 * time.Second

// invalidateBlogList drops the cached blog list after a mutation
func invalidateBlogList(c *gin.Context, rdb *redis.Client) {
	_ = utils.DeleteCache(c.Request.Context(), rdb, blogListKey)
}

// ListBlogsHandler returns all blogs with the owner expanded
func ListBlogsHandler(blogs *service.BlogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cached []domain.BlogView // Try the cache first
		found, err := utils.GetCache(c.Request.Context(), rdb, blogListKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached list
			return
		}
		// Not cached, fetch from the database
		views, err := blogs.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(c.Request.Context(), rdb, blogListKey, views, blogListTTL) // Cache the list
		c.JSON(http.StatusOK, views)                                                  // Return blog list
	}
}

// CreateBlogHandler creates a blog owned by the acting user
func CreateBlogHandler(blogs *service.BlogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.ActingUser(c) // Acting user resolved by the JWT middleware
		if !ok {
			// No acting user in context
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var payload domain.NewBlog // Bind JSON request to struct
		if err := c.ShouldBindJSON(&payload); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate, persist, and record ownership
		blog, err := blogs.Create(c.Request.Context(), user, &payload)
		if err != nil {
			respondError(c, err)
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"blog_id": blog.ID,    // New blog ID
			"user_id": user.ID,    // Owning user ID
			"title":   blog.Title, // Blog title
		}).Info("Blog created")
		invalidateBlogList(c, rdb)       // Invalidate the cached list
		c.JSON(http.StatusCreated, blog) // Return the new blog
	}
}

// UpdateBlogHandler applies a field-level update to a blog by id
func UpdateBlogHandler(blogs *service.BlogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse the blog id
		if err != nil {
			// Malformed id, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog id"})
			return
		}
		var payload domain.BlogUpdate // Bind JSON request to struct
		if err := c.ShouldBindJSON(&payload); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate and apply the update
		blog, err := blogs.Update(c.Request.Context(), uint(id), &payload)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateBlogList(c, rdb)  // Invalidate the cached list
		c.JSON(http.StatusOK, blog) // Return the updated blog
	}
}

// DeleteBlogHandler deletes a blog owned by the acting user.
// Deleting an absent blog still reports success.
func DeleteBlogHandler(blogs *service.BlogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.ActingUser(c) // Acting user resolved by the JWT middleware
		if !ok {
			// No acting user in context
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse the blog id
		if err != nil {
			// Malformed id, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog id"})
			return
		}
		// Ownership-gated deletion
		if err := blogs.Delete(c.Request.Context(), user.ID, uint(id)); err != nil {
			respondError(c, err)
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"blog_id": id,      // Deleted blog ID
			"user_id": user.ID, // Acting user ID
		}).Info("Blog deleted")
		invalidateBlogList(c, rdb)     // Invalidate the cached list
		c.Status(http.StatusNoContent) // No body on success
	}
}

// BlogStatsHandler returns aggregate statistics over all blogs
func BlogStatsHandler(blogs *service.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := blogs.All(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		// Aggregate the list
		c.JSON(http.StatusOK, gin.H{
			"totalLikes":    listutil.TotalLikes(all),    // Sum of likes
			"favouriteBlog": listutil.FavouriteBlog(all), // Most-liked blog
			"mostBlogs":     listutil.MostBlogs(all),     // Most prolific author
			"mostLikes":     listutil.MostLikes(all),     // Most-liked author
		})
	}
}
