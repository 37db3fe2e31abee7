package middleware

import (
	"bloglist/internal/domain" // Domain models
	"bloglist/internal/utils"  // JWT utility functions
	"net/http"                 // HTTP status codes
	"strings"                  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// JWTAuthMiddleware validates JWT tokens and resolves the acting user.
// The full user record is loaded from the database and stored in the
// request context under "actingUser".
func JWTAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		var user domain.User // Load the acting user from the database
		if err := db.First(&user, claims.UserID).Error; err != nil {
			// Token refers to an account that no longer exists
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("actingUser", &user) // Store the acting user in context
		c.Next()                   // Proceed to the next handler
	}
}

// ActingUser extracts the acting user resolved by JWTAuthMiddleware
func ActingUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get("actingUser")
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
