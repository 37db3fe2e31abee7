package api

import (
	"net/http" // HTTP status codes

	"bloglist/internal/domain"  // Domain models
	"bloglist/internal/service" // Core services
	"bloglist/internal/utils"   // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for login
type LoginRequest struct {
	Username string `json:"username"` // Username must be provided
	Password string `json:"password"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token    string `json:"token"`    // JWT token
	Username string `json:"username"` // Authenticated username
	Name     string `json:"name"`     // Display name
}

// CreateUserHandler registers a new user account
func CreateUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.NewUser // Bind JSON request to struct
		if err := c.ShouldBindJSON(&payload); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate and persist the new account
		user, err := users.Create(c.Request.Context(), &payload)
		if err != nil {
			respondError(c, err)
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // New username
		}).Info("User registered")
		// Return the new account; the password hash is never echoed back
		c.JSON(http.StatusCreated, user.View(nil))
	}
}

// ListUsersHandler returns all users with their owned blogs expanded
func ListUsersHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := users.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, views) // Return user list
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(users *service.UserService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Verify the credentials
		user, err := users.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Username, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, Username: user.Username, Name: user.Name})
	}
}
