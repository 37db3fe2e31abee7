package service

import (
	"context" // Context for persistence calls
	"errors"  // Error inspection

	"bloglist/internal/auth"       // Password hashing
	"bloglist/internal/domain"     // Domain models
	"bloglist/internal/validation" // Field-level validation rules

	"gorm.io/gorm" // GORM ORM library
)

// UserService implements user account creation, listing, and
// credential verification for login.
type UserService struct {
	db *gorm.DB // Database handle
}

// NewUserService returns a UserService backed by db
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create validates the payload, hashes the password, and persists a new
// user with no blogs. The plaintext password is never stored. The unique
// index on username is the authoritative uniqueness guard; the early
// check here only gives a friendlier rejection.
func (s *UserService) Create(ctx context.Context, payload *domain.NewUser) (*domain.User, error) {
	if err := validation.CheckNewUser(payload); err != nil {
		return nil, err // Validation failure, nothing persisted
	}
	// Early uniqueness check (case-sensitive)
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", payload.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validation.DuplicateKey("username")
	}
	// Derive the stored credential
	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		Username:     payload.Username, // Validated length >= 3
		Name:         payload.Name,     // Optional display name
		PasswordHash: hash,             // Only the hash is stored
		BlogIDs:      []uint{},         // New accounts own no blogs
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// A concurrent insert can slip past the early check; the index catches it
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.DuplicateKey("username")
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users with their owned blogs expanded. The password
// hash never appears in the returned views.
func (s *UserService) List(ctx context.Context) ([]domain.UserView, error) {
	var users []domain.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	views := make([]domain.UserView, 0, len(users))
	for i := range users {
		var blogs []domain.Blog
		// Owned blogs in creation order
		if err := s.db.WithContext(ctx).Where("user_id = ?", users[i].ID).Order("id").Find(&blogs).Error; err != nil {
			return nil, err
		}
		views = append(views, users[i].View(blogs))
	}
	return views, nil
}

// Authenticate verifies a username/password pair and returns the matching
// user, or ErrInvalidCredentials without revealing which part failed.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
