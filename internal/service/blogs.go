package service

import (
	"context" // Context for persistence calls
	"errors"  // Error inspection

	"bloglist/internal/domain"     // Domain models
	"bloglist/internal/validation" // Field-level validation rules

	"gorm.io/gorm" // GORM ORM library
)

// BlogService implements the blog operations: listing with the owner
// expanded, creation with the owner relationship maintained, field-level
// updates, and ownership-gated deletion.
type BlogService struct {
	db *gorm.DB // Database handle
}

// NewBlogService returns a BlogService backed by db
func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

// List returns all blogs with the owner expanded to {id, username, name}
func (s *BlogService) List(ctx context.Context) ([]domain.BlogView, error) {
	var blogs []domain.Blog
	// Fetch all blogs with their owning user preloaded
	if err := s.db.WithContext(ctx).Preload("User").Order("id").Find(&blogs).Error; err != nil {
		return nil, err
	}
	views := make([]domain.BlogView, 0, len(blogs))
	for i := range blogs {
		views = append(views, blogs[i].View())
	}
	return views, nil
}

// All returns every blog record without expanding the owner
func (s *BlogService) All(ctx context.Context) ([]domain.Blog, error) {
	var blogs []domain.Blog
	if err := s.db.WithContext(ctx).Order("id").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// Create validates the payload, persists a new blog owned by owner, and
// appends its id to the owner's blog list. The two writes are separate
// steps, not a transaction: a failure between them leaves a blog the
// owner does not list.
func (s *BlogService) Create(ctx context.Context, owner *domain.User, payload *domain.NewBlog) (*domain.Blog, error) {
	likes, err := validation.CheckNewBlog(payload)
	if err != nil {
		return nil, err // Validation failure, nothing persisted
	}
	// The owner is set once here and never reassignable through updates
	blog := domain.Blog{
		Title:  payload.Title,  // Validated non-empty
		Author: payload.Author, // Optional
		URL:    payload.URL,    // Validated non-empty
		Likes:  likes,          // Normalized, absent defaults to 0
		UserID: owner.ID,       // Owning user
	}
	// First write: the blog record
	if err := s.db.WithContext(ctx).Create(&blog).Error; err != nil {
		return nil, err
	}
	// Second write: append the new id to the owner's ordered blog list
	owner.BlogIDs = append(owner.BlogIDs, blog.ID)
	if err := s.db.WithContext(ctx).Save(owner).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// Update applies the supplied fields to an existing blog. Absent fields
// are left untouched; supplied fields must satisfy the creation rules.
// Updates are not ownership-gated.
func (s *BlogService) Update(ctx context.Context, id uint, payload *domain.BlogUpdate) (*domain.Blog, error) {
	// Validate before loading so a bad payload cannot touch the record
	if err := validation.CheckBlogUpdate(payload); err != nil {
		return nil, err
	}
	var blog domain.Blog
	if err := s.db.WithContext(ctx).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound // Unknown blog id
		}
		return nil, err
	}
	// Apply only the supplied fields
	if payload.Title != nil {
		blog.Title = *payload.Title
	}
	if payload.Author != nil {
		blog.Author = *payload.Author
	}
	if payload.URL != nil {
		blog.URL = *payload.URL
	}
	if payload.Likes != nil {
		blog.Likes = *payload.Likes
	}
	if err := s.db.WithContext(ctx).Save(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// Delete removes a blog if the acting user owns it. Deleting a blog that
// does not exist succeeds as a no-op, so callers cannot distinguish
// "already deleted" from "just deleted".
func (s *BlogService) Delete(ctx context.Context, actingUserID, id uint) error {
	var blog domain.Blog
	if err := s.db.WithContext(ctx).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // Idempotent: absent blog reports success
		}
		return err
	}
	// Ownership gate: only the owner may delete
	if blog.UserID != actingUserID {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(&domain.Blog{}, id).Error
}
