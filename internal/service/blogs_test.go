package service

import (
	"context"
	"testing"

	"bloglist/internal/domain"
	"bloglist/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func blogCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&domain.Blog{}).Count(&count).Error)
	return count
}

func TestBlogService_Create(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	blog, err := blogs.Create(context.Background(), owner, &domain.NewBlog{
		Title:  "Go Proverbs",
		Author: "Rob Pike",
		URL:    "https://go-proverbs.github.io",
		Likes:  intPtr(7),
	})
	require.NoError(t, err)

	assert.NotZero(t, blog.ID)
	assert.Equal(t, owner.ID, blog.UserID)
	assert.Equal(t, 7, blog.Likes)

	// The owner lists the new blog
	var stored domain.User
	require.NoError(t, db.First(&stored, owner.ID).Error)
	assert.Equal(t, []uint{blog.ID}, stored.BlogIDs)
}

func TestBlogService_Create_LikesDefaultToZero(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	blog, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "T", Author: "A", URL: "u"})
	require.NoError(t, err)
	assert.Equal(t, 0, blog.Likes)

	var stored domain.Blog
	require.NoError(t, db.First(&stored, blog.ID).Error)
	assert.Equal(t, 0, stored.Likes)
}

func TestBlogService_Create_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name     string
		payload  domain.NewBlog
		wantKind validation.Kind
	}{
		{name: "missing title", payload: domain.NewBlog{URL: "https://example.com"}, wantKind: validation.KindMissingField},
		{name: "missing url", payload: domain.NewBlog{Title: "Go Proverbs"}, wantKind: validation.KindMissingField},
		{name: "negative likes", payload: domain.NewBlog{Title: "Go Proverbs", URL: "https://example.com", Likes: intPtr(-1)}, wantKind: validation.KindInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			blogs := NewBlogService(db)
			owner := createTestUser(t, db, "root")

			_, err := blogs.Create(context.Background(), owner, &tt.payload)
			require.Error(t, err)

			var ve *validation.Error
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantKind, ve.Kind)

			// Nothing persisted and the owner still lists no blogs
			assert.EqualValues(t, 0, blogCount(t, db))
			var stored domain.User
			require.NoError(t, db.First(&stored, owner.ID).Error)
			assert.Empty(t, stored.BlogIDs)
		})
	}
}

func TestBlogService_Create_OwnerListOrdered(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	first, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "First", URL: "u1"})
	require.NoError(t, err)
	second, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "Second", URL: "u2"})
	require.NoError(t, err)

	// Insertion order equals creation order
	var stored domain.User
	require.NoError(t, db.First(&stored, owner.ID).Error)
	assert.Equal(t, []uint{first.ID, second.ID}, stored.BlogIDs)
}

func TestBlogService_List_ExpandsOwner(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	_, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "T", Author: "A", URL: "u"})
	require.NoError(t, err)

	views, err := blogs.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, 0, views[0].Likes)
	assert.Equal(t, "root", views[0].User.Username)
	assert.Equal(t, owner.ID, views[0].User.ID)
}

func TestBlogService_Update(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	blog, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "T", URL: "u"})
	require.NoError(t, err)

	updated, err := blogs.Update(context.Background(), blog.ID, &domain.BlogUpdate{Likes: intPtr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Likes)
	assert.Equal(t, "T", updated.Title)

	// The owner is untouched by updates
	assert.Equal(t, owner.ID, updated.UserID)
}

func TestBlogService_Update_NegativeLikesLeavesRecordUnchanged(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	blog, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "T", URL: "u", Likes: intPtr(5)})
	require.NoError(t, err)

	_, err = blogs.Update(context.Background(), blog.ID, &domain.BlogUpdate{Likes: intPtr(-10)})
	require.Error(t, err)

	var ve *validation.Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, validation.KindInvalidValue, ve.Kind)

	var stored domain.Blog
	require.NoError(t, db.First(&stored, blog.ID).Error)
	assert.Equal(t, 5, stored.Likes)
}

func TestBlogService_Update_EmptyTitleRejected(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	blog, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "T", URL: "u"})
	require.NoError(t, err)

	_, err = blogs.Update(context.Background(), blog.ID, &domain.BlogUpdate{Title: strPtr("")})
	require.Error(t, err)

	var stored domain.Blog
	require.NoError(t, db.First(&stored, blog.ID).Error)
	assert.Equal(t, "T", stored.Title)
}

func TestBlogService_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)

	_, err := blogs.Update(context.Background(), 9999, &domain.BlogUpdate{Likes: intPtr(1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogService_Delete_ByOwner(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	blog, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "T", URL: "u"})
	require.NoError(t, err)

	require.NoError(t, blogs.Delete(context.Background(), owner.ID, blog.ID))
	assert.EqualValues(t, 0, blogCount(t, db))

	// Deleting again still reports success
	require.NoError(t, blogs.Delete(context.Background(), owner.ID, blog.ID))
}

func TestBlogService_Delete_ForeignOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")
	intruder := createTestUser(t, db, "intruder")

	blog, err := blogs.Create(context.Background(), owner, &domain.NewBlog{Title: "T", URL: "u"})
	require.NoError(t, err)

	err = blogs.Delete(context.Background(), intruder.ID, blog.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// The blog still exists
	assert.EqualValues(t, 1, blogCount(t, db))
}

func TestBlogService_Delete_AbsentBlogSucceeds(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogService(db)
	owner := createTestUser(t, db, "root")

	assert.NoError(t, blogs.Delete(context.Background(), owner.ID, 9999))
}
