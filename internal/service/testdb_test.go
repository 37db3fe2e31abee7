package service

import (
	"context"
	"strings"
	"testing"

	"bloglist/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Blog{}))
	return db
}

// createTestUser registers a user through the service layer
func createTestUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	user, err := NewUserService(db).Create(context.Background(), &domain.NewUser{
		Username: username,
		Name:     "Test User",
		Password: "sekret",
	})
	require.NoError(t, err)
	return user
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
