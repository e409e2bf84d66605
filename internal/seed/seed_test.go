package seed

import (
	"context"
	"testing"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeeder_Run(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	err := s.Run(context.Background(), Options{
		NumUsers:    5,
		NumPosts:    3,
		NumComments: 2,
		NumTasks:    4,
	})
	require.NoError(t, err)

	var users, posts, comments, tasks int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	require.NoError(t, db.Model(&models.Task{}).Count(&tasks).Error)

	assert.Equal(t, int64(5), users)
	assert.Equal(t, int64(3), posts)
	assert.Equal(t, int64(6), comments)
	assert.Equal(t, int64(4), tasks)
}

func TestSeeder_CleanRemovesPreviousRun(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)
	ctx := context.Background()

	require.NoError(t, s.Run(ctx, Options{NumPosts: 3}))
	require.NoError(t, s.Run(ctx, Options{NumPosts: 2, ShouldClean: true}))

	var posts int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.Equal(t, int64(2), posts)
}
