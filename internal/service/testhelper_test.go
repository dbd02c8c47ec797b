package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Thaihung204/GENTRY-BE/internal/core/database"
	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/pkg/utils"
)

// 每个测试独立的内存库，避免用例间串数据
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.NewID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db))
	return db
}

func testLogger() *zap.Logger { return zap.NewNop() }

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FullName:     "Test User",
		PasswordHash: utils.HashPassword("secret123"),
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedItem(t *testing.T, db *gorm.DB, userID, name string, categoryID int, createdAt time.Time) *domain.Item {
	t.Helper()
	it := &domain.Item{
		ID:         utils.NewID(),
		UserID:     userID,
		Name:       name,
		CategoryID: categoryID,
		ColorID:    1,
		IsActive:   true,
	}
	it.CreatedAt = createdAt
	require.NoError(t, db.Create(it).Error)
	return it
}
