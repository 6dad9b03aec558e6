// Package testutil 提供测试用的内存数据库和 Redis
package testutil

import (
	"relationship_service/internal/config"
	"relationship_service/internal/model"
	"relationship_service/pkg/database"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB 返回迁移完成的内存 SQLite，只开一个连接保证内存库在整个测试期间共享
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.Migrate(db), "failed to migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func NewTestRedis(t testing.TB) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb, mr
}

// MustCreateType 直接写库创建关系类型
func MustCreateType(t testing.TB, db *gorm.DB, name string, category model.RelationshipCategory, bidirectional bool) *model.RelationshipType {
	t.Helper()

	rt := &model.RelationshipType{Name: name, Category: category, Bidirectional: bidirectional}
	require.NoError(t, db.Omit("ReverseType").Create(rt).Error)
	return rt
}
