package database_test

import (
	"relationship_service/internal/config"
	"relationship_service/internal/model"
	"relationship_service/internal/testutil"
	"relationship_service/pkg/database"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver string
		name   string
	}{
		{config.DriverMySQL, "mysql"},
		{config.DriverPostgres, "postgres"},
		{config.DriverSQLite, "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := database.Dialector(&config.DatabaseConfig{Driver: tt.driver, Host: "localhost", Port: 1})
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}

	_, err := database.Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSeedDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, database.SeedDefaults(db))

	var count int64
	require.NoError(t, db.Model(&model.RelationshipType{}).Count(&count).Error)
	assert.Greater(t, count, int64(0))

	var father, son model.RelationshipType
	require.NoError(t, db.Where("name = ?", "Father").First(&father).Error)
	require.NoError(t, db.Where("name = ?", "Son").First(&son).Error)
	require.NotNil(t, father.ReverseTypeID)
	require.NotNil(t, son.ReverseTypeID)
	assert.Equal(t, son.ID, *father.ReverseTypeID)
	assert.Equal(t, father.ID, *son.ReverseTypeID)

	var friend model.RelationshipType
	require.NoError(t, db.Where("name = ?", "Friend").First(&friend).Error)
	assert.True(t, friend.Bidirectional)
	assert.Nil(t, friend.ReverseTypeID)

	// 再次执行不会重复写入
	require.NoError(t, database.SeedDefaults(db))
	var again int64
	require.NoError(t, db.Model(&model.RelationshipType{}).Count(&again).Error)
	assert.Equal(t, count, again)
}

func TestInitRedis(t *testing.T) {
	_, mr := testutil.NewTestRedis(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	rdb, err := database.InitRedis(&config.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	defer rdb.Close()

	_, err = database.InitRedis(&config.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
}
