package database

import (
	"fmt"
	"relationship_service/internal/config"
	"relationship_service/internal/model"
	"relationship_service/pkg/logger"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialector 根据配置的驱动构造 gorm 方言
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case config.DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN 默认开启外键约束
func sqliteDSN(path string) string {
	if path == "" || path == ":memory:" {
		path = "file::memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	logger.Log.Info("Database connection established", zap.String("driver", cfg.Driver))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.RelationshipType{},
		&model.UserRelationship{},
	)
	if err != nil {
		return err
	}

	logger.Log.Info("Database migration completed")
	return nil
}

type seedType struct {
	name          string
	category      model.RelationshipCategory
	bidirectional bool
	reverse       string
}

// 默认关系类型，reverse 指向同一批中的类型名称
var defaultTypes = []seedType{
	{name: "Father", category: model.CategoryFamily, reverse: "Son"},
	{name: "Son", category: model.CategoryFamily, reverse: "Father"},
	{name: "Mother", category: model.CategoryFamily, reverse: "Daughter"},
	{name: "Daughter", category: model.CategoryFamily, reverse: "Mother"},
	{name: "Grandparent", category: model.CategoryFamily, reverse: "Grandchild"},
	{name: "Grandchild", category: model.CategoryFamily, reverse: "Grandparent"},
	{name: "Sibling", category: model.CategoryFamily, bidirectional: true},
	{name: "Spouse", category: model.CategoryFamily, bidirectional: true},
	{name: "Cousin", category: model.CategoryFamily, bidirectional: true},
	{name: "Friend", category: model.CategorySocial, bidirectional: true},
	{name: "Best Friend", category: model.CategorySocial, bidirectional: true},
	{name: "Neighbor", category: model.CategorySocial, bidirectional: true},
	{name: "Colleague", category: model.CategoryProfessional, bidirectional: true},
	{name: "Manager", category: model.CategoryProfessional, reverse: "Direct Report"},
	{name: "Direct Report", category: model.CategoryProfessional, reverse: "Manager"},
	{name: "Mentor", category: model.CategoryProfessional, reverse: "Mentee"},
	{name: "Mentee", category: model.CategoryProfessional, reverse: "Mentor"},
}

// SeedDefaults 表为空时写入默认关系类型
func SeedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.RelationshipType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]uint, len(defaultTypes))
		for _, t := range defaultTypes {
			rt := &model.RelationshipType{
				Name:          t.name,
				Category:      t.category,
				Bidirectional: t.bidirectional,
			}
			if err := tx.Omit("ReverseType").Create(rt).Error; err != nil {
				return err
			}
			ids[t.name] = rt.ID
		}

		// 第二遍回填反向类型
		for _, t := range defaultTypes {
			if t.reverse == "" {
				continue
			}
			if err := tx.Model(&model.RelationshipType{}).
				Where("id = ?", ids[t.name]).
				Update("reverse_type_id", ids[t.reverse]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Log.Info("Seeded default relationship types", zap.Int("count", len(defaultTypes)))
	return nil
}
