package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"relationship_service/internal/model"
	"relationship_service/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RelationshipTypeFilter struct {
	Category      *model.RelationshipCategory
	Bidirectional *bool
}

type RelationshipTypeRepository struct {
	DB       *gorm.DB
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewRelationshipTypeRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *RelationshipTypeRepository {
	return &RelationshipTypeRepository{
		DB:       db,
		Redis:    rdb,
		CacheTTL: ttl,
	}
}

func relationshipTypeCacheKey(id uint) string {
	return fmt.Sprintf("relationship:type:%d", id)
}

func (r *RelationshipTypeRepository) FindAll(ctx context.Context, filter RelationshipTypeFilter) ([]model.RelationshipType, error) {
	var types []model.RelationshipType
	db := r.DB.WithContext(ctx).Model(&model.RelationshipType{})

	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}
	if filter.Bidirectional != nil {
		db = db.Where("bidirectional = ?", *filter.Bidirectional)
	}

	err := db.Order("id ASC").Find(&types).Error
	return types, err
}

func (r *RelationshipTypeRepository) FindByID(ctx context.Context, id uint) (*model.RelationshipType, error) {
	var rt model.RelationshipType
	err := r.DB.WithContext(ctx).First(&rt, id).Error
	return &rt, err
}

// FindByIDCached 先查缓存，未命中时回源数据库
func (r *RelationshipTypeRepository) FindByIDCached(ctx context.Context, id uint) (*model.RelationshipType, error) {
	if r.Redis == nil {
		return r.FindByID(ctx, id)
	}

	key := relationshipTypeCacheKey(id)
	cached, err := r.Redis.Get(ctx, key).Bytes()
	if err == nil {
		var rt model.RelationshipType
		if jsonErr := json.Unmarshal(cached, &rt); jsonErr == nil {
			return &rt, nil
		}
		r.Redis.Del(ctx, key)
	} else if err != redis.Nil {
		logger.Log.Warn("relationship type cache read failed", zap.Uint("id", id), zap.Error(err))
	}

	rt, err := r.FindByID(ctx, id)
	if err != nil {
		return rt, err
	}

	if payload, jsonErr := json.Marshal(rt); jsonErr == nil {
		if setErr := r.Redis.Set(ctx, key, payload, r.CacheTTL).Err(); setErr != nil {
			logger.Log.Warn("relationship type cache write failed", zap.Uint("id", id), zap.Error(setErr))
		}
	}
	return rt, nil
}

func (r *RelationshipTypeRepository) Invalidate(ctx context.Context, ids ...uint) {
	if r.Redis == nil || len(ids) == 0 {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, relationshipTypeCacheKey(id))
	}
	if err := r.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("relationship type cache invalidation failed", zap.Uints("ids", ids), zap.Error(err))
	}
}

func (r *RelationshipTypeRepository) FindByName(ctx context.Context, name string) (*model.RelationshipType, error) {
	var rt model.RelationshipType
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&rt).Error
	return &rt, err
}

// SearchByName 名称模糊匹配（不区分大小写）
func (r *RelationshipTypeRepository) SearchByName(ctx context.Context, text string) ([]model.RelationshipType, error) {
	var types []model.RelationshipType
	searchTerm := "%" + escapeLike(text) + "%"
	err := r.DB.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) ESCAPE '!'", searchTerm).
		Order("id ASC").
		Find(&types).Error
	return types, err
}

func (r *RelationshipTypeRepository) FindReverseOf(ctx context.Context, id uint) ([]model.RelationshipType, error) {
	var types []model.RelationshipType
	err := r.DB.WithContext(ctx).Where("reverse_type_id = ?", id).Order("id ASC").Find(&types).Error
	return types, err
}

func (r *RelationshipTypeRepository) ExistsByNameExcludingID(ctx context.Context, name string, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.RelationshipType{}).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error
	return count > 0, err
}

func (r *RelationshipTypeRepository) Create(ctx context.Context, rt *model.RelationshipType) error {
	err := r.DB.WithContext(ctx).Omit("ReverseType").Create(rt).Error
	if err == nil {
		r.Invalidate(ctx, rt.ID)
	}
	return err
}

func (r *RelationshipTypeRepository) Save(ctx context.Context, rt *model.RelationshipType) error {
	err := r.DB.WithContext(ctx).Omit("ReverseType").Save(rt).Error
	if err == nil {
		r.Invalidate(ctx, rt.ID)
	}
	return err
}

// Delete 删除类型，同时清空以它为反向类型的记录的 reverse_type_id 并清除相关缓存
func (r *RelationshipTypeRepository) Delete(ctx context.Context, id uint) error {
	var referrers []uint
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.RelationshipType{}).
			Where("reverse_type_id = ?", id).
			Pluck("id", &referrers).Error; err != nil {
			return err
		}
		if len(referrers) > 0 {
			if err := tx.Model(&model.RelationshipType{}).
				Where("reverse_type_id = ?", id).
				Update("reverse_type_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.RelationshipType{}, id).Error
	})

	if err == nil {
		r.Invalidate(ctx, append(referrers, id)...)
	}
	return err
}

// escapeLike 转义 LIKE 通配符，转义符为 '!'（各数据库通用）
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '%' || c == '_' || c == '!' {
			out = append(out, '!')
		}
		out = append(out, c)
	}
	return string(out)
}
