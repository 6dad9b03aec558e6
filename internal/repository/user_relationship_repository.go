package repository

import (
	"context"
	"relationship_service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRelationshipFilter struct {
	Status    *model.RelationshipStatus
	ContextID *uint
	Category  *model.RelationshipCategory
}

type UserRelationshipRepository struct {
	DB *gorm.DB
}

func NewUserRelationshipRepository(db *gorm.DB) *UserRelationshipRepository {
	return &UserRelationshipRepository{DB: db}
}

// WithTx 返回绑定到事务的仓库
func (r *UserRelationshipRepository) WithTx(tx *gorm.DB) *UserRelationshipRepository {
	return &UserRelationshipRepository{DB: tx}
}

func betweenUsers(db *gorm.DB, user1ID, user2ID uint) *gorm.DB {
	low, high := model.NormalizePair(user1ID, user2ID)
	return db.Where("user_relationships.user_low_id = ? AND user_relationships.user_high_id = ?", low, high)
}

func forUser(db *gorm.DB, userID uint) *gorm.DB {
	return db.Where("(user_relationships.user1_id = ? OR user_relationships.user2_id = ?)", userID, userID)
}

func (r *UserRelationshipRepository) FindByUser(ctx context.Context, userID uint, filter UserRelationshipFilter, limit, offset int) ([]model.UserRelationship, int64, error) {
	var rels []model.UserRelationship
	var total int64

	db := forUser(r.DB.WithContext(ctx).Model(&model.UserRelationship{}), userID)
	if filter.Status != nil {
		db = db.Where("user_relationships.status = ?", *filter.Status)
	}
	if filter.ContextID != nil {
		db = db.Where("user_relationships.context_id = ?", *filter.ContextID)
	}
	if filter.Category != nil {
		typeIDs := r.DB.WithContext(ctx).Model(&model.RelationshipType{}).
			Select("id").
			Where("category = ?", *filter.Category)
		db = db.Where("user_relationships.relationship_type_id IN (?)", typeIDs)
	}

	// 获取总数
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询数据
	err := db.Preload("RelationshipType").
		Order("user_relationships.id ASC").
		Limit(limit).Offset(offset).
		Find(&rels).Error

	return rels, total, err
}

func (r *UserRelationshipRepository) FindBetween(ctx context.Context, user1ID, user2ID uint, activeOnly bool) ([]model.UserRelationship, error) {
	var rels []model.UserRelationship
	db := betweenUsers(r.DB.WithContext(ctx), user1ID, user2ID)
	if activeOnly {
		db = db.Where("status = ?", model.StatusActive)
	}
	err := db.Preload("RelationshipType").Order("id ASC").Find(&rels).Error
	return rels, err
}

func (r *UserRelationshipRepository) FindByID(ctx context.Context, id uint) (*model.UserRelationship, error) {
	var rel model.UserRelationship
	err := r.DB.WithContext(ctx).Preload("RelationshipType").First(&rel, id).Error
	return &rel, err
}

func (r *UserRelationshipRepository) ExistsBetween(ctx context.Context, user1ID, user2ID uint, activeOnly bool) (bool, error) {
	var count int64
	db := betweenUsers(r.DB.WithContext(ctx).Model(&model.UserRelationship{}), user1ID, user2ID)
	if activeOnly {
		db = db.Where("status = ?", model.StatusActive)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

// ExistsDuplicate 与唯一索引 uk_user_relationships_pair 的判定范围一致
func (r *UserRelationshipRepository) ExistsDuplicate(ctx context.Context, user1ID, user2ID, typeID uint, contextID *uint) (bool, error) {
	var contextKey uint
	if contextID != nil {
		contextKey = *contextID
	}

	var count int64
	err := betweenUsers(r.DB.WithContext(ctx).Model(&model.UserRelationship{}), user1ID, user2ID).
		Where("relationship_type_id = ? AND context_key = ?", typeID, contextKey).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRelationshipRepository) CountByType(ctx context.Context, typeID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.UserRelationship{}).
		Where("relationship_type_id = ?", typeID).
		Count(&count).Error
	return count, err
}

func (r *UserRelationshipRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := forUser(r.DB.WithContext(ctx).Model(&model.UserRelationship{}), userID).Count(&count).Error
	return count, err
}

func (r *UserRelationshipRepository) CountActiveByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := forUser(r.DB.WithContext(ctx).Model(&model.UserRelationship{}), userID).
		Where("status = ?", model.StatusActive).
		Count(&count).Error
	return count, err
}

func (r *UserRelationshipRepository) Create(ctx context.Context, rel *model.UserRelationship) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(rel).Error
}

func (r *UserRelationshipRepository) Save(ctx context.Context, rel *model.UserRelationship) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(rel).Error
}

func (r *UserRelationshipRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.DB.WithContext(ctx).Delete(&model.UserRelationship{}, id)
	return result.RowsAffected, result.Error
}
