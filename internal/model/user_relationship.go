package model

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RelationshipStatus string

const (
	StatusActive    RelationshipStatus = "ACTIVE"
	StatusEnded     RelationshipStatus = "ENDED"
	StatusSuspended RelationshipStatus = "SUSPENDED"
	StatusPending   RelationshipStatus = "PENDING"
)

var relationshipStatuses = []RelationshipStatus{
	StatusActive,
	StatusEnded,
	StatusSuspended,
	StatusPending,
}

// ParseStatus 不区分大小写
func ParseStatus(s string) (RelationshipStatus, bool) {
	st := RelationshipStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range relationshipStatuses {
		if st == known {
			return st, true
		}
	}
	return "", false
}

// UserRelationship 两个用户之间的一条关系记录
// swagger:model
type UserRelationship struct {
	BaseModel
	User1ID            uint               `gorm:"column:user1_id;not null;index;uniqueIndex:uk_user_relationships,priority:1;check:chk_user_relationships_distinct_users,user1_id <> user2_id" json:"user1Id"`
	User2ID            uint               `gorm:"column:user2_id;not null;index;uniqueIndex:uk_user_relationships,priority:2" json:"user2Id"`
	RelationshipTypeID uint               `gorm:"not null;index;uniqueIndex:uk_user_relationships,priority:3;uniqueIndex:uk_user_relationships_pair,priority:3" json:"relationshipTypeId"`
	RelationshipType   *RelationshipType  `gorm:"foreignKey:RelationshipTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"relationshipType,omitempty"`
	ContextID          *uint              `gorm:"index;uniqueIndex:uk_user_relationships,priority:4" json:"contextId"`
	StartDate          *datatypes.Date    `json:"startDate"`
	EndDate            *datatypes.Date    `gorm:"check:chk_user_relationships_date_range,end_date IS NULL OR start_date IS NULL OR end_date >= start_date" json:"endDate"`
	Status             RelationshipStatus `gorm:"size:20;not null;default:'ACTIVE';index;check:chk_user_relationships_status,status IN ('ACTIVE','ENDED','SUSPENDED','PENDING')" json:"status"`
	Metadata           datatypes.JSON     `json:"metadata" swaggertype:"object"`

	// 无序用户对的规范化列，唯一索引以此判定重复；ContextKey 为 0 表示无上下文，因此 contextId 只能为正数
	UserLowID  uint `gorm:"not null;uniqueIndex:uk_user_relationships_pair,priority:1" json:"-"`
	UserHighID uint `gorm:"not null;uniqueIndex:uk_user_relationships_pair,priority:2" json:"-"`
	ContextKey uint `gorm:"not null;default:0;uniqueIndex:uk_user_relationships_pair,priority:4" json:"-"`
}

func (UserRelationship) TableName() string {
	return "user_relationships"
}

// NormalizePair 返回无序用户对的 (小, 大) 形式
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

func (r *UserRelationship) normalize() {
	r.UserLowID, r.UserHighID = NormalizePair(r.User1ID, r.User2ID)
	r.ContextKey = 0
	if r.ContextID != nil {
		r.ContextKey = *r.ContextID
	}
}

func (r *UserRelationship) BeforeSave(tx *gorm.DB) error {
	r.normalize()
	return nil
}

func (r *UserRelationship) IsActive() bool {
	return r.Status == StatusActive
}

func (r *UserRelationship) IsEnded() bool {
	return r.Status == StatusEnded
}
