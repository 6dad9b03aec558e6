package model

import (
	"strings"

	"gorm.io/datatypes"
)

type RelationshipCategory string

const (
	CategoryFamily       RelationshipCategory = "FAMILY"
	CategorySocial       RelationshipCategory = "SOCIAL"
	CategoryProfessional RelationshipCategory = "PROFESSIONAL"
	CategoryCustom       RelationshipCategory = "CUSTOM"
)

var relationshipCategories = []RelationshipCategory{
	CategoryFamily,
	CategorySocial,
	CategoryProfessional,
	CategoryCustom,
}

// ParseCategory 不区分大小写
func ParseCategory(s string) (RelationshipCategory, bool) {
	c := RelationshipCategory(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range relationshipCategories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// RelationshipType 关系类型，如 Father / Son / Friend
// swagger:model
type RelationshipType struct {
	BaseModel
	Name          string               `gorm:"size:100;not null;uniqueIndex:uk_relationship_types_name" json:"name"`
	Category      RelationshipCategory `gorm:"size:50;not null;index;check:chk_relationship_types_category,category IN ('FAMILY','SOCIAL','PROFESSIONAL','CUSTOM')" json:"category"`
	Bidirectional bool                 `gorm:"not null;default:false" json:"bidirectional"`
	ReverseTypeID *uint                `gorm:"index" json:"reverseTypeId"`
	ReverseType   *RelationshipType    `gorm:"foreignKey:ReverseTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Metadata      datatypes.JSON       `json:"metadata" swaggertype:"object"`
}

func (RelationshipType) TableName() string {
	return "relationship_types"
}
