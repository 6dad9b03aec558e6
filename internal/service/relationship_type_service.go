package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"relationship_service/internal/model"
	"relationship_service/internal/repository"
	"relationship_service/internal/util"
	"relationship_service/pkg/logger"
	"relationship_service/pkg/monitoring"
	"relationship_service/pkg/tracing"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const entityRelationshipType = "relationship_type"

type CreateRelationshipTypeInput struct {
	Name          string
	Category      string
	Bidirectional bool
	ReverseTypeID *uint
	Metadata      json.RawMessage
}

// UpdateRelationshipTypeInput nil 字段保持原值
type UpdateRelationshipTypeInput struct {
	Name          *string
	Category      *string
	Bidirectional *bool
	ReverseTypeID *uint
	Metadata      json.RawMessage
}

type RelationshipTypeService struct {
	TypeRepo *repository.RelationshipTypeRepository
	RelRepo  *repository.UserRelationshipRepository
}

func NewRelationshipTypeService(typeRepo *repository.RelationshipTypeRepository, relRepo *repository.UserRelationshipRepository) *RelationshipTypeService {
	return &RelationshipTypeService{
		TypeRepo: typeRepo,
		RelRepo:  relRepo,
	}
}

func (s *RelationshipTypeService) ListAll(ctx context.Context, filter repository.RelationshipTypeFilter) ([]model.RelationshipType, error) {
	logger.Log.Debug("Getting relationship types", zap.Any("category", filter.Category), zap.Any("bidirectional", filter.Bidirectional))
	return s.TypeRepo.FindAll(ctx, filter)
}

func (s *RelationshipTypeService) GetByID(ctx context.Context, id uint) (*model.RelationshipType, error) {
	rt, err := s.TypeRepo.FindByIDCached(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w with ID: %d", util.ErrRelationshipTypeNotFound, id)
		}
		return nil, err
	}
	return rt, nil
}

func (s *RelationshipTypeService) GetByName(ctx context.Context, name string) (*model.RelationshipType, error) {
	rt, err := s.TypeRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w with name: %s", util.ErrRelationshipTypeNotFound, name)
		}
		return nil, err
	}
	return rt, nil
}

func (s *RelationshipTypeService) Search(ctx context.Context, text string) ([]model.RelationshipType, error) {
	logger.Log.Debug("Searching relationship types by name", zap.String("name", text))
	return s.TypeRepo.SearchByName(ctx, text)
}

// ListReverseOf 返回以 id 为反向类型的所有类型
func (s *RelationshipTypeService) ListReverseOf(ctx context.Context, id uint) ([]model.RelationshipType, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.TypeRepo.FindReverseOf(ctx, id)
}

func validateTypeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > util.MaxTypeNameLength {
		return "", util.ErrInvalidName
	}
	return name, nil
}

func (s *RelationshipTypeService) resolveReverseType(ctx context.Context, id uint) error {
	if _, err := s.TypeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w with ID: %d", util.ErrReverseTypeNotFound, id)
		}
		return err
	}
	return nil
}

func (s *RelationshipTypeService) Create(ctx context.Context, in CreateRelationshipTypeInput) (rt *model.RelationshipType, err error) {
	ctx, span := tracing.StartSpan(ctx, "RelationshipTypeService.Create", attribute.String("name", in.Name))
	defer func() {
		monitoring.RecordOperation(entityRelationshipType, "create", err)
		tracing.EndSpan(span, err)
	}()

	name, err := validateTypeName(in.Name)
	if err != nil {
		return nil, err
	}
	category, ok := model.ParseCategory(in.Category)
	if !ok {
		return nil, util.ErrInvalidCategory
	}

	if _, findErr := s.TypeRepo.FindByName(ctx, name); findErr == nil {
		return nil, fmt.Errorf("%w: '%s'", util.ErrRelationshipTypeNameTaken, name)
	} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return nil, findErr
	}

	if in.ReverseTypeID != nil {
		if err := s.resolveReverseType(ctx, *in.ReverseTypeID); err != nil {
			return nil, err
		}
	}

	rt = &model.RelationshipType{
		Name:          name,
		Category:      category,
		Bidirectional: in.Bidirectional,
		ReverseTypeID: in.ReverseTypeID,
		Metadata:      toJSON(in.Metadata),
	}
	if err := s.TypeRepo.Create(ctx, rt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: '%s'", util.ErrRelationshipTypeNameTaken, name)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, util.ErrReverseTypeNotFound
		}
		return nil, err
	}

	logger.Log.Info("Created relationship type", zap.String("name", rt.Name), zap.Uint("id", rt.ID))
	return rt, nil
}

func (s *RelationshipTypeService) Update(ctx context.Context, id uint, in UpdateRelationshipTypeInput) (rt *model.RelationshipType, err error) {
	ctx, span := tracing.StartSpan(ctx, "RelationshipTypeService.Update", attribute.Int64("id", int64(id)))
	defer func() {
		monitoring.RecordOperation(entityRelationshipType, "update", err)
		tracing.EndSpan(span, err)
	}()

	rt, err = s.TypeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w with ID: %d", util.ErrRelationshipTypeNotFound, id)
		}
		return nil, err
	}

	if in.Name != nil {
		name, err := validateTypeName(*in.Name)
		if err != nil {
			return nil, err
		}
		// 改成自身当前名称不算冲突
		if name != rt.Name {
			taken, err := s.TypeRepo.ExistsByNameExcludingID(ctx, name, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, fmt.Errorf("%w: '%s'", util.ErrRelationshipTypeNameTaken, name)
			}
			rt.Name = name
		}
	}

	if in.Category != nil {
		category, ok := model.ParseCategory(*in.Category)
		if !ok {
			return nil, util.ErrInvalidCategory
		}
		rt.Category = category
	}

	if in.Bidirectional != nil {
		rt.Bidirectional = *in.Bidirectional
	}

	if in.ReverseTypeID != nil {
		if *in.ReverseTypeID == id {
			return nil, util.ErrSelfReverseType
		}
		if err := s.resolveReverseType(ctx, *in.ReverseTypeID); err != nil {
			return nil, err
		}
		rt.ReverseTypeID = in.ReverseTypeID
	}

	if in.Metadata != nil {
		rt.Metadata = toJSON(in.Metadata)
	}

	if err := s.TypeRepo.Save(ctx, rt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: '%s'", util.ErrRelationshipTypeNameTaken, rt.Name)
		}
		return nil, err
	}

	logger.Log.Info("Updated relationship type", zap.String("name", rt.Name), zap.Uint("id", rt.ID))
	return rt, nil
}

// Delete 仍被用户关系引用的类型不允许删除
func (s *RelationshipTypeService) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, "RelationshipTypeService.Delete", attribute.Int64("id", int64(id)))
	defer func() {
		monitoring.RecordOperation(entityRelationshipType, "delete", err)
		tracing.EndSpan(span, err)
	}()

	rt, err := s.TypeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w with ID: %d", util.ErrRelationshipTypeNotFound, id)
		}
		return err
	}

	inUse, err := s.RelRepo.CountByType(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w (%d)", util.ErrRelationshipTypeInUse, inUse)
	}

	if err := s.TypeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return util.ErrRelationshipTypeInUse
		}
		return err
	}

	logger.Log.Info("Deleted relationship type", zap.String("name", rt.Name), zap.Uint("id", id))
	return nil
}

// toJSON 元数据原样保存，不做解析；JSON null 视为清空
func toJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}
