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
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const entityUserRelationship = "user_relationship"

type CreateRelationshipInput struct {
	User1ID            uint
	User2ID            uint
	RelationshipTypeID uint
	ContextID          *uint
	StartDate          *datatypes.Date
	EndDate            *datatypes.Date
	Status             *string
	Metadata           json.RawMessage
}

// UpdateRelationshipInput 只允许修改状态、结束日期和元数据
type UpdateRelationshipInput struct {
	Status   *string
	EndDate  *datatypes.Date
	Metadata json.RawMessage
}

type PageRequest struct {
	Page int
	Size int
}

type RelationshipPage struct {
	Items []model.UserRelationship
	Total int64
	Page  int
	Size  int
}

type RelationshipStats struct {
	Total  int64 `json:"totalRelationships"`
	Active int64 `json:"activeRelationships"`
	Ended  int64 `json:"endedRelationships"`
}

type UserRelationshipService struct {
	RelRepo  *repository.UserRelationshipRepository
	TypeRepo *repository.RelationshipTypeRepository
}

func NewUserRelationshipService(relRepo *repository.UserRelationshipRepository, typeRepo *repository.RelationshipTypeRepository) *UserRelationshipService {
	return &UserRelationshipService{
		RelRepo:  relRepo,
		TypeRepo: typeRepo,
	}
}

func (s *UserRelationshipService) ListForUser(ctx context.Context, userID uint, filter repository.UserRelationshipFilter, page PageRequest) (*RelationshipPage, error) {
	logger.Log.Debug("Getting relationships for user",
		zap.Uint("userId", userID),
		zap.Any("status", filter.Status),
		zap.Any("contextId", filter.ContextID),
		zap.Int("page", page.Page),
		zap.Int("size", page.Size))

	items, total, err := s.RelRepo.FindByUser(ctx, userID, filter, page.Size, page.Page*page.Size)
	if err != nil {
		return nil, err
	}
	return &RelationshipPage{Items: items, Total: total, Page: page.Page, Size: page.Size}, nil
}

func (s *UserRelationshipService) ListBetween(ctx context.Context, user1ID, user2ID uint, activeOnly bool) ([]model.UserRelationship, error) {
	logger.Log.Debug("Getting relationships between users", zap.Uint("user1Id", user1ID), zap.Uint("user2Id", user2ID), zap.Bool("activeOnly", activeOnly))
	return s.RelRepo.FindBetween(ctx, user1ID, user2ID, activeOnly)
}

func (s *UserRelationshipService) GetByID(ctx context.Context, id uint) (*model.UserRelationship, error) {
	rel, err := s.RelRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w with ID: %d", util.ErrRelationshipNotFound, id)
		}
		return nil, err
	}
	return rel, nil
}

func validateDateRange(start, end *datatypes.Date) error {
	if start == nil || end == nil {
		return nil
	}
	if time.Time(*end).Before(time.Time(*start)) {
		return util.ErrInvalidDateRange
	}
	return nil
}

func (s *UserRelationshipService) Create(ctx context.Context, in CreateRelationshipInput) (rel *model.UserRelationship, err error) {
	ctx, span := tracing.StartSpan(ctx, "UserRelationshipService.Create",
		attribute.Int64("user1Id", int64(in.User1ID)),
		attribute.Int64("user2Id", int64(in.User2ID)))
	defer func() {
		monitoring.RecordOperation(entityUserRelationship, "create", err)
		tracing.EndSpan(span, err)
	}()

	if in.User1ID == in.User2ID {
		return nil, util.ErrSelfRelationship
	}
	// context_key 为 0 表示无上下文
	if in.ContextID != nil && *in.ContextID == 0 {
		return nil, util.ErrInvalidContextID
	}

	status := model.StatusActive
	if in.Status != nil {
		parsed, ok := model.ParseStatus(*in.Status)
		if !ok {
			return nil, util.ErrInvalidStatus
		}
		status = parsed
	}

	if err := validateDateRange(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	rt, err := s.TypeRepo.FindByIDCached(ctx, in.RelationshipTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w with ID: %d", util.ErrRelationshipTypeNotFound, in.RelationshipTypeID)
		}
		return nil, err
	}

	rel = &model.UserRelationship{
		User1ID:            in.User1ID,
		User2ID:            in.User2ID,
		RelationshipTypeID: rt.ID,
		ContextID:          in.ContextID,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		Status:             status,
		Metadata:           toJSON(in.Metadata),
	}

	// 先查重再插入；并发下由唯一索引兜底
	err = s.RelRepo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.RelRepo.WithTx(tx)
		exists, err := repo.ExistsDuplicate(ctx, in.User1ID, in.User2ID, rt.ID, in.ContextID)
		if err != nil {
			return err
		}
		if exists {
			return util.ErrRelationshipExists
		}
		return repo.Create(ctx, rel)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrRelationshipExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("%w with ID: %d", util.ErrRelationshipTypeNotFound, in.RelationshipTypeID)
		}
		return nil, err
	}
	rel.RelationshipType = rt

	logger.Log.Info("Created relationship",
		zap.Uint("id", rel.ID),
		zap.Uint("user1Id", rel.User1ID),
		zap.Uint("user2Id", rel.User2ID),
		zap.String("type", rt.Name))
	return rel, nil
}

func (s *UserRelationshipService) Update(ctx context.Context, id uint, in UpdateRelationshipInput) (rel *model.UserRelationship, err error) {
	ctx, span := tracing.StartSpan(ctx, "UserRelationshipService.Update", attribute.Int64("id", int64(id)))
	defer func() {
		monitoring.RecordOperation(entityUserRelationship, "update", err)
		tracing.EndSpan(span, err)
	}()

	rel, err = s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		status, ok := model.ParseStatus(*in.Status)
		if !ok {
			return nil, util.ErrInvalidStatus
		}
		rel.Status = status
	}

	if in.EndDate != nil {
		if err := validateDateRange(rel.StartDate, in.EndDate); err != nil {
			return nil, err
		}
		rel.EndDate = in.EndDate
	}

	if in.Metadata != nil {
		rel.Metadata = toJSON(in.Metadata)
	}

	if err := s.RelRepo.Save(ctx, rel); err != nil {
		return nil, err
	}

	logger.Log.Info("Updated relationship", zap.Uint("id", rel.ID), zap.String("status", string(rel.Status)))
	return rel, nil
}

func (s *UserRelationshipService) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, "UserRelationshipService.Delete", attribute.Int64("id", int64(id)))
	defer func() {
		monitoring.RecordOperation(entityUserRelationship, "delete", err)
		tracing.EndSpan(span, err)
	}()

	affected, err := s.RelRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w with ID: %d", util.ErrRelationshipNotFound, id)
	}

	logger.Log.Info("Deleted relationship", zap.Uint("id", id))
	return nil
}

func (s *UserRelationshipService) ExistsBetween(ctx context.Context, user1ID, user2ID uint, activeOnly bool) (bool, error) {
	return s.RelRepo.ExistsBetween(ctx, user1ID, user2ID, activeOnly)
}

// CountForUser ended 按 total - active 计算，SUSPENDED/PENDING 也计入其中
func (s *UserRelationshipService) CountForUser(ctx context.Context, userID uint) (*RelationshipStats, error) {
	total, err := s.RelRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, err := s.RelRepo.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &RelationshipStats{Total: total, Active: active, Ended: total - active}, nil
}
