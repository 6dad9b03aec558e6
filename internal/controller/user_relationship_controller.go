package controller

import (
	"encoding/json"
	"math"
	"relationship_service/internal/config"
	"relationship_service/internal/model"
	"relationship_service/internal/repository"
	"relationship_service/internal/service"
	"relationship_service/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type UserRelationshipController struct {
	Service    *service.UserRelationshipService
	Pagination config.PaginationConfig
}

func NewUserRelationshipController(s *service.UserRelationshipService, pagination config.PaginationConfig) *UserRelationshipController {
	return &UserRelationshipController{
		Service:    s,
		Pagination: pagination,
	}
}

type CreateRelationshipRequest struct {
	User1ID            uint            `json:"user1Id" binding:"required,gt=0"`
	User2ID            uint            `json:"user2Id" binding:"required,gt=0"`
	RelationshipTypeID uint            `json:"relationshipTypeId" binding:"required,gt=0"`
	ContextID          *uint           `json:"contextId" binding:"omitempty,gt=0"`
	StartDate          *string         `json:"startDate" example:"2020-01-01"`
	EndDate            *string         `json:"endDate" example:"2024-12-31"`
	Status             *string         `json:"status" example:"ACTIVE"`
	Metadata           json.RawMessage `json:"metadata" swaggertype:"object"`
}

type UpdateRelationshipRequest struct {
	Status   *string         `json:"status" example:"ENDED"`
	EndDate  *string         `json:"endDate" example:"2024-12-31"`
	Metadata json.RawMessage `json:"metadata" swaggertype:"object"`
}

type UserRelationshipResponse struct {
	ID                 uint                      `json:"id"`
	User1ID            uint                      `json:"user1Id"`
	User2ID            uint                      `json:"user2Id"`
	RelationshipTypeID uint                      `json:"relationshipTypeId"`
	RelationshipType   *RelationshipTypeResponse `json:"relationshipType"`
	ContextID          *uint                     `json:"contextId"`
	StartDate          *string                   `json:"startDate" example:"2020-01-01"`
	EndDate            *string                   `json:"endDate"`
	Status             string                    `json:"status"`
	Metadata           json.RawMessage           `json:"metadata" swaggertype:"object"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
}

type PaginatedRelationshipResponse struct {
	Relationships []*UserRelationshipResponse `json:"relationships"`
	Pagination    util.Pagination             `json:"pagination"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

func toUserRelationshipResponse(rel *model.UserRelationship) *UserRelationshipResponse {
	return &UserRelationshipResponse{
		ID:                 rel.ID,
		User1ID:            rel.User1ID,
		User2ID:            rel.User2ID,
		RelationshipTypeID: rel.RelationshipTypeID,
		RelationshipType:   toRelationshipTypeResponse(rel.RelationshipType),
		ContextID:          rel.ContextID,
		StartDate:          util.FormatDate(rel.StartDate),
		EndDate:            util.FormatDate(rel.EndDate),
		Status:             string(rel.Status),
		Metadata:           rawMetadata(rel.Metadata),
		CreatedAt:          rel.CreatedAt,
		UpdatedAt:          rel.UpdatedAt,
	}
}

func toUserRelationshipResponses(rels []model.UserRelationship) []*UserRelationshipResponse {
	out := make([]*UserRelationshipResponse, 0, len(rels))
	for i := range rels {
		out = append(out, toUserRelationshipResponse(&rels[i]))
	}
	return out
}

func parseOptionalDate(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := util.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseActiveOnly(ctx *gin.Context) (bool, bool) {
	v, err := util.ParseOptionalBool(ctx.Query("activeOnly"))
	if err != nil {
		util.BadRequest(ctx, "activeOnly must be true or false")
		return false, false
	}
	return v != nil && *v, true
}

func parseUserPair(ctx *gin.Context) (uint, uint, bool) {
	user1ID, ok1 := util.ParseID(ctx.Param("user1Id"))
	user2ID, ok2 := util.ParseID(ctx.Param("user2Id"))
	if !ok1 || !ok2 {
		util.BadRequest(ctx, "Invalid user ID")
		return 0, 0, false
	}
	return user1ID, user2ID, true
}

// pageRequest 页码从 0 开始，size 超过上限时截断
func (c *UserRelationshipController) pageRequest(ctx *gin.Context) (service.PageRequest, bool) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", strconv.Itoa(util.DefaultPage)))
	if err != nil || page < 0 {
		util.BadRequest(ctx, "page must be a non-negative integer")
		return service.PageRequest{}, false
	}
	size, err := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(c.Pagination.DefaultSize)))
	if err != nil || size <= 0 {
		util.BadRequest(ctx, "size must be a positive integer")
		return service.PageRequest{}, false
	}
	if size > c.Pagination.MaxSize {
		size = c.Pagination.MaxSize
	}
	// page*size 作为偏移量，不能溢出
	if page > math.MaxInt/size {
		util.BadRequest(ctx, "page is out of range")
		return service.PageRequest{}, false
	}
	return service.PageRequest{Page: page, Size: size}, true
}

// GetUserRelationships godoc
// @Summary 分页获取用户的全部关系
// @Description 用户作为 user1 或 user2 出现的关系，按创建顺序排列
// @Tags 用户关系
// @Produce json
// @Param userId path int true "用户ID"
// @Param status query string false "状态 ACTIVE/ENDED/SUSPENDED/PENDING"
// @Param contextId query int false "上下文ID（正整数）"
// @Param category query string false "关系类型分类"
// @Param page query int false "页码（从0开始）" default(0)
// @Param size query int false "每页条数" default(20)
// @Success 200 {object} util.Response{data=PaginatedRelationshipResponse}
// @Failure 400 {object} util.Response
// @Router /api/v1/relationships/user/{userId} [get]
func (c *UserRelationshipController) GetUserRelationships(ctx *gin.Context) {
	userID, ok := util.ParseID(ctx.Param("userId"))
	if !ok {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	var filter repository.UserRelationshipFilter
	if raw := ctx.Query("status"); raw != "" {
		status, ok := model.ParseStatus(raw)
		if !ok {
			util.HandleError(ctx, util.ErrInvalidStatus)
			return
		}
		filter.Status = &status
	}
	if raw := ctx.Query("contextId"); raw != "" {
		contextID, ok := util.ParseID(raw)
		if !ok {
			util.HandleError(ctx, util.ErrInvalidContextID)
			return
		}
		filter.ContextID = &contextID
	}
	if raw := ctx.Query("category"); raw != "" {
		category, ok := model.ParseCategory(raw)
		if !ok {
			util.HandleError(ctx, util.ErrInvalidCategory)
			return
		}
		filter.Category = &category
	}

	page, ok := c.pageRequest(ctx)
	if !ok {
		return
	}

	result, err := c.Service.ListForUser(ctx.Request.Context(), userID, filter, page)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "User relationships retrieved successfully", PaginatedRelationshipResponse{
		Relationships: toUserRelationshipResponses(result.Items),
		Pagination:    util.NewPagination(result.Page, result.Size, result.Total),
	})
}

// GetRelationshipsBetween godoc
// @Summary 获取两个用户之间的关系
// @Description 与参数顺序无关
// @Tags 用户关系
// @Produce json
// @Param user1Id path int true "用户1 ID"
// @Param user2Id path int true "用户2 ID"
// @Param activeOnly query bool false "只返回 ACTIVE 关系" default(false)
// @Success 200 {object} util.Response{data=[]UserRelationshipResponse}
// @Router /api/v1/relationships/between/{user1Id}/{user2Id} [get]
func (c *UserRelationshipController) GetRelationshipsBetween(ctx *gin.Context) {
	user1ID, user2ID, ok := parseUserPair(ctx)
	if !ok {
		return
	}
	activeOnly, ok := parseActiveOnly(ctx)
	if !ok {
		return
	}

	rels, err := c.Service.ListBetween(ctx.Request.Context(), user1ID, user2ID, activeOnly)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationships between users retrieved successfully", toUserRelationshipResponses(rels))
}

// CheckRelationshipExists godoc
// @Summary 判断两个用户之间是否存在关系
// @Tags 用户关系
// @Produce json
// @Param user1Id path int true "用户1 ID"
// @Param user2Id path int true "用户2 ID"
// @Param activeOnly query bool false "只统计 ACTIVE 关系" default(false)
// @Success 200 {object} util.Response{data=ExistsResponse}
// @Router /api/v1/relationships/exists/{user1Id}/{user2Id} [get]
func (c *UserRelationshipController) CheckRelationshipExists(ctx *gin.Context) {
	user1ID, user2ID, ok := parseUserPair(ctx)
	if !ok {
		return
	}
	activeOnly, ok := parseActiveOnly(ctx)
	if !ok {
		return
	}

	exists, err := c.Service.ExistsBetween(ctx.Request.Context(), user1ID, user2ID, activeOnly)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship existence checked", ExistsResponse{Exists: exists})
}

// GetUserRelationshipStats godoc
// @Summary 获取用户的关系统计
// @Tags 用户关系
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response{data=service.RelationshipStats}
// @Router /api/v1/relationships/user/{userId}/stats [get]
func (c *UserRelationshipController) GetUserRelationshipStats(ctx *gin.Context) {
	userID, ok := util.ParseID(ctx.Param("userId"))
	if !ok {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	stats, err := c.Service.CountForUser(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship statistics retrieved successfully", stats)
}

// GetRelationship godoc
// @Summary 根据ID获取关系
// @Tags 用户关系
// @Produce json
// @Param id path int true "关系ID"
// @Success 200 {object} util.Response{data=UserRelationshipResponse}
// @Failure 404 {object} util.Response
// @Router /api/v1/relationships/{id} [get]
func (c *UserRelationshipController) GetRelationship(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid relationship ID")
		return
	}

	rel, err := c.Service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship retrieved successfully", toUserRelationshipResponse(rel))
}

// CreateRelationship godoc
// @Summary 创建用户关系
// @Description 同一对用户（不分顺序）在同一类型和上下文下只能有一条关系
// @Tags 用户关系
// @Accept json
// @Produce json
// @Param body body CreateRelationshipRequest true "关系"
// @Success 201 {object} util.Response{data=UserRelationshipResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/relationships [post]
func (c *UserRelationshipController) CreateRelationship(ctx *gin.Context) {
	var req CreateRelationshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		util.BadRequest(ctx, "startDate must use the YYYY-MM-DD format")
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		util.BadRequest(ctx, "endDate must use the YYYY-MM-DD format")
		return
	}

	rel, err := c.Service.Create(ctx.Request.Context(), service.CreateRelationshipInput{
		User1ID:            req.User1ID,
		User2ID:            req.User2ID,
		RelationshipTypeID: req.RelationshipTypeID,
		ContextID:          req.ContextID,
		StartDate:          startDate,
		EndDate:            endDate,
		Status:             req.Status,
		Metadata:           req.Metadata,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, "Relationship created successfully", toUserRelationshipResponse(rel))
}

// UpdateRelationship godoc
// @Summary 更新用户关系
// @Description 可修改状态、结束日期和元数据，只更新请求中出现的字段
// @Tags 用户关系
// @Accept json
// @Produce json
// @Param id path int true "关系ID"
// @Param body body UpdateRelationshipRequest true "待更新字段"
// @Success 200 {object} util.Response{data=UserRelationshipResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/relationships/{id} [put]
func (c *UserRelationshipController) UpdateRelationship(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid relationship ID")
		return
	}

	var req UpdateRelationshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		util.BadRequest(ctx, "endDate must use the YYYY-MM-DD format")
		return
	}

	rel, err := c.Service.Update(ctx.Request.Context(), id, service.UpdateRelationshipInput{
		Status:   req.Status,
		EndDate:  endDate,
		Metadata: req.Metadata,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship updated successfully", toUserRelationshipResponse(rel))
}

// DeleteRelationship godoc
// @Summary 删除用户关系
// @Tags 用户关系
// @Produce json
// @Param id path int true "关系ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/relationships/{id} [delete]
func (c *UserRelationshipController) DeleteRelationship(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid relationship ID")
		return
	}

	if err := c.Service.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship deleted successfully", nil)
}
