package controller

import (
	"encoding/json"
	"relationship_service/internal/model"
	"relationship_service/internal/repository"
	"relationship_service/internal/service"
	"relationship_service/internal/util"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type RelationshipTypeController struct {
	Service *service.RelationshipTypeService
}

func NewRelationshipTypeController(s *service.RelationshipTypeService) *RelationshipTypeController {
	return &RelationshipTypeController{Service: s}
}

type CreateRelationshipTypeRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Bidirectional *bool           `json:"bidirectional"`
	ReverseTypeID *uint           `json:"reverseTypeId"`
	Metadata      json.RawMessage `json:"metadata" swaggertype:"object"`
}

type UpdateRelationshipTypeRequest struct {
	Name          *string         `json:"name"`
	Category      *string         `json:"category"`
	Bidirectional *bool           `json:"bidirectional"`
	ReverseTypeID *uint           `json:"reverseTypeId"`
	Metadata      json.RawMessage `json:"metadata" swaggertype:"object"`
}

type RelationshipTypeResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Bidirectional bool            `json:"bidirectional"`
	ReverseTypeID *uint           `json:"reverseTypeId"`
	Metadata      json.RawMessage `json:"metadata" swaggertype:"object"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toRelationshipTypeResponse(rt *model.RelationshipType) *RelationshipTypeResponse {
	if rt == nil {
		return nil
	}
	return &RelationshipTypeResponse{
		ID:            rt.ID,
		Name:          rt.Name,
		Category:      string(rt.Category),
		Bidirectional: rt.Bidirectional,
		ReverseTypeID: rt.ReverseTypeID,
		Metadata:      rawMetadata(rt.Metadata),
		CreatedAt:     rt.CreatedAt,
		UpdatedAt:     rt.UpdatedAt,
	}
}

func toRelationshipTypeResponses(types []model.RelationshipType) []*RelationshipTypeResponse {
	out := make([]*RelationshipTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, toRelationshipTypeResponse(&types[i]))
	}
	return out
}

// rawMetadata 空元数据输出为 null
func rawMetadata(m []byte) json.RawMessage {
	if len(m) == 0 {
		return nil
	}
	return json.RawMessage(m)
}

// ListRelationshipTypes godoc
// @Summary 获取关系类型列表
// @Description 可按分类和是否双向筛选
// @Tags 关系类型
// @Produce json
// @Param category query string false "分类 FAMILY/SOCIAL/PROFESSIONAL/CUSTOM"
// @Param bidirectional query bool false "是否双向"
// @Success 200 {object} util.Response{data=[]RelationshipTypeResponse}
// @Failure 400 {object} util.Response
// @Router /api/v1/relationship-types [get]
func (c *RelationshipTypeController) ListRelationshipTypes(ctx *gin.Context) {
	var filter repository.RelationshipTypeFilter

	if raw := ctx.Query("category"); raw != "" {
		category, ok := model.ParseCategory(raw)
		if !ok {
			util.HandleError(ctx, util.ErrInvalidCategory)
			return
		}
		filter.Category = &category
	}

	bidirectional, err := util.ParseOptionalBool(ctx.Query("bidirectional"))
	if err != nil {
		util.BadRequest(ctx, "bidirectional must be true or false")
		return
	}
	filter.Bidirectional = bidirectional

	types, err := c.Service.ListAll(ctx.Request.Context(), filter)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship types retrieved successfully", toRelationshipTypeResponses(types))
}

// GetRelationshipType godoc
// @Summary 根据ID获取关系类型
// @Tags 关系类型
// @Produce json
// @Param id path int true "关系类型ID"
// @Success 200 {object} util.Response{data=RelationshipTypeResponse}
// @Failure 404 {object} util.Response
// @Router /api/v1/relationship-types/{id} [get]
func (c *RelationshipTypeController) GetRelationshipType(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid relationship type ID")
		return
	}

	rt, err := c.Service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship type retrieved successfully", toRelationshipTypeResponse(rt))
}

// GetRelationshipTypeByName godoc
// @Summary 根据名称获取关系类型
// @Tags 关系类型
// @Produce json
// @Param name path string true "关系类型名称（精确匹配）"
// @Success 200 {object} util.Response{data=RelationshipTypeResponse}
// @Failure 404 {object} util.Response
// @Router /api/v1/relationship-types/name/{name} [get]
func (c *RelationshipTypeController) GetRelationshipTypeByName(ctx *gin.Context) {
	rt, err := c.Service.GetByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship type retrieved successfully", toRelationshipTypeResponse(rt))
}

// SearchRelationshipTypes godoc
// @Summary 按名称模糊搜索关系类型
// @Tags 关系类型
// @Produce json
// @Param name query string true "名称片段（不区分大小写）"
// @Success 200 {object} util.Response{data=[]RelationshipTypeResponse}
// @Failure 400 {object} util.Response
// @Router /api/v1/relationship-types/search [get]
func (c *RelationshipTypeController) SearchRelationshipTypes(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.Query("name"))
	if name == "" {
		util.BadRequest(ctx, "name query parameter is required")
		return
	}

	types, err := c.Service.Search(ctx.Request.Context(), name)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship types search completed", toRelationshipTypeResponses(types))
}

// GetReverseTypes godoc
// @Summary 获取以该类型为反向类型的关系类型
// @Tags 关系类型
// @Produce json
// @Param id path int true "关系类型ID"
// @Success 200 {object} util.Response{data=[]RelationshipTypeResponse}
// @Failure 404 {object} util.Response
// @Router /api/v1/relationship-types/{id}/reverse-of [get]
func (c *RelationshipTypeController) GetReverseTypes(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid relationship type ID")
		return
	}

	types, err := c.Service.ListReverseOf(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Reverse relationship types retrieved successfully", toRelationshipTypeResponses(types))
}

// CreateRelationshipType godoc
// @Summary 创建关系类型
// @Tags 关系类型
// @Accept json
// @Produce json
// @Param body body CreateRelationshipTypeRequest true "关系类型"
// @Success 201 {object} util.Response{data=RelationshipTypeResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/relationship-types [post]
func (c *RelationshipTypeController) CreateRelationshipType(ctx *gin.Context) {
	var req CreateRelationshipTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	in := service.CreateRelationshipTypeInput{
		Name:          req.Name,
		Category:      req.Category,
		ReverseTypeID: req.ReverseTypeID,
		Metadata:      req.Metadata,
	}
	if req.Bidirectional != nil {
		in.Bidirectional = *req.Bidirectional
	}

	rt, err := c.Service.Create(ctx.Request.Context(), in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, "Relationship type created successfully", toRelationshipTypeResponse(rt))
}

// UpdateRelationshipType godoc
// @Summary 更新关系类型
// @Description 只更新请求中出现的字段
// @Tags 关系类型
// @Accept json
// @Produce json
// @Param id path int true "关系类型ID"
// @Param body body UpdateRelationshipTypeRequest true "待更新字段"
// @Success 200 {object} util.Response{data=RelationshipTypeResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/relationship-types/{id} [put]
func (c *RelationshipTypeController) UpdateRelationshipType(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid relationship type ID")
		return
	}

	var req UpdateRelationshipTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rt, err := c.Service.Update(ctx.Request.Context(), id, service.UpdateRelationshipTypeInput{
		Name:          req.Name,
		Category:      req.Category,
		Bidirectional: req.Bidirectional,
		ReverseTypeID: req.ReverseTypeID,
		Metadata:      req.Metadata,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship type updated successfully", toRelationshipTypeResponse(rt))
}

// DeleteRelationshipType godoc
// @Summary 删除关系类型
// @Description 仍被用户关系引用时返回 409
// @Tags 关系类型
// @Produce json
// @Param id path int true "关系类型ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/relationship-types/{id} [delete]
func (c *RelationshipTypeController) DeleteRelationshipType(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid relationship type ID")
		return
	}

	if err := c.Service.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, "Relationship type deleted successfully", nil)
}
