package util

import (
	"errors"
	"net/http"
	"relationship_service/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// Pagination 分页信息
type Pagination struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPagination(page, size int, total int64) Pagination {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Pagination{Page: page, Size: size, TotalElements: total, TotalPages: pages}
}

// Respond 按指定状态码输出统一响应
func Respond(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   success,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func Success(c *gin.Context, message string, data interface{}) {
	Respond(c, http.StatusOK, true, message, data)
}

func Created(c *gin.Context, message string, data interface{}) {
	Respond(c, http.StatusCreated, true, message, data)
}

func Error(c *gin.Context, code int, message string) {
	Respond(c, code, false, message, nil)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	InternalServerError(c)
}

// HandleError 将业务错误映射为对应的HTTP状态码
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, ErrConflict):
		Conflict(c, err.Error())
	case errors.Is(err, ErrInvalidArgument):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}
