package controller

import (
	"context"
	"net/http"
	"relationship_service/internal/config"
	"relationship_service/internal/util"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

type HealthController struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Server    config.ServerConfig
	startedAt time.Time
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, server config.ServerConfig) *HealthController {
	return &HealthController{
		DB:        db,
		Redis:     rdb,
		Server:    server,
		startedAt: time.Now(),
	}
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Service    string            `json:"service"`
	Components map[string]string `json:"components"`
}

type DetailedHealthResponse struct {
	HealthResponse
	Version  string                 `json:"version"`
	Uptime   string                 `json:"uptime"`
	Database map[string]interface{} `json:"database"`
	Runtime  map[string]interface{} `json:"runtime"`
}

func (c *HealthController) checkComponents(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	components := map[string]string{"database": StatusUp}
	healthy := true

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		components["database"] = StatusDown
		healthy = false
	}

	if c.Redis != nil {
		components["redis"] = StatusUp
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			components["redis"] = StatusDown
			healthy = false
		}
	}
	return components, healthy
}

func respondHealth(ctx *gin.Context, healthy bool, data interface{}) {
	if healthy {
		util.Success(ctx, "Service is healthy", data)
		return
	}
	util.Respond(ctx, http.StatusServiceUnavailable, false, "Service is unhealthy", data)
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 检查数据库（以及启用时的 Redis）连接
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response{data=HealthResponse}
// @Failure 503 {object} util.Response{data=HealthResponse}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components, healthy := c.checkComponents(ctx.Request.Context())

	status := StatusUp
	if !healthy {
		status = StatusDown
	}
	respondHealth(ctx, healthy, HealthResponse{
		Status:     status,
		Service:    c.Server.ServiceName,
		Components: components,
	})
}

// DetailedHealthCheck godoc
// @Summary 详细健康检查
// @Description 附带连接池和运行时信息
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response{data=DetailedHealthResponse}
// @Failure 503 {object} util.Response{data=DetailedHealthResponse}
// @Router /health/detailed [get]
func (c *HealthController) DetailedHealthCheck(ctx *gin.Context) {
	components, healthy := c.checkComponents(ctx.Request.Context())

	status := StatusUp
	if !healthy {
		status = StatusDown
	}

	dbInfo := map[string]interface{}{"dialect": c.DB.Dialector.Name()}
	if sqlDB, err := c.DB.DB(); err == nil {
		stats := sqlDB.Stats()
		dbInfo["openConnections"] = stats.OpenConnections
		dbInfo["inUse"] = stats.InUse
		dbInfo["idle"] = stats.Idle
		dbInfo["maxOpenConnections"] = stats.MaxOpenConnections
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	respondHealth(ctx, healthy, DetailedHealthResponse{
		HealthResponse: HealthResponse{
			Status:     status,
			Service:    c.Server.ServiceName,
			Components: components,
		},
		Version:  c.Server.Version,
		Uptime:   time.Since(c.startedAt).Round(time.Second).String(),
		Database: dbInfo,
		Runtime: map[string]interface{}{
			"goVersion":  runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
			"heapAlloc":  mem.HeapAlloc,
			"heapSys":    mem.HeapSys,
			"numGC":      mem.NumGC,
		},
	})
}
