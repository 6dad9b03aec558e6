package app

import (
	"relationship_service/docs"
	"relationship_service/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiBasePath = "/api/v1"

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Version = a.Config.Server.Version
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 健康检查
	router.GET("/health", c.health.HealthCheck)
	router.GET("/health/detailed", c.health.DetailedHealthCheck)

	api := router.Group(apiBasePath)

	// 2. 关系类型
	a.registerRelationshipTypeRoutes(api, c)

	// 3. 用户关系
	a.registerUserRelationshipRoutes(api, c)
}

func (a *App) registerRelationshipTypeRoutes(api *gin.RouterGroup, c *controllers) {
	types := api.Group("/relationship-types")
	{
		types.GET("", c.relationshipType.ListRelationshipTypes)
		types.GET("/search", c.relationshipType.SearchRelationshipTypes)
		types.GET("/name/:name", c.relationshipType.GetRelationshipTypeByName)
		types.GET("/:id", c.relationshipType.GetRelationshipType)
		types.GET("/:id/reverse-of", c.relationshipType.GetReverseTypes)
		types.POST("", c.relationshipType.CreateRelationshipType)
		types.PUT("/:id", c.relationshipType.UpdateRelationshipType)
		types.DELETE("/:id", c.relationshipType.DeleteRelationshipType)
	}
}

func (a *App) registerUserRelationshipRoutes(api *gin.RouterGroup, c *controllers) {
	rels := api.Group("/relationships")
	{
		rels.GET("/user/:userId", c.userRelationship.GetUserRelationships)
		rels.GET("/user/:userId/stats", c.userRelationship.GetUserRelationshipStats)
		rels.GET("/between/:user1Id/:user2Id", c.userRelationship.GetRelationshipsBetween)
		rels.GET("/exists/:user1Id/:user2Id", c.userRelationship.CheckRelationshipExists)
		rels.GET("/:id", c.userRelationship.GetRelationship)
		rels.POST("", c.userRelationship.CreateRelationship)
		rels.PUT("/:id", c.userRelationship.UpdateRelationship)
		rels.DELETE("/:id", c.userRelationship.DeleteRelationship)
	}
}
