package app

import (
	"railcollect_backend/internal/config"
	"railcollect_backend/internal/middleware"
	"railcollect_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		projects := authGroup.Group("/projects")
		{
			projects.POST("", c.project.CreateProject)
			projects.GET("", c.project.ListProjects)
			projects.GET("/:id", c.project.GetProject)
			projects.POST("/:id/items", c.item.AddItem)
			projects.POST("/:id/wanted", c.wanted.AddWanted)
			projects.POST("/:id/wanted/:wantedId/convert", c.wanted.ConvertWantedInProject)
		}

		items := authGroup.Group("/items")
		{
			items.GET("/:id", c.item.GetItem)
			items.PUT("/:id", c.item.UpdateItem)
		}

		authGroup.GET("/scales", c.item.ListScales)

		wanted := authGroup.Group("/wanted")
		{
			wanted.GET("", c.wanted.ListWanted)
			wanted.GET("/:id", c.wanted.GetWanted)
			wanted.PUT("/:id", c.wanted.UpdateWanted)
			wanted.DELETE("/:id", c.wanted.DeleteWanted)
			wanted.POST("/:id/convert", c.wanted.ConvertWanted)
			wanted.POST("/:id/purchase", c.wanted.PurchaseWanted)
		}

		friends := authGroup.Group("/friends")
		{
			friends.GET("", c.friend.ListFriends)
			friends.GET("/profile", c.friend.GetProfile)
			friends.POST("/requests", c.friend.SendRequest)
			friends.GET("/requests", c.friend.ListIncomingRequests)
			friends.POST("/requests/:id/accept", c.friend.AcceptRequest)
			friends.POST("/requests/:id/reject", c.friend.RejectRequest)
			friends.GET("/:friendId/wanted", c.friend.GetFriendWanted)
			friends.GET("/:friendId/collection", c.friend.GetFriendCollection)
		}

		authGroup.POST("/upload/photo", c.upload.UploadPhoto)
	}
}
