package router

import (
	"restaurant_backend/internal/middleware"
	"restaurant_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// registerPublicRoutes mounts the endpoints reachable without a token:
// reading the catalog, placing and cancelling orders and reservations, and
// submitting contact messages.
func registerPublicRoutes(api *gin.RouterGroup, h routeHandlers) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.auth.Register)
		auth.POST("/login", h.auth.Login)
		auth.GET("/me", middleware.AuthMiddleware(), h.auth.Me)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.category.GetCategories)
		categories.GET("/with-items", h.category.GetCategoriesWithItems)
		categories.GET("/:id", h.category.GetCategoryByID)
	}

	menu := api.Group("/menu")
	{
		menu.GET("", h.menu.GetMenuItems)
		menu.GET("/:id", h.menu.GetMenuItemByID)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", h.order.CreateOrder)
		orders.POST("/:id/cancel", h.order.CancelOrder)
	}

	reservations := api.Group("/reservations")
	{
		reservations.POST("", h.reservation.CreateReservation)
		reservations.POST("/:id/cancel", h.reservation.CancelReservation)
	}

	api.POST("/messages", h.message.CreateMessage)
}

// registerAdminRoutes mounts the endpoints behind JWT auth with the admin
// role: catalog writes, order and reservation management, the message inbox,
// statistics and uploads.
func registerAdminRoutes(api *gin.RouterGroup, h routeHandlers) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleAuthMiddleware(models.RoleAdmin))

	categories := admin.Group("/categories")
	{
		categories.POST("", h.category.CreateCategory)
		categories.PUT("/:id", h.category.UpdateCategory)
		categories.DELETE("/:id", h.category.DeleteCategory)
	}

	menu := admin.Group("/menu")
	{
		menu.POST("", h.menu.CreateMenuItem)
		menu.PUT("/:id", h.menu.UpdateMenuItem)
		menu.DELETE("/:id", h.menu.DeleteMenuItem)
	}

	orders := admin.Group("/orders")
	{
		orders.GET("", h.order.GetOrders)
		orders.GET("/:id", h.order.GetOrderByID)
		orders.PUT("/:id/status", h.order.UpdateOrderStatus)
		orders.PUT("/:id/payment", h.order.UpdatePaymentStatus)
		orders.DELETE("/:id", h.order.DeleteOrder)
	}

	reservations := admin.Group("/reservations")
	{
		reservations.GET("", h.reservation.GetReservations)
		reservations.GET("/:id", h.reservation.GetReservationByID)
		reservations.PUT("/:id", h.reservation.UpdateReservation)
		reservations.DELETE("/:id", h.reservation.DeleteReservation)
	}

	messages := admin.Group("/messages")
	{
		messages.GET("", h.message.GetMessages)
		messages.GET("/:id", h.message.GetMessageByID)
		messages.PUT("/:id", h.message.UpdateMessage)
		messages.DELETE("/:id", h.message.DeleteMessage)
	}

	admin.GET("/statistics", h.admin.GetStatistics)
	admin.POST("/upload", h.upload.UploadImage)
}
