package router

import (
	"database/sql"
	"time"

	"restaurant_backend/internal/handlers"
	"restaurant_backend/internal/repositories"
	"restaurant_backend/internal/services"
	"restaurant_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Config carries the router-level settings.
type Config struct {
	AllowedOrigins []string
	UploadDir      string
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(db *sql.DB, cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.GinLogger())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	// Repositories
	authRepo := repositories.NewAuthRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Services
	authService := services.NewAuthService(authRepo, db)
	categoryService := services.NewCategoryService(categoryRepo, menuRepo, db)
	menuService := services.NewMenuService(menuRepo, categoryRepo, db)
	orderService := services.NewOrderService(orderRepo, menuRepo, db)
	reservationService := services.NewReservationService(reservationRepo, db)
	messageService := services.NewMessageService(messageRepo, db)
	adminService := services.NewAdminService(messageRepo, orderRepo, menuRepo, categoryRepo, reservationRepo)

	// Handlers
	h := routeHandlers{
		auth:        handlers.NewAuthHandler(authService),
		category:    handlers.NewCategoryHandler(categoryService),
		menu:        handlers.NewMenuHandler(menuService),
		order:       handlers.NewOrderHandler(orderService),
		reservation: handlers.NewReservationHandler(reservationService),
		message:     handlers.NewMessageHandler(messageService),
		admin:       handlers.NewAdminHandler(adminService),
		upload:      handlers.NewUploadHandler(cfg.UploadDir),
	}

	api := r.Group("/api/v1")
	registerPublicRoutes(api, h)
	registerAdminRoutes(api, h)

	r.Static("/uploads", cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// routeHandlers bundles every handler for route registration.
type routeHandlers struct {
	auth        *handlers.AuthHandler
	category    *handlers.CategoryHandler
	menu        *handlers.MenuHandler
	order       *handlers.OrderHandler
	reservation *handlers.ReservationHandler
	message     *handlers.MessageHandler
	admin       *handlers.AdminHandler
	upload      *handlers.UploadHandler
}
